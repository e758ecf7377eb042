package warcalc

import (
	"sort"

	"fantasywar/internal/models"
)

// eligible filters to players with enough games played. minGames below 1 is
// treated as 1: a zero-game player never qualifies.
func eligible(stats []models.PlayerSeasonStats, minGames int) []models.PlayerSeasonStats {
	if minGames < 1 {
		minGames = 1
	}
	out := make([]models.PlayerSeasonStats, 0, len(stats))
	for _, s := range stats {
		if s.GamesPlayed >= minGames {
			out = append(out, s)
		}
	}
	return out
}

// rankByAverage orders players for replacement-level selection: weekly
// average descending, then games played descending, then player ID ascending
// so equal seasons always rank the same way.
func rankByAverage(stats []models.PlayerSeasonStats) []models.PlayerSeasonStats {
	ranked := make([]models.PlayerSeasonStats, len(stats))
	copy(ranked, stats)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.AvgPoints != b.AvgPoints {
			return a.AvgPoints > b.AvgPoints
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed > b.GamesPlayed
		}
		return a.PlayerID < b.PlayerID
	})
	return ranked
}
