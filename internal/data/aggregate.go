package data

import (
	"sort"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// GroupSeasons folds weekly rows into per-position season stats. Weeks are
// ordered chronologically per player before folding, and a player appearing
// at two positions produces two season lines.
func GroupSeasons(rows []models.PlayerWeekStats) map[league.Position][]models.PlayerSeasonStats {
	type key struct {
		playerID string
		position league.Position
	}

	byPlayer := make(map[key][]models.PlayerWeekStats)
	for _, r := range rows {
		k := key{playerID: r.PlayerID, position: r.Position}
		byPlayer[k] = append(byPlayer[k], r)
	}

	out := make(map[league.Position][]models.PlayerSeasonStats)
	for k, weeks := range byPlayer {
		sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })
		season := models.SeasonFromWeeks(weeks)
		out[k.position] = append(out[k.position], season)
	}

	// Stable slice order per position so runs are reproducible.
	for pos := range out {
		sort.Slice(out[pos], func(i, j int) bool {
			return out[pos][i].PlayerID < out[pos][j].PlayerID
		})
	}
	return out
}

// FilterWeeks keeps only rows inside the requested week window. A nil or
// empty set keeps everything.
func FilterWeeks(rows []models.PlayerWeekStats, weeks []int) []models.PlayerWeekStats {
	if len(weeks) == 0 {
		return rows
	}
	keep := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		keep[w] = true
	}
	out := make([]models.PlayerWeekStats, 0, len(rows))
	for _, r := range rows {
		if keep[r.Week] {
			out = append(out, r)
		}
	}
	return out
}
