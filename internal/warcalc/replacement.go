package warcalc

import (
	"fmt"
	"log/slog"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// SelectReplacement finds the replacement-level player at a position: the
// player holding rank teams x effective-starters in the deterministic
// average-points ordering. Flex-shared positions carry a fractional
// effective-starter count, so the rank is league-shape dependent and is
// re-derived on every call.
func SelectReplacement(lg league.League, pos league.Position, season int, stats []models.PlayerSeasonStats) (models.ReplacementPlayer, error) {
	pool := eligible(stats, lg.MinGames)
	if len(pool) == 0 {
		return models.ReplacementPlayer{}, fmt.Errorf("%s season %d: %w", pos, season, ErrNoQualifiedPlayers)
	}

	ranked := rankByAverage(pool)
	rank := lg.ReplacementRank(pos)

	degraded := rank > len(ranked)
	if degraded {
		slog.Warn("replacement rank beyond population, using lowest-ranked player",
			"position", pos, "season", season, "rank", rank, "players", len(ranked))
		rank = len(ranked)
	}

	p := ranked[rank-1]
	return models.ReplacementPlayer{
		PlayerID:    p.PlayerID,
		PlayerName:  p.PlayerName,
		Position:    pos,
		Season:      season,
		Rank:        rank,
		GamesPlayed: p.GamesPlayed,
		TotalPoints: p.TotalPoints,
		AvgPoints:   p.AvgPoints,
		Degraded:    degraded,
	}, nil
}
