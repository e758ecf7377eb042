package warcalc

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// BuildContext derives the opposing-team baseline for one position and
// season. Only the starter-relevant population counts: the top
// teams x max-starters eligible players, ranked the same way replacement
// level is. WeekFP averages the pool's per-player weekly means; WeekSD is the
// population spread of the pool's individual weekly scores, so game-to-game
// variance is measured rather than talent spread between players.
func BuildContext(lg league.League, pos league.Position, season int, stats []models.PlayerSeasonStats) (models.LeagueContext, error) {
	pool := eligible(stats, lg.MinGames)
	if len(pool) == 0 {
		return models.LeagueContext{}, fmt.Errorf("%s season %d: %w", pos, season, ErrInsufficientData)
	}

	ranked := rankByAverage(pool)
	starters := lg.StarterPool(pos)
	thin := len(ranked) < starters
	if !thin {
		ranked = ranked[:starters]
	}

	averages := make([]float64, len(ranked))
	var weekly []float64
	for i, p := range ranked {
		averages[i] = p.AvgPoints
		weekly = append(weekly, p.WeekPoints...)
	}

	ctx := models.LeagueContext{
		Position: pos,
		Season:   season,
		Teams:    lg.Teams,
		WeekFP:   stat.Mean(averages, nil),
		WeekSD:   stat.PopStdDev(weekly, nil),
		Players:  len(ranked),
		Weeks:    len(weekly),
		Thin:     thin,
	}

	if thin {
		slog.Warn("thin starter pool for league context",
			"position", pos, "season", season, "players", len(ranked), "wanted", starters)
	}
	return ctx, nil
}
