package warcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

func rbOnlyLeague(teams int) league.League {
	return league.League{
		Name:        "test",
		Teams:       teams,
		SeasonGames: 13,
		MinGames:    1,
		Roster:      map[league.Position]league.Slot{league.RB: {Min: 2, Max: 2}},
	}
}

func rbPool(n int) []models.PlayerSeasonStats {
	out := make([]models.PlayerSeasonStats, n)
	for i := range out {
		avg := 30.0 - float64(i)*0.5
		out[i] = models.PlayerSeasonStats{
			PlayerID:    fmt.Sprintf("p%02d", i+1),
			PlayerName:  fmt.Sprintf("Back %02d", i+1),
			Position:    league.RB,
			WeekPoints:  []float64{avg - 4, avg + 4, avg - 4, avg + 4},
			GamesPlayed: 4,
			TotalPoints: avg * 4,
			AvgPoints:   avg,
		}
	}
	return out
}

func TestComputeSeasonReplacementAnchors(t *testing.T) {
	// 12 teams starting 2 backs each: replacement level is the 24th back,
	// whose WAR is zero by construction.
	lg := rbOnlyLeague(12)
	engine := NewEngine(lg)

	report, err := engine.ComputeSeason(2023, map[league.Position][]models.PlayerSeasonStats{
		league.RB: rbPool(24),
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 24)

	rep := report.Replacements[league.RB]
	assert.Equal(t, 24, rep.Rank)
	assert.Equal(t, "p24", rep.PlayerID)
	assert.False(t, rep.Degraded)

	var replacementResult *models.WARResult
	for i := range report.Results {
		if report.Results[i].PlayerID == rep.PlayerID {
			replacementResult = &report.Results[i]
		}
	}
	require.NotNil(t, replacementResult)
	assert.InDelta(t, 0.0, replacementResult.WAR, 1e-9)

	// Everyone above replacement has positive WAR and the order is WAR
	// descending.
	assert.Equal(t, "p01", report.Results[0].PlayerID)
	assert.Greater(t, report.Results[0].WAR, 0.0)
	for i := 1; i < len(report.Results); i++ {
		assert.GreaterOrEqual(t, report.Results[i-1].WAR, report.Results[i].WAR)
	}
}

func TestComputeSeasonExpectedWinsScale(t *testing.T) {
	lg := rbOnlyLeague(12)
	engine := NewEngine(lg)

	report, err := engine.ComputeSeason(2023, map[league.Position][]models.PlayerSeasonStats{
		league.RB: rbPool(24),
	})
	require.NoError(t, err)

	for _, r := range report.Results {
		assert.InDelta(t, r.WinProb*float64(lg.SeasonGames), r.ExpectedWins, 1e-9)
		assert.InDelta(t, (r.WinProb-r.ReplacementWinProb)*float64(lg.SeasonGames), r.WAR, 1e-9)
	}
}

func TestComputeSeasonSkipsFailedPositions(t *testing.T) {
	lg := rbOnlyLeague(12)
	lg.Roster[league.QB] = league.Slot{Min: 1, Max: 1}
	engine := NewEngine(lg)

	report, err := engine.ComputeSeason(2023, map[league.Position][]models.PlayerSeasonStats{
		league.RB: rbPool(24),
		league.QB: nil,
	})
	require.NoError(t, err)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, league.QB, report.Skipped[0].Position)
	assert.Contains(t, report.Contexts, league.RB)
	assert.NotContains(t, report.Contexts, league.QB)
}

func TestComputeSeasonAllPositionsFail(t *testing.T) {
	engine := NewEngine(rbOnlyLeague(12))

	_, err := engine.ComputeSeason(2023, map[league.Position][]models.PlayerSeasonStats{
		league.RB: nil,
	})
	assert.ErrorIs(t, err, ErrNoUsablePositions)

	_, err = engine.ComputeSeason(2023, map[league.Position][]models.PlayerSeasonStats{})
	assert.ErrorIs(t, err, ErrNoUsablePositions)
}

func TestComputeSeasonDeterministic(t *testing.T) {
	engine := NewEngine(rbOnlyLeague(12))
	stats := map[league.Position][]models.PlayerSeasonStats{league.RB: rbPool(24)}

	first, err := engine.ComputeSeason(2023, stats)
	require.NoError(t, err)
	second, err := engine.ComputeSeason(2023, stats)
	require.NoError(t, err)

	require.Equal(t, len(first.Results), len(second.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].PlayerID, second.Results[i].PlayerID)
		assert.Equal(t, first.Results[i].WAR, second.Results[i].WAR)
	}
}
