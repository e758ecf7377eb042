package warcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// descendingPool builds n players with strictly decreasing averages, IDs
// ordered to match the ranking.
func descendingPool(n int) []models.PlayerSeasonStats {
	out := make([]models.PlayerSeasonStats, n)
	for i := range out {
		avg := 30.0 - float64(i)
		out[i] = models.PlayerSeasonStats{
			PlayerID:    fmt.Sprintf("p%02d", i+1),
			PlayerName:  fmt.Sprintf("Player %02d", i+1),
			WeekPoints:  []float64{avg - 2, avg + 2},
			GamesPlayed: 2,
			TotalPoints: avg * 2,
			AvgPoints:   avg,
		}
	}
	return out
}

func TestSelectReplacementExactRank(t *testing.T) {
	lg := soloQBLeague(12)

	rep, err := SelectReplacement(lg, league.QB, 2023, descendingPool(20))
	require.NoError(t, err)

	assert.Equal(t, "p12", rep.PlayerID)
	assert.Equal(t, 12, rep.Rank)
	assert.InDelta(t, 19.0, rep.AvgPoints, 1e-9)
	assert.False(t, rep.Degraded)
}

func TestSelectReplacementShallowPopulation(t *testing.T) {
	lg := soloQBLeague(12)

	rep, err := SelectReplacement(lg, league.QB, 2023, descendingPool(5))
	require.NoError(t, err)

	assert.Equal(t, "p05", rep.PlayerID)
	assert.Equal(t, 5, rep.Rank)
	assert.True(t, rep.Degraded)
}

func TestSelectReplacementNoQualifiedPlayers(t *testing.T) {
	lg := soloQBLeague(12)

	_, err := SelectReplacement(lg, league.QB, 2023, nil)
	assert.ErrorIs(t, err, ErrNoQualifiedPlayers)
}

func TestRankingTieBreaks(t *testing.T) {
	stats := []models.PlayerSeasonStats{
		{PlayerID: "b", AvgPoints: 10, GamesPlayed: 4},
		{PlayerID: "a", AvgPoints: 10, GamesPlayed: 4},
		{PlayerID: "c", AvgPoints: 10, GamesPlayed: 6},
	}

	ranked := rankByAverage(stats)

	// More games first, then lexical ID.
	assert.Equal(t, "c", ranked[0].PlayerID)
	assert.Equal(t, "a", ranked[1].PlayerID)
	assert.Equal(t, "b", ranked[2].PlayerID)
}

func TestEligibleTreatsZeroMinAsOne(t *testing.T) {
	stats := []models.PlayerSeasonStats{
		{PlayerID: "played", GamesPlayed: 1},
		{PlayerID: "benched", GamesPlayed: 0},
	}

	out := eligible(stats, 0)
	require.Len(t, out, 1)
	assert.Equal(t, "played", out[0].PlayerID)
}
