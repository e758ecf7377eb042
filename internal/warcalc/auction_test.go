package warcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

func reportWithWARs(wars []float64) *models.SeasonReport {
	report := &models.SeasonReport{
		Season: 2023,
		Contexts: map[league.Position]models.LeagueContext{
			league.RB: {Position: league.RB},
		},
	}
	for i, w := range wars {
		report.Results = append(report.Results, models.WARResult{
			PlayerID:   fmt.Sprintf("p%02d", i+1),
			PlayerName: fmt.Sprintf("Back %02d", i+1),
			Position:   league.RB,
			Season:     2023,
			WAR:        w,
		})
	}
	return report
}

func TestConvertAuctionValuesSpendsExactBudget(t *testing.T) {
	lg := rbOnlyLeague(12)
	report := reportWithWARs([]float64{10, 5, 0, -2})

	values, err := ConvertAuctionValues(report, lg, AuctionConfig{Budget: 200, Floor: 1})
	require.NoError(t, err)
	require.Len(t, values, 4)

	total := 0
	for _, v := range values {
		assert.GreaterOrEqual(t, v.Value, 1)
		total += v.Value
	}
	assert.Equal(t, 200*12, total)

	// Dollar order follows WAR order and the worst drafted player sits at
	// the floor.
	assert.Greater(t, values[0].Value, values[1].Value)
	assert.Greater(t, values[1].Value, values[2].Value)
	assert.Equal(t, 1, values[3].Value)
}

func TestConvertAuctionValuesFlatWAR(t *testing.T) {
	lg := rbOnlyLeague(12)
	report := reportWithWARs([]float64{5, 5, 5, 5})

	values, err := ConvertAuctionValues(report, lg, AuctionConfig{Budget: 200, Floor: 1})
	require.NoError(t, err)

	// No WAR separation means no discretionary spend: everyone is a floor
	// bid and the budget is simply not exhausted.
	for _, v := range values {
		assert.Equal(t, 1, v.Value)
	}
}

func TestConvertAuctionValuesPoolCappedByBudget(t *testing.T) {
	lg := rbOnlyLeague(2)
	report := reportWithWARs([]float64{10, 5, 0, -2})

	// Two teams at $1 each can only draft two $1 players.
	values, err := ConvertAuctionValues(report, lg, AuctionConfig{Budget: 1, Floor: 1})
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestConvertAuctionValuesNegativeBaseline(t *testing.T) {
	lg := rbOnlyLeague(12)
	report := reportWithWARs([]float64{-1, -2, -3, -4})

	values, err := ConvertAuctionValues(report, lg, AuctionConfig{Budget: 200, Floor: 1})
	require.NoError(t, err)

	// All-negative WAR still allocates: value is relative to the worst
	// drafted player, not to zero.
	assert.Greater(t, values[0].Value, values[3].Value)
	assert.Equal(t, 1, values[3].Value)
}

func TestConvertAuctionValuesRejectsEmptyBudget(t *testing.T) {
	lg := rbOnlyLeague(12)
	report := reportWithWARs([]float64{10, 5})

	_, err := ConvertAuctionValues(report, lg, AuctionConfig{Budget: 0})
	assert.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestTierThresholds(t *testing.T) {
	assert.Equal(t, 1, tierFor(60, 200))
	assert.Equal(t, 2, tierFor(35, 200))
	assert.Equal(t, 3, tierFor(20, 200))
	assert.Equal(t, 4, tierFor(10, 200))
	assert.Equal(t, 5, tierFor(3, 200))
}
