package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLeagueValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadShapes(t *testing.T) {
	lg := Default()
	lg.Teams = 0
	assert.Error(t, lg.Validate())

	lg = Default()
	lg.Roster[Position("XX")] = Slot{Min: 1, Max: 1}
	assert.Error(t, lg.Validate())

	lg = Default()
	lg.FlexShares = map[Position]float64{QB: 1}
	assert.Error(t, lg.Validate())
}

func TestFlexShareDefaultsToRosterRange(t *testing.T) {
	lg := Default()

	// RB and TE each span one bench slot, WR spans two.
	assert.InDelta(t, 0.25, lg.FlexShare(RB), 1e-9)
	assert.InDelta(t, 0.5, lg.FlexShare(WR), 1e-9)
	assert.InDelta(t, 0.25, lg.FlexShare(TE), 1e-9)
	assert.Zero(t, lg.FlexShare(QB))
}

func TestFlexShareOverride(t *testing.T) {
	lg := Default()
	lg.FlexShares = map[Position]float64{RB: 3, WR: 1, TE: 0}

	assert.InDelta(t, 0.75, lg.FlexShare(RB), 1e-9)
	assert.InDelta(t, 0.25, lg.FlexShare(WR), 1e-9)
	assert.Zero(t, lg.FlexShare(TE))
}

func TestEffectiveStartersAndReplacementRank(t *testing.T) {
	lg := Default()

	// WR: two dedicated starters plus half of the two flex slots.
	assert.InDelta(t, 3.0, lg.EffectiveStarters(WR), 1e-9)
	assert.Equal(t, 48, lg.ReplacementRank(WR))
	assert.Equal(t, 16, lg.ReplacementRank(QB))
}

func TestReplacementRankNeverBelowOne(t *testing.T) {
	lg := League{
		Teams:       1,
		SeasonGames: 17,
		Roster:      map[Position]Slot{QB: {Min: 0, Max: 1}},
	}
	assert.Equal(t, 1, lg.ReplacementRank(QB))
}

func TestDraftablePool(t *testing.T) {
	lg := League{
		Teams:       12,
		SeasonGames: 14,
		Roster: map[Position]Slot{
			QB: {Min: 1, Max: 1},
			RB: {Min: 2, Max: 2},
		},
	}
	assert.Equal(t, 36, lg.DraftablePool([]Position{QB, RB}))
}

func TestPositionsStableOrder(t *testing.T) {
	lg := Default()
	assert.Equal(t, lg.Positions(), lg.Positions())
	assert.Len(t, lg.Positions(), 11)
}

func TestPositionClasses(t *testing.T) {
	offense, ok := QB.Class()
	require.True(t, ok)
	assert.Equal(t, ClassOffense, offense)

	defense, ok := LB.Class()
	require.True(t, ok)
	assert.Equal(t, ClassDefense, defense)

	special, ok := PN.Class()
	require.True(t, ok)
	assert.Equal(t, ClassSpecial, special)

	_, ok = Position("FLEX").Class()
	assert.False(t, ok)
}
