package league

import (
	"fmt"
	"math"
	"sort"
)

// Class groups positions that share a scoring formula and roster treatment.
type Class int

const (
	ClassOffense Class = iota // QB, RB, WR, TE
	ClassDefense              // individual defensive players
	ClassSpecial              // kicking specialists
)

type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
	PK Position = "PK"
	PN Position = "PN"
	DT Position = "DT"
	DE Position = "DE"
	LB Position = "LB"
	CB Position = "CB"
	S  Position = "S"
)

var classes = map[Position]Class{
	QB: ClassOffense, RB: ClassOffense, WR: ClassOffense, TE: ClassOffense,
	DT: ClassDefense, DE: ClassDefense, LB: ClassDefense, CB: ClassDefense, S: ClassDefense,
	PK: ClassSpecial, PN: ClassSpecial,
}

func (p Position) Class() (Class, bool) {
	c, ok := classes[p]
	return c, ok
}

// Slot describes how many starters a team fields at one position.
type Slot struct {
	Min          int
	Max          int
	FlexEligible bool
}

// League is the explicit configuration every calculation receives. There is no
// process-wide league state; callers construct one and pass it down.
type League struct {
	Name        string
	Teams       int
	SeasonGames int // games baseline used for WAR, full regular season
	MinGames    int // minimum games played for WAR eligibility

	Roster map[Position]Slot

	// FlexSlots is the number of shared flex starters per team. FlexShares
	// holds each flex-eligible position's claim on those slots; weights are
	// normalized, so any positive scale works. An empty map falls back to
	// weighting by each position's Max-Min roster range.
	FlexSlots  int
	FlexShares map[Position]float64
}

// Default returns the 16-team analytical-league shape the methodology was
// built around.
func Default() League {
	return League{
		Name:        "Fantasy Analytical League",
		Teams:       16,
		SeasonGames: 17,
		MinGames:    1,
		Roster: map[Position]Slot{
			QB: {Min: 1, Max: 1},
			RB: {Min: 1, Max: 2, FlexEligible: true},
			WR: {Min: 2, Max: 4, FlexEligible: true},
			TE: {Min: 1, Max: 2, FlexEligible: true},
			PK: {Min: 1, Max: 1},
			PN: {Min: 1, Max: 1},
			DT: {Min: 2, Max: 3},
			DE: {Min: 2, Max: 3},
			LB: {Min: 1, Max: 3},
			CB: {Min: 2, Max: 4},
			S:  {Min: 2, Max: 3},
		},
		FlexSlots: 2,
	}
}

func (l League) Validate() error {
	if l.Teams < 1 {
		return fmt.Errorf("league %q: teams must be >= 1, got %d", l.Name, l.Teams)
	}
	if l.SeasonGames < 1 {
		return fmt.Errorf("league %q: season games must be >= 1, got %d", l.Name, l.SeasonGames)
	}
	for pos := range l.Roster {
		if _, ok := pos.Class(); !ok {
			return fmt.Errorf("league %q: unknown roster position %s", l.Name, pos)
		}
	}
	for pos := range l.FlexShares {
		slot, ok := l.Roster[pos]
		if !ok || !slot.FlexEligible {
			return fmt.Errorf("league %q: flex share set for non-flex position %s", l.Name, pos)
		}
	}
	return nil
}

// Positions returns every rostered position in a stable order.
func (l League) Positions() []Position {
	out := make([]Position, 0, len(l.Roster))
	for pos, slot := range l.Roster {
		if slot.Max > 0 {
			out = append(out, pos)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FlexShare returns the fraction of a flex slot this position claims per
// team. Non-flex positions claim nothing.
func (l League) FlexShare(pos Position) float64 {
	slot, ok := l.Roster[pos]
	if !ok || !slot.FlexEligible || l.FlexSlots <= 0 {
		return 0
	}

	var total, own float64
	for p, s := range l.Roster {
		if !s.FlexEligible {
			continue
		}
		w := float64(s.Max - s.Min)
		if len(l.FlexShares) > 0 {
			w = l.FlexShares[p]
		}
		total += w
		if p == pos {
			own = w
		}
	}
	if total <= 0 {
		return 0
	}
	return own / total
}

// EffectiveStarters is the per-team starter count used for replacement rank:
// the dedicated minimum plus this position's pro-rata share of flex slots.
func (l League) EffectiveStarters(pos Position) float64 {
	slot, ok := l.Roster[pos]
	if !ok {
		return 0
	}
	return float64(slot.Min) + l.FlexShare(pos)*float64(l.FlexSlots)
}

// ReplacementRank is the 1-indexed rank of the replacement-level player at a
// position: the last starter across the whole league.
func (l League) ReplacementRank(pos Position) int {
	rank := int(math.Round(float64(l.Teams) * l.EffectiveStarters(pos)))
	if rank < 1 {
		rank = 1
	}
	return rank
}

// StarterPool is the number of starter-relevant players league-wide at a
// position, used to bound the scoring-context sample.
func (l League) StarterPool(pos Position) int {
	slot, ok := l.Roster[pos]
	if !ok {
		return 0
	}
	return l.Teams * slot.Max
}

// DraftablePool is the league-wide draftable player count across the given
// positions: effective starters per team, summed and scaled by team count.
func (l League) DraftablePool(positions []Position) int {
	var perTeam float64
	for _, pos := range positions {
		perTeam += l.EffectiveStarters(pos)
	}
	return int(math.Round(float64(l.Teams) * perTeam))
}
