package models

import (
	"time"

	"fantasywar/internal/league"
)

// LeagueContext is the opposing-team baseline for one position and season:
// the expected weekly fantasy output of a starting slot and its week-to-week
// spread, both computed over the starter-relevant population only.
type LeagueContext struct {
	Position league.Position
	Season   int
	Teams    int
	WeekFP   float64 // expected weekly points for a starting slot
	WeekSD   float64 // population std dev of pooled weekly observations
	Players  int     // starters sampled
	Weeks    int     // pooled weekly observations
	Thin     bool    // fewer eligible players than starter slots
}

// ReplacementPlayer identifies the last player a team would realistically
// start at a position.
type ReplacementPlayer struct {
	PlayerID    string
	PlayerName  string
	Position    league.Position
	Season      int
	Rank        int
	GamesPlayed int
	TotalPoints float64
	AvgPoints   float64

	// Degraded marks a replacement taken from a population smaller than the
	// computed replacement rank.
	Degraded bool
}

type WARResult struct {
	PlayerID   string
	PlayerName string
	Position   league.Position
	Season     int

	GamesPlayed int
	TotalPoints float64
	AvgPoints   float64

	WinProb            float64
	ExpectedWins       float64
	ReplacementWinProb float64
	WAR                float64
}

type AuctionValue struct {
	PlayerID   string
	PlayerName string
	Position   league.Position
	Season     int

	WAR   float64
	Value int // whole dollars, >= the bid floor for drafted players
	Tier  int // 1 = elite .. 5 = depth
}

// SkippedPosition records a position that produced no WAR output and why.
// Skips are reported alongside partial results, never as run failures.
type SkippedPosition struct {
	Position league.Position
	Reason   string
}

// SeasonReport is the full output of one WAR run: results ordered by WAR
// descending, per-position context, and the positions that were skipped.
type SeasonReport struct {
	Season       int
	Teams        int
	Results      []WARResult
	Contexts     map[league.Position]LeagueContext
	Replacements map[league.Position]ReplacementPlayer
	Skipped      []SkippedPosition
	ComputedAt   time.Time
}
