package warcalc

import "errors"

// Position-scoped failures. The engine collects these per position and keeps
// going; they only become fatal when every requested position fails.
var (
	// ErrInsufficientData means a position had no eligible players to build
	// a scoring context from.
	ErrInsufficientData = errors.New("insufficient data for league context")

	// ErrDegenerateContext means the weekly score variance collapsed to zero,
	// so the win probability transform is undefined.
	ErrDegenerateContext = errors.New("degenerate league context: zero weekly variance")

	// ErrNoQualifiedPlayers means a position produced no WAR output at all.
	ErrNoQualifiedPlayers = errors.New("no qualified players")
)

// Run-level failures.
var (
	// ErrNoUsablePositions means every requested position was skipped.
	ErrNoUsablePositions = errors.New("no usable positions in requested set")

	// ErrBudgetExhausted means the auction was asked to allocate a
	// non-positive budget or was given a non-positive team count.
	ErrBudgetExhausted = errors.New("auction budget exhausted")
)
