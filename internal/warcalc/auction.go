package warcalc

import (
	"fmt"
	"log/slog"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// AuctionConfig sets the dollar pool for one draft.
type AuctionConfig struct {
	Budget int // per-team budget
	Floor  int // minimum bid, defaults to $1
}

// ConvertAuctionValues distributes the league's total budget across the
// draftable pool in proportion to WAR above the last drafted player. Every
// drafted player gets at least the floor; the rounding remainder lands on the
// highest-WAR player so the total never exceeds budget x teams.
//
// The report's results must already be WAR-ordered, which ComputeSeason
// guarantees.
func ConvertAuctionValues(report *models.SeasonReport, lg league.League, cfg AuctionConfig) ([]models.AuctionValue, error) {
	if cfg.Budget <= 0 || lg.Teams <= 0 {
		return nil, fmt.Errorf("budget %d, teams %d: %w", cfg.Budget, lg.Teams, ErrBudgetExhausted)
	}
	floor := cfg.Floor
	if floor < 1 {
		floor = 1
	}

	positions := make([]league.Position, 0, len(report.Contexts))
	for _, pos := range lg.Positions() {
		if _, ok := report.Contexts[pos]; ok {
			positions = append(positions, pos)
		}
	}

	pool := lg.DraftablePool(positions)
	if pool > len(report.Results) {
		// Fewer real players than roster slots: shrink, never fabricate.
		pool = len(report.Results)
	}
	totalBudget := cfg.Budget * lg.Teams
	if affordable := totalBudget / floor; pool > affordable {
		pool = affordable
	}
	if pool == 0 {
		return nil, fmt.Errorf("budget %d cannot cover the bid floor: %w", cfg.Budget, ErrBudgetExhausted)
	}

	drafted := report.Results[:pool]

	// The zero-value baseline is the last drafted player's WAR, not zero:
	// WAR can be negative and the worst drafted player is still worth the
	// floor.
	baseline := drafted[pool-1].WAR
	var totalAbove float64
	for _, r := range drafted {
		totalAbove += r.WAR - baseline
	}

	discretionary := totalBudget - floor*pool

	values := make([]models.AuctionValue, pool)
	allocated := 0
	for i, r := range drafted {
		v := floor
		if totalAbove > 0 {
			v += int(float64(discretionary) * (r.WAR - baseline) / totalAbove)
		}
		allocated += v
		values[i] = models.AuctionValue{
			PlayerID:   r.PlayerID,
			PlayerName: r.PlayerName,
			Position:   r.Position,
			Season:     r.Season,
			WAR:        r.WAR,
			Value:      v,
		}
	}

	// Truncation leaves a few dollars unspent; hand them to the top player
	// so the pool sums to the budget exactly.
	if totalAbove > 0 {
		values[0].Value += totalBudget - allocated
	}

	for i := range values {
		values[i].Tier = tierFor(values[i].Value, cfg.Budget)
	}

	slog.Info("auction values computed",
		"players", len(values), "budget", cfg.Budget, "teams", lg.Teams, "floor", floor)
	return values, nil
}

// tierFor buckets a dollar value against the per-team budget: 1 is an elite
// anchor purchase, 5 is end-of-bench money.
func tierFor(value, budget int) int {
	v := float64(value)
	b := float64(budget)
	switch {
	case v >= b*0.25:
		return 1
	case v >= b*0.15:
		return 2
	case v >= b*0.08:
		return 3
	case v >= b*0.04:
		return 4
	default:
		return 5
	}
}
