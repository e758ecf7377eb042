package warcalc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"fantasywar/internal/models"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// WinProbability is the chance that a team slotting this player's weekly
// average beats a random opponent drawn from the position's league context.
// Both weekly scores are normal with spread WeekSD, so their difference has
// spread WeekSD * sqrt(2) and the closed form is
//
//	P(win) = Phi((avg - WeekFP) / (WeekSD * sqrt(2)))
//
// The same transform applies to real players and the replacement player.
func WinProbability(avgPoints float64, ctx models.LeagueContext) (float64, error) {
	if ctx.WeekSD <= 0 {
		return 0, fmt.Errorf("%s season %d: %w", ctx.Position, ctx.Season, ErrDegenerateContext)
	}
	return stdNormal.CDF((avgPoints - ctx.WeekFP) / (ctx.WeekSD * math.Sqrt2)), nil
}
