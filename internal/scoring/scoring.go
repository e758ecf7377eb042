// Package scoring implements the MPPR ("minus PPR") scoring system: yardage
// and touchdowns score positively while attempts and targets cost points, so
// efficiency is rewarded over volume.
package scoring

import "fantasywar/internal/league"

type OffenseWeights struct {
	PassingTDs     float64
	PassingYards   float64
	PassAttempts   float64
	Completions    float64
	Interceptions  float64
	SacksTaken     float64
	SackYards      float64
	Passing2Pt     float64
	RushingTDs     float64
	RushingYards   float64
	RushAttempts   float64
	Rushing2Pt     float64
	ReceivingTDs   float64
	ReceivingYards float64
	Receptions     float64
	Targets        float64
	Receiving2Pt   float64
	FirstDowns     float64
	FumblesLost    float64
}

// TackleWeights vary by defensive position: interior linemen earn more per
// tackle than defensive backs, coverage players more per pass defended.
type TackleWeights struct {
	Tackles        float64
	Assists        float64
	PassesDefended float64
}

type DefenseWeights struct {
	Sacks             float64
	SackYards         float64
	QBHits            float64
	TacklesForLoss    float64
	Interceptions     float64
	InterceptionYards float64
	ForcedFumbles     float64
	FumbleRecoveries  float64
	Safeties          float64
	DefensiveTDs      float64

	ByPosition map[league.Position]TackleWeights
}

// KickingWeights score field goals per distance bucket; longer kicks are
// worth more per the distance-based formula the bucket values encode.
type KickingWeights struct {
	FGMade0to29  float64
	FGMade30to39 float64
	FGMade40Plus float64
	FGMissed     float64
	PATMade      float64
	PATMissed    float64
}

type PuntingWeights struct {
	Punts         float64
	PuntYards     float64
	PuntsInside20 float64
	PuntsBlocked  float64
}

// System bundles the per-class weight tables. Position classes are a closed
// set; scoring never branches on raw position strings outside the defensive
// tackle table.
type System struct {
	Offense OffenseWeights
	Defense DefenseWeights
	Kicking KickingWeights
	Punting PuntingWeights
}

// Default returns the analytical-league MPPR weights.
func Default() System {
	return System{
		Offense: OffenseWeights{
			PassingTDs:     4.0,
			PassingYards:   0.2,
			PassAttempts:   -1.0,
			Completions:    0.5,
			Interceptions:  -10.0,
			SacksTaken:     -1.0,
			SackYards:      -0.2,
			Passing2Pt:     3.0,
			RushingTDs:     4.0,
			RushingYards:   0.2,
			RushAttempts:   -0.5,
			Rushing2Pt:     3.0,
			ReceivingTDs:   4.0,
			ReceivingYards: 0.2,
			Receptions:     0.5,
			Targets:        -1.0,
			Receiving2Pt:   3.0,
			FirstDowns:     0.5,
			FumblesLost:    -6.0,
		},
		Defense: DefenseWeights{
			Sacks:             -0.5,
			SackYards:         0.2,
			QBHits:            1.0,
			TacklesForLoss:    2.0,
			Interceptions:     6.0,
			InterceptionYards: 0.15,
			ForcedFumbles:     6.0,
			FumbleRecoveries:  5.0,
			Safeties:          2.0,
			DefensiveTDs:      5.0,
			ByPosition: map[league.Position]TackleWeights{
				league.DT: {Tackles: 2.5, Assists: 1.5, PassesDefended: 3.0},
				league.DE: {Tackles: 2.0, Assists: 1.0, PassesDefended: 3.0},
				league.LB: {Tackles: 1.0, Assists: 0.5, PassesDefended: 3.0},
				league.CB: {Tackles: 1.0, Assists: 1.0, PassesDefended: 4.0},
				league.S:  {Tackles: 1.0, Assists: 0.5, PassesDefended: 4.0},
			},
		},
		Kicking: KickingWeights{
			FGMade0to29:  0.7, // -0.5 base + 0.05/yd at a 24-yard make
			FGMade30to39: 2.0, // 1.0 base + 0.2/yd over 30 at 35
			FGMade40Plus: 5.0, // 3.0 base + 0.4/yd over 40 at 45
			FGMissed:     -6.0,
			PATMade:      0.3,
			PATMissed:    -2.0,
		},
		Punting: PuntingWeights{
			Punts:         -6.75,
			PuntYards:     0.15,
			PuntsInside20: 2.0,
			PuntsBlocked:  -8.0,
		},
	}
}

// OffenseLine is one player-week of raw offensive counting stats.
type OffenseLine struct {
	PassingYards  float64
	PassAttempts  float64
	Completions   float64
	PassingTDs    float64
	Interceptions float64
	SacksTaken    float64
	SackYards     float64
	Passing2Pt    float64

	RushingYards float64
	RushAttempts float64
	RushingTDs   float64
	Rushing2Pt   float64

	ReceivingYards float64
	Targets        float64
	Receptions     float64
	ReceivingTDs   float64
	Receiving2Pt   float64

	FirstDowns  float64
	FumblesLost float64
}

type DefenseLine struct {
	Tackles           float64
	Assists           float64
	TacklesForLoss    float64
	Sacks             float64
	SackYards         float64
	QBHits            float64
	PassesDefended    float64
	Interceptions     float64
	InterceptionYards float64
	ForcedFumbles     float64
	FumbleRecoveries  float64
	Safeties          float64
	DefensiveTDs      float64
}

type KickingLine struct {
	FGMade0to29  float64
	FGMade30to39 float64
	FGMade40Plus float64
	FGMissed     float64
	PATMade      float64
	PATMissed    float64
}

type PuntingLine struct {
	Punts         float64
	PuntYards     float64
	PuntsInside20 float64
	PuntsBlocked  float64
}

func (s System) ScoreOffense(l OffenseLine) float64 {
	w := s.Offense
	return l.PassingTDs*w.PassingTDs +
		l.PassingYards*w.PassingYards +
		l.PassAttempts*w.PassAttempts +
		l.Completions*w.Completions +
		l.Interceptions*w.Interceptions +
		l.SacksTaken*w.SacksTaken +
		l.SackYards*w.SackYards +
		l.Passing2Pt*w.Passing2Pt +
		l.RushingTDs*w.RushingTDs +
		l.RushingYards*w.RushingYards +
		l.RushAttempts*w.RushAttempts +
		l.Rushing2Pt*w.Rushing2Pt +
		l.ReceivingTDs*w.ReceivingTDs +
		l.ReceivingYards*w.ReceivingYards +
		l.Receptions*w.Receptions +
		l.Targets*w.Targets +
		l.Receiving2Pt*w.Receiving2Pt +
		l.FirstDowns*w.FirstDowns +
		l.FumblesLost*w.FumblesLost
}

func (s System) ScoreDefense(pos league.Position, l DefenseLine) float64 {
	w := s.Defense
	tw := w.ByPosition[pos]
	return l.Tackles*tw.Tackles +
		l.Assists*tw.Assists +
		l.PassesDefended*tw.PassesDefended +
		l.TacklesForLoss*w.TacklesForLoss +
		l.Sacks*w.Sacks +
		l.SackYards*w.SackYards +
		l.QBHits*w.QBHits +
		l.Interceptions*w.Interceptions +
		l.InterceptionYards*w.InterceptionYards +
		l.ForcedFumbles*w.ForcedFumbles +
		l.FumbleRecoveries*w.FumbleRecoveries +
		l.Safeties*w.Safeties +
		l.DefensiveTDs*w.DefensiveTDs
}

func (s System) ScoreKicking(l KickingLine) float64 {
	w := s.Kicking
	return l.FGMade0to29*w.FGMade0to29 +
		l.FGMade30to39*w.FGMade30to39 +
		l.FGMade40Plus*w.FGMade40Plus +
		l.FGMissed*w.FGMissed +
		l.PATMade*w.PATMade +
		l.PATMissed*w.PATMissed
}

func (s System) ScorePunting(l PuntingLine) float64 {
	w := s.Punting
	return l.Punts*w.Punts +
		l.PuntYards*w.PuntYards +
		l.PuntsInside20*w.PuntsInside20 +
		l.PuntsBlocked*w.PuntsBlocked
}
