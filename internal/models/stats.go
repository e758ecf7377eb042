package models

import "fantasywar/internal/league"

// PlayerWeekStats is one already-scored player-week as delivered by the data
// layer. The calculators never see raw stat columns.
type PlayerWeekStats struct {
	PlayerID      string
	PlayerName    string
	Team          string
	Position      league.Position
	Season        int
	Week          int
	FantasyPoints float64
	Active        bool
}

// PlayerSeasonStats is one player's season at one position. Values are
// immutable once built; the calculators only read them.
type PlayerSeasonStats struct {
	PlayerID   string
	PlayerName string
	Team       string
	Position   league.Position
	Season     int

	// WeekPoints holds fantasy points for each active week, chronological.
	WeekPoints  []float64
	GamesPlayed int
	TotalPoints float64
	AvgPoints   float64
}

// SeasonFromWeeks folds chronological weekly rows into a season line. Weeks
// flagged inactive are skipped; a player with no active weeks yields
// GamesPlayed 0 and an undefined average.
func SeasonFromWeeks(weeks []PlayerWeekStats) PlayerSeasonStats {
	var s PlayerSeasonStats
	for _, w := range weeks {
		if s.PlayerID == "" {
			s.PlayerID = w.PlayerID
			s.PlayerName = w.PlayerName
			s.Team = w.Team
			s.Position = w.Position
			s.Season = w.Season
		}
		if !w.Active {
			continue
		}
		s.WeekPoints = append(s.WeekPoints, w.FantasyPoints)
		s.TotalPoints += w.FantasyPoints
	}
	s.GamesPlayed = len(s.WeekPoints)
	if s.GamesPlayed > 0 {
		s.AvgPoints = s.TotalPoints / float64(s.GamesPlayed)
	}
	return s
}
