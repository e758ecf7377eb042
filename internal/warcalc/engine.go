package warcalc

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"fantasywar/internal/league"
	"fantasywar/internal/models"
)

// Engine turns per-player season stats into WAR results. Each position is an
// independent, side-effect-free computation over immutable inputs, so
// positions run in parallel and merge behind a single barrier.
type Engine struct {
	lg league.League
}

func NewEngine(lg league.League) *Engine {
	return &Engine{lg: lg}
}

type positionResult struct {
	pos         league.Position
	ctx         models.LeagueContext
	replacement models.ReplacementPlayer
	results     []models.WARResult
	err         error
}

// ComputeSeason calculates WAR for every requested position of one season.
// Per-position failures are collected into the report's skipped list; the run
// only fails when no position produced output.
func (e *Engine) ComputeSeason(season int, statsByPos map[league.Position][]models.PlayerSeasonStats) (*models.SeasonReport, error) {
	positions := make([]league.Position, 0, len(statsByPos))
	for _, pos := range e.lg.Positions() {
		if _, ok := statsByPos[pos]; ok {
			positions = append(positions, pos)
		}
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("season %d: %w", season, ErrNoUsablePositions)
	}

	out := make([]positionResult, len(positions))
	var wg sync.WaitGroup
	for i, pos := range positions {
		wg.Add(1)
		go func(i int, pos league.Position) {
			defer wg.Done()
			out[i] = e.computePosition(pos, season, statsByPos[pos])
		}(i, pos)
	}
	wg.Wait()

	report := &models.SeasonReport{
		Season:       season,
		Teams:        e.lg.Teams,
		Contexts:     make(map[league.Position]models.LeagueContext),
		Replacements: make(map[league.Position]models.ReplacementPlayer),
		ComputedAt:   time.Now(),
	}

	for _, r := range out {
		if r.err != nil {
			slog.Warn("position skipped", "position", r.pos, "season", season, "reason", r.err)
			report.Skipped = append(report.Skipped, models.SkippedPosition{
				Position: r.pos,
				Reason:   r.err.Error(),
			})
			continue
		}
		report.Contexts[r.pos] = r.ctx
		report.Replacements[r.pos] = r.replacement
		report.Results = append(report.Results, r.results...)
	}

	if len(report.Results) == 0 {
		return nil, fmt.Errorf("season %d: %w", season, ErrNoUsablePositions)
	}

	sortByWAR(report.Results)
	slog.Info("season WAR computed",
		"season", season, "players", len(report.Results),
		"positions", len(report.Contexts), "skipped", len(report.Skipped))
	return report, nil
}

func (e *Engine) computePosition(pos league.Position, season int, stats []models.PlayerSeasonStats) positionResult {
	res := positionResult{pos: pos}

	ctx, err := BuildContext(e.lg, pos, season, stats)
	if err != nil {
		res.err = err
		return res
	}

	replacement, err := SelectReplacement(e.lg, pos, season, stats)
	if err != nil {
		res.err = err
		return res
	}

	replacementWP, err := WinProbability(replacement.AvgPoints, ctx)
	if err != nil {
		res.err = err
		return res
	}

	// Both sides of the WAR difference are scaled by the same full-season
	// baseline: WAR is value over a season's worth of games, not over the
	// player's partial sample.
	games := float64(e.lg.SeasonGames)

	players := eligible(stats, e.lg.MinGames)
	results := make([]models.WARResult, 0, len(players))
	for _, p := range players {
		wp, err := WinProbability(p.AvgPoints, ctx)
		if err != nil {
			res.err = err
			return res
		}
		results = append(results, models.WARResult{
			PlayerID:           p.PlayerID,
			PlayerName:         p.PlayerName,
			Position:           pos,
			Season:             season,
			GamesPlayed:        p.GamesPlayed,
			TotalPoints:        p.TotalPoints,
			AvgPoints:          p.AvgPoints,
			WinProb:            wp,
			ExpectedWins:       wp * games,
			ReplacementWinProb: replacementWP,
			WAR:                (wp - replacementWP) * games,
		})
	}
	if len(results) == 0 {
		res.err = fmt.Errorf("%s season %d: %w", pos, season, ErrNoQualifiedPlayers)
		return res
	}

	res.ctx = ctx
	res.replacement = replacement
	res.results = results
	return res
}

// sortByWAR orders results WAR descending with the same deterministic
// tie-breaks the ranking uses, so downstream allocation is reproducible.
func sortByWAR(results []models.WARResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.WAR != b.WAR {
			return a.WAR > b.WAR
		}
		if a.AvgPoints != b.AvgPoints {
			return a.AvgPoints > b.AvgPoints
		}
		return a.PlayerID < b.PlayerID
	})
}
