package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"fantasywar/internal/data"
	"fantasywar/internal/league"
	"fantasywar/internal/models"
	"fantasywar/internal/repository/memory"
	"fantasywar/internal/warcalc"
)

const matchThreshold = 0.5

type WARService struct {
	loader  *data.Loader
	repo    *memory.Repository
	lg      league.League
	auction warcalc.AuctionConfig
}

func NewWARService(loader *data.Loader, repo *memory.Repository, lg league.League, auction warcalc.AuctionConfig) *WARService {
	return &WARService{loader: loader, repo: repo, lg: lg, auction: auction}
}

// Report returns the season report, recomputing when the cached copy is
// missing, stale, or a week filter makes it inapplicable.
func (s *WARService) Report(season int, weeks []int) (*models.SeasonReport, error) {
	if len(weeks) == 0 {
		report := s.repo.GetReport(season)
		if report != nil && time.Since(report.ComputedAt) < 24*time.Hour {
			return report, nil
		}
	}

	rows, err := s.loader.LoadSeason(season)
	if err != nil {
		return nil, fmt.Errorf("error loading season %d stats: %w", season, err)
	}
	if len(weeks) > 0 {
		rows = data.FilterWeeks(rows, weeks)
	}

	engine := warcalc.NewEngine(s.lg)
	report, err := engine.ComputeSeason(season, data.GroupSeasons(rows))
	if err != nil {
		return nil, fmt.Errorf("error computing season %d: %w", season, err)
	}

	if len(weeks) == 0 {
		s.repo.SaveReport(report)
	}
	return report, nil
}

func (s *WARService) WARReport(season int, weeks []int, top int) (string, error) {
	report, err := s.Report(season, weeks)
	if err != nil {
		return "", err
	}

	if top <= 0 || top > len(report.Results) {
		top = len(report.Results)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%d WAR Leaders* (%s)\n\n", season, s.lg.Name))

	for i, r := range report.Results[:top] {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", i+1, r.PlayerName, r.Position))
		sb.WriteString(fmt.Sprintf("   WAR: %.2f | Win%%: %.1f%% | %.2f pts/wk\n",
			r.WAR, r.WinProb*100, r.AvgPoints))
	}

	sb.WriteString("\n*Replacement Level:*\n")
	for _, pos := range s.lg.Positions() {
		rep, ok := report.Replacements[pos]
		if !ok {
			continue
		}
		marker := ""
		if rep.Degraded {
			marker = " (shallow pool)"
		}
		sb.WriteString(fmt.Sprintf("%s: %s, %.2f pts/wk (rank %d)%s\n",
			pos, rep.PlayerName, rep.AvgPoints, rep.Rank, marker))
	}

	appendSkipped(&sb, report.Skipped)
	return sb.String(), nil
}

func (s *WARService) AuctionValues(season int, weeks []int) ([]models.AuctionValue, error) {
	report, err := s.Report(season, weeks)
	if err != nil {
		return nil, err
	}
	values, err := warcalc.ConvertAuctionValues(report, s.lg, s.auction)
	if err != nil {
		return nil, fmt.Errorf("error converting auction values: %w", err)
	}
	return values, nil
}

func (s *WARService) AuctionReport(season int, weeks []int, top int) (string, error) {
	values, err := s.AuctionValues(season, weeks)
	if err != nil {
		return "", err
	}

	if top <= 0 || top > len(values) {
		top = len(values)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 *%d Auction Values* ($%d budget, %d teams)\n\n",
		season, s.auction.Budget, s.lg.Teams))

	tier := 0
	for i, v := range values[:top] {
		if v.Tier != tier {
			tier = v.Tier
			sb.WriteString(fmt.Sprintf("*%s*\n", tierLabel(tier)))
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s) $%d | WAR %.2f\n",
			i+1, v.PlayerName, v.Position, v.Value, v.WAR))
	}

	return sb.String(), nil
}

// FindPlayer fuzzy matches a player name against the season results.
func (s *WARService) FindPlayer(name string, season int, weeks []int) (string, error) {
	report, err := s.Report(season, weeks)
	if err != nil {
		return "", err
	}

	var bestMatch *models.WARResult
	bestRank := 0
	bestScore := -1.0

	for i, r := range report.Results {
		candidate := strings.ToLower(r.PlayerName)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), candidate)
		maxLen := float64(max(len(name), len(candidate)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > matchThreshold && similarity > bestScore {
			bestScore = similarity
			bestMatch = &report.Results[i]
			bestRank = i + 1
		}
	}

	if bestMatch == nil {
		return fmt.Sprintf("🔍 No player found matching '%s'.", name), nil
	}

	slog.Info("Matched player", "query", name, "player", bestMatch.PlayerName, "score", bestScore)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s)\n", bestMatch.PlayerName, bestMatch.Position))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("WAR: %.2f (#%d overall)\n", bestMatch.WAR, bestRank))
	sb.WriteString(fmt.Sprintf("Win Probability: %.1f%%\n", bestMatch.WinProb*100))
	sb.WriteString(fmt.Sprintf("Expected Wins: %.2f\n", bestMatch.ExpectedWins))
	sb.WriteString(fmt.Sprintf("Avg Points: %.2f over %d games\n", bestMatch.AvgPoints, bestMatch.GamesPlayed))

	if values, err := warcalc.ConvertAuctionValues(report, s.lg, s.auction); err == nil {
		for _, v := range values {
			if v.PlayerID == bestMatch.PlayerID {
				sb.WriteString(fmt.Sprintf("Auction Value: $%d (%s)\n", v.Value, tierLabel(v.Tier)))
				break
			}
		}
	}

	return sb.String(), nil
}

// PositionSummary reports league context and replacement level per position.
func (s *WARService) PositionSummary(season int, weeks []int) (string, error) {
	report, err := s.Report(season, weeks)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *%d Positional Baselines*\n\n", season))

	for _, pos := range s.lg.Positions() {
		ctx, ok := report.Contexts[pos]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("*%s*\n", pos))
		sb.WriteString(fmt.Sprintf("   League: %.2f ± %.2f pts/wk (%d players)\n", ctx.WeekFP, ctx.WeekSD, ctx.Players))
		if rep, ok := report.Replacements[pos]; ok {
			sb.WriteString(fmt.Sprintf("   Replacement: %s at rank %d, %.2f pts/wk\n", rep.PlayerName, rep.Rank, rep.AvgPoints))
		}
		if ctx.Thin {
			sb.WriteString("   (thin sample)\n")
		}
	}

	appendSkipped(&sb, report.Skipped)
	return sb.String(), nil
}

func tierLabel(tier int) string {
	switch tier {
	case 1:
		return "Tier 1 - Elite"
	case 2:
		return "Tier 2 - Stars"
	case 3:
		return "Tier 3 - Starters"
	case 4:
		return "Tier 4 - Flex"
	default:
		return "Tier 5 - Depth"
	}
}

func appendSkipped(sb *strings.Builder, skipped []models.SkippedPosition) {
	if len(skipped) == 0 {
		return
	}
	sb.WriteString("\n*Skipped:*\n")
	for _, sk := range skipped {
		sb.WriteString(fmt.Sprintf("%s: %s\n", sk.Position, sk.Reason))
	}
}
