package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fantasywar/internal/bot"
	"fantasywar/internal/config"
	"fantasywar/internal/data"
	"fantasywar/internal/repository/memory"
	"fantasywar/internal/scheduler"
	"fantasywar/internal/scoring"
	"fantasywar/internal/service"
	"fantasywar/internal/warcalc"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	lg := cfg.BuildLeague()
	if err := lg.Validate(); err != nil {
		return fmt.Errorf("invalid league configuration: %w", err)
	}

	client := data.NewClient(cfg.Data.BaseURL)
	cache, err := data.NewFileCache(cfg.Data.CacheDir, cfg.Data.CacheTTL)
	if err != nil {
		return fmt.Errorf("error creating stats cache: %w", err)
	}
	loader := data.NewLoader(client, cache, scoring.Default())

	repo := memory.NewRepository()
	auction := warcalc.AuctionConfig{Budget: cfg.Auction.Budget, Floor: cfg.Auction.Floor}
	warService := service.NewWARService(loader, repo, lg, auction)

	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	command := os.Args[1]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	season := flags.Int("season", defaultSeason(), "NFL season to evaluate")
	weeksArg := flags.String("weeks", "", "comma separated week filter, e.g. 1,2,3")
	top := flags.Int("top", 50, "number of players to show")
	output := flags.String("output", "", "write CSV to this path instead of printing a report")

	args := os.Args[2:]
	var playerName string
	if command == "player" {
		if len(args) == 0 || strings.HasPrefix(args[0], "-") {
			printUsage()
			return fmt.Errorf("player command requires a name")
		}
		playerName = args[0]
		args = args[1:]
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	weeks, err := parseWeeks(*weeksArg)
	if err != nil {
		return err
	}

	switch command {
	case "war":
		return runWAR(warService, *season, weeks, *top, *output)
	case "auction":
		return runAuction(warService, *season, weeks, *top, *output)
	case "player":
		return runPlayer(warService, playerName, *season, weeks)
	case "baselines":
		return runBaselines(warService, *season, weeks)
	case "watch":
		return runWatch(cfg, warService, *season)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runWAR(s *service.WARService, season int, weeks []int, top int, output string) error {
	if output != "" {
		report, err := s.Report(season, weeks)
		if err != nil {
			return err
		}
		return writeCSV(output, func(f *os.File) error {
			return service.ExportWAR(f, report)
		})
	}

	report, err := s.WARReport(season, weeks, top)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

func runAuction(s *service.WARService, season int, weeks []int, top int, output string) error {
	if output != "" {
		values, err := s.AuctionValues(season, weeks)
		if err != nil {
			return err
		}
		return writeCSV(output, func(f *os.File) error {
			return service.ExportAuction(f, values)
		})
	}

	report, err := s.AuctionReport(season, weeks, top)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

func runPlayer(s *service.WARService, name string, season int, weeks []int) error {
	result, err := s.FindPlayer(name, season, weeks)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func runBaselines(s *service.WARService, season int, weeks []int) error {
	summary, err := s.PositionSummary(season, weeks)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

func runWatch(cfg *config.Config, warService *service.WARService, season int) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("watch mode requires TELEGRAM_TOKEN")
	}

	telegramBot, err := bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.ChatID, warService, season)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(warService, telegramBot.SendMessage, season, cfg.Watch.Cron)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")
	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	slog.Info("Wrote CSV", "path", path)
	return nil
}

func parseWeeks(arg string) ([]int, error) {
	if arg == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	weeks := make([]int, 0, len(parts))
	for _, p := range parts {
		week, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid week %q: %w", p, err)
		}
		weeks = append(weeks, week)
	}
	return weeks, nil
}

// defaultSeason picks the most recent season with published stats. Before
// September the current year's season has not started yet.
func defaultSeason() int {
	now := time.Now()
	if now.Month() < time.September {
		return now.Year() - 1
	}
	return now.Year()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: fantasywar <command> [flags]

Commands:
  war        WAR leaderboard for a season
  auction    Auction dollar values for a season
  player     Look up one player by name
  baselines  Positional scoring baselines and replacement levels
  watch      Run the Telegram bot with a weekly leaderboard job

Flags:
  -season N     NFL season (default: most recent completed)
  -weeks 1,2,3  restrict to specific weeks
  -top N        number of players to print
  -output PATH  write CSV instead of a report`)
}
