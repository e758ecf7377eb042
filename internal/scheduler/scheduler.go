package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"fantasywar/internal/service"
)

const watchTopN = 15

// Scheduler recomputes the season report on a weekly cadence and pushes the
// leaderboard out through sendMessage. An optional cron expression replaces
// the default Tuesday-morning schedule.
type Scheduler struct {
	s           gocron.Scheduler
	warService  *service.WARService
	sendMessage func(string) error
	season      int
	cronExpr    string
}

func NewScheduler(warService *service.WARService, sendMessage func(string) error, season int, cronExpr string) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	if cronExpr != "" {
		if _, err := cron.ParseStandard(cronExpr); err != nil {
			return nil, fmt.Errorf("invalid watch cron expression %q: %w", cronExpr, err)
		}
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		warService:  warService,
		sendMessage: sendMessage,
		season:      season,
		cronExpr:    cronExpr,
	}, nil
}

func (s *Scheduler) Start() error {
	definition := gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0)))
	if s.cronExpr != "" {
		definition = gocron.CronJob(s.cronExpr, false)
	}

	// Weekly WAR leaderboard after Monday night stats land
	_, err := s.s.NewJob(
		definition,
		gocron.NewTask(s.sendLeaderboard),
	)
	if err != nil {
		return fmt.Errorf("failed to create leaderboard job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendLeaderboard() {
	report, err := s.warService.WARReport(s.season, nil, watchTopN)
	if err != nil {
		slog.Error("Error computing weekly leaderboard", "season", s.season, "error", err)
		return
	}

	if err := s.sendMessage(report); err != nil {
		slog.Error("Error sending leaderboard", "error", err)
	}
}
