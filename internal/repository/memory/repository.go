package memory

import (
	"sync"

	"fantasywar/internal/models"
)

// Repository keeps computed season reports in memory so repeated lookups
// (player search, auction conversion, scheduled sends) reuse one snapshot.
type Repository struct {
	reports map[int]*models.SeasonReport
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{reports: make(map[int]*models.SeasonReport)}
}

func (r *Repository) SaveReport(report *models.SeasonReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.Season] = report
}

func (r *Repository) GetReport(season int) *models.SeasonReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reports[season]
}
