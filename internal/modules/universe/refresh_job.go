package universe

import (
	"context"
	"time"
)

// RefreshJob keeps the quote cache warm on a schedule
type RefreshJob struct {
	service *Service
	timeout time.Duration
}

// NewRefreshJob creates a new quote refresh job
func NewRefreshJob(service *Service) *RefreshJob {
	return &RefreshJob{
		service: service,
		timeout: 2 * time.Minute,
	}
}

// Name returns the job name for scheduler logging
func (j *RefreshJob) Name() string {
	return "quote_refresh"
}

// Run refreshes the tracked quote batch
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	return j.service.RefreshQuotes(ctx)
}
