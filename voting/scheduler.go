package voting

import (
	"context"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/robfig/cron/v3"
	"time"
)

// ResultsScheduler recomputes results on a cron schedule, next to the
// on-demand admin trigger.
type ResultsScheduler struct {
	cron    *cron.Cron
	admin   *AdminService
	timeout time.Duration
}

func NewResultsScheduler(admin *AdminService, schedule string, timeout time.Duration) (*ResultsScheduler, error) {
	s := &ResultsScheduler{
		cron:    cron.New(),
		admin:   admin,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("%w: results schedule %q: %v", ErrInvalidConfiguration, schedule, err)
	}
	return s, nil
}

func (s *ResultsScheduler) Start() {
	logging.Log.Info("RESULTS: starting scheduled aggregation")
	s.cron.Start()
}

// Stop waits for a running aggregation to finish.
func (s *ResultsScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *ResultsScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.admin.RecomputeResults(ctx); err != nil {
		logging.Log.Errorf("RESULTS: scheduled aggregation failed: %v", err)
	}
}
