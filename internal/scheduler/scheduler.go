package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type prober interface {
	Probe(ctx context.Context) error
}

// Scheduler probes the storage on a fixed interval and logs when its
// reachability changes.
type Scheduler struct {
	health   prober
	interval time.Duration
	logger   logger.Logger
	healthy  bool
}

func New(
	health prober,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		health:   health,
		interval: interval,
		logger:   logger,
		healthy:  true,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	err := s.health.Probe(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if s.healthy {
			s.logger.Error("storage unreachable",
				logger.String("error", err.Error()),
			)
		}
		s.healthy = false
		return
	}

	if !s.healthy {
		s.logger.Info("storage reachable again")
	}
	s.healthy = true
	s.logger.Debug("health check OK")
}
