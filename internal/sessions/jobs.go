package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seatly/pkg/logger"
)

// Janitor periodically releases the parsed maps of expired sessions
type Janitor struct {
	service  Service
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewJanitor(service Service, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		service:  service,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called or ctx is cancelled
func (j *Janitor) Start(ctx context.Context) {
	go j.run(ctx)
}

func (j *Janitor) Stop() {
	j.stopOnce.Do(func() { close(j.done) })
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := j.service.ExpireSessions(ctx); n > 0 {
				logger.GetDefault().Info("Expired seat map sessions released", slog.Int("count", n))
			}
		case <-j.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
