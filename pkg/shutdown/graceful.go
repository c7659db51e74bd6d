package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful waits for one of signals and then stops s within timeout.
// It returns without stopping s if ctx ends first.
func Graceful(ctx context.Context, signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) {
	sigCtx, stop := signal.NotifyContext(ctx, signals...)
	defer stop()

	stopOn(ctx, sigCtx, s, timeout, log)
}

func stopOn(parent, trigger context.Context, s Stoppable, timeout time.Duration, log *logging.Logger) {
	<-trigger.Done()
	if parent.Err() != nil {
		return
	}
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
}
