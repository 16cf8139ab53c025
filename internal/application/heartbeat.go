package application

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/slvrtrn/envfall/internal/config"
)

// heartbeat periodically logs that the service is alive together with the
// configuration values it runs under. It reads the shared Config from a
// separate goroutine, exercising the configuration's concurrent read path.
type heartbeat struct {
	interval time.Duration
	logger   *zap.Logger
	cfg      config.Config

	done     chan struct{}
	stopOnce sync.Once
}

func newHeartbeat(cfg config.Config, logger *zap.Logger, interval time.Duration) *heartbeat {
	return &heartbeat{
		interval: interval,
		logger:   logger,
		cfg:      cfg,
		done:     make(chan struct{}),
	}
}

func (h *heartbeat) run() {
	started := time.Now()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			h.logger.Info("heartbeat stopped")
			return
		case <-ticker.C:
			h.logger.Info("service heartbeat",
				zap.String("app_env", string(h.cfg.AppEnv)),
				zap.Uint64("magic_number", h.cfg.MagicNumber),
				zap.Duration("uptime", time.Since(started)),
			)
		}
	}
}

// stop signals the heartbeat loop to exit. Safe to call more than once and
// before run has started.
func (h *heartbeat) stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}
