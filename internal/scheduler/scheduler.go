package scheduler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

type ReloadFunc func(ctx context.Context) error

// Run calls reload once and then on every tick of interval until ctx is done.
func Run(ctx context.Context, clk clock.Clock, interval time.Duration, reload ReloadFunc) {
	ticker := clk.Ticker(interval)
	defer ticker.Stop()

	runUpdate(ctx, clk, reload)

	for {
		select {
		case <-ticker.C:
			runUpdate(ctx, clk, reload)
		case <-ctx.Done():
			return
		}
	}
}

func runUpdate(ctx context.Context, clk clock.Clock, reload ReloadFunc) {
	if err := reload(ctx); err != nil {
		logrus.WithError(err).Error("dictionary reload failed")
		return
	}

	logrus.Println("Last updated at:", clk.Now())
}
