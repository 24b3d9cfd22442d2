// Package notify delivers volunteer application notifications to external
// services. Deliveries are fire and forget: the submission response never
// waits on them and a failed delivery is logged, not surfaced.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/logger"
)

const deliverTimeout = 15 * time.Second

// Sink is one external notification channel.
type Sink interface {
	Name() string
	Configured() bool
	Deliver(ctx context.Context, app *content.Application) error
}

// Dispatcher fans a submitted application out to every configured sink in the
// background. Unconfigured sinks are skipped silently; failures are logged
// and swallowed.
type Dispatcher struct {
	sinks []Sink
	log   logger.Logger
	wg    sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given sinks.
func NewDispatcher(log logger.Logger, sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks, log: log}
}

// Dispatch starts a background delivery per configured sink and returns
// immediately.
func (d *Dispatcher) Dispatch(app *content.Application) {
	for _, sink := range d.sinks {
		if !sink.Configured() {
			d.log.Debug("notification sink not configured, skipping",
				logger.String("sink", sink.Name()))
			continue
		}
		d.wg.Add(1)
		go func(sink Sink) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			defer cancel()
			if err := sink.Deliver(ctx, app); err != nil {
				d.log.Warn("notification delivery failed",
					logger.String("sink", sink.Name()),
					logger.String("application", app.ID),
					logger.Error(err))
				return
			}
			d.log.Info("notification delivered",
				logger.String("sink", sink.Name()),
				logger.String("application", app.ID))
		}(sink)
	}
}

// Wait blocks until all in-flight deliveries finish. Called on shutdown so
// accepted submissions are not dropped mid-delivery.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
