package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/ugmchurch/steeple/internal/logger"
	"github.com/ugmchurch/steeple/internal/ministry"
)

// MinistryReloader handles periodic reloading of the ministry unit catalog
type MinistryReloader struct {
	loader        *ministry.Loader
	catalog       *ministry.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewMinistryReloader creates a new ministry catalog reloader
func NewMinistryReloader(
	ministryFile string,
	catalog *ministry.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *MinistryReloader {
	return &MinistryReloader{
		loader:        ministry.NewLoader(ministryFile),
		catalog:       catalog,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (mr *MinistryReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := mr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(mr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload ministry catalog",
						logger.Error(err))
				}
			case <-mr.manualTrigger:
				mr.logger.Info("manual catalog reload triggered")
				if err := mr.Reload(ctx); err != nil {
					mr.logger.Error("failed to reload ministry catalog",
						logger.Error(err))
				}
			case <-mr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (mr *MinistryReloader) Stop() {
	close(mr.stopCh)
}

// Reload loads ministries.yaml and swaps the catalog contents. A load failure
// leaves the previous catalog in place.
func (mr *MinistryReloader) Reload(_ context.Context) error {
	mr.logger.Info("reloading ministry catalog")

	units, err := mr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load ministry catalog: %w", err)
	}

	mr.catalog.Update(units)
	mr.logger.Info("ministry catalog reloaded",
		logger.Int("units", len(units)))
	return nil
}
