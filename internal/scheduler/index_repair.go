package scheduler

import (
	"context"
	"time"

	"github.com/ugmchurch/steeple/internal/logger"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

// repairKinds lists every record kind whose index list gets reconciled.
var repairKinds = []string{
	redisstore.KindSermon,
	redisstore.KindResource,
	redisstore.KindEvent,
	redisstore.KindVolunteer,
}

// IndexRepairer periodically reconciles each kind's index list with the
// records actually stored. Creates and deletes touch two keys without a
// transaction, so a crash between the writes leaves either an unindexed
// record or a dangling index entry; the sweeper heals both.
type IndexRepairer struct {
	store    *redisstore.Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewIndexRepairer creates a new index repair sweeper
func NewIndexRepairer(
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
) *IndexRepairer {
	return &IndexRepairer{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic repair process
func (ir *IndexRepairer) Start(ctx context.Context) error {
	// Run immediately on start
	if err := ir.Sweep(ctx); err != nil {
		ir.logger.Warn("initial index repair failed",
			logger.Error(err))
	}

	// Start periodic sweeps
	ticker := time.NewTicker(ir.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ir.Sweep(ctx); err != nil {
					ir.logger.Error("index repair failed",
						logger.Error(err))
				}
			case <-ir.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper
func (ir *IndexRepairer) Stop() {
	close(ir.stopCh)
}

// Sweep reconciles every kind once.
func (ir *IndexRepairer) Sweep(ctx context.Context) error {
	totalRestored, totalDropped := 0, 0

	for _, kind := range repairKinds {
		res, err := ir.store.RepairIndex(ctx, kind)
		if err != nil {
			return err
		}
		if res.Restored > 0 || res.Dropped > 0 {
			ir.logger.Info("repaired index",
				logger.String("kind", kind),
				logger.Int("restored", res.Restored),
				logger.Int("dropped", res.Dropped))
		}
		totalRestored += res.Restored
		totalDropped += res.Dropped
	}

	if totalRestored == 0 && totalDropped == 0 {
		ir.logger.Debug("indexes healthy, nothing to repair")
	}
	return nil
}
