package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/logger"
)

// VolunteerStore persists submitted volunteer applications. Applications are
// write-once: Save is the only mutation, there is no update or delete path.
type VolunteerStore struct {
	store *Store
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

// NewVolunteerStore creates the application store. now and newID default to
// the real clock and random ids; tests override them.
func NewVolunteerStore(store *Store, log logger.Logger, now func() time.Time, newID func() string) *VolunteerStore {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &VolunteerStore{store: store, log: log, now: now, newID: newID}
}

// Save validates required fields, assigns id and submission stamp, writes the
// record and appends it to the index. Missing required fields are rejected as
// ErrValidation before anything is stored.
func (v *VolunteerStore) Save(ctx context.Context, app *content.Application) error {
	if missing := app.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	app.ID = v.newID()
	app.SubmittedAt = content.Timestamp(v.now())

	if err := v.store.setJSON(ctx, RecordKey(KindVolunteer, app.ID), app); err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	if err := v.store.client.RPush(ctx, IndexKey(KindVolunteer), app.ID).Err(); err != nil {
		return fmt.Errorf("failed to index application %s: %w", app.ID, err)
	}
	return nil
}

// Get reads one application. Absence is ErrNotFound.
func (v *VolunteerStore) Get(ctx context.Context, id string) (*content.Application, error) {
	var app content.Application
	ok, err := v.store.getJSON(ctx, RecordKey(KindVolunteer, id), &app)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

// List returns all applications, newest submission first. Indexed ids whose
// record is gone are skipped.
func (v *VolunteerStore) List(ctx context.Context) ([]*content.Application, error) {
	ids, err := v.store.client.LRange(ctx, IndexKey(KindVolunteer), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read application index: %w", err)
	}
	if len(ids) == 0 {
		return []*content.Application{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RecordKey(KindVolunteer, id)
	}
	raws, err := v.store.mgetRaw(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	apps := make([]*content.Application, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var app content.Application
		if err := json.Unmarshal(raw, &app); err != nil {
			if v.log != nil {
				v.log.Warn("skipping undecodable application",
					logger.String("key", keys[i]),
					logger.Error(err))
			}
			continue
		}
		apps = append(apps, &app)
	}

	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].SubmittedAt > apps[j].SubmittedAt
	})
	return apps, nil
}
