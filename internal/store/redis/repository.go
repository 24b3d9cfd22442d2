package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/logger"
)

// casMaxRetries bounds the optimistic retry loop in Mutate.
const casMaxRetries = 16

// Entity constrains repository records to pointer types carrying the shared
// identity/lifecycle stamps.
type Entity[T any] interface {
	*T
	Metadata() *content.Base
}

// AssetRemover removes an externally stored binary asset (sermon video,
// resource file) given the URL recorded on the entity.
type AssetRemover interface {
	Remove(ctx context.Context, fileURL string) error
}

// RepositoryConfig configures one entity kind's repository.
type RepositoryConfig[T any, PT Entity[T]] struct {
	Kind  string                // record key prefix, e.g. "sermon"
	Less  func(a, b PT) bool    // listing sort order for this kind
	Asset func(PT) string       // optional: URL of the record's stored media
	Blobs AssetRemover          // optional: best-effort media cleanup on delete
	Log   logger.Logger
	Now   func() time.Time // injectable for tests
	NewID func() string    // injectable for tests
}

// Repository maintains the record-store + index-list invariant for one entity
// kind. Records are JSON documents under "<kind>:<id>"; the index is a Redis
// list under "<kind>:index" so that appends (RPUSH) and removals (LREM) are
// atomic and concurrent creates cannot lose each other's ids. The two-key
// create/delete sequences themselves are still not transactional; List
// tolerates indexed-but-absent ids by skipping them, and the repair sweeper
// reconciles the rest.
type Repository[T any, PT Entity[T]] struct {
	store *Store
	kind  string
	less  func(a, b PT) bool
	asset func(PT) string
	blobs AssetRemover
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

// NewRepository creates a repository for one entity kind.
func NewRepository[T any, PT Entity[T]](store *Store, cfg RepositoryConfig[T, PT]) *Repository[T, PT] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Repository[T, PT]{
		store: store,
		kind:  cfg.Kind,
		less:  cfg.Less,
		asset: cfg.Asset,
		blobs: cfg.Blobs,
		log:   cfg.Log,
		now:   cfg.Now,
		newID: cfg.NewID,
	}
}

// Create assigns a fresh id, stamps createdAt/updatedAt (equal on creation),
// writes the record, then appends the id to the index. Server-side stamps win
// over anything the caller put in those fields.
func (r *Repository[T, PT]) Create(ctx context.Context, rec PT) error {
	m := rec.Metadata()
	m.ID = r.newID()
	now := content.Timestamp(r.now())
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := r.store.setJSON(ctx, RecordKey(r.kind, m.ID), rec); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	if err := r.store.client.RPush(ctx, IndexKey(r.kind), m.ID).Err(); err != nil {
		return fmt.Errorf("failed to index %s %s: %w", r.kind, m.ID, err)
	}
	return nil
}

// Get reads one record. Absence is reported as ErrNotFound.
func (r *Repository[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	var rec T
	ok, err := r.store.getJSON(ctx, RecordKey(r.kind, id), &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return PT(&rec), nil
}

// List enumerates the index, bulk-reads all records, skips ids whose record
// is absent, and returns the survivors in this kind's sort order. An empty or
// missing index yields an empty slice, never an error.
func (r *Repository[T, PT]) List(ctx context.Context) ([]PT, error) {
	ids, err := r.store.client.LRange(ctx, IndexKey(r.kind), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s index: %w", r.kind, err)
	}
	if len(ids) == 0 {
		return []PT{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RecordKey(r.kind, id)
	}
	raws, err := r.store.mgetRaw(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s records: %w", r.kind, err)
	}

	recs := make([]PT, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			// Indexed but absent: tolerated here, reconciled by the sweeper.
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			if r.log != nil {
				r.log.Warn("skipping undecodable record",
					logger.String("key", keys[i]),
					logger.Error(err))
			}
			continue
		}
		recs = append(recs, PT(&rec))
	}

	if r.less != nil {
		sort.SliceStable(recs, func(i, j int) bool { return r.less(recs[i], recs[j]) })
	}
	return recs, nil
}

// Update shallow-merges the caller's partial document over the stored record.
// id and createdAt are preserved, updatedAt is refreshed, the index is not
// touched. Absence is ErrNotFound.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, patch map[string]json.RawMessage) (PT, error) {
	key := RecordKey(r.kind, id)
	data, err := r.store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("failed to decode stored %s %s: %w", r.kind, id, err)
	}
	for k, v := range patch {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		merged[k] = v
	}
	stamp, _ := json.Marshal(content.Timestamp(r.now()))
	merged["updatedAt"] = stamp

	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to merge %s %s: %w", r.kind, id, err)
	}
	var rec T
	if err := json.Unmarshal(buf, &rec); err != nil {
		return nil, fmt.Errorf("%w: invalid fields for %s", ErrValidation, r.kind)
	}

	if err := r.store.setJSON(ctx, key, PT(&rec)); err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.kind, id, err)
	}
	return PT(&rec), nil
}

// Delete removes the record and then its index entry. When the record points
// at stored media, removal of that asset is attempted first, best effort:
// a failed asset removal never blocks the delete. Absence is ErrNotFound.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	rec, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if r.asset != nil && r.blobs != nil {
		if url := r.asset(rec); url != "" {
			if err := r.blobs.Remove(ctx, url); err != nil && r.log != nil {
				r.log.Warn("failed to remove stored media",
					logger.String("kind", r.kind),
					logger.String("id", id),
					logger.Error(err))
			}
		}
	}

	if err := r.store.client.Del(ctx, RecordKey(r.kind, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.kind, id, err)
	}
	if err := r.store.client.LRem(ctx, IndexKey(r.kind), 0, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex %s %s: %w", r.kind, id, err)
	}
	return nil
}

// Mutate applies a read-modify-write under WATCH with bounded optimistic
// retries, so concurrent mutations of the same record cannot lose updates.
// The apply function must be side-effect free; it may run more than once.
func (r *Repository[T, PT]) Mutate(ctx context.Context, id string, apply func(PT)) (PT, error) {
	key := RecordKey(r.kind, id)
	var out PT

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return err
		}
		var rec T
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("failed to decode stored %s %s: %w", r.kind, id, err)
		}
		p := PT(&rec)
		apply(p)
		buf, err := json.Marshal(p)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, buf, 0)
			return nil
		})
		if err == nil {
			out = p
		}
		return err
	}

	for i := 0; i < casMaxRetries; i++ {
		err := r.store.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%s %s: %w", r.kind, id, ErrConflict)
}
