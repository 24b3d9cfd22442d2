package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugmchurch/steeple/internal/content"
)

func newSermonRepo(t *testing.T) (*Repository[content.Sermon, *content.Sermon], *Store) {
	t.Helper()
	store, _ := newTestStore(t)
	repo := NewRepository(store, RepositoryConfig[content.Sermon, *content.Sermon]{
		Kind: KindSermon,
		Less: func(a, b *content.Sermon) bool {
			return content.CompareDates(a.Date, b.Date) > 0
		},
		Now:   fixedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		NewID: seqIDs(),
	})
	return repo, store
}

func TestRepositoryCreateStampsAndIndexes(t *testing.T) {
	repo, store := newSermonRepo(t)
	ctx := context.Background()

	s := &content.Sermon{Title: "Grace", Date: "2024-05-12"}
	// Caller-supplied stamps must not survive.
	s.ID = "forged"
	s.CreatedAt = "bogus"

	require.NoError(t, repo.Create(ctx, s))

	assert.Equal(t, "id-1", s.ID)
	assert.Equal(t, "2024-06-01T12:00:01.000Z", s.CreatedAt)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	ids, err := store.client.LRange(ctx, IndexKey(KindSermon), 0, -1).Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1"}, ids)

	got, err := repo.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Title)
}

func TestRepositoryGetNotFound(t *testing.T) {
	repo, _ := newSermonRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryListSortsByDateDesc(t *testing.T) {
	repo, _ := newSermonRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-10", "2024-03-05", "2024-02-20"} {
		require.NoError(t, repo.Create(ctx, &content.Sermon{Title: date, Date: date}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03-05", list[0].Date)
	assert.Equal(t, "2024-02-20", list[1].Date)
	assert.Equal(t, "2024-01-10", list[2].Date)
}

func TestRepositoryListEmptyIndex(t *testing.T) {
	repo, _ := newSermonRepo(t)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepositoryListSkipsDanglingIndexEntries(t *testing.T) {
	repo, store := newSermonRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &content.Sermon{Title: "kept", Date: "2024-01-01"}))
	require.NoError(t, repo.Create(ctx, &content.Sermon{Title: "lost", Date: "2024-01-02"}))
	// Simulate a record that vanished while its index entry survived.
	require.NoError(t, store.client.Del(ctx, RecordKey(KindSermon, "id-2")).Err())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "kept", list[0].Title)
}

func TestRepositoryUpdateMergesAndProtectsStamps(t *testing.T) {
	repo, _ := newSermonRepo(t)
	ctx := context.Background()

	s := &content.Sermon{Title: "Before", Speaker: "Pastor A", Date: "2024-01-01"}
	require.NoError(t, repo.Create(ctx, s))
	created := s.CreatedAt

	patch := map[string]json.RawMessage{
		"title":     json.RawMessage(`"After"`),
		"id":        json.RawMessage(`"forged"`),
		"createdAt": json.RawMessage(`"forged"`),
	}
	got, err := repo.Update(ctx, s.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "Pastor A", got.Speaker, "untouched fields survive the merge")
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.Greater(t, got.UpdatedAt, created)
}

func TestRepositoryUpdateNotFound(t *testing.T) {
	repo, _ := newSermonRepo(t)

	_, err := repo.Update(context.Background(), "nope", map[string]json.RawMessage{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryUpdateRejectsMistypedFields(t *testing.T) {
	repo, _ := newSermonRepo(t)
	ctx := context.Background()

	s := &content.Sermon{Title: "x", Date: "2024-01-01"}
	require.NoError(t, repo.Create(ctx, s))

	_, err := repo.Update(ctx, s.ID, map[string]json.RawMessage{
		"title": json.RawMessage(`12345`),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRepositoryDeleteRemovesRecordAndIndexEntry(t *testing.T) {
	repo, store := newSermonRepo(t)
	ctx := context.Background()

	s := &content.Sermon{Title: "x", Date: "2024-01-01"}
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err := store.client.LRange(ctx, IndexKey(KindSermon), 0, -1).Result()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	repo, _ := newSermonRepo(t)

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

type flakyRemover struct {
	calls []string
	err   error
}

func (f *flakyRemover) Remove(_ context.Context, url string) error {
	f.calls = append(f.calls, url)
	return f.err
}

func TestRepositoryDeleteAssetRemovalIsBestEffort(t *testing.T) {
	store, _ := newTestStore(t)
	remover := &flakyRemover{err: assert.AnError}
	repo := NewRepository(store, RepositoryConfig[content.Resource, *content.Resource]{
		Kind:  KindResource,
		Asset: func(r *content.Resource) string { return r.FileURL },
		Blobs: remover,
		NewID: seqIDs(),
	})
	ctx := context.Background()

	r := &content.Resource{Title: "guide", FileURL: "https://files.example.com/bucket/guide.pdf"}
	require.NoError(t, repo.Create(ctx, r))

	// Removal fails but the delete still goes through.
	require.NoError(t, repo.Delete(ctx, r.ID))
	assert.Equal(t, []string{"https://files.example.com/bucket/guide.pdf"}, remover.calls)

	_, err := repo.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositoryMutateIncrementsCounter(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRepository(store, RepositoryConfig[content.Resource, *content.Resource]{
		Kind:  KindResource,
		NewID: seqIDs(),
	})
	ctx := context.Background()

	r := &content.Resource{Title: "guide"}
	require.NoError(t, repo.Create(ctx, r))
	created := r.UpdatedAt

	for i := 0; i < 3; i++ {
		_, err := repo.Mutate(ctx, r.ID, func(res *content.Resource) {
			res.DownloadCount++
		})
		require.NoError(t, err)
	}

	got, err := repo.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.DownloadCount)
	assert.Equal(t, created, got.UpdatedAt, "counter bumps do not touch updatedAt")
}

func TestRepositoryMutateNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewRepository(store, RepositoryConfig[content.Resource, *content.Resource]{Kind: KindResource})

	_, err := repo.Mutate(context.Background(), "nope", func(*content.Resource) {})
	assert.ErrorIs(t, err, ErrNotFound)
}
