package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugmchurch/steeple/internal/content"
)

func newVolunteerStore(t *testing.T) *VolunteerStore {
	t.Helper()
	store, _ := newTestStore(t)
	return NewVolunteerStore(store, nil,
		fixedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)), seqIDs())
}

func validApplication() *content.Application {
	return &content.Application{
		FullName:     "Ada Okafor",
		Email:        "ada@example.com",
		Phone:        "+2348012345678",
		SelectedUnit: "Choir",
	}
}

func TestVolunteerSaveAssignsIDAndStamp(t *testing.T) {
	vs := newVolunteerStore(t)
	ctx := context.Background()

	app := validApplication()
	require.NoError(t, vs.Save(ctx, app))

	assert.Equal(t, "id-1", app.ID)
	assert.Equal(t, "2024-06-01T12:00:01.000Z", app.SubmittedAt)

	got, err := vs.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Okafor", got.FullName)
}

func TestVolunteerSaveRejectsMissingRequired(t *testing.T) {
	vs := newVolunteerStore(t)
	ctx := context.Background()

	app := validApplication()
	app.Email = ""
	app.Phone = ""

	err := vs.Save(ctx, app)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "phone")

	list, err := vs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is stored on validation failure")
}

func TestVolunteerListNewestFirst(t *testing.T) {
	vs := newVolunteerStore(t)
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		app := validApplication()
		app.FullName = name
		require.NoError(t, vs.Save(ctx, app))
	}

	list, err := vs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Third", list[0].FullName)
	assert.Equal(t, "Second", list[1].FullName)
	assert.Equal(t, "First", list[2].FullName)
}

func TestVolunteerGetNotFound(t *testing.T) {
	vs := newVolunteerStore(t)

	_, err := vs.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
