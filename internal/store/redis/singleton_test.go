package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugmchurch/steeple/internal/content"
)

func TestSingletonGetReturnsDefaultWhenUnset(t *testing.T) {
	store, _ := newTestStore(t)
	s := NewSingleton(store, KeyLiveStream, content.DefaultLiveStreamSettings)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, got.IsLive)
	assert.Equal(t, content.DefaultScheduleText, got.ScheduleText)
}

func TestSingletonSetThenGet(t *testing.T) {
	store, _ := newTestStore(t)
	s := NewSingleton(store, KeyLiveStream, content.DefaultLiveStreamSettings)
	ctx := context.Background()

	want := &content.LiveStreamSettings{
		IsLive:       true,
		YoutubeURL:   "https://youtube.com/watch?v=abc",
		ScheduleText: "Live now!",
	}
	require.NoError(t, s.Set(ctx, want))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSingletonOverwrite(t *testing.T) {
	store, _ := newTestStore(t)
	s := NewSingleton(store, KeyHomepageEvent, content.DefaultHomepageEvent)
	ctx := context.Background()

	first := content.DefaultHomepageEvent()
	first.Title = "First"
	require.NoError(t, s.Set(ctx, first))

	second := content.DefaultHomepageEvent()
	second.Title = "Second"
	require.NoError(t, s.Set(ctx, second))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}
