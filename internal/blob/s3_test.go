package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"plain key", "https://files.example.com/uploads/sermon-123.mp4", "sermon-123.mp4", false},
		{"trailing slash trimmed", "https://files.example.com/uploads/guide.pdf/", "guide.pdf", false},
		{"bucket-style path", "https://s3.example.com/media/deep/nested/video.mp4", "video.mp4", false},
		{"no path", "https://files.example.com", "", true},
		{"unparseable", "://not-a-url", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectKey(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRemoverDisabledWithoutBucket(t *testing.T) {
	r, err := NewRemover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Nil(t, r)
}
