package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialLazyInitStoresHashNotPlaintext(t *testing.T) {
	store, _ := newTestStore(t)
	cred := NewCredentialStore(store)
	ctx := context.Background()

	require.NoError(t, cred.EnsureInitialized(ctx))

	raw, err := store.client.Get(ctx, KeyAdminPassword).Bytes()
	require.NoError(t, err)
	assert.NotEqual(t, DefaultAdminPassword, string(raw))
	assert.NoError(t, bcrypt.CompareHashAndPassword(raw, []byte(DefaultAdminPassword)))
}

func TestCredentialInitDoesNotOverwriteExisting(t *testing.T) {
	store, _ := newTestStore(t)
	cred := NewCredentialStore(store)
	ctx := context.Background()

	require.NoError(t, cred.EnsureInitialized(ctx))
	require.NoError(t, cred.Change(ctx, DefaultAdminPassword, "new-password-1"))
	require.NoError(t, cred.EnsureInitialized(ctx))

	assert.NoError(t, cred.Verify(ctx, "new-password-1"))
	assert.ErrorIs(t, cred.Verify(ctx, DefaultAdminPassword), ErrUnauthorized)
}

func TestCredentialVerify(t *testing.T) {
	store, _ := newTestStore(t)
	cred := NewCredentialStore(store)
	ctx := context.Background()

	// First Verify initializes the credential itself.
	assert.NoError(t, cred.Verify(ctx, DefaultAdminPassword))
	assert.ErrorIs(t, cred.Verify(ctx, "wrong"), ErrUnauthorized)
}

func TestCredentialChange(t *testing.T) {
	store, _ := newTestStore(t)
	cred := NewCredentialStore(store)
	ctx := context.Background()

	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"wrong current password", "wrong", "whatever-else", ErrUnauthorized},
		{"too short", DefaultAdminPassword, "short", ErrValidation},
		{"same as current", DefaultAdminPassword, DefaultAdminPassword, ErrValidation},
		{"accepted", DefaultAdminPassword, "a-much-better-one", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cred.Change(ctx, tt.current, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cred.Verify(ctx, tt.next))
		})
	}
}
