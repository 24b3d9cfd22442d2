package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminPassword seeds the credential on first use. The stored value is
// always a bcrypt hash, never the password itself.
const DefaultAdminPassword = "ugm-admin-2024"

const minPasswordLength = 8

// CredentialStore holds the single shared admin credential under a fixed key.
// Two states: uninitialized (key absent) and set; the first read transitions
// to set by hashing and storing the default password.
type CredentialStore struct {
	store *Store
}

// NewCredentialStore creates the admin credential accessor.
func NewCredentialStore(store *Store) *CredentialStore {
	return &CredentialStore{store: store}
}

// EnsureInitialized hashes and stores the default password if no credential
// exists yet. Safe to call repeatedly; concurrent first calls both write the
// same default, which is benign.
func (c *CredentialStore) EnsureInitialized(ctx context.Context) error {
	n, err := c.store.client.Exists(ctx, KeyAdminPassword).Result()
	if err != nil {
		return fmt.Errorf("failed to check admin credential: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	if err := c.store.client.Set(ctx, KeyAdminPassword, hash, 0).Err(); err != nil {
		return fmt.Errorf("failed to initialize admin credential: %w", err)
	}
	return nil
}

// Verify checks a candidate password against the stored hash, lazily
// initializing the credential first. Mismatch is ErrUnauthorized.
func (c *CredentialStore) Verify(ctx context.Context, candidate string) error {
	if err := c.EnsureInitialized(ctx); err != nil {
		return err
	}
	hash, err := c.store.client.Get(ctx, KeyAdminPassword).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to read admin credential: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(candidate)); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// Change replaces the credential after verifying the current password.
// The new password must be at least 8 characters and differ from the current
// one; violations are ErrValidation, a wrong current password ErrUnauthorized.
func (c *CredentialStore) Change(ctx context.Context, current, newPassword string) error {
	if err := c.Verify(ctx, current); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: new password must be at least 8 characters", ErrValidation)
	}
	if newPassword == current {
		return fmt.Errorf("%w: new password must differ from the current password", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new admin password: %w", err)
	}
	if err := c.store.client.Set(ctx, KeyAdminPassword, hash, 0).Err(); err != nil {
		return fmt.Errorf("failed to save admin credential: %w", err)
	}
	return nil
}
