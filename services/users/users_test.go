package users

import (
	models "Chipster/models/postgres"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := &models.User{Email: " Alice@Example.com ", Name: "Alice", PasswordHash: "hash"}
	require.NoError(t, store.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	err := store.Create(ctx, &models.User{Email: "ALICE@example.com", Name: "Other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := store.ByEmail(ctx, "alice@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = store.ByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = store.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = store.ByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
