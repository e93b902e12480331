package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gatekeeper/internal/models"
	"github.com/iudanet/gatekeeper/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func testUser(email string) *models.User {
	return &models.User{
		Name:         "Ann",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         models.RoleUser,
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	created, err := s.CreateUser(ctx, testUser("ann@x.com"))
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	// Verify user was created
	retrieved, err := s.GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, "Ann", retrieved.Name)
	assert.Equal(t, "ann@x.com", retrieved.Email)
	assert.Equal(t, created.PasswordHash, retrieved.PasswordHash)
	assert.Equal(t, models.RoleUser, retrieved.Role)
}

func TestUserStorage_CreateUser_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first, err := s.CreateUser(ctx, testUser("first@x.com"))
	require.NoError(t, err)

	second, err := s.CreateUser(ctx, testUser("second@x.com"))
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.CreateUser(ctx, testUser("duplicate@x.com"))
	require.NoError(t, err)

	// Второй insert с тем же email бьется об уникальный индекс
	_, err = s.CreateUser(ctx, testUser("duplicate@x.com"))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	// Строка осталась одна
	var count int
	err = s.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE email = ?", "duplicate@x.com").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserStorage_GetUserByEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetUserByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByEmail_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.CreateUser(ctx, testUser("Ann@X.com"))
	require.NoError(t, err)

	// Email сравнивается как сохранен, без нормализации
	_, err = s.GetUserByEmail(ctx, "ann@x.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	retrieved, err := s.GetUserByEmail(ctx, "Ann@X.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann@X.com", retrieved.Email)
}
