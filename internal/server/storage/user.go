package storage

import (
	"context"
	"io"

	"github.com/iudanet/gatekeeper/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	io.Closer

	// CreateUser creates a new user and fills in the generated ID
	// and timestamps. Returns ErrUserAlreadyExists if the email is
	// already taken; the unique index on email is the only guard
	// against concurrent duplicate sign-ups.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail retrieves user by email (compared as stored,
	// no normalization). Returns ErrUserNotFound if user doesn't exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
