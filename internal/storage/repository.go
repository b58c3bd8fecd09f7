package storage

import (
	"context"
	"errors"

	"NOCTIMIND_BACK-END/internal/models"
)

// ErrNotFound marks a lookup that matched no row for that user. Callers
// translate it to an "absent" response rather than a failure.
var ErrNotFound = errors.New("not found")

// ErrDuplicate marks an insert that collided with an existing unique row,
// such as two concurrent signups for the same email.
var ErrDuplicate = errors.New("already exists")

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// DreamRepository persists dream records, always scoped by owning user.
type DreamRepository interface {
	Insert(ctx context.Context, dream *models.Dream) (int64, error)
	FetchAll(ctx context.Context, userEmail string) ([]models.Dream, error)
	FetchOne(ctx context.Context, userEmail string, id int64) (*models.Dream, error)
	DeleteOne(ctx context.Context, userEmail string, id int64) error
	DeleteAllForUser(ctx context.Context, userEmail string) error
}
