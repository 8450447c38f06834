package repository

import (
	"context"
	"errors"

	"github.com/grigorev/user-directory/internal/domain/entity"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the store contract for account records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List returns non-deleted accounts ordered by id ascending.
	List(ctx context.Context) ([]entity.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
	// UpdateStatus applies one bulk status transition and reports the
	// number of rows that actually changed. Ids already in the target
	// status and unknown ids are skipped.
	UpdateStatus(ctx context.Context, ids []int64, status entity.Status) (int64, error)
}
