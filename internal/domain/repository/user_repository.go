package repository

import (
	"context"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Loaded users always carry their Following set.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Following(ctx context.Context, userID string) ([]int64, error)
}
