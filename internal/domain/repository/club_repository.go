package repository

import (
	"context"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

// ClubRepository defines the interface for club-related database operations.
//
// ToggleFollow flips the (user, club) membership bit and adjusts the club's
// follower count in one transaction, returning the user's updated following
// set. Implementations must guarantee the count changes only when the
// membership row actually changed, so concurrent toggles never drift.
type ClubRepository interface {
	Create(ctx context.Context, c *entity.Club) error
	GetByClubID(ctx context.Context, clubID int64) (*entity.Club, error)
	List(ctx context.Context) ([]*entity.Club, error)
	ToggleFollow(ctx context.Context, userID string, clubID int64) ([]int64, error)
}
