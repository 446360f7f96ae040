package repository

import (
	"context"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

// EventRepository defines the interface for event-related database operations.
// Feed queries return only LIVE/UPCOMING events, joined with club metadata
// (left join, orphan events included) and sorted ascending by date with a
// stable tiebreak on insertion order.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	Feed(ctx context.Context) ([]*entity.EnrichedEvent, error)
	FeedByClub(ctx context.Context, clubID int64) ([]*entity.EnrichedEvent, error)
}
