package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	"github.com/pulseboard/pulseboard-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (club_id, title, description, icon, badge, date, time_display, location, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, e.ClubID, e.Title, e.Description, e.Icon, e.Badge, e.Date, e.TimeDisplay, e.Location, e.Color)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// feedQuery joins events with clubs on the external club id. LEFT JOIN keeps
// events whose club is gone; their club_name/category come back NULL and are
// coalesced to empty strings. Secondary sort on id keeps equal dates in
// insertion order.
const feedQuery = `
	SELECT e.id, e.club_id, e.title, e.description, e.icon, e.badge,
	       e.date, e.time_display, e.location, e.color, e.created_at, e.updated_at,
	       COALESCE(c.name, ''), COALESCE(c.category, '')
	FROM events e
	LEFT JOIN clubs c ON c.club_id = e.club_id
	WHERE e.badge IN ('LIVE', 'UPCOMING')`

func (r *EventRepository) Feed(ctx context.Context) ([]*entity.EnrichedEvent, error) {
	rows, err := r.pool.Query(ctx, feedQuery+`
	ORDER BY e.date ASC, e.id ASC`)
	if err != nil {
		return nil, err
	}
	return scanFeed(rows)
}

func (r *EventRepository) FeedByClub(ctx context.Context, clubID int64) ([]*entity.EnrichedEvent, error) {
	rows, err := r.pool.Query(ctx, feedQuery+`
	AND e.club_id = $1
	ORDER BY e.date ASC, e.id ASC`, clubID)
	if err != nil {
		return nil, err
	}
	return scanFeed(rows)
}

func scanFeed(rows pgx.Rows) ([]*entity.EnrichedEvent, error) {
	defer rows.Close()

	events := make([]*entity.EnrichedEvent, 0)
	for rows.Next() {
		ev := &entity.EnrichedEvent{}
		if err := rows.Scan(&ev.ID, &ev.ClubID, &ev.Title, &ev.Description, &ev.Icon, &ev.Badge,
			&ev.Date, &ev.TimeDisplay, &ev.Location, &ev.Color, &ev.CreatedAt, &ev.UpdatedAt,
			&ev.ClubName, &ev.Category); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

var _ repository.EventRepository = (*EventRepository)(nil)
