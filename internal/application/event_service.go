package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	repo "github.com/pulseboard/pulseboard-api/internal/domain/repository"
)

// EventService covers event ingestion and the feed builder.
type EventService struct {
	Events repo.EventRepository
	Logger *logrus.Logger
}

func NewEventService(events repo.EventRepository, logger *logrus.Logger) *EventService {
	return &EventService{Events: events, Logger: logger}
}

type CreateEventInput struct {
	ClubID      int64
	Title       string
	Description string
	Icon        string
	Badge       entity.Badge
	Date        time.Time
	TimeDisplay string
	Location    string
	Color       string
}

// CreateEvent validates required fields, applies defaults and persists one
// event. The club aggregate is untouched; club existence is advisory.
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (*entity.Event, error) {
	if err := validateEventInput(in); err != nil {
		return nil, err
	}

	e := &entity.Event{
		ClubID:      in.ClubID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Icon:        in.Icon,
		Badge:       in.Badge,
		Date:        in.Date,
		TimeDisplay: in.TimeDisplay,
		Location:    in.Location,
		Color:       in.Color,
	}
	if e.Icon == "" {
		e.Icon = entity.DefaultEventIcon
	}
	if e.Badge == "" {
		e.Badge = entity.BadgeUpcoming
	}
	if e.Color == "" {
		e.Color = entity.DefaultEventColor
	}

	if err := s.Events.Create(ctx, e); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"event_id": e.ID, "club_id": e.ClubID}).Info("event created")
	}
	return e, nil
}

func validateEventInput(in CreateEventInput) error {
	switch {
	case in.ClubID <= 0:
		return fmt.Errorf("%w: club_id is required", ErrEventInvalid)
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", ErrEventInvalid)
	case in.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrEventInvalid)
	case strings.TrimSpace(in.TimeDisplay) == "":
		return fmt.Errorf("%w: time_display is required", ErrEventInvalid)
	case strings.TrimSpace(in.Location) == "":
		return fmt.Errorf("%w: location is required", ErrEventInvalid)
	case in.Badge != "" && !in.Badge.Valid():
		return fmt.Errorf("%w: badge must be LIVE or UPCOMING", ErrEventInvalid)
	}
	return nil
}

// Feed returns all LIVE/UPCOMING events enriched with club metadata, soonest
// first.
func (s *EventService) Feed(ctx context.Context) ([]*entity.EnrichedEvent, error) {
	return s.Events.Feed(ctx)
}

// FeedForClub is Feed restricted to one club, for the club profile page.
func (s *EventService) FeedForClub(ctx context.Context, clubID int64) ([]*entity.EnrichedEvent, error) {
	return s.Events.FeedByClub(ctx, clubID)
}

// Personalize reorders a date-sorted feed so events from followed clubs come
// first. The partition is stable: date order is preserved inside each half.
func Personalize(events []*entity.EnrichedEvent, following []int64) []*entity.EnrichedEvent {
	if len(following) == 0 || len(events) == 0 {
		return events
	}
	followed := make(map[int64]struct{}, len(following))
	for _, id := range following {
		followed[id] = struct{}{}
	}
	out := make([]*entity.EnrichedEvent, 0, len(events))
	rest := make([]*entity.EnrichedEvent, 0, len(events))
	for _, ev := range events {
		if _, ok := followed[ev.ClubID]; ok {
			out = append(out, ev)
		} else {
			rest = append(rest, ev)
		}
	}
	return append(out, rest...)
}
