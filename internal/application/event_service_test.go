package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

func validEventInput() CreateEventInput {
	return CreateEventInput{
		ClubID:      101,
		Title:       "RoboWars Qualifier",
		Description: "Arena opens at noon.",
		Date:        time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC),
		TimeDisplay: "2:00 PM",
		Location:    "Main Auditorium",
	}
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(nil), nil)

	e, err := svc.CreateEvent(context.Background(), validEventInput())
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultEventIcon, e.Icon)
	assert.Equal(t, entity.BadgeUpcoming, e.Badge)
	assert.Equal(t, entity.DefaultEventColor, e.Color)
	assert.NotZero(t, e.ID)
}

func TestCreateEventKeepsExplicitFields(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(nil), nil)

	in := validEventInput()
	in.Icon = "🎤"
	in.Badge = entity.BadgeLive
	in.Color = "#ff0000"

	e, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "🎤", e.Icon)
	assert.Equal(t, entity.BadgeLive, e.Badge)
	assert.Equal(t, "#ff0000", e.Color)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateEventInput)
	}{
		{"missing club id", func(in *CreateEventInput) { in.ClubID = 0 }},
		{"negative club id", func(in *CreateEventInput) { in.ClubID = -5 }},
		{"blank title", func(in *CreateEventInput) { in.Title = "   " }},
		{"zero date", func(in *CreateEventInput) { in.Date = time.Time{} }},
		{"blank time display", func(in *CreateEventInput) { in.TimeDisplay = "" }},
		{"blank location", func(in *CreateEventInput) { in.Location = " " }},
		{"unknown badge", func(in *CreateEventInput) { in.Badge = "ENDED" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(newFakeEventRepo(nil), nil)
			in := validEventInput()
			tt.mutate(&in)

			_, err := svc.CreateEvent(context.Background(), in)
			assert.ErrorIs(t, err, ErrEventInvalid)
		})
	}
}

func TestCreateEventTrimsTitle(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(nil), nil)

	in := validEventInput()
	in.Title = "  Open Mic Poetry  "
	e, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Open Mic Poetry", e.Title)
}

func TestFeedEnrichesAndSorts(t *testing.T) {
	clubs := map[int64]*entity.Club{
		101: {ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical},
	}
	repo := newFakeEventRepo(clubs)
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	later := validEventInput()
	later.Date = base.Add(48 * time.Hour)
	later.Title = "Later"
	sooner := validEventInput()
	sooner.Date = base
	sooner.Title = "Sooner"
	orphan := validEventInput()
	orphan.ClubID = 999
	orphan.Date = base.Add(24 * time.Hour)
	orphan.Title = "Orphan"

	for _, in := range []CreateEventInput{later, sooner, orphan} {
		_, err := svc.CreateEvent(ctx, in)
		require.NoError(t, err)
	}

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "Sooner", feed[0].Title)
	assert.Equal(t, "Orphan", feed[1].Title)
	assert.Equal(t, "Later", feed[2].Title)

	assert.Equal(t, "Robotics Club", feed[0].ClubName)
	assert.Equal(t, entity.CategoryTechnical, feed[0].Category)

	// orphan events keep empty club metadata
	assert.Empty(t, feed[1].ClubName)
	assert.Empty(t, feed[1].Category)
}

func TestFeedForClubFilters(t *testing.T) {
	repo := newFakeEventRepo(nil)
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	a := validEventInput()
	a.ClubID = 101
	b := validEventInput()
	b.ClubID = 102
	for _, in := range []CreateEventInput{a, b} {
		_, err := svc.CreateEvent(ctx, in)
		require.NoError(t, err)
	}

	feed, err := svc.FeedForClub(ctx, 101)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, int64(101), feed[0].ClubID)
}

func enriched(id, clubID int64, date time.Time) *entity.EnrichedEvent {
	return &entity.EnrichedEvent{Event: entity.Event{ID: id, ClubID: clubID, Date: date}}
}

func TestPersonalize(t *testing.T) {
	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	feed := []*entity.EnrichedEvent{
		enriched(1, 101, base),
		enriched(2, 102, base.Add(time.Hour)),
		enriched(3, 101, base.Add(2*time.Hour)),
		enriched(4, 103, base.Add(3*time.Hour)),
	}

	t.Run("followed clubs come first, date order kept per half", func(t *testing.T) {
		out := Personalize(feed, []int64{101})
		ids := make([]int64, len(out))
		for i, e := range out {
			ids[i] = e.ID
		}
		assert.Equal(t, []int64{1, 3, 2, 4}, ids)
	})

	t.Run("empty following returns input unchanged", func(t *testing.T) {
		out := Personalize(feed, nil)
		assert.Equal(t, feed, out)
	})

	t.Run("no overlap keeps original order", func(t *testing.T) {
		out := Personalize(feed, []int64{999})
		require.Len(t, out, len(feed))
		for i := range feed {
			assert.Equal(t, feed[i].ID, out[i].ID)
		}
	})

	t.Run("all followed keeps original order", func(t *testing.T) {
		out := Personalize(feed, []int64{101, 102, 103})
		require.Len(t, out, len(feed))
		for i := range feed {
			assert.Equal(t, feed[i].ID, out[i].ID)
		}
	})

	t.Run("empty feed", func(t *testing.T) {
		out := Personalize(nil, []int64{101})
		assert.Empty(t, out)
	})
}
