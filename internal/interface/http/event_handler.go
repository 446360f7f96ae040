package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	eventapp "github.com/pulseboard/pulseboard-api/internal/application"
	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	"github.com/pulseboard/pulseboard-api/internal/domain/repository"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/response"
	"github.com/pulseboard/pulseboard-api/pkg/validation"
)

// EventHandler serves event ingestion and the feed.
type EventHandler struct {
	Svc    *eventapp.EventService
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewEventHandler(svc *eventapp.EventService, users repository.UserRepository, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Users: users, Logger: logger}
}

type createEventRequest struct {
	ClubID      int64     `json:"club_id" binding:"required,gt=0"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Badge       string    `json:"badge" binding:"omitempty,badge"`
	Date        time.Time `json:"date" binding:"required"`
	TimeDisplay string    `json:"time_display" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Color       string    `json:"color" binding:"omitempty,hexcolor"`
}

func eventJSON(e *entity.Event) gin.H {
	return gin.H{
		"id":           e.ID,
		"club_id":      e.ClubID,
		"title":        e.Title,
		"description":  e.Description,
		"icon":         e.Icon,
		"badge":        e.Badge,
		"date":         e.Date,
		"time_display": e.TimeDisplay,
		"location":     e.Location,
		"color":        e.Color,
		"created_at":   e.CreatedAt,
	}
}

func enrichedJSON(e *entity.EnrichedEvent) gin.H {
	out := eventJSON(&e.Event)
	out["club_name"] = e.ClubName
	out["category"] = e.Category
	return out
}

// Create POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	e, err := h.Svc.CreateEvent(c.Request.Context(), eventapp.CreateEventInput{
		ClubID:      req.ClubID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Badge:       entity.Badge(req.Badge),
		Date:        req.Date,
		TimeDisplay: req.TimeDisplay,
		Location:    req.Location,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, eventapp.ErrEventInvalid) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("event create failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create event", nil)
		return
	}
	response.Success(c, http.StatusCreated, eventJSON(e), "event created", nil)
}

// Feed GET /api/events/feed
//
// Public. When the caller carries a valid session the feed is reordered so
// followed-club events come first; date order is preserved within each half.
func (h *EventHandler) Feed(c *gin.Context) {
	events, err := h.Svc.Feed(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("feed query failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch feed", nil)
		return
	}

	personalized := false
	if uid := c.GetString(middleware.CtxUserIDKey); uid != "" && h.Users != nil {
		if following, err := h.Users.Following(c.Request.Context(), uid); err == nil && len(following) > 0 {
			events = eventapp.Personalize(events, following)
			personalized = true
		}
	}

	out := make([]gin.H, 0, len(events))
	for _, ev := range events {
		out = append(out, enrichedJSON(ev))
	}
	response.Success(c, http.StatusOK, out, "event feed", map[string]any{
		"count":        len(out),
		"personalized": personalized,
	})
}

// FeedByClub GET /api/events/club/:clubId
func (h *EventHandler) FeedByClub(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}
	events, err := h.Svc.FeedForClub(c.Request.Context(), id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("club_id", id).Error("club feed query failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch events", nil)
		return
	}
	out := make([]gin.H, 0, len(events))
	for _, ev := range events {
		out = append(out, enrichedJSON(ev))
	}
	response.Success(c, http.StatusOK, out, "club events", map[string]any{"count": len(out)})
}
