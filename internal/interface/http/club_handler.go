package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	clubapp "github.com/pulseboard/pulseboard-api/internal/application"
	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/response"
	"github.com/pulseboard/pulseboard-api/pkg/validation"
)

// ClubHandler serves the club directory and the follow toggle.
type ClubHandler struct {
	Svc    *clubapp.ClubService
	Logger *logrus.Logger
}

func NewClubHandler(svc *clubapp.ClubService, logger *logrus.Logger) *ClubHandler {
	return &ClubHandler{Svc: svc, Logger: logger}
}

type createClubRequest struct {
	ClubID      int64  `json:"club_id" binding:"required,gt=0"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,category"`
}

func clubJSON(c *entity.Club) gin.H {
	return gin.H{
		"club_id":        c.ClubID,
		"name":           c.Name,
		"description":    c.Description,
		"category":       c.Category,
		"follower_count": c.FollowerCount,
		"created_at":     c.CreatedAt,
		"updated_at":     c.UpdatedAt,
	}
}

func parseClubID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("clubId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid club id", nil)
		return 0, false
	}
	return id, true
}

// List GET /api/clubs
func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("club list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list clubs", nil)
		return
	}
	out := make([]gin.H, 0, len(clubs))
	for _, club := range clubs {
		out = append(out, clubJSON(club))
	}
	response.Success(c, http.StatusOK, out, "clubs", map[string]any{"count": len(out)})
}

// Get GET /api/clubs/:clubId
func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}
	club, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, clubapp.ErrClubNotFound) {
			response.Error[any](c, http.StatusNotFound, "club not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch club", nil)
		return
	}
	response.Success(c, http.StatusOK, clubJSON(club), "club", nil)
}

// Create POST /api/clubs
func (h *ClubHandler) Create(c *gin.Context) {
	var req createClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	club, err := h.Svc.Create(c.Request.Context(), clubapp.CreateClubInput{
		ClubID:      req.ClubID,
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.Category(req.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, clubapp.ErrClubNameTaken):
			response.Error[any](c, http.StatusConflict, "club name already taken", nil)
		case errors.Is(err, clubapp.ErrClubIDTaken):
			response.Error[any](c, http.StatusConflict, "club id already taken", nil)
		case errors.Is(err, clubapp.ErrClubInvalid):
			response.Error[any](c, http.StatusBadRequest, "invalid club payload", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("club create failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "failed to create club", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, clubJSON(club), "club created", nil)
}

// ToggleFollow POST /api/clubs/follow/:clubId
func (h *ClubHandler) ToggleFollow(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	following, err := h.Svc.ToggleFollow(c.Request.Context(), uid, id)
	if err != nil {
		switch {
		case errors.Is(err, clubapp.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, clubapp.ErrClubNotFound):
			response.Error[any](c, http.StatusNotFound, "club not found", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("club_id", id).Error("toggle follow failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "failed to toggle follow", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"following": following}, "follow toggled", nil)
}

// Search GET /api/clubs/search?q=
func (h *ClubHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
