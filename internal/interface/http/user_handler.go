package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/pulseboard/pulseboard-api/internal/application"
	"github.com/pulseboard/pulseboard-api/internal/interface/middleware"
	"github.com/pulseboard/pulseboard-api/pkg/response"
	"github.com/pulseboard/pulseboard-api/pkg/validation"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

// Me GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"avatar_url": u.AvatarURL,
		"following":  u.Following,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}, "profile", nil)
}

// UpdateMe PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, userapp.UpdateProfileInput{Name: req.Name, AvatarURL: req.AvatarURL})
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("profile update failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"avatar_url": u.AvatarURL,
		"following":  u.Following,
		"updated_at": u.UpdatedAt,
	}, "profile updated", nil)
}

// UploadAvatar POST /api/users/me/avatar (multipart field: avatar)
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing avatar file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("avatar upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to upload avatar", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar updated", nil)
}
