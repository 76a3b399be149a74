package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfiles.
type ProfileHandler struct {
	logger     *zap.Logger
	profileSvc *service.ProfileService
}

func NewProfileHandler(logger *zap.Logger, profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:     logger,
		profileSvc: profileSvc,
	}
}

// SaveProfile maneja POST /api/profile. Requiere JWTAuthMiddleware.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		messageJSON(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req struct {
		Email      string `json:"email"`
		Education  string `json:"education" binding:"required"`
		Degree     string `json:"degree" binding:"required"`
		Experience string `json:"experience" binding:"required"`
		Address    string `json:"address" binding:"required"`
		GitHubLink string `json:"githubLink" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		messageJSON(c, http.StatusBadRequest, "Invalid request")
		return
	}

	profile, err := h.profileSvc.Save(c.Request.Context(), userID, service.ProfileInput{
		Education:  req.Education,
		Degree:     req.Degree,
		Experience: req.Experience,
		Address:    req.Address,
		GitHubLink: req.GitHubLink,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			messageJSON(c, http.StatusBadRequest, "Invalid request")
		case errors.Is(err, service.ErrUserNotFound):
			messageJSON(c, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("save profile failed", zap.Error(err))
			messageJSON(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetOwnProfile maneja GET /api/profile.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		messageJSON(c, http.StatusUnauthorized, "No token provided")
		return
	}

	profile, err := h.profileSvc.GetForUser(c.Request.Context(), userID)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles maneja GET /api/profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		messageJSON(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileByEmail maneja GET /api/profile/:email. Es publico.
func (h *ProfileHandler) GetProfileByEmail(c *gin.Context) {
	profile, err := h.profileSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		messageJSON(c, http.StatusNotFound, "Profile not found")
		return
	}
	h.logger.Error("fetch profile failed", zap.Error(err))
	messageJSON(c, http.StatusInternalServerError, "Server Error")
}
