package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/service"
)

type GitHubHandler struct {
	logger    *zap.Logger
	githubSvc *service.GitHubService
}

func NewGitHubHandler(logger *zap.Logger, githubSvc *service.GitHubService) *GitHubHandler {
	return &GitHubHandler{
		logger:    logger,
		githubSvc: githubSvc,
	}
}

// LinkGitHub maneja POST /github. Acepta JSON o formulario y redirige a la
// pagina de confirmacion.
func (h *GitHubHandler) LinkGitHub(c *gin.Context) {
	var req struct {
		Email      string `json:"email" form:"email" binding:"required"`
		GitHubLink string `json:"githubLink" form:"githubLink"`
	}
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid github link request", zap.Error(err))
		messageJSON(c, http.StatusBadRequest, "Invalid request")
		return
	}

	link, err := h.githubSvc.Link(c.Request.Context(), req.Email, req.GitHubLink)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			messageJSON(c, http.StatusBadRequest, "Invalid request")
			return
		}
		h.logger.Error("save github link failed", zap.Error(err))
		messageJSON(c, http.StatusInternalServerError, "Error saving the GitHub link.")
		return
	}

	c.Redirect(http.StatusFound, "/saved.html?email="+url.QueryEscape(link.Email))
}
