package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/service"
)

type JobHandler struct {
	logger *zap.Logger
	jobSvc *service.JobService
}

func NewJobHandler(logger *zap.Logger, jobSvc *service.JobService) *JobHandler {
	return &JobHandler{
		logger: logger,
		jobSvc: jobSvc,
	}
}

// CreateJob maneja POST /api/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req struct {
		JobName     string `json:"jobName" binding:"required"`
		CompanyName string `json:"companyName" binding:"required"`
		Location    string `json:"location" binding:"required"`
		Mail        string `json:"mail" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid job request", zap.Error(err))
		messageJSON(c, http.StatusBadRequest, "Invalid request")
		return
	}

	job, err := h.jobSvc.Create(c.Request.Context(), service.JobInput{
		JobName:     req.JobName,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Mail:        req.Mail,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			messageJSON(c, http.StatusBadRequest, "Invalid request")
			return
		}
		h.logger.Error("create job failed", zap.Error(err))
		messageJSON(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

// ListJobs maneja GET /api/jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list jobs failed", zap.Error(err))
		messageJSON(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, jobs)
}
