package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

type JobService struct {
	jobs repository.JobRepository
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

type JobInput struct {
	JobName     string
	CompanyName string
	Location    string
	Mail        string
}

func (s *JobService) Create(ctx context.Context, input JobInput) (domain.Job, error) {
	job := domain.Job{
		ID:          uuid.NewString(),
		JobName:     strings.TrimSpace(input.JobName),
		CompanyName: strings.TrimSpace(input.CompanyName),
		Location:    strings.TrimSpace(input.Location),
		Mail:        strings.TrimSpace(input.Mail),
		CreatedAt:   time.Now().UTC(),
	}
	if anyBlank(job.JobName, job.CompanyName, job.Location, job.Mail) {
		return domain.Job{}, ErrInvalidInput
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return domain.Job{}, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
