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

// GitHubService asocia un link de GitHub a un email.
type GitHubService struct {
	links repository.GitHubLinkRepository
}

func NewGitHubService(links repository.GitHubLinkRepository) *GitHubService {
	return &GitHubService{links: links}
}

// Link guarda o reemplaza el link asociado al email.
func (s *GitHubService) Link(ctx context.Context, email, githubLink string) (domain.GitHubLink, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.GitHubLink{}, ErrInvalidInput
	}
	link, err := s.links.Upsert(ctx, domain.GitHubLink{
		ID:         uuid.NewString(),
		Email:      email,
		GitHubLink: strings.TrimSpace(githubLink),
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return domain.GitHubLink{}, fmt.Errorf("upsert github link: %w", err)
	}
	return link, nil
}
