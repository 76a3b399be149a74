package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
)

// ProfileService resuelve perfiles a partir de la identidad autenticada.
type ProfileService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

func NewProfileService(users repository.UserRepository, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{users: users, profiles: profiles}
}

type ProfileInput struct {
	Education  string
	Degree     string
	Experience string
	Address    string
	GitHubLink string
}

// Save crea o actualiza el perfil del usuario. La clave es el email de la
// identidad, nunca un email enviado por el cliente.
func (s *ProfileService) Save(ctx context.Context, userID string, input ProfileInput) (domain.Profile, error) {
	in := ProfileInput{
		Education:  strings.TrimSpace(input.Education),
		Degree:     strings.TrimSpace(input.Degree),
		Experience: strings.TrimSpace(input.Experience),
		Address:    strings.TrimSpace(input.Address),
		GitHubLink: strings.TrimSpace(input.GitHubLink),
	}
	if anyBlank(in.Education, in.Degree, in.Experience, in.Address, in.GitHubLink) {
		return domain.Profile{}, ErrInvalidInput
	}

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	now := time.Now().UTC()
	profile, err := s.profiles.Upsert(ctx, domain.Profile{
		ID:         uuid.NewString(),
		Email:      user.Email,
		Education:  in.Education,
		Degree:     in.Degree,
		Experience: in.Experience,
		Address:    in.Address,
		GitHubLink: in.GitHubLink,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) GetForUser(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return s.GetByEmail(ctx, user.Email)
}

func (s *ProfileService) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.Profile{}, ErrProfileNotFound
	}
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileService) userByID(ctx context.Context, userID string) (domain.User, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.User{}, ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
