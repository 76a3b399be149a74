package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

// Upsert crea el perfil o reemplaza sus campos si ya existe uno con el mismo email.
// Devuelve la fila almacenada, conservando id y created_at originales.
func (r *PgProfileRepository) Upsert(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	const query = `
		INSERT INTO profiles (id, email, education, degree, experience, address, github_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (email) DO UPDATE SET
			education = EXCLUDED.education,
			degree = EXCLUDED.degree,
			experience = EXCLUDED.experience,
			address = EXCLUDED.address,
			github_link = EXCLUDED.github_link,
			updated_at = EXCLUDED.updated_at
		RETURNING id, email, education, degree, experience, address, github_link, created_at, updated_at
	`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.Education,
		profile.Degree,
		profile.Experience,
		profile.Address,
		profile.GitHubLink,
		profile.UpdatedAt,
	).Scan(
		&p.ID,
		&p.Email,
		&p.Education,
		&p.Degree,
		&p.Experience,
		&p.Address,
		&p.GitHubLink,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PgProfileRepository) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	const query = `
		SELECT id, email, education, degree, experience, address, github_link, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&p.ID,
		&p.Email,
		&p.Education,
		&p.Degree,
		&p.Experience,
		&p.Address,
		&p.GitHubLink,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	return p, err
}

func (r *PgProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	const query = `
		SELECT id, email, education, degree, experience, address, github_link, created_at, updated_at
		FROM profiles
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.Education,
			&p.Degree,
			&p.Experience,
			&p.Address,
			&p.GitHubLink,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
