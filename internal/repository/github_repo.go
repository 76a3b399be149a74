package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal/internal/domain"
)

type GitHubLinkRepository interface {
	Upsert(ctx context.Context, link domain.GitHubLink) (domain.GitHubLink, error)
}

type PgGitHubLinkRepository struct {
	pool *pgxpool.Pool
}

func NewPgGitHubLinkRepository(pool *pgxpool.Pool) *PgGitHubLinkRepository {
	return &PgGitHubLinkRepository{pool: pool}
}

func (r *PgGitHubLinkRepository) Upsert(ctx context.Context, link domain.GitHubLink) (domain.GitHubLink, error) {
	const query = `
		INSERT INTO github_links (id, email, github_link, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			github_link = EXCLUDED.github_link,
			updated_at = EXCLUDED.updated_at
		RETURNING id, email, github_link, updated_at
	`
	var out domain.GitHubLink
	err := r.pool.QueryRow(ctx, query,
		link.ID,
		link.Email,
		link.GitHubLink,
		link.UpdatedAt,
	).Scan(
		&out.ID,
		&out.Email,
		&out.GitHubLink,
		&out.UpdatedAt,
	)
	return out, err
}
