package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal/internal/domain"
)

type JobRepository interface {
	Create(ctx context.Context, job domain.Job) error
	List(ctx context.Context) ([]domain.Job, error)
}

type PgJobRepository struct {
	pool *pgxpool.Pool
}

func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

func (r *PgJobRepository) Create(ctx context.Context, job domain.Job) error {
	const query = `
		INSERT INTO jobs (id, job_name, company_name, location, mail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.JobName,
		job.CompanyName,
		job.Location,
		job.Mail,
		job.CreatedAt,
	)
	return err
}

// List devuelve las ofertas mas recientes primero.
func (r *PgJobRepository) List(ctx context.Context) ([]domain.Job, error) {
	const query = `
		SELECT id, job_name, company_name, location, mail, created_at
		FROM jobs
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.JobName, &j.CompanyName, &j.Location, &j.Mail, &j.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
