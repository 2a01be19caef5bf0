package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidStatus = errors.New("invalid job status")
)

type JobRepository interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, patch job.DetailsPatch) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, search_id, COALESCE(title, ''), COALESCE(company, ''),
	COALESCE(description, ''), COALESCE(url, ''), status, is_tracked,
	COALESCE(notes, ''), contacts, similarity_score, ai_rating, ai_reason, created_at`

func (r *PostgresJobRepository) ListJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id,
	)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !job.ValidStatus(status) {
		return ErrInvalidStatus
	}
	n, err := r.db.Exec(ctx, `UPDATE jobs SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) UpdateDetails(ctx context.Context, id uuid.UUID, patch job.DetailsPatch) error {
	if patch.Empty() {
		return nil
	}

	set := make([]string, 0, 3)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.IsTracked != nil {
		add("is_tracked", *patch.IsTracked)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Contacts != nil {
		b, err := json.Marshal(*patch.Contacts)
		if err != nil {
			return err
		}
		add("contacts", b)
	}

	q := "UPDATE jobs SET " + strings.Join(set, ", ") + " WHERE id = $1"
	n, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanJob(row scannable) (job.Job, error) {
	var (
		j        job.Job
		contacts []byte
	)
	if err := row.Scan(
		&j.ID, &j.SearchID, &j.Title, &j.Company,
		&j.Description, &j.URL, &j.Status, &j.IsTracked,
		&j.Notes, &contacts, &j.SimilarityScore, &j.AIRating, &j.AIReason, &j.CreatedAt,
	); err != nil {
		return job.Job{}, err
	}
	if len(contacts) > 0 {
		if err := json.Unmarshal(contacts, &j.Contacts); err != nil {
			return job.Job{}, err
		}
	}
	return j, nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
