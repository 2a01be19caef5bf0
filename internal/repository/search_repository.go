package repository

import (
	"context"
	"errors"
	"strings"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/search"

	"github.com/google/uuid"
)

var ErrSearchNotFound = errors.New("search not found")

type SearchRepository interface {
	ListSearches(ctx context.Context) ([]search.Search, error)
	Insert(ctx context.Context, s search.Search) (uuid.UUID, error)
	Update(ctx context.Context, s search.Search) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSearchRepository struct {
	db database.DB
}

func NewPostgresSearchRepository(db database.DB) *PostgresSearchRepository {
	return &PostgresSearchRepository{db: db}
}

func (r *PostgresSearchRepository) ListSearches(ctx context.Context) ([]search.Search, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(search_name, ''), COALESCE(search_term, ''), COALESCE(country, ''),
			profile_id, COALESCE(experience_level, ''), hours_old, created_at
		 FROM searches
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Search, 0)
	for rows.Next() {
		var s search.Search
		if err := rows.Scan(
			&s.ID, &s.SearchName, &s.SearchTerm, &s.Country,
			&s.ProfileID, &s.ExperienceLevel, &s.HoursOld, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSearchRepository) Insert(ctx context.Context, s search.Search) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO searches (search_name, search_term, country, profile_id, experience_level, hours_old)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		strings.TrimSpace(s.SearchName), strings.TrimSpace(s.SearchTerm), s.Country,
		s.ProfileID, s.ExperienceLevel, s.HoursOld,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresSearchRepository) Update(ctx context.Context, s search.Search) error {
	n, err := r.db.Exec(ctx,
		`UPDATE searches
		 SET search_name = $2, search_term = $3, country = $4,
			 profile_id = $5, experience_level = $6, hours_old = $7
		 WHERE id = $1`,
		s.ID, strings.TrimSpace(s.SearchName), strings.TrimSpace(s.SearchTerm), s.Country,
		s.ProfileID, s.ExperienceLevel, s.HoursOld,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSearchNotFound
	}
	return nil
}

func (r *PostgresSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM searches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSearchNotFound
	}
	return nil
}

var _ SearchRepository = (*PostgresSearchRepository)(nil)
