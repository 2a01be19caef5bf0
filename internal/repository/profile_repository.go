package repository

import (
	"context"
	"errors"
	"strings"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/profile"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]profile.Profile, error)
	Insert(ctx context.Context, p profile.Profile) (uuid.UUID, error)
	Update(ctx context.Context, p profile.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(profile_name, ''), COALESCE(resume_context, ''),
			contact_name, contact_email, contact_phone, contact_links, summary, created_at
		 FROM profiles
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(
			&p.ID, &p.ProfileName, &p.ResumeContext,
			&p.ContactName, &p.ContactEmail, &p.ContactPhone, &p.ContactLinks, &p.Summary, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) Insert(ctx context.Context, p profile.Profile) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (profile_name, resume_context, contact_name, contact_email, contact_phone, contact_links, summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		strings.TrimSpace(p.ProfileName), p.ResumeContext,
		p.ContactName, p.ContactEmail, p.ContactPhone, p.ContactLinks, p.Summary,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET profile_name = $2, resume_context = $3, contact_name = $4,
			 contact_email = $5, contact_phone = $6, contact_links = $7, summary = $8
		 WHERE id = $1`,
		p.ID, strings.TrimSpace(p.ProfileName), p.ResumeContext,
		p.ContactName, p.ContactEmail, p.ContactPhone, p.ContactLinks, p.Summary,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Dependent searches and their jobs go with it via ON DELETE CASCADE.
	n, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

var _ ProfileRepository = (*PostgresProfileRepository)(nil)
