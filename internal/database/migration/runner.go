package migration

import (
	"context"
	"errors"

	"jobpilot/internal/database"
)

const advisoryLockKey = 824113907

// Statements are idempotent so the runner can execute on every boot.
var statements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_name TEXT NOT NULL,
		resume_context TEXT NOT NULL DEFAULT '',
		contact_name TEXT,
		contact_email TEXT,
		contact_phone TEXT,
		contact_links TEXT,
		summary TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS searches (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		search_name TEXT NOT NULL,
		search_term TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		profile_id UUID REFERENCES profiles(id) ON DELETE CASCADE,
		experience_level TEXT NOT NULL DEFAULT '',
		hours_old INT NOT NULL DEFAULT 72,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		search_id UUID REFERENCES searches(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		status TEXT CHECK (status IN ('Saved','Applied','Interviewing','Offer','Rejected')),
		is_tracked BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT NOT NULL DEFAULT '',
		contacts JSONB NOT NULL DEFAULT '[]'::jsonb,
		similarity_score DOUBLE PRECISION,
		ai_rating INT,
		ai_reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_searches_profile_id ON searches (profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_search_id ON jobs (search_id)`,

	// The notify payload carries only the id; the listener re-reads the row,
	// which keeps the payload under the pg_notify size limit for any job.
	`CREATE OR REPLACE FUNCTION notify_job_inserted() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('job_inserted', NEW.id::text);
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS jobs_notify_insert ON jobs`,
	`CREATE TRIGGER jobs_notify_insert AFTER INSERT ON jobs
		FOR EACH ROW EXECUTE FUNCTION notify_job_inserted()`,
}

type Runner struct{}

func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return err
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
	}()

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
