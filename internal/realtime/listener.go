package realtime

import (
	"context"
	"errors"
	"log"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/job"
	"jobpilot/internal/repository"

	"github.com/google/uuid"
)

// Channel must match the pg_notify channel used by the jobs insert trigger.
const Channel = "job_inserted"

// Listener turns Postgres NOTIFY events on the jobs table into a stream of
// full Job rows. The notify payload carries only the row id; the listener
// re-reads the row so payload size never matters.
type Listener struct {
	db     database.DB
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewListener(db database.DB, jobs repository.JobRepository, logger *log.Logger) *Listener {
	return &Listener{db: db, jobs: jobs, logger: logger}
}

type Subscription struct {
	jobs   chan job.Job
	cancel context.CancelFunc
}

// Jobs delivers inserted rows in emission order. The channel is closed when
// the subscription ends, whether by Close or by a connection failure.
func (s *Subscription) Jobs() <-chan job.Job {
	if s == nil {
		return nil
	}
	return s.jobs
}

func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.cancel()
}

// Subscribe acquires a dedicated connection, issues LISTEN and pumps
// notifications until the subscription is closed.
func (l *Listener) Subscribe(ctx context.Context) (*Subscription, error) {
	if l == nil || l.db == nil {
		return nil, errors.New("nil listener")
	}
	pool := l.db.Pgx()
	if pool == nil {
		return nil, errors.New("no pgx pool available")
	}

	subCtx, cancel := context.WithCancel(ctx)

	conn, err := pool.Acquire(subCtx)
	if err != nil {
		cancel()
		return nil, err
	}
	if _, err := conn.Exec(subCtx, "LISTEN "+Channel); err != nil {
		conn.Release()
		cancel()
		return nil, err
	}

	sub := &Subscription{
		jobs:   make(chan job.Job, 64),
		cancel: cancel,
	}

	go func() {
		defer close(sub.jobs)
		defer conn.Release()

		for {
			n, err := conn.Conn().WaitForNotification(subCtx)
			if err != nil {
				if subCtx.Err() == nil && l.logger != nil {
					l.logger.Printf("[Realtime] listen ended | error=%v", err)
				}
				return
			}

			id, err := uuid.Parse(n.Payload)
			if err != nil {
				if l.logger != nil {
					l.logger.Printf("[Realtime] bad payload | payload=%q", n.Payload)
				}
				continue
			}

			row, err := l.jobs.GetByID(subCtx, id)
			if err != nil {
				if l.logger != nil {
					l.logger.Printf("[Realtime] row fetch failed | id=%s error=%v", id, err)
				}
				continue
			}

			select {
			case sub.jobs <- row:
			default:
				if l.logger != nil {
					l.logger.Printf("[Realtime] event dropped | reason=buffer_full id=%s", id)
				}
			}
		}
	}()

	return sub, nil
}
