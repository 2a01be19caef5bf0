package store

import (
	"context"
	"log"
	"sync"
	"time"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/profile"
	"jobpilot/internal/domain/search"
	"jobpilot/internal/repository"
)

// Subscription is a live feed of inserted Job rows.
type Subscription interface {
	Jobs() <-chan job.Job
	Close()
}

// Feed attaches a Subscription to the realtime backend.
type Feed interface {
	Subscribe(ctx context.Context) (Subscription, error)
}

// TriggerClient asks the external ingestion service for a run. The returned
// message is a human-readable acknowledgment; there is no completion signal.
type TriggerClient interface {
	TriggerSearch(ctx context.Context) (string, error)
}

// Locker guards the trigger endpoint across process restarts. The in-memory
// searching flag dies with the process; the lock does not, so a restart during
// an ingestion run cannot fire a second one. A nil Locker disables the guard.
type Locker interface {
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Publisher pushes store events out to connected dashboard clients. All
// implementations must tolerate being called from store actions; a nil
// Publisher disables pushing.
type Publisher interface {
	PublishJobInserted(j job.Job)
	PublishNotification(n Notification)
}

// Store is the single authoritative holder of all cross-view dashboard state.
// It is the only component that mutates the entity collections; the delivery
// layer dispatches actions and reads snapshots.
//
// Every remote failure is absorbed at the action boundary and surfaced as an
// error notification; no action re-throws to its caller. The one exception is
// FetchAllData, which reports per-collection outcomes so callers can show a
// partial-data banner.
type Store struct {
	mu sync.Mutex

	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
	searchRepo  repository.SearchRepository
	feed        Feed
	trigger     TriggerClient
	lock        Locker
	events      Publisher
	logger      *log.Logger

	// searchWait bounds how long a triggered search may stay in progress
	// without a realtime arrival before the store declares it finished.
	searchWait time.Duration

	view          string
	allJobs       []job.Job
	newJobs       []job.Job
	profiles      []profile.Profile
	searches      []search.Search
	selectedJob   *job.Job
	loading       bool
	notifications []Notification
	modal         modalState
	searching     bool

	// searchGen keys completion timers to the search that armed them so a
	// stale timer can never clear a newer search's in-progress flag.
	searchGen uint64
	notifSeq  int64

	sub     Subscription
	subDone chan struct{}
}

type Options struct {
	Jobs     repository.JobRepository
	Profiles repository.ProfileRepository
	Searches repository.SearchRepository
	Feed     Feed
	Trigger  TriggerClient
	Lock     Locker
	Events   Publisher
	Logger   *log.Logger

	SearchWait time.Duration
}

func New(opts Options) *Store {
	wait := opts.SearchWait
	if wait <= 0 {
		wait = 3 * time.Minute
	}
	return &Store{
		jobRepo:     opts.Jobs,
		profileRepo: opts.Profiles,
		searchRepo:  opts.Searches,
		feed:        opts.Feed,
		trigger:     opts.Trigger,
		lock:        opts.Lock,
		events:      opts.Events,
		logger:      opts.Logger,
		searchWait:  wait,
		view:        "dashboard",
		loading:     true,
	}
}

// SetView switches the active screen. Unknown names are accepted; the
// presentation layer simply renders nothing for them.
func (s *Store) SetView(view string) {
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}

// SetSelectedJob records the job open in the details panel; nil closes it.
func (s *Store) SetSelectedJob(j *job.Job) {
	s.mu.Lock()
	if j == nil {
		s.selectedJob = nil
	} else {
		cp := *j
		s.selectedJob = &cp
	}
	s.mu.Unlock()
}

// ModalView is the presentation-facing part of the confirmation modal slot.
type ModalView struct {
	IsOpen  bool   `json:"is_open"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Snapshot is a consistent copy of all store state.
type Snapshot struct {
	View          string           `json:"view"`
	Loading       bool             `json:"loading"`
	Searching     bool             `json:"is_searching"`
	AllJobs       []job.Job        `json:"all_jobs"`
	NewJobs       []job.Job        `json:"new_jobs"`
	Profiles      []profile.Profile `json:"profiles"`
	Searches      []search.Search  `json:"searches"`
	SelectedJob   *job.Job         `json:"selected_job"`
	Notifications []Notification   `json:"notifications"`
	Modal         ModalView        `json:"modal_state"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		View:          s.view,
		Loading:       s.loading,
		Searching:     s.searching,
		AllJobs:       append([]job.Job(nil), s.allJobs...),
		NewJobs:       append([]job.Job(nil), s.newJobs...),
		Profiles:      append([]profile.Profile(nil), s.profiles...),
		Searches:      append([]search.Search(nil), s.searches...),
		Notifications: append([]Notification(nil), s.notifications...),
		Modal: ModalView{
			IsOpen:  s.modal.isOpen,
			Title:   s.modal.title,
			Message: s.modal.message,
		},
	}
	if s.selectedJob != nil {
		cp := *s.selectedJob
		snap.SelectedJob = &cp
	}
	return snap
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
