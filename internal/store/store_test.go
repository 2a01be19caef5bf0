package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/profile"
	"jobpilot/internal/domain/search"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	mu sync.Mutex

	list    []job.Job
	listErr error

	byID    map[uuid.UUID]job.Job
	getErr  error
	statErr error
	detErr  error

	statusCalls int
	statusGate  chan struct{}
}

func (f *fakeJobRepo) ListJobs(context.Context) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]job.Job(nil), f.list...), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return job.Job{}, f.getErr
	}
	j, ok := f.byID[id]
	if !ok {
		return job.Job{}, errors.New("not found")
	}
	return j, nil
}

func (f *fakeJobRepo) UpdateStatus(context.Context, uuid.UUID, string) error {
	if f.statusGate != nil {
		<-f.statusGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	return f.statErr
}

func (f *fakeJobRepo) UpdateDetails(context.Context, uuid.UUID, job.DetailsPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detErr
}

type fakeProfileRepo struct {
	mu sync.Mutex

	list      []profile.Profile
	listErr   error
	insertErr error
	deleteErr error

	listCalls int
}

func (f *fakeProfileRepo) ListProfiles(context.Context) ([]profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]profile.Profile(nil), f.list...), nil
}

func (f *fakeProfileRepo) Insert(_ context.Context, p profile.Profile) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	p.ID = uuid.New()
	f.list = append(f.list, p)
	return p.ID, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p profile.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == p.ID {
			f.list[i] = p
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeSearchRepo struct {
	list    []search.Search
	listErr error
}

func (f *fakeSearchRepo) ListSearches(context.Context) ([]search.Search, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]search.Search(nil), f.list...), nil
}
func (f *fakeSearchRepo) Insert(context.Context, search.Search) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (f *fakeSearchRepo) Update(context.Context, search.Search) error { return nil }
func (f *fakeSearchRepo) Delete(context.Context, uuid.UUID) error     { return nil }

type fakeSub struct {
	ch   chan job.Job
	once sync.Once
}

func (f *fakeSub) Jobs() <-chan job.Job { return f.ch }
func (f *fakeSub) Close()               { f.once.Do(func() { close(f.ch) }) }

type fakeFeed struct {
	mu    sync.Mutex
	calls int
	last  *fakeSub
}

func (f *fakeFeed) Subscribe(context.Context) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = &fakeSub{ch: make(chan job.Job, 8)}
	return f.last, nil
}

func (f *fakeFeed) subscribeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTrigger struct {
	mu    sync.Mutex
	calls int
	msg   string
	err   error
}

func (f *fakeTrigger) TriggerSearch(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.msg, f.err
}

func (f *fakeTrigger) triggerCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLocker struct {
	mu sync.Mutex

	held       bool
	acquireErr error

	acquires int
	deletes  int
	lastTTL  time.Duration
}

func (f *fakeLocker) SetIfNotExists(_ context.Context, _, _ string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acquires++
	f.lastTTL = ttl
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	if f.held {
		return false, nil
	}
	f.held = true
	return true, nil
}

func (f *fakeLocker) Delete(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	f.held = false
	return nil
}

func (f *fakeLocker) deleteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

func newTestStore(jr *fakeJobRepo, pr *fakeProfileRepo, sr *fakeSearchRepo, feed Feed, trig TriggerClient) *Store {
	if jr == nil {
		jr = &fakeJobRepo{}
	}
	if pr == nil {
		pr = &fakeProfileRepo{}
	}
	if sr == nil {
		sr = &fakeSearchRepo{}
	}
	return New(Options{
		Jobs:       jr,
		Profiles:   pr,
		Searches:   sr,
		Feed:       feed,
		Trigger:    trig,
		SearchWait: time.Hour,
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func hasNotification(snap Snapshot, substr string, sev Severity) bool {
	for _, n := range snap.Notifications {
		if n.Severity == sev && strings.Contains(n.Message, substr) {
			return true
		}
	}
	return false
}

func TestSubscribeToJobs_Idempotent(t *testing.T) {
	feed := &fakeFeed{}
	s := newTestStore(nil, nil, nil, feed, nil)

	s.SubscribeToJobs(context.Background())
	s.SubscribeToJobs(context.Background())
	s.SubscribeToJobs(context.Background())

	if got := feed.subscribeCalls(); got != 1 {
		t.Fatalf("expected 1 subscribe call, got %d", got)
	}
	s.UnsubscribeFromJobs()
}

func TestUnsubscribeAllowsReattach(t *testing.T) {
	feed := &fakeFeed{}
	s := newTestStore(nil, nil, nil, feed, nil)

	s.SubscribeToJobs(context.Background())
	s.UnsubscribeFromJobs()
	s.SubscribeToJobs(context.Background())

	if got := feed.subscribeCalls(); got != 2 {
		t.Fatalf("expected 2 subscribe calls, got %d", got)
	}
	s.UnsubscribeFromJobs()
}

func TestJobInserted_PrependsClearsSearchingAndNotifies(t *testing.T) {
	feed := &fakeFeed{}
	trig := &fakeTrigger{msg: "Successfully triggered the job search workflow!"}
	s := newTestStore(nil, nil, nil, feed, trig)

	s.SubscribeToJobs(context.Background())
	s.TriggerJobSearch(context.Background())
	if !s.Snapshot().Searching {
		t.Fatalf("expected search in progress after trigger")
	}

	j := job.Job{ID: uuid.New(), Title: "Backend Engineer"}
	feed.last.ch <- j

	waitFor(t, func() bool { return len(s.Snapshot().AllJobs) == 1 })

	snap := s.Snapshot()
	if snap.AllJobs[0].ID != j.ID {
		t.Fatalf("expected inserted job at index 0 of all jobs")
	}
	if len(snap.NewJobs) != 1 || snap.NewJobs[0].ID != j.ID {
		t.Fatalf("expected inserted job at index 0 of inbox")
	}
	if snap.Searching {
		t.Fatalf("expected searching flag cleared by arrival")
	}
	if !hasNotification(snap, "Backend Engineer", SeverityInfo) {
		t.Fatalf("expected a notification embedding the job title")
	}
	s.UnsubscribeFromJobs()
}

func TestJobInserted_DuplicateDropped(t *testing.T) {
	feed := &fakeFeed{}
	s := newTestStore(nil, nil, nil, feed, nil)

	s.SubscribeToJobs(context.Background())
	j := job.Job{ID: uuid.New(), Title: "SRE"}
	feed.last.ch <- j
	feed.last.ch <- j

	waitFor(t, func() bool { return len(s.Snapshot().AllJobs) >= 1 })
	// Give the duplicate a moment to be (wrongly) applied.
	time.Sleep(20 * time.Millisecond)

	snap := s.Snapshot()
	if len(snap.AllJobs) != 1 {
		t.Fatalf("expected duplicate insert to be dropped, got %d jobs", len(snap.AllJobs))
	}
	if len(snap.NewJobs) != 1 {
		t.Fatalf("expected inbox to hold one job, got %d", len(snap.NewJobs))
	}
	s.UnsubscribeFromJobs()
}

func TestTriggerJobSearch_ReentrantGuard(t *testing.T) {
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, nil, trig)

	s.TriggerJobSearch(context.Background())
	s.TriggerJobSearch(context.Background())

	if got := trig.triggerCalls(); got != 1 {
		t.Fatalf("expected exactly one remote trigger call, got %d", got)
	}
	if !hasNotification(s.Snapshot(), "already in progress", SeverityInfo) {
		t.Fatalf("expected informational notification on re-entrant call")
	}
}

func TestTriggerJobSearch_ErrorClearsFlag(t *testing.T) {
	trig := &fakeTrigger{err: errors.New("ingestion unreachable")}
	s := newTestStore(nil, nil, nil, nil, trig)

	s.TriggerJobSearch(context.Background())

	snap := s.Snapshot()
	if snap.Searching {
		t.Fatalf("expected searching flag cleared so the user may retry")
	}
	if !hasNotification(snap, "ingestion unreachable", SeverityError) {
		t.Fatalf("expected error notification")
	}
}

func TestTriggerJobSearch_ClearsInbox(t *testing.T) {
	feed := &fakeFeed{}
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, feed, trig)

	s.SubscribeToJobs(context.Background())
	feed.last.ch <- job.Job{ID: uuid.New(), Title: "Old"}
	waitFor(t, func() bool { return len(s.Snapshot().NewJobs) == 1 })

	s.TriggerJobSearch(context.Background())
	if got := len(s.Snapshot().NewJobs); got != 0 {
		t.Fatalf("expected inbox cleared on trigger, got %d", got)
	}
	s.UnsubscribeFromJobs()
}

func TestTriggerJobSearch_LockHeldElsewhereSkipsRemoteCall(t *testing.T) {
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, nil, trig)
	s.lock = &fakeLocker{held: true}

	s.TriggerJobSearch(context.Background())

	if got := trig.triggerCalls(); got != 0 {
		t.Fatalf("expected no remote trigger call while lock held, got %d", got)
	}
	snap := s.Snapshot()
	if snap.Searching {
		t.Fatalf("expected searching flag cleared when lock held elsewhere")
	}
	if !hasNotification(snap, "already in progress", SeverityInfo) {
		t.Fatalf("expected informational notification when lock held elsewhere")
	}
}

func TestTriggerJobSearch_ReleasesLockOnTriggerError(t *testing.T) {
	trig := &fakeTrigger{err: errors.New("ingestion unreachable")}
	lock := &fakeLocker{}
	s := newTestStore(nil, nil, nil, nil, trig)
	s.lock = lock

	s.TriggerJobSearch(context.Background())

	if got := lock.deleteCalls(); got != 1 {
		t.Fatalf("expected lock released after failed trigger, got %d deletes", got)
	}

	// With the lock released a retry must reach the remote again.
	trig.mu.Lock()
	trig.err = nil
	trig.mu.Unlock()
	s.TriggerJobSearch(context.Background())
	if got := trig.triggerCalls(); got != 2 {
		t.Fatalf("expected retry to reach the remote, got %d calls", got)
	}
}

func TestTriggerJobSearch_LockErrorDoesNotBlockTrigger(t *testing.T) {
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, nil, trig)
	s.lock = &fakeLocker{acquireErr: errors.New("redis gone")}

	s.TriggerJobSearch(context.Background())

	if got := trig.triggerCalls(); got != 1 {
		t.Fatalf("expected trigger despite lock backend error, got %d calls", got)
	}
}

func TestTriggerJobSearch_LockTTLTracksSearchWait(t *testing.T) {
	trig := &fakeTrigger{msg: "triggered"}
	lock := &fakeLocker{}
	s := newTestStore(nil, nil, nil, nil, trig)
	s.lock = lock

	s.TriggerJobSearch(context.Background())

	lock.mu.Lock()
	ttl := lock.lastTTL
	lock.mu.Unlock()
	if ttl != s.searchWait {
		t.Fatalf("expected lock TTL %v to match the bounded wait, got %v", s.searchWait, ttl)
	}
}

func TestTriggerJobSearch_BoundedWaitEmitsNoNewJobs(t *testing.T) {
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, nil, trig)
	s.searchWait = 10 * time.Millisecond

	s.TriggerJobSearch(context.Background())

	waitFor(t, func() bool { return !s.Snapshot().Searching })
	if !hasNotification(s.Snapshot(), "No new jobs", SeverityInfo) {
		t.Fatalf("expected heuristic completion notification")
	}
}

func TestTriggerJobSearch_StaleTimerIgnoresNewerSearch(t *testing.T) {
	feed := &fakeFeed{}
	trig := &fakeTrigger{msg: "triggered"}
	s := newTestStore(nil, nil, nil, feed, trig)

	s.SubscribeToJobs(context.Background())
	s.TriggerJobSearch(context.Background()) // generation 1
	feed.last.ch <- job.Job{ID: uuid.New(), Title: "X"}
	waitFor(t, func() bool { return !s.Snapshot().Searching })

	s.TriggerJobSearch(context.Background()) // generation 2

	// The first search's timer firing now must not clear the second search.
	s.finishSearchIfStale(1)
	if !s.Snapshot().Searching {
		t.Fatalf("stale timer cleared a newer search's in-progress flag")
	}
	s.UnsubscribeFromJobs()
}

func TestUpdateJobStatus_OptimisticBeforeRemoteResolves(t *testing.T) {
	id := uuid.New()
	saved := job.StatusSaved
	jr := &fakeJobRepo{statusGate: make(chan struct{})}
	s := newTestStore(jr, nil, nil, nil, nil)
	s.mu.Lock()
	s.allJobs = []job.Job{{ID: id, Title: "Platform Engineer", Status: &saved}}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.UpdateJobStatus(context.Background(), id, job.StatusOffer)
		close(done)
	}()

	// The in-memory collection must show the new status while the remote
	// write is still in flight.
	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.AllJobs[0].Status != nil && *snap.AllJobs[0].Status == job.StatusOffer
	})

	close(jr.statusGate)
	<-done

	if !hasNotification(s.Snapshot(), "status updated", SeveritySuccess) {
		t.Fatalf("expected success notification after remote resolves")
	}
}

func TestUpdateJobStatus_ReconcilesOnRemoteFailure(t *testing.T) {
	id := uuid.New()
	applied := job.StatusApplied
	jr := &fakeJobRepo{
		statErr: errors.New("write refused"),
		byID:    map[uuid.UUID]job.Job{id: {ID: id, Title: "QA", Status: &applied}},
	}
	s := newTestStore(jr, nil, nil, nil, nil)
	s.mu.Lock()
	s.allJobs = []job.Job{{ID: id, Title: "QA", Status: &applied}}
	s.mu.Unlock()

	s.UpdateJobStatus(context.Background(), id, job.StatusOffer)

	snap := s.Snapshot()
	if snap.AllJobs[0].Status == nil || *snap.AllJobs[0].Status != job.StatusApplied {
		t.Fatalf("expected status reconciled back to remote value, got %v", snap.AllJobs[0].Status)
	}
	if !hasNotification(snap, "Error updating job status", SeverityError) {
		t.Fatalf("expected error notification")
	}
}

func TestUpdateJobStatus_RejectsUnknownStatus(t *testing.T) {
	jr := &fakeJobRepo{}
	s := newTestStore(jr, nil, nil, nil, nil)

	s.UpdateJobStatus(context.Background(), uuid.New(), "Ghosted")

	if jr.statusCalls != 0 {
		t.Fatalf("expected no remote call for unknown status")
	}
	if !hasNotification(s.Snapshot(), "unknown job status", SeverityError) {
		t.Fatalf("expected error notification")
	}
}

func TestUpdateJobDetails_RemoteFirst(t *testing.T) {
	id := uuid.New()
	jr := &fakeJobRepo{detErr: errors.New("down")}
	s := newTestStore(jr, nil, nil, nil, nil)
	s.mu.Lock()
	s.allJobs = []job.Job{{ID: id, Notes: "original"}}
	sel := s.allJobs[0]
	s.selectedJob = &sel
	s.mu.Unlock()

	notes := "edited"
	s.UpdateJobDetails(context.Background(), id, job.DetailsPatch{Notes: &notes})

	snap := s.Snapshot()
	if snap.AllJobs[0].Notes != "original" || snap.SelectedJob.Notes != "original" {
		t.Fatalf("expected local state untouched on remote failure")
	}
	if !hasNotification(snap, "Error saving details", SeverityError) {
		t.Fatalf("expected error notification")
	}

	jr.mu.Lock()
	jr.detErr = nil
	jr.mu.Unlock()
	tracked := true
	s.UpdateJobDetails(context.Background(), id, job.DetailsPatch{Notes: &notes, IsTracked: &tracked})

	snap = s.Snapshot()
	if snap.AllJobs[0].Notes != "edited" || !snap.AllJobs[0].IsTracked {
		t.Fatalf("expected patch merged into all-jobs cache")
	}
	if snap.SelectedJob.Notes != "edited" || !snap.SelectedJob.IsTracked {
		t.Fatalf("expected patch merged into selected job")
	}
}

func TestSaveProfile_InsertRefetchesAndNotifies(t *testing.T) {
	pr := &fakeProfileRepo{}
	s := newTestStore(nil, pr, nil, nil, nil)

	s.SaveProfile(context.Background(), profile.Profile{ProfileName: "SWE", ResumeContext: "..."})

	snap := s.Snapshot()
	if len(snap.Profiles) != 1 || snap.Profiles[0].ProfileName != "SWE" {
		t.Fatalf("expected profiles collection refetched after save")
	}
	if !hasNotification(snap, "saved", SeveritySuccess) {
		t.Fatalf("expected success notification")
	}
	pr.mu.Lock()
	calls := pr.listCalls
	pr.mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected exactly one refetch, got %d", calls)
	}
}

func TestDeleteProfile_RemovesExactlyOneAndClosesModal(t *testing.T) {
	keep := profile.Profile{ID: uuid.New(), ProfileName: "Keep"}
	gone := profile.Profile{ID: uuid.New(), ProfileName: "Gone"}
	pr := &fakeProfileRepo{list: []profile.Profile{keep, gone}}
	s := newTestStore(nil, pr, nil, nil, nil)
	s.mu.Lock()
	s.profiles = []profile.Profile{keep, gone}
	s.mu.Unlock()

	s.OpenConfirmationModal("Delete profile?", "This also removes its searches.", func(ctx context.Context) {
		s.DeleteProfile(ctx, gone.ID)
	})
	if !s.Snapshot().Modal.IsOpen {
		t.Fatalf("expected modal open")
	}

	s.ConfirmModal(context.Background())

	snap := s.Snapshot()
	if snap.Modal.IsOpen {
		t.Fatalf("expected modal closed after confirm completes")
	}
	if len(snap.Profiles) != 1 || snap.Profiles[0].ID != keep.ID {
		t.Fatalf("expected exactly the deleted profile removed")
	}
	if !hasNotification(snap, "Profile deleted", SeveritySuccess) {
		t.Fatalf("expected success notification")
	}
}

func TestDeleteProfile_ErrorStillClosesModal(t *testing.T) {
	p := profile.Profile{ID: uuid.New(), ProfileName: "P"}
	pr := &fakeProfileRepo{list: []profile.Profile{p}, deleteErr: errors.New("refused")}
	s := newTestStore(nil, pr, nil, nil, nil)
	s.mu.Lock()
	s.profiles = []profile.Profile{p}
	s.mu.Unlock()

	s.OpenConfirmationModal("Delete profile?", "", func(ctx context.Context) {
		s.DeleteProfile(ctx, p.ID)
	})
	s.ConfirmModal(context.Background())

	snap := s.Snapshot()
	if snap.Modal.IsOpen {
		t.Fatalf("expected modal closed unconditionally")
	}
	if len(snap.Profiles) != 1 {
		t.Fatalf("expected local state untouched on failed delete")
	}
	if !hasNotification(snap, "Error deleting profile", SeverityError) {
		t.Fatalf("expected error notification")
	}
}

func TestFetchAllData_PartialFailure(t *testing.T) {
	jr := &fakeJobRepo{listErr: errors.New("jobs table missing")}
	pr := &fakeProfileRepo{list: []profile.Profile{{ID: uuid.New(), ProfileName: "A"}}}
	sr := &fakeSearchRepo{list: []search.Search{{ID: uuid.New(), SearchName: "B"}}}
	s := newTestStore(jr, pr, sr, nil, nil)

	report := s.FetchAllData(context.Background())

	if report.Jobs == nil {
		t.Fatalf("expected jobs failure reported")
	}
	if report.Profiles != nil || report.Searches != nil {
		t.Fatalf("expected sibling fetches unaffected")
	}
	if !report.Partial() {
		t.Fatalf("expected partial report")
	}

	snap := s.Snapshot()
	if snap.Loading {
		t.Fatalf("expected loading cleared after the barrier")
	}
	if len(snap.Profiles) != 1 || len(snap.Searches) != 1 {
		t.Fatalf("expected successful collections applied")
	}
	if len(snap.AllJobs) != 0 {
		t.Fatalf("expected failed collection left at last-known value")
	}
	if len(snap.Notifications) != 0 {
		t.Fatalf("aggregate load failures must not raise user-facing toasts")
	}
}

func TestNotifications_OrderAndDismiss(t *testing.T) {
	s := newTestStore(nil, nil, nil, nil, nil)

	first := s.AddNotification("one", SeverityInfo)
	second := s.AddNotification("two", SeveritySuccess)
	if first == second {
		t.Fatalf("expected distinct notification ids")
	}

	snap := s.Snapshot()
	if len(snap.Notifications) != 2 || snap.Notifications[0].Message != "one" {
		t.Fatalf("expected insertion order preserved")
	}

	s.RemoveNotification(first)
	snap = s.Snapshot()
	if len(snap.Notifications) != 1 || snap.Notifications[0].ID != second {
		t.Fatalf("expected only the dismissed toast removed")
	}
}

func TestOpenConfirmationModal_ReplacesPending(t *testing.T) {
	s := newTestStore(nil, nil, nil, nil, nil)

	var firstRan, secondRan bool
	s.OpenConfirmationModal("first", "", func(context.Context) { firstRan = true })
	s.OpenConfirmationModal("second", "", func(ctx context.Context) {
		secondRan = true
		s.CloseConfirmationModal()
	})

	s.ConfirmModal(context.Background())

	if firstRan {
		t.Fatalf("replaced confirmation must never run")
	}
	if !secondRan {
		t.Fatalf("expected the pending confirmation to run")
	}
	if s.Snapshot().Modal.IsOpen {
		t.Fatalf("expected modal closed")
	}
}
