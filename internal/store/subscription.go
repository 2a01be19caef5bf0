package store

import (
	"context"

	"jobpilot/internal/domain/job"
)

// SubscribeToJobs attaches the single realtime subscription. Calling it while
// a subscription is already held is a no-op; a failed attach is absorbed into
// an error notification like every other remote failure.
func (s *Store) SubscribeToJobs(ctx context.Context) {
	s.mu.Lock()
	if s.sub != nil {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if s.feed == nil {
		return
	}
	sub, err := s.feed.Subscribe(ctx)
	if err != nil {
		s.logf("[Store] subscribe failed | error=%v", err)
		s.AddNotification("Error connecting to the realtime job feed.", SeverityError)
		return
	}

	s.mu.Lock()
	if s.sub != nil {
		// Lost the race against a concurrent subscribe; keep the first one.
		s.mu.Unlock()
		sub.Close()
		return
	}
	done := make(chan struct{})
	s.sub = sub
	s.subDone = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		for j := range sub.Jobs() {
			s.handleJobInserted(j)
		}
	}()
}

// UnsubscribeFromJobs tears the channel down and clears the handle so a
// future SubscribeToJobs can reattach.
func (s *Store) UnsubscribeFromJobs() {
	s.mu.Lock()
	sub := s.sub
	done := s.subDone
	s.sub = nil
	s.subDone = nil
	s.mu.Unlock()

	if sub == nil {
		return
	}
	sub.Close()
	if done != nil {
		<-done
	}
}

// handleJobInserted applies one realtime insert: prepend to both collections,
// clear the in-progress search flag, and announce the arrival. Redelivered
// events (e.g. after a reconnect) are deduplicated by id.
func (s *Store) handleJobInserted(j job.Job) {
	s.mu.Lock()
	for _, existing := range s.allJobs {
		if existing.ID == j.ID {
			s.mu.Unlock()
			s.logf("[Store] duplicate insert dropped | id=%s", j.ID)
			return
		}
	}
	s.allJobs = append([]job.Job{j}, s.allJobs...)
	s.newJobs = append([]job.Job{j}, s.newJobs...)
	s.searching = false
	s.mu.Unlock()

	s.AddNotification("New job found: "+j.Title, SeverityInfo)
	if s.events != nil {
		s.events.PublishJobInserted(j)
	}
}
