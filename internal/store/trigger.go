package store

import (
	"context"
	"time"
)

const triggerLockKey = "jobsearch:trigger:lock"

// TriggerJobSearch requests an external ingestion run. Re-entrant calls while
// a search is in progress produce an informational notification instead of a
// second remote call. The same guard is taken as a cache lock keyed on
// triggerLockKey, so a run survives a process restart as "in progress" until
// its TTL lapses.
//
// The backend offers no "search finished" event, so success arms a bounded
// wait: if the flag is still set with no realtime arrivals when the wait
// expires, the search is declared finished with a "no new jobs" notice. The
// timer is keyed to the generation that armed it, so a stale timer from a
// superseded search cannot touch a newer one.
func (s *Store) TriggerJobSearch(ctx context.Context) {
	s.mu.Lock()
	if s.searching {
		s.mu.Unlock()
		s.AddNotification("A job search is already in progress.", SeverityInfo)
		return
	}
	s.searching = true
	s.newJobs = nil
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	if s.trigger == nil {
		s.clearSearching()
		s.AddNotification("Error: job search trigger is not configured.", SeverityError)
		return
	}

	if s.lock != nil {
		acquired, err := s.lock.SetIfNotExists(ctx, triggerLockKey, "1", s.searchWait)
		if err != nil {
			s.logf("[Store] trigger lock unavailable | error=%v", err)
		} else if !acquired {
			s.clearSearching()
			s.AddNotification("A job search is already in progress.", SeverityInfo)
			return
		}
	}

	msg, err := s.trigger.TriggerSearch(ctx)
	if err != nil {
		s.clearSearching()
		s.releaseTriggerLock(ctx)
		s.logf("[Store] trigger failed | error=%v", err)
		s.AddNotification("Error: "+err.Error(), SeverityError)
		return
	}

	if msg == "" {
		msg = "Job search triggered."
	}
	s.AddNotification(msg, SeveritySuccess)

	time.AfterFunc(s.searchWait, func() {
		s.finishSearchIfStale(gen)
	})
}

func (s *Store) clearSearching() {
	s.mu.Lock()
	s.searching = false
	s.mu.Unlock()
}

func (s *Store) releaseTriggerLock(ctx context.Context) {
	if s.lock == nil {
		return
	}
	if err := s.lock.Delete(ctx, triggerLockKey); err != nil {
		s.logf("[Store] trigger lock release failed | error=%v", err)
	}
}

func (s *Store) finishSearchIfStale(gen uint64) {
	s.mu.Lock()
	if !s.searching || s.searchGen != gen {
		s.mu.Unlock()
		return
	}
	s.searching = false
	s.mu.Unlock()

	s.AddNotification("Job search complete. No new jobs found this time.", SeverityInfo)
}
