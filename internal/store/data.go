package store

import (
	"context"
	"sync"
)

// LoadReport carries the per-collection outcome of FetchAllData. A nil error
// means that collection was replaced; a non-nil error means it was left at
// its last-known value.
type LoadReport struct {
	Jobs     error
	Profiles error
	Searches error
}

// Partial reports whether at least one collection failed to load.
func (r LoadReport) Partial() bool {
	return r.Jobs != nil || r.Profiles != nil || r.Searches != nil
}

// FetchAllData runs the three collection fetches concurrently and joins on
// all of them before clearing the loading flag. Individual failures never
// abort the siblings and never fail the aggregate; they are logged and
// reported per collection.
func (s *Store) FetchAllData(ctx context.Context) LoadReport {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg     sync.WaitGroup
		report LoadReport
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		report.Jobs = s.fetchJobs(ctx)
	}()
	go func() {
		defer wg.Done()
		report.Profiles = s.fetchProfiles(ctx)
	}()
	go func() {
		defer wg.Done()
		report.Searches = s.fetchSearches(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	return report
}

func (s *Store) fetchJobs(ctx context.Context) error {
	rows, err := s.jobRepo.ListJobs(ctx)
	if err != nil {
		s.logf("[Store] jobs fetch failed | error=%v", err)
		return err
	}
	s.mu.Lock()
	s.allJobs = rows
	s.mu.Unlock()
	return nil
}

func (s *Store) fetchProfiles(ctx context.Context) error {
	rows, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		s.logf("[Store] profiles fetch failed | error=%v", err)
		return err
	}
	s.mu.Lock()
	s.profiles = rows
	s.mu.Unlock()
	return nil
}

func (s *Store) fetchSearches(ctx context.Context) error {
	rows, err := s.searchRepo.ListSearches(ctx)
	if err != nil {
		s.logf("[Store] searches fetch failed | error=%v", err)
		return err
	}
	s.mu.Lock()
	s.searches = rows
	s.mu.Unlock()
	return nil
}
