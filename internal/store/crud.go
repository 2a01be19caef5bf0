package store

import (
	"context"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/profile"
	"jobpilot/internal/domain/search"

	"github.com/google/uuid"
)

// SaveProfile upserts: a zero id inserts, anything else updates by id. On
// success the whole collection is refetched; there is no optimistic merge for
// profile saves.
func (s *Store) SaveProfile(ctx context.Context, p profile.Profile) {
	var err error
	if p.ID == uuid.Nil {
		_, err = s.profileRepo.Insert(ctx, p)
	} else {
		err = s.profileRepo.Update(ctx, p)
	}
	if err != nil {
		s.logf("[Store] profile save failed | error=%v", err)
		s.AddNotification("Error saving profile.", SeverityError)
		return
	}

	s.AddNotification("Profile "+p.ProfileName+" saved!", SeveritySuccess)
	_ = s.fetchProfiles(ctx)
}

// DeleteProfile is invoked only through the confirmation modal's bound
// confirm callback. The local removal is optimistic (a filter, not a
// refetch); the modal closes unconditionally.
func (s *Store) DeleteProfile(ctx context.Context, id uuid.UUID) {
	defer s.CloseConfirmationModal()

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		s.logf("[Store] profile delete failed | id=%s error=%v", id, err)
		s.AddNotification("Error deleting profile.", SeverityError)
		return
	}

	s.mu.Lock()
	kept := s.profiles[:0:0]
	for _, p := range s.profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.profiles = kept
	s.mu.Unlock()

	s.AddNotification("Profile deleted.", SeveritySuccess)
}

// SaveSearch mirrors SaveProfile for saved search configurations.
func (s *Store) SaveSearch(ctx context.Context, sr search.Search) {
	var err error
	if sr.ID == uuid.Nil {
		_, err = s.searchRepo.Insert(ctx, sr)
	} else {
		err = s.searchRepo.Update(ctx, sr)
	}
	if err != nil {
		s.logf("[Store] search save failed | error=%v", err)
		s.AddNotification("Error saving search.", SeverityError)
		return
	}

	s.AddNotification("Search "+sr.SearchName+" saved!", SeveritySuccess)
	_ = s.fetchSearches(ctx)
}

func (s *Store) DeleteSearch(ctx context.Context, id uuid.UUID) {
	defer s.CloseConfirmationModal()

	if err := s.searchRepo.Delete(ctx, id); err != nil {
		s.logf("[Store] search delete failed | id=%s error=%v", id, err)
		s.AddNotification("Error deleting search.", SeverityError)
		return
	}

	s.mu.Lock()
	kept := s.searches[:0:0]
	for _, sr := range s.searches {
		if sr.ID != id {
			kept = append(kept, sr)
		}
	}
	s.searches = kept
	s.mu.Unlock()

	s.AddNotification("Search deleted.", SeveritySuccess)
}

// UpdateJobStatus applies the new status optimistically so the move feels
// instant, then issues the remote write. On failure the affected row is
// re-read and local state reconciled with it instead of being left diverged.
func (s *Store) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) {
	if !job.ValidStatus(status) {
		s.AddNotification("Error: unknown job status "+status+".", SeverityError)
		return
	}

	s.mu.Lock()
	setStatus(s.allJobs, id, status)
	setStatus(s.newJobs, id, status)
	if s.selectedJob != nil && s.selectedJob.ID == id {
		st := status
		s.selectedJob.Status = &st
	}
	s.mu.Unlock()

	if err := s.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logf("[Store] status update failed | id=%s error=%v", id, err)
		s.reconcileJob(ctx, id)
		s.AddNotification("Error updating job status.", SeverityError)
		return
	}

	s.AddNotification("Job status updated!", SeveritySuccess)
}

// UpdateJobDetails is remote-first: local state changes only after the write
// succeeds, and then in every place the job may be cached.
func (s *Store) UpdateJobDetails(ctx context.Context, id uuid.UUID, patch job.DetailsPatch) {
	if err := s.jobRepo.UpdateDetails(ctx, id, patch); err != nil {
		s.logf("[Store] details update failed | id=%s error=%v", id, err)
		s.AddNotification("Error saving details.", SeverityError)
		return
	}

	s.mu.Lock()
	applyPatch(s.allJobs, id, patch)
	applyPatch(s.newJobs, id, patch)
	if s.selectedJob != nil && s.selectedJob.ID == id {
		merged := patch.Apply(*s.selectedJob)
		s.selectedJob = &merged
	}
	s.mu.Unlock()

	s.AddNotification("Details saved!", SeveritySuccess)
}

// reconcileJob replaces every cached copy of the row with a fresh read. Used
// after a failed optimistic write; if the re-read also fails, the optimistic
// value stays and the error notification is the user's signal to refresh.
func (s *Store) reconcileJob(ctx context.Context, id uuid.UUID) {
	fresh, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		s.logf("[Store] reconcile fetch failed | id=%s error=%v", id, err)
		return
	}

	s.mu.Lock()
	replaceJob(s.allJobs, fresh)
	replaceJob(s.newJobs, fresh)
	if s.selectedJob != nil && s.selectedJob.ID == id {
		cp := fresh
		s.selectedJob = &cp
	}
	s.mu.Unlock()
}

func setStatus(list []job.Job, id uuid.UUID, status string) {
	for i := range list {
		if list[i].ID == id {
			st := status
			list[i].Status = &st
			return
		}
	}
}

func applyPatch(list []job.Job, id uuid.UUID, patch job.DetailsPatch) {
	for i := range list {
		if list[i].ID == id {
			list[i] = patch.Apply(list[i])
			return
		}
	}
}

func replaceJob(list []job.Job, fresh job.Job) {
	for i := range list {
		if list[i].ID == fresh.ID {
			list[i] = fresh
			return
		}
	}
}
