package store

import "context"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification is an ephemeral toast. Ids come from a monotonic counter owned
// by the store, so they are unique regardless of call timing.
type Notification struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

// AddNotification appends a toast and returns its id. Order of appearance is
// insertion order.
func (s *Store) AddNotification(message string, severity Severity) int64 {
	s.mu.Lock()
	s.notifSeq++
	n := Notification{ID: s.notifSeq, Message: message, Severity: severity}
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	if s.events != nil {
		s.events.PublishNotification(n)
	}
	return n.ID
}

// RemoveNotification dismisses a toast by id; unknown ids are ignored.
func (s *Store) RemoveNotification(id int64) {
	s.mu.Lock()
	kept := s.notifications[:0:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
	s.mu.Unlock()
}

type modalState struct {
	isOpen    bool
	title     string
	message   string
	onConfirm func(ctx context.Context)
}

// OpenConfirmationModal sets the single pending-confirmation slot. Opening a
// new confirmation while one is open replaces it; the replaced action is
// discarded deliberately, never invoked.
func (s *Store) OpenConfirmationModal(title, message string, onConfirm func(ctx context.Context)) {
	s.mu.Lock()
	if s.modal.isOpen {
		s.logf("[Store] pending confirmation replaced | title=%q", s.modal.title)
	}
	s.modal = modalState{isOpen: true, title: title, message: message, onConfirm: onConfirm}
	s.mu.Unlock()
}

func (s *Store) CloseConfirmationModal() {
	s.mu.Lock()
	s.modal = modalState{}
	s.mu.Unlock()
}

// ConfirmModal invokes the bound confirm action, if any. The bound action is
// responsible for closing the modal (the delete handlers always do).
func (s *Store) ConfirmModal(ctx context.Context) {
	s.mu.Lock()
	fn := s.modal.onConfirm
	s.mu.Unlock()

	if fn != nil {
		fn(ctx)
	}
}
