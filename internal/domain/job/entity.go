package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSaved        = "Saved"
	StatusApplied      = "Applied"
	StatusInterviewing = "Interviewing"
	StatusOffer        = "Offer"
	StatusRejected     = "Rejected"
)

// Statuses lists the tracker columns in board order.
var Statuses = []string{StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Contact is a person attached to a job posting (recruiter, referral, hiring
// manager). Stored as a JSONB list on the job row.
type Contact struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Job rows are created by the external ingestion run, never by this service.
// The AI-derived fields (similarity score, rating, reason) are computed
// upstream and treated as opaque display data here.
type Job struct {
	ID              uuid.UUID  `json:"id"`
	SearchID        *uuid.UUID `json:"search_id,omitempty"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Description     string     `json:"description"`
	URL             string     `json:"url"`
	Status          *string    `json:"status"`
	IsTracked       bool       `json:"is_tracked"`
	Notes           string     `json:"notes"`
	Contacts        []Contact  `json:"contacts"`
	SimilarityScore *float64   `json:"similarity_score,omitempty"`
	AIRating        *int       `json:"ai_rating,omitempty"`
	AIReason        *string    `json:"ai_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DetailsPatch is a partial update of the user-editable job fields. Nil
// members are left untouched.
type DetailsPatch struct {
	IsTracked *bool      `json:"is_tracked,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Contacts  *[]Contact `json:"contacts,omitempty"`
}

// Apply merges the patch into a copy of j.
func (p DetailsPatch) Apply(j Job) Job {
	if p.IsTracked != nil {
		j.IsTracked = *p.IsTracked
	}
	if p.Notes != nil {
		j.Notes = *p.Notes
	}
	if p.Contacts != nil {
		j.Contacts = append([]Contact(nil), (*p.Contacts)...)
	}
	return j
}

// Empty reports whether the patch would change nothing.
func (p DetailsPatch) Empty() bool {
	return p.IsTracked == nil && p.Notes == nil && p.Contacts == nil
}
