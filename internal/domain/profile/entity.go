package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a saved resume bundle usable across searches. ResumeContext is
// the full resume text blob handed to the AI collaborator.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	ProfileName   string    `json:"profile_name"`
	ResumeContext string    `json:"resume_context"`
	ContactName   *string   `json:"contact_name,omitempty"`
	ContactEmail  *string   `json:"contact_email,omitempty"`
	ContactPhone  *string   `json:"contact_phone,omitempty"`
	ContactLinks  *string   `json:"contact_links,omitempty"`
	Summary       *string   `json:"summary,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
