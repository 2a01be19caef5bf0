package search

import (
	"time"

	"github.com/google/uuid"
)

// Search is a saved query configuration executed by the external ingestion
// run. ProfileID, when set, must reference an existing profile; the schema
// cascades deletes from profiles through searches to their jobs.
type Search struct {
	ID              uuid.UUID  `json:"id"`
	SearchName      string     `json:"search_name"`
	SearchTerm      string     `json:"search_term"`
	Country         string     `json:"country"`
	ProfileID       *uuid.UUID `json:"profile_id"`
	ExperienceLevel string     `json:"experience_level"`
	HoursOld        int        `json:"hours_old"`
	CreatedAt       time.Time  `json:"created_at"`
}
