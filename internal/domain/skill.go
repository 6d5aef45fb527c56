package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Skill is one entry of the public skills grid: a technology name, a
// proficiency percentage and an icon URL.
type Skill struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Percentage int        `json:"percentage" db:"percentage"`
	Image      Attachment `json:"image"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// BeforeSave normalizes fields and assigns identity and timestamps.
func (s *Skill) BeforeSave() {
	s.Name = strings.TrimSpace(s.Name)

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}

// Validate checks invariants shared by create and update paths. A zero
// percentage is valid; the range is 0-100 inclusive.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if s.Percentage < 0 || s.Percentage > 100 {
		return NewValidationError("percentage", "percentage must be between 0 and 100")
	}
	return nil
}
