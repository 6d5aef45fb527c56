package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is one portfolio entry. TechStack keeps the comma-separated form
// it arrives in ("React, Node, Mongo"); the client splits it for display.
type Project struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	TechStack   string     `json:"techStack" db:"tech_stack"`
	GitHubLink  string     `json:"gitHubLink" db:"github_link"`
	ProjectLink string     `json:"projectLink" db:"project_link"`
	Image       Attachment `json:"image"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// BeforeSave normalizes fields and assigns identity and timestamps.
func (p *Project) BeforeSave() {
	p.Title = strings.TrimSpace(p.Title)
	p.TechStack = strings.TrimSpace(p.TechStack)

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if p.Description == "" {
		return NewValidationError("description", "description is required")
	}
	return nil
}
