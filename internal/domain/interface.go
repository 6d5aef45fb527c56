package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository persists the administrative account. Lookups return
// ErrNotFound when no row matches.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error

	// Get returns the singleton account (the oldest row). The portfolio has
	// exactly one admin, so no filter is needed.
	Get(ctx context.Context) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)

	UpdateProfile(ctx context.Context, id uuid.UUID, profile Profile) error
	UpdateResume(ctx context.Context, id uuid.UUID, resumeURL string) error

	// SetPassword is the only operation that writes the password column;
	// profile updates never touch the hash.
	SetPassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetAll(ctx context.Context) ([]*Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetAll(ctx context.Context) ([]*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
