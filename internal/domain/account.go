package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment wraps a hosted file reference. Images, avatars and resumes are
// plain URLs; the site never stores file contents.
type Attachment struct {
	URL string `json:"url"`
}

// Profile is the public-facing part of the admin account rendered on the
// portfolio's hero section.
type Profile struct {
	Name        string     `json:"name" db:"name"`
	Title       string     `json:"title" db:"title"`
	Subtitle    string     `json:"subtitle" db:"subtitle"`
	Description string     `json:"description" db:"description"`
	Roles       []string   `json:"roles" db:"roles"`
	Avatar      Attachment `json:"avatar"`
}

// Account is the single administrative identity. The password hash is never
// serialized to clients.
type Account struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	Password  string     `json:"-" db:"password"`
	Resume    Attachment `json:"resume"`
	About     Profile    `json:"about"`
	Role      string     `json:"role" db:"role"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Profile defaults applied to a freshly seeded account.
const (
	DefaultProfileName        = "Sarfaraz"
	DefaultProfileTitle       = "Hi, I am"
	DefaultProfileSubtitle    = "Full Stack Developer"
	DefaultProfileDescription = "I build things."
	DefaultAvatarURL          = "https://placehold.co/500x500"
)

func DefaultProfile() Profile {
	return Profile{
		Name:        DefaultProfileName,
		Title:       DefaultProfileTitle,
		Subtitle:    DefaultProfileSubtitle,
		Description: DefaultProfileDescription,
		Roles:       []string{"Frontend Developer", "Backend Developer", "UI/UX Designer"},
		Avatar:      Attachment{URL: DefaultAvatarURL},
	}
}

// BeforeSave fills in identity and timestamps for new accounts.
func (a *Account) BeforeSave() {
	now := time.Now()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Role == "" {
		a.Role = "admin"
	}
}
