package dto

import (
	"strings"

	"portfolioBackend/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest is a merge-patch: only non-nil fields are applied.
// Roles arrives as a comma-separated string, matching the dashboard form.
type ProfileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Roles       *string `json:"roles,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

// ApplyTo overlays the provided fields onto an existing profile.
func (req *ProfileUpdateRequest) ApplyTo(profile *domain.Profile) {
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Subtitle != nil {
		profile.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Avatar != nil {
		profile.Avatar.URL = *req.Avatar
	}
	if req.Roles != nil {
		profile.Roles = SplitRoles(*req.Roles)
	}
}

// SplitRoles turns "a, b ,c" into ["a","b","c"], dropping empty entries and
// preserving order.
func SplitRoles(roles string) []string {
	parts := strings.Split(roles, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

type ResumeUpdateRequest struct {
	Resume string `json:"resume" binding:"required"`
}
