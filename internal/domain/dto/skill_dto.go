package dto

import "portfolioBackend/internal/domain"

// SkillCreateRequest carries the minimum field set for a new skill.
// Percentage binds through a pointer so that an explicit 0 passes the
// required check while a missing field still fails it.
type SkillCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Percentage *int   `json:"percentage" binding:"required,gte=0,lte=100"`
	Image      string `json:"image" binding:"required"`
}

func (req *SkillCreateRequest) ToSkill() *domain.Skill {
	return &domain.Skill{
		Name:       req.Name,
		Percentage: *req.Percentage,
		Image:      domain.Attachment{URL: req.Image},
	}
}

// SkillUpdateRequest supports partial updates; absent fields keep their
// stored values.
type SkillUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Percentage *int    `json:"percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	Image      *string `json:"image,omitempty"`
}

func (req *SkillUpdateRequest) ApplyTo(skill *domain.Skill) {
	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Percentage != nil {
		skill.Percentage = *req.Percentage
	}
	if req.Image != nil {
		skill.Image.URL = *req.Image
	}
}
