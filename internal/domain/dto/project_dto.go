package dto

import "portfolioBackend/internal/domain"

type ProjectCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	TechStack   string `json:"techStack"`
	GitHubLink  string `json:"gitHubLink"`
	ProjectLink string `json:"projectLink"`
	Image       string `json:"image" binding:"required"`
}

func (req *ProjectCreateRequest) ToProject() *domain.Project {
	return &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GitHubLink:  req.GitHubLink,
		ProjectLink: req.ProjectLink,
		Image:       domain.Attachment{URL: req.Image},
	}
}

// ProjectUpdateRequest supports partial updates; absent fields keep their
// stored values, so a blank link stays "" rather than becoming null.
type ProjectUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	TechStack   *string `json:"techStack,omitempty"`
	GitHubLink  *string `json:"gitHubLink,omitempty"`
	ProjectLink *string `json:"projectLink,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func (req *ProjectUpdateRequest) ApplyTo(project *domain.Project) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TechStack != nil {
		project.TechStack = *req.TechStack
	}
	if req.GitHubLink != nil {
		project.GitHubLink = *req.GitHubLink
	}
	if req.ProjectLink != nil {
		project.ProjectLink = *req.ProjectLink
	}
	if req.Image != nil {
		project.Image.URL = *req.Image
	}
}
