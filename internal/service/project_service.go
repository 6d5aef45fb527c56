package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/domain/dto"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.ProjectCreateRequest) (*domain.Project, error)
	GetProjects(ctx context.Context) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *dto.ProjectUpdateRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projectRepo domain.ProjectRepository
}

func NewProjectService(projectRepo domain.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) CreateProject(ctx context.Context, req *dto.ProjectCreateRequest) (*domain.Project, error) {
	project := req.ToProject()
	project.BeforeSave()

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, req *dto.ProjectUpdateRequest) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	req.ApplyTo(project)
	project.BeforeSave()

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
