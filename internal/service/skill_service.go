package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/domain/dto"
)

type SkillService interface {
	CreateSkill(ctx context.Context, req *dto.SkillCreateRequest) (*domain.Skill, error)
	GetSkills(ctx context.Context) ([]*domain.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillUpdateRequest) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	skillRepo domain.SkillRepository
}

func NewSkillService(skillRepo domain.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) CreateSkill(ctx context.Context, req *dto.SkillCreateRequest) (*domain.Skill, error) {
	skill := req.ToSkill()
	skill.BeforeSave()

	if err := skill.Validate(); err != nil {
		return nil, err
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *skillService) GetSkills(ctx context.Context) ([]*domain.Skill, error) {
	skills, err := s.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	return skills, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, id uuid.UUID, req *dto.SkillUpdateRequest) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	req.ApplyTo(skill)
	skill.BeforeSave()

	if err := skill.Validate(); err != nil {
		return nil, err
	}

	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
