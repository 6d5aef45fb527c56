package main

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
)

// In-memory repositories backing the router tests.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Get(_ context.Context) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		copied := *account
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) UpdateProfile(_ context.Context, id uuid.UUID, profile domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.About = profile
	return nil
}

func (r *fakeAccountRepo) UpdateResume(_ context.Context, id uuid.UUID, resumeURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.Resume.URL = resumeURL
	return nil
}

func (r *fakeAccountRepo) SetPassword(_ context.Context, id uuid.UUID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.Password = hashedPassword
	return nil
}

type fakeSkillRepo struct {
	mu     sync.Mutex
	skills map[uuid.UUID]*domain.Skill
	order  []uuid.UUID
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[uuid.UUID]*domain.Skill{}}
}

func (r *fakeSkillRepo) Create(_ context.Context, skill *domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *skill
	r.skills[skill.ID] = &copied
	r.order = append(r.order, skill.ID)
	return nil
}

func (r *fakeSkillRepo) GetAll(_ context.Context) ([]*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.Skill{}
	for _, id := range r.order {
		if skill, ok := r.skills[id]; ok {
			copied := *skill
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	skill, ok := r.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *skill
	return &copied, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, skill *domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[skill.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *skill
	r.skills[skill.ID] = &copied
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.skills)
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*domain.Project
	order    []uuid.UUID
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[uuid.UUID]*domain.Project{}}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *project
	r.projects[project.ID] = &copied
	r.order = append(r.order, project.ID)
	return nil
}

func (r *fakeProjectRepo) GetAll(_ context.Context) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.Project{}
	for _, id := range r.order {
		if project, ok := r.projects[id]; ok {
			copied := *project
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}
