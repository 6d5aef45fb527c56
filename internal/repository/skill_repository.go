package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
)

type skillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
        INSERT INTO skills (id, name, percentage, image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.Name, skill.Percentage, skill.Image.URL, skill.CreatedAt, skill.UpdatedAt)

	return err
}

func (r *skillRepository) GetAll(ctx context.Context) ([]*domain.Skill, error) {
	query := `
        SELECT id, name, percentage, image_url, created_at, updated_at
        FROM skills
        ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []*domain.Skill{}
	for rows.Next() {
		skill := &domain.Skill{}
		err := rows.Scan(&skill.ID, &skill.Name, &skill.Percentage, &skill.Image.URL,
			&skill.CreatedAt, &skill.UpdatedAt)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

func (r *skillRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	skill := &domain.Skill{}

	query := `
        SELECT id, name, percentage, image_url, created_at, updated_at
        FROM skills WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&skill.ID, &skill.Name, &skill.Percentage, &skill.Image.URL,
		&skill.CreatedAt, &skill.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return skill, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
        UPDATE skills
        SET name = $2, percentage = $3, image_url = $4, updated_at = $5
        WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.Name, skill.Percentage, skill.Image.URL, skill.UpdatedAt)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
