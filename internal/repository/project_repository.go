package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) domain.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, title, description, tech_stack, github_link, project_link, image_url, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
        INSERT INTO projects (` + projectColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.TechStack,
		project.GitHubLink,
		project.ProjectLink,
		project.Image.URL,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

func (r *projectRepository) GetAll(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		project := &domain.Project{}
		err := rows.Scan(
			&project.ID, &project.Title, &project.Description, &project.TechStack,
			&project.GitHubLink, &project.ProjectLink, &project.Image.URL,
			&project.CreatedAt, &project.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project := &domain.Project{}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.Title, &project.Description, &project.TechStack,
		&project.GitHubLink, &project.ProjectLink, &project.Image.URL,
		&project.CreatedAt, &project.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
        UPDATE projects
        SET title = $2, description = $3, tech_stack = $4, github_link = $5, project_link = $6, image_url = $7, updated_at = $8
        WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.TechStack,
		project.GitHubLink,
		project.ProjectLink,
		project.Image.URL,
		project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
