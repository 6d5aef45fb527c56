package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"portfolioBackend/internal/domain"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, email, password, resume_url, name, title, subtitle, description, roles, avatar_url, role, created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
        INSERT INTO accounts (` + accountColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.Password,
		account.Resume.URL,
		account.About.Name,
		account.About.Title,
		account.About.Subtitle,
		account.About.Description,
		joinRoles(account.About.Roles),
		account.About.Avatar.URL,
		account.Role,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

func (r *accountRepository) Get(ctx context.Context) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at ASC LIMIT 1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query))
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *accountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.Profile) error {
	query := `
        UPDATE accounts
        SET name = $2, title = $3, subtitle = $4, description = $5, roles = $6, avatar_url = $7, updated_at = NOW()
        WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		id,
		profile.Name,
		profile.Title,
		profile.Subtitle,
		profile.Description,
		joinRoles(profile.Roles),
		profile.Avatar.URL,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *accountRepository) UpdateResume(ctx context.Context, id uuid.UUID, resumeURL string) error {
	query := `UPDATE accounts SET resume_url = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, resumeURL)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *accountRepository) SetPassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `UPDATE accounts SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, hashedPassword)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *accountRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	account := &domain.Account{}
	var roles string

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Resume.URL,
		&account.About.Name,
		&account.About.Title,
		&account.About.Subtitle,
		&account.About.Description,
		&roles,
		&account.About.Avatar.URL,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	account.About.Roles = splitRoles(roles)
	return account, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Roles are kept comma-joined in a single column, mirroring the form the
// dashboard submits them in.
func joinRoles(roles []string) string {
	return strings.Join(roles, ",")
}

func splitRoles(roles string) []string {
	if roles == "" {
		return []string{}
	}
	return strings.Split(roles, ",")
}
