package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/domain/dto"
)

type AccountService interface {
	// GetPublicProfile returns the singleton account for the public site.
	GetPublicProfile(ctx context.Context) (*domain.Account, error)

	// GetResumeURL returns the stored resume link; domain.ErrNotFound when
	// the account is missing or the link is unset.
	GetResumeURL(ctx context.Context) (string, error)

	// UpdateProfile merge-patches the given account's profile: only fields
	// present in the request change.
	UpdateProfile(ctx context.Context, account *domain.Account, req *dto.ProfileUpdateRequest) error

	UpdateResume(ctx context.Context, account *domain.Account, resumeURL string) error

	// EnsureAdmin provisions the administrative account at startup if it is
	// missing and refreshes its password hash when the configured password
	// changed.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type accountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) GetPublicProfile(ctx context.Context) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) GetResumeURL(ctx context.Context) (string, error) {
	account, err := s.accountRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}
	if account.Resume.URL == "" {
		return "", domain.ErrNotFound
	}
	return account.Resume.URL, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, account *domain.Account, req *dto.ProfileUpdateRequest) error {
	req.ApplyTo(&account.About)

	if err := s.accountRepo.UpdateProfile(ctx, account.ID, account.About); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *accountService) UpdateResume(ctx context.Context, account *domain.Account, resumeURL string) error {
	if resumeURL == "" {
		return domain.NewValidationError("resume", "resume URL is required")
	}

	if err := s.accountRepo.UpdateResume(ctx, account.ID, resumeURL); err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	account.Resume.URL = resumeURL
	return nil
}

func (s *accountService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	if errors.Is(err, domain.ErrNotFound) {
		hashed, err := HashPassword(password)
		if err != nil {
			return err
		}

		account := &domain.Account{
			Email:    email,
			Password: hashed,
			About:    domain.DefaultProfile(),
			Role:     "admin",
		}
		account.BeforeSave()

		if err := s.accountRepo.Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		log.Info().Str("email", email).Msg("admin account created")
		return nil
	}

	// Re-hash only when the configured password actually changed.
	if !CheckPassword(existing.Password, password) {
		hashed, err := HashPassword(password)
		if err != nil {
			return err
		}
		if err := s.accountRepo.SetPassword(ctx, existing.ID, hashed); err != nil {
			return fmt.Errorf("failed to update admin password: %w", err)
		}
		log.Info().Str("email", email).Msg("admin password updated")
		return nil
	}

	log.Info().Str("email", email).Msg("admin account already exists")
	return nil
}
