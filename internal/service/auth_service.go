package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
)

// TokenDuration bounds a session. Tokens are stateless; there is no
// server-side revocation, so a replayed token stays valid until expiry.
const TokenDuration = 15 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the account identity inside the signed session token.
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Login verifies credentials and returns the account with a fresh
	// session token. Unknown email and wrong password both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)

	IssueToken(accountID uuid.UUID) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
}

type authService struct {
	accountRepo domain.AccountRepository
	jwtSecret   string
}

func NewAuthService(cfg *config.Config, accountRepo domain.AccountRepository) AuthService {
	return &authService{
		accountRepo: accountRepo,
		jwtSecret:   cfg.JWTSecret,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	if !CheckPassword(account.Password, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (s *authService) IssueToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected HMAC algorithm: %v", method.Alg())
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.AccountID == uuid.Nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a candidate against a stored hash in constant time.
func CheckPassword(hashedPassword, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(candidate)) == nil
}
