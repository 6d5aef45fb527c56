package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
)

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Get(_ context.Context) (*domain.Account, error) {
	for _, account := range r.accounts {
		copied := *account
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAccountRepo) UpdateProfile(_ context.Context, id uuid.UUID, profile domain.Profile) error {
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.About = profile
	return nil
}

func (r *fakeAccountRepo) UpdateResume(_ context.Context, id uuid.UUID, resumeURL string) error {
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.Resume.URL = resumeURL
	return nil
}

func (r *fakeAccountRepo) SetPassword(_ context.Context, id uuid.UUID, hashedPassword string) error {
	account, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.Password = hashedPassword
	return nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password string) *domain.Account {
	t.Helper()

	hashed, err := HashPassword(password)
	require.NoError(t, err)

	account := &domain.Account{
		Email:    email,
		Password: hashed,
		About:    domain.DefaultProfile(),
	}
	account.BeforeSave()
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeAccountRepo()
	account := seedAccount(t, repo, "admin@example.com", "s3cret")
	svc := NewAuthService(testConfig(), repo)

	got, token, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "admin@example.com", "s3cret")
	svc := NewAuthService(testConfig(), repo)

	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	_, _, wrongErr := svc.Login(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeAccountRepo())

	claims := &Claims{
		AccountID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenForgedSignature(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeAccountRepo())

	claims := &Claims{
		AccountID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCarriesFifteenDayExpiry(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeAccountRepo())

	token, err := svc.IssueToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenDuration), claims.ExpiresAt.Time, time.Minute)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hashed)

	assert.True(t, CheckPassword(hashed, "hunter2"))
	assert.False(t, CheckPassword(hashed, "hunter3"))
}
