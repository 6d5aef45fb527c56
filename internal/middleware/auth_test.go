package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/service"
)

type stubAccountRepo struct {
	account *domain.Account
}

func (r *stubAccountRepo) Create(context.Context, *domain.Account) error { return nil }

func (r *stubAccountRepo) Get(context.Context) (*domain.Account, error) {
	if r.account == nil {
		return nil, domain.ErrNotFound
	}
	return r.account, nil
}

func (r *stubAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	if r.account == nil || r.account.ID != id {
		return nil, domain.ErrNotFound
	}
	return r.account, nil
}

func (r *stubAccountRepo) GetByEmail(context.Context, string) (*domain.Account, error) {
	return nil, domain.ErrNotFound
}

func (r *stubAccountRepo) UpdateProfile(context.Context, uuid.UUID, domain.Profile) error {
	return nil
}

func (r *stubAccountRepo) UpdateResume(context.Context, uuid.UUID, string) error { return nil }

func (r *stubAccountRepo) SetPassword(context.Context, uuid.UUID, string) error { return nil }

const testSecret = "test-secret"

func newGateRouter(repo domain.AccountRepository) (*gin.Engine, service.AuthService) {
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(&config.Config{JWTSecret: testSecret}, repo)

	router := gin.New()
	router.GET("/protected", Authenticate(authService, repo), func(c *gin.Context) {
		account, ok := CurrentAccount(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "email": account.Email})
	})
	return router, authService
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingToken(t *testing.T) {
	router, _ := newGateRouter(&stubAccountRepo{})

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please login to access this resource")
}

func TestAuthenticateMalformedToken(t *testing.T) {
	router, _ := newGateRouter(&stubAccountRepo{})

	w := doRequest(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	account := &domain.Account{ID: uuid.New(), Email: "admin@example.com"}
	router, _ := newGateRouter(&stubAccountRepo{account: account})

	claims := &service.Claims{
		AccountID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doRequest(router, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthenticateUnknownAccount(t *testing.T) {
	router, authService := newGateRouter(&stubAccountRepo{})

	token, err := authService.IssueToken(uuid.New())
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please login to access this resource")
}

func TestAuthenticateValidToken(t *testing.T) {
	account := &domain.Account{ID: uuid.New(), Email: "admin@example.com"}
	router, authService := newGateRouter(&stubAccountRepo{account: account})

	token, err := authService.IssueToken(account.ID)
	require.NoError(t, err)

	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
