package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/service"
)

// TokenCookie is the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

const accountKey = "account"

// Authenticate gates protected routes. It verifies the session cookie and
// attaches the resolved account to the request context; identity is derived
// fresh from the token on every request, never cached.
func Authenticate(authService service.AuthService, accountRepo domain.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			abortJSON(c, http.StatusUnauthorized, "Please login to access this resource")
			return
		}

		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				abortJSON(c, http.StatusUnauthorized, "Token has expired")
				return
			}
			abortJSON(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		account, err := accountRepo.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			// A validly-signed token for a missing account is treated as
			// unauthenticated, not as an error.
			if errors.Is(err, domain.ErrNotFound) {
				abortJSON(c, http.StatusUnauthorized, "Please login to access this resource")
				return
			}
			abortJSON(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account attached by Authenticate.
func CurrentAccount(c *gin.Context) (*domain.Account, bool) {
	value, exists := c.Get(accountKey)
	if !exists {
		return nil, false
	}
	account, ok := value.(*domain.Account)
	return account, ok
}

func abortJSON(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
