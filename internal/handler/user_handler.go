package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/domain/dto"
	"portfolioBackend/internal/middleware"
	"portfolioBackend/internal/service"
)

type UserHandler struct {
	authService    service.AuthService
	accountService service.AccountService
	cookieSecure   bool
}

func NewUserHandler(authService service.AuthService, accountService service.AccountService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		authService:    authService,
		accountService: accountService,
		cookieSecure:   cfg.CookieSecure,
	}
}

// Login handles POST /user/login. On success the session token is set as an
// HTTP-only cookie; the dashboard runs on a different origin, so SameSite is
// None and the cookie is sent with credentials.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please enter email & password")
		return
	}

	account, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, token, int(service.TokenDuration.Seconds()), "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Welcome Back, %s!", account.Email),
		"user":    account,
	})
}

// Logout handles GET /user/logout. It only overwrites the client cookie;
// tokens are stateless, so an unexpired token captured earlier remains valid
// until it runs out.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cookieSecure, true)

	respondMessage(c, http.StatusOK, "Logged Out Successfully")
}

// GetMe handles GET /user/me, the public profile endpoint.
func (h *UserHandler) GetMe(c *gin.Context) {
	account, err := h.accountService.GetPublicProfile(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    account,
	})
}

// AdminCheck handles GET /user/admin/check; reaching it at all means the
// session verifier accepted the token.
func (h *UserHandler) AdminCheck(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Please login to access this resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    account,
	})
}

// UpdateProfile handles PUT /user/update/profile as a merge-patch.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Please login to access this resource")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accountService.UpdateProfile(c.Request.Context(), account, &req); err != nil {
		respondDomainError(c, err, "User not found")
		return
	}

	respondMessage(c, http.StatusOK, "Profile Updated Successfully!")
}

// UpdateResume handles PUT /user/resume/update.
func (h *UserHandler) UpdateResume(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Please login to access this resource")
		return
	}

	var req dto.ResumeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a Resume URL")
		return
	}

	if err := h.accountService.UpdateResume(c.Request.Context(), account, req.Resume); err != nil {
		respondDomainError(c, err, "User not found")
		return
	}

	respondMessage(c, http.StatusOK, "Resume URL Updated Successfully!")
}

// DownloadResume handles GET /user/resume/download; it returns the stored
// URL and the client opens it in a new tab.
func (h *UserHandler) DownloadResume(c *gin.Context) {
	url, err := h.accountService.GetResumeURL(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Resume URL not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}
