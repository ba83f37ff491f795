package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/MeiyanW/inner_court_app/internal/middleware"
	"github.com/MeiyanW/inner_court_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and token lifecycle requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login carries
// a per-IP rate limit to slow short-id guessing.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// Login godoc
// @Summary Member login
// @Description Authenticates a member by name and six-digit short id, returning an access token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, pair, err := h.authService.Login(c.Request.Context(), req.Name, req.ShortID)
	if err != nil {
		// A generic message regardless of which half was wrong.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid name or short id"})
		return
	}

	h.setRefreshCookie(c, member.MemberID, pair)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     pair.AccessToken,
		ExpiresAt: pair.AccessExpiresAt,
		Member:    dto.ToMemberResponse(member),
	})
}

// Refresh godoc
// @Summary Rotate the token pair
// @Description Exchanges the refresh token cookie for a new access token and a rotated refresh cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	memberID, token, ok := h.readRefreshCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	member, pair, err := h.authService.Refresh(c.Request.Context(), memberID, token)
	if err != nil {
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	h.setRefreshCookie(c, member.MemberID, pair)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     pair.AccessToken,
		ExpiresAt: pair.AccessExpiresAt,
		Member:    dto.ToMemberResponse(member),
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the member's refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if memberID, _, ok := h.readRefreshCookie(c); ok {
		if err := h.authService.Logout(c.Request.Context(), memberID); err != nil {
			middleware.GetLoggerFromContext(c).Warn("Failed to clear refresh token", "error", err)
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// setRefreshCookie stores "memberID:token" so Refresh can look up the stored
// hash without an access token.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, memberID string, pair *portssvc.TokenPair) {
	maxAge := int(time.Until(pair.RefreshExpiresAt).Seconds())
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		memberID+":"+pair.RefreshToken,
		maxAge,
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) readRefreshCookie(c *gin.Context) (memberID, token string, ok bool) {
	raw, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || raw == "" {
		return "", "", false
	}
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
