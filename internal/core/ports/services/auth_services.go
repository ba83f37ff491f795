package services

import (
	"context"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
)

// TokenPair carries a signed access token and the raw refresh token to be set
// as an HTTP-only cookie.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthSvcFacade exposes login and token lifecycle operations.
type AuthSvcFacade interface {
	// Login authenticates a name + short-id pair and issues a token pair.
	Login(ctx context.Context, name, shortID string) (*domain.Member, *TokenPair, error)

	// Refresh validates a raw refresh token for the member and rotates it.
	Refresh(ctx context.Context, memberID, refreshToken string) (*domain.Member, *TokenPair, error)

	// Logout invalidates the member's refresh token.
	Logout(ctx context.Context, memberID string) error
}
