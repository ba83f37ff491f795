package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/platform/config"
	"github.com/MeiyanW/inner_court_app/internal/utils"
)

// tokenService implements login with the name + short-id pair and the refresh
// token lifecycle. Raw refresh tokens are returned once and stored only as
// bcrypt hashes on the member row.
type tokenService struct {
	memberRepo portsrepo.MemberRepository
	cfg        *config.Config
}

// NewTokenService creates the auth service.
func NewTokenService(cfg *config.Config, memberRepo portsrepo.MemberRepository) portssvc.AuthSvcFacade {
	return &tokenService{memberRepo: memberRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*tokenService)(nil)

// Login authenticates a name + short-id pair.
func (s *tokenService) Login(ctx context.Context, name, shortID string) (*domain.Member, *portssvc.TokenPair, error) {
	member, err := s.memberRepo.FindMemberByLogin(ctx, name, shortID)
	if err != nil {
		return nil, nil, err
	}
	if member == nil {
		return nil, nil, fmt.Errorf("%w: unknown name or short id", apperrors.ErrNotFound)
	}
	pair, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, nil, err
	}
	return member, pair, nil
}

// Refresh validates the raw refresh token against the stored hash and rotates
// the pair. An expired or mismatched token clears nothing; the caller must log
// in again.
func (s *tokenService) Refresh(ctx context.Context, memberID, refreshToken string) (*domain.Member, *portssvc.TokenPair, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	if member == nil {
		return nil, nil, apperrors.NewNotFoundError("member not found")
	}

	storedHash, expiry, err := s.memberRepo.FindRefreshToken(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	if storedHash == "" || time.Now().After(expiry) || !utils.CompareRefreshTokenHash(refreshToken, storedHash) {
		return nil, nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrForbidden)
	}

	pair, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, nil, err
	}
	return member, pair, nil
}

// Logout invalidates the member's refresh token.
func (s *tokenService) Logout(ctx context.Context, memberID string) error {
	return s.memberRepo.ClearRefreshToken(ctx, memberID)
}

func (s *tokenService) issueTokens(ctx context.Context, member *domain.Member) (*portssvc.TokenPair, error) {
	access, err := utils.GenerateJWT(member.MemberID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, err
	}
	refreshHash, err := utils.HashRefreshToken(refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	now := time.Now()
	refreshExpiry := now.Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.memberRepo.UpdateRefreshToken(ctx, member.MemberID, refreshHash, refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}
