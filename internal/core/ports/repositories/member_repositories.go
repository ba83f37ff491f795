package repositories

import (
	"context"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
)

// MemberRepository defines persistence operations for member profiles.
type MemberRepository interface {
	// SaveMember inserts a new member. Returns apperrors.ErrDuplicate when the
	// name or short id is already taken.
	SaveMember(ctx context.Context, member domain.Member) error

	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByName resolves a member by display name (unique).
	FindMemberByName(ctx context.Context, name string) (*domain.Member, error)

	// FindMemberByLogin resolves the name + short-id pair used for login.
	FindMemberByLogin(ctx context.Context, name, shortID string) (*domain.Member, error)

	ListMembers(ctx context.Context) ([]domain.Member, error)

	// UpdateMember writes display name and all four attribute columns.
	UpdateMember(ctx context.Context, member domain.Member) error

	// UpdateMemberAttribute writes a single attribute column. Used by item
	// consumption so the write touches only the governed attribute.
	UpdateMemberAttribute(ctx context.Context, memberID string, kind domain.AttributeKind, value string, updatedBy string, updatedAt time.Time) error

	UpdateRefreshToken(ctx context.Context, memberID string, tokenHash string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, memberID string) error

	// FindRefreshToken returns the stored refresh token hash and its expiry;
	// both zero when no token is outstanding.
	FindRefreshToken(ctx context.Context, memberID string) (hash string, expiresAt time.Time, err error)
}
