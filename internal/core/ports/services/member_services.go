package services

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/MeiyanW/inner_court_app/internal/dto"
)

// MemberSvcFacade exposes member registry operations to the handlers.
type MemberSvcFacade interface {
	// CreateMember registers a new member (admin action).
	CreateMember(ctx context.Context, creatorID string, req dto.CreateMemberRequest) (*domain.Member, error)

	// GetMember returns a member with their derived balance filled in.
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers returns the full roster with derived balances.
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// UpdateMember applies an administrative profile override. A balance in the
	// request becomes a compensating ledger entry, never a stored field.
	UpdateMember(ctx context.Context, updaterID, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
}
