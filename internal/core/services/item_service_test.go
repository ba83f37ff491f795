package services_test

import (
	"context"
	"testing"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/core/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo   *MockItemRepository
	mockMemberRepo *MockMemberRepository
	service        portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewItemService(suite.mockItemRepo, suite.mockMemberRepo)
}

// --- GrantItem Tests ---

func (suite *ItemServiceTestSuite) TestGrantItem_Success() {
	ctx := context.Background()
	granter := &domain.Member{MemberID: uuid.NewString(), Name: "皇后"}
	owner := &domain.Member{MemberID: uuid.NewString(), Name: "甄嬛"}

	suite.mockMemberRepo.On("FindMemberByID", ctx, owner.MemberID).Return(owner, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, granter.MemberID).Return(granter, nil).Once()
	suite.mockItemRepo.On("SaveItem", ctx, mock.MatchedBy(func(item domain.Item) bool {
		return item.OwnerID == owner.MemberID &&
			item.Name == "驻颜丹" &&
			item.Effect == domain.EffectAppearance &&
			!item.Used &&
			item.FromName == granter.Name
	})).Return(int64(11), nil).Once()

	item, err := suite.service.GrantItem(ctx, granter.MemberID, dto.GrantItemRequest{
		OwnerID: owner.MemberID,
		Name:    "驻颜丹",
		Effect:  "appearance",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(11), item.ItemID)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestGrantItem_UnknownEffect() {
	ctx := context.Background()

	item, err := suite.service.GrantItem(ctx, uuid.NewString(), dto.GrantItemRequest{
		OwnerID: uuid.NewString(),
		Name:    "无名之物",
		Effect:  "charisma",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

// --- GiftItem Tests ---

func (suite *ItemServiceTestSuite) TestGiftItem_MovesOwnershipAndProvenanceTogether() {
	ctx := context.Background()
	caller := &domain.Member{MemberID: uuid.NewString(), Name: "沈眉庄"}
	recipient := &domain.Member{MemberID: uuid.NewString(), Name: "甄嬛"}
	item := &domain.Item{ItemID: 5, OwnerID: caller.MemberID, Name: "滋补丸", Effect: domain.EffectConstitution}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(5)).Return(item, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, caller.MemberID).Return(caller, nil).Once()
	suite.mockMemberRepo.On("FindMemberByName", ctx, recipient.Name).Return(recipient, nil).Once()
	suite.mockItemRepo.On("UpdateItemOwner", ctx, int64(5), recipient.MemberID, caller.Name).Return(nil).Once()

	result, err := suite.service.GiftItem(ctx, caller.MemberID, 5, dto.GiftItemRequest{RecipientName: recipient.Name})

	suite.Require().NoError(err)
	suite.Equal(recipient.Name, result.RecipientName)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestGiftItem_NotOwnerForbidden() {
	ctx := context.Background()
	item := &domain.Item{ItemID: 5, OwnerID: uuid.NewString()}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(5)).Return(item, nil).Once()

	result, err := suite.service.GiftItem(ctx, uuid.NewString(), 5, dto.GiftItemRequest{RecipientName: "甄嬛"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(result)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItemOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestGiftItem_UsedItemRejected() {
	ctx := context.Background()
	callerID := uuid.NewString()
	item := &domain.Item{ItemID: 5, OwnerID: callerID, Used: true}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(5)).Return(item, nil).Once()

	_, err := suite.service.GiftItem(ctx, callerID, 5, dto.GiftItemRequest{RecipientName: "甄嬛"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ItemServiceTestSuite) TestGiftItem_SelfTargetRejected() {
	ctx := context.Background()
	caller := &domain.Member{MemberID: uuid.NewString(), Name: "甄嬛"}
	item := &domain.Item{ItemID: 5, OwnerID: caller.MemberID}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(5)).Return(item, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, caller.MemberID).Return(caller, nil).Once()
	suite.mockMemberRepo.On("FindMemberByName", ctx, caller.Name).Return(caller, nil).Once()

	_, err := suite.service.GiftItem(ctx, caller.MemberID, 5, dto.GiftItemRequest{RecipientName: caller.Name})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSelfTarget)
}

func (suite *ItemServiceTestSuite) TestGiftItem_RecipientNotFound() {
	ctx := context.Background()
	caller := &domain.Member{MemberID: uuid.NewString(), Name: "甄嬛"}
	item := &domain.Item{ItemID: 5, OwnerID: caller.MemberID}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(5)).Return(item, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, caller.MemberID).Return(caller, nil).Once()
	suite.mockMemberRepo.On("FindMemberByName", ctx, "不存在").Return(nil, nil).Once()

	_, err := suite.service.GiftItem(ctx, caller.MemberID, 5, dto.GiftItemRequest{RecipientName: "不存在"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UseItem Tests ---

func (suite *ItemServiceTestSuite) TestUseItem_AdvancesAttributeOneTier() {
	ctx := context.Background()
	owner := &domain.Member{MemberID: uuid.NewString(), Appearance: "三等"}
	item := &domain.Item{ItemID: 9, OwnerID: owner.MemberID, Name: "驻颜丹", Effect: domain.EffectAppearance}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(true, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, owner.MemberID).Return(owner, nil).Once()
	suite.mockMemberRepo.On("UpdateMemberAttribute", ctx, owner.MemberID, domain.AttrAppearance, "二等", owner.MemberID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.UseItem(ctx, owner.MemberID, 9)

	suite.Require().NoError(err)
	suite.True(result.Applied)
	suite.Equal("三等", result.BeforeTier)
	suite.Equal("二等", result.AfterTier)
	suite.False(result.Saturated)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUseItem_LostFlipIsSilentNoOp() {
	// Two concurrent consumptions race on the conditional flip; the loser gets
	// applied=false with no error and no attribute write.
	ctx := context.Background()
	ownerID := uuid.NewString()
	item := &domain.Item{ItemID: 9, OwnerID: ownerID, Effect: domain.EffectConstitution}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(false, nil).Once()

	result, err := suite.service.UseItem(ctx, ownerID, 9)

	suite.Require().NoError(err)
	suite.False(result.Applied)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "UpdateMemberAttribute",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUseItem_TerminalTierSaturates() {
	ctx := context.Background()
	owner := &domain.Member{MemberID: uuid.NewString(), Appearance: "特等"}
	item := &domain.Item{ItemID: 9, OwnerID: owner.MemberID, Effect: domain.EffectAppearance}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(true, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, owner.MemberID).Return(owner, nil).Once()

	result, err := suite.service.UseItem(ctx, owner.MemberID, 9)

	suite.Require().NoError(err)
	suite.True(result.Applied)
	suite.True(result.Saturated)
	suite.Equal("特等", result.BeforeTier)
	suite.Equal(result.BeforeTier, result.AfterTier)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "UpdateMemberAttribute",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUseItem_CosmeticItemHasNoProgression() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	item := &domain.Item{ItemID: 9, OwnerID: ownerID, Name: "琉璃簪", Effect: domain.EffectNone}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(true, nil).Once()

	result, err := suite.service.UseItem(ctx, ownerID, 9)

	suite.Require().NoError(err)
	suite.True(result.Applied)
	suite.Empty(result.BeforeTier)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMemberByID", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUseItem_UnknownTierFallsBackToStart() {
	// A profile seeded with an unrecognized label resolves to the sequence
	// start before advancing, so the item still does something sensible.
	ctx := context.Background()
	owner := &domain.Member{MemberID: uuid.NewString(), Constitution: "莫名其妙"}
	item := &domain.Item{ItemID: 9, OwnerID: owner.MemberID, Effect: domain.EffectConstitution}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(true, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, owner.MemberID).Return(owner, nil).Once()
	suite.mockMemberRepo.On("UpdateMemberAttribute", ctx, owner.MemberID, domain.AttrConstitution, "九等", owner.MemberID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := suite.service.UseItem(ctx, owner.MemberID, 9)

	suite.Require().NoError(err)
	suite.Equal("十等", result.BeforeTier)
	suite.Equal("九等", result.AfterTier)
}

func (suite *ItemServiceTestSuite) TestUseItem_AttributeWriteFailureSurfaces() {
	// The flip already committed when the attribute write fails; the item is
	// sunk and the error reports that, not a retry.
	ctx := context.Background()
	owner := &domain.Member{MemberID: uuid.NewString(), Appearance: "十等"}
	item := &domain.Item{ItemID: 9, OwnerID: owner.MemberID, Effect: domain.EffectAppearance}
	expectedErr := assert.AnError

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()
	suite.mockItemRepo.On("MarkItemUsed", ctx, int64(9)).Return(true, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", ctx, owner.MemberID).Return(owner, nil).Once()
	suite.mockMemberRepo.On("UpdateMemberAttribute", ctx, owner.MemberID, domain.AttrAppearance, "九等", owner.MemberID, mock.AnythingOfType("time.Time")).Return(expectedErr).Once()

	result, err := suite.service.UseItem(ctx, owner.MemberID, 9)

	suite.Require().Error(err)
	suite.Contains(err.Error(), expectedErr.Error())
	suite.Nil(result)
}

func (suite *ItemServiceTestSuite) TestUseItem_NotOwnerForbidden() {
	ctx := context.Background()
	item := &domain.Item{ItemID: 9, OwnerID: uuid.NewString()}

	suite.mockItemRepo.On("FindItemByID", ctx, int64(9)).Return(item, nil).Once()

	result, err := suite.service.UseItem(ctx, uuid.NewString(), 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(result)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "MarkItemUsed", mock.Anything, mock.Anything)
}

// --- ListInventory Tests ---

func (suite *ItemServiceTestSuite) TestListInventory_ExcludesUsedItems() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	items := []domain.Item{{ItemID: 1, OwnerID: ownerID}}

	suite.mockItemRepo.On("ListItemsByOwner", ctx, ownerID, false).Return(items, nil).Once()

	got, err := suite.service.ListInventory(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
