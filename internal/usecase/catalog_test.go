package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	testhelpers "github.com/loyaltyworks/rewards/internal/test"
)

func TestCatalogUseCaseSaveRequiresRewardID(t *testing.T) {
	uc := NewCatalogUseCase(&testhelpers.RewardRepositoryStub{UpsertFn: func(context.Context, *model.Reward) error {
		t.Fatal("upsert should not be called on validation errors")
		return nil
	}})

	if err := uc.Save(context.Background(), &model.Reward{RewardName: "Coffee"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCatalogUseCaseSaveTwiceKeepsSingleRecord(t *testing.T) {
	repo := testhelpers.NewRewardRepositoryStub()
	uc := NewCatalogUseCase(repo)

	first := &model.Reward{RewardID: "RW-1", RewardName: "Coffee", PointsRequired: 100, AvailabilityCount: 100, IsActive: true}
	if err := uc.Save(context.Background(), first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second := &model.Reward{RewardID: "RW-1", RewardName: "Large Coffee", PointsRequired: 150, AvailabilityCount: 50, IsActive: false}
	if err := uc.Save(context.Background(), second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	list, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected single record, got %d", len(list))
	}
	if list[0].RewardName != "Large Coffee" || list[0].PointsRequired != 150 || list[0].IsActive {
		t.Fatalf("expected full replacement, got %+v", list[0])
	}
}

func TestCatalogUseCaseGetNotFound(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.NewRewardRepositoryStub())

	if _, err := uc.Get(context.Background(), "RW-404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
