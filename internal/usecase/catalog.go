package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/domain/repository"
)

// CatalogUseCase manages the reward catalog.
type CatalogUseCase struct {
	rewards repository.RewardRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(rewards repository.RewardRepository) *CatalogUseCase {
	return &CatalogUseCase{rewards: rewards}
}

// Get fetches a reward definition by id.
func (u *CatalogUseCase) Get(ctx context.Context, rewardID string) (*model.Reward, error) {
	return u.rewards.Get(ctx, rewardID)
}

// ListAll returns the catalog ordered by reward id.
func (u *CatalogUseCase) ListAll(ctx context.Context) ([]model.Reward, error) {
	return u.rewards.ListAll(ctx)
}

// Save upserts a reward keyed by its id, replacing every field on update.
func (u *CatalogUseCase) Save(ctx context.Context, reward *model.Reward) error {
	if reward.RewardID == "" {
		return fmt.Errorf("reward id is required: %w", domainErrors.ErrValidation)
	}
	return u.rewards.Upsert(ctx, reward)
}
