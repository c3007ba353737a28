package repository

import (
	"context"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// RewardRepository describes persistence operations for the reward catalog.
type RewardRepository interface {
	Get(ctx context.Context, rewardID string) (*model.Reward, error)
	ListAll(ctx context.Context) ([]model.Reward, error)
	// Upsert atomically replaces the record under reward.RewardID or inserts
	// it when absent; last writer wins on concurrent saves of the same key.
	Upsert(ctx context.Context, reward *model.Reward) error
}
