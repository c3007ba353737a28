package app

import (
	"context"

	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/usecase"
)

// AwardSource abstracts the social post scoring feed.
type AwardSource interface {
	PendingAwards(ctx context.Context, limit int) ([]model.SocialAward, error)
	Acknowledge(ctx context.Context, awardID string) error
}

// RewardsFacade is the composition root of the service. It is constructed
// once at startup, injected into every consumer and safe for concurrent
// use; each method delegates to the owning use case without added logic.
type RewardsFacade struct {
	customers *usecase.CustomerUseCase
	ledger    *usecase.LedgerUseCase
	catalog   *usecase.CatalogUseCase
	awards    AwardSource
}

func NewRewardsFacade(customers *usecase.CustomerUseCase, ledger *usecase.LedgerUseCase, catalog *usecase.CatalogUseCase, awards AwardSource) *RewardsFacade {
	return &RewardsFacade{customers: customers, ledger: ledger, catalog: catalog, awards: awards}
}

func (f *RewardsFacade) GetCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	return f.customers.Get(ctx, customerID)
}

func (f *RewardsFacade) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.ListAll(ctx)
}

func (f *RewardsFacade) CreateCustomer(ctx context.Context, firstName, lastName, emailAddress, phoneNumber string) (*model.Customer, error) {
	return f.customers.Create(ctx, firstName, lastName, emailAddress, phoneNumber)
}

func (f *RewardsFacade) GetTransaction(ctx context.Context, transactionID string) (*model.PointsTransaction, error) {
	return f.ledger.Get(ctx, transactionID)
}

func (f *RewardsFacade) ListTransactions(ctx context.Context) ([]model.PointsTransaction, error) {
	return f.ledger.ListAll(ctx)
}

func (f *RewardsFacade) ListTransactionsForCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error) {
	return f.ledger.ListByCustomer(ctx, customerID)
}

func (f *RewardsFacade) CreateTransaction(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error) {
	return f.ledger.Append(ctx, customerID, transactionType, pointsAmount, description)
}

func (f *RewardsFacade) GetReward(ctx context.Context, rewardID string) (*model.Reward, error) {
	return f.catalog.Get(ctx, rewardID)
}

func (f *RewardsFacade) ListRewards(ctx context.Context) ([]model.Reward, error) {
	return f.catalog.ListAll(ctx)
}

func (f *RewardsFacade) SaveReward(ctx context.Context, reward *model.Reward) error {
	return f.catalog.Save(ctx, reward)
}

func (f *RewardsFacade) PendingSocialAwards(ctx context.Context, limit int) ([]model.SocialAward, error) {
	return f.awards.PendingAwards(ctx, limit)
}

func (f *RewardsFacade) AcknowledgeSocialAward(ctx context.Context, awardID string) error {
	return f.awards.Acknowledge(ctx, awardID)
}
