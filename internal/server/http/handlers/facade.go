package handlers

import (
	"context"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	GetCustomer(ctx context.Context, customerID string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, firstName, lastName, emailAddress, phoneNumber string) (*model.Customer, error)
}

// TransactionFacade encapsulates ledger operations exposed via HTTP.
type TransactionFacade interface {
	GetTransaction(ctx context.Context, transactionID string) (*model.PointsTransaction, error)
	ListTransactions(ctx context.Context) ([]model.PointsTransaction, error)
	ListTransactionsForCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error)
	CreateTransaction(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error)
}

// CatalogFacade encapsulates reward catalog operations exposed via HTTP.
type CatalogFacade interface {
	GetReward(ctx context.Context, rewardID string) (*model.Reward, error)
	ListRewards(ctx context.Context) ([]model.Reward, error)
	SaveReward(ctx context.Context, reward *model.Reward) error
}

// ServiceFacade aggregates the full set of operations used across handlers.
type ServiceFacade interface {
	CustomerFacade
	TransactionFacade
	CatalogFacade
}
