package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/domain/repository"
)

// LedgerUseCase manages the append-only points transaction ledger.
type LedgerUseCase struct {
	transactions repository.TransactionRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(transactions repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{transactions: transactions}
}

// Append records a new ledger entry. The entry gets a generated transaction
// id, the current time as transaction date and, for earn-type entries, an
// expiration date at the fixed points lifetime offset. The write is atomic;
// on failure no partial entry becomes visible.
func (u *LedgerUseCase) Append(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required: %w", domainErrors.ErrValidation)
	}
	if transactionType == "" {
		return nil, fmt.Errorf("transaction type is required: %w", domainErrors.ErrValidation)
	}

	now := time.Now()
	entry := &model.PointsTransaction{
		TransactionID:   model.NewTransactionID(),
		CustomerID:      customerID,
		TransactionType: transactionType,
		PointsAmount:    pointsAmount,
		TransactionDate: now,
		Description:     description,
		CreatedBy:       model.DefaultCreatedBy,
		Status:          model.DefaultTransactionStatus,
	}
	if model.IsExpiringType(transactionType) {
		expires := now.Add(model.PointsLifetime)
		entry.ExpirationDate = &expires
	}

	if err := u.transactions.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Get fetches a single ledger entry by id.
func (u *LedgerUseCase) Get(ctx context.Context, transactionID string) (*model.PointsTransaction, error) {
	return u.transactions.Get(ctx, transactionID)
}

// ListAll returns the full ledger ordered by transaction id.
func (u *LedgerUseCase) ListAll(ctx context.Context) ([]model.PointsTransaction, error) {
	return u.transactions.ListAll(ctx)
}

// ListByCustomer returns a customer's entries, most recent first.
func (u *LedgerUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error) {
	return u.transactions.ListByCustomer(ctx, customerID)
}
