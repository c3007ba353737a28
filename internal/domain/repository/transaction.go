package repository

import (
	"context"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// TransactionRepository is the append-only points ledger. Entries are never
// updated or deleted once written.
type TransactionRepository interface {
	Append(ctx context.Context, transaction *model.PointsTransaction) error
	Get(ctx context.Context, transactionID string) (*model.PointsTransaction, error)
	// ListAll returns every ledger entry ordered by transaction id ascending.
	ListAll(ctx context.Context) ([]model.PointsTransaction, error)
	// ListByCustomer returns a customer's entries ordered by transaction
	// date descending, most recent first.
	ListByCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error)
}
