package repository

import (
	"context"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// CustomerRepository describes persistence operations for customer profiles.
// Stored point columns are caches; callers project live balances from the
// transaction ledger.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Get(ctx context.Context, customerID string) (*model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
}
