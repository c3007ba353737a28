package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/domain/repository"
)

// CustomerUseCase manages customer profiles composed with live balance
// projection from the ledger.
type CustomerUseCase struct {
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, transactions repository.TransactionRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, transactions: transactions}
}

// Create registers a new customer with a generated id and default tier and
// status, then re-reads the canonical balance-projected record. The re-read
// is a separate operation; a ledger write landing between the two is benign.
func (u *CustomerUseCase) Create(ctx context.Context, firstName, lastName, emailAddress, phoneNumber string) (*model.Customer, error) {
	if firstName == "" || lastName == "" || emailAddress == "" {
		return nil, fmt.Errorf("first name, last name and email address are required: %w", domainErrors.ErrValidation)
	}

	now := time.Now()
	customer := &model.Customer{
		CustomerID:       model.NewCustomerID(now),
		FirstName:        firstName,
		LastName:         lastName,
		EmailAddress:     emailAddress,
		PhoneNumber:      phoneNumber,
		RegistrationDate: now,
		LoyaltyTier:      model.DefaultLoyaltyTier,
		AccountStatus:    model.DefaultAccountStatus,
	}
	if err := u.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return u.Get(ctx, customer.CustomerID)
}

// Get fetches a profile and overwrites its point fields with the aggregate
// of the customer's full ledger slice. Stored point columns are never
// trusted.
func (u *CustomerUseCase) Get(ctx context.Context, customerID string) (*model.Customer, error) {
	customer, err := u.customers.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := u.projectBalance(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// ListAll returns every customer ordered by id, each one balance-projected
// individually from its own ledger slice.
func (u *CustomerUseCase) ListAll(ctx context.Context) ([]model.Customer, error) {
	customers, err := u.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if err := u.projectBalance(ctx, &customers[i]); err != nil {
			return nil, err
		}
	}
	return customers, nil
}

func (u *CustomerUseCase) projectBalance(ctx context.Context, customer *model.Customer) error {
	transactions, err := u.transactions.ListByCustomer(ctx, customer.CustomerID)
	if err != nil {
		return err
	}
	summary := AggregateBalance(transactions)
	customer.TotalLifetimePoints = summary.Earned
	customer.CurrentAvailablePoints = summary.Available
	return nil
}
