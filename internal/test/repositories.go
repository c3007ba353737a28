package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	CreateFn  func(context.Context, *model.Customer) error
	GetFn     func(context.Context, string) (*model.Customer, error)
	ListAllFn func(context.Context) ([]model.Customer, error)

	mu        sync.Mutex
	Customers map[string]*model.Customer
	Err       error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Customers: make(map[string]*model.Customer)}
}

// Create stores the customer unless an override or explicit error applies.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer *model.Customer) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customer)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Customers == nil {
		s.Customers = make(map[string]*model.Customer)
	}
	stored := *customer
	s.Customers[customer.CustomerID] = &stored
	return nil
}

// Get fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) Get(ctx context.Context, customerID string) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if customer, ok := s.Customers[customerID]; ok {
		copied := *customer
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns stored customers ordered by identifier.
func (s *CustomerRepositoryStub) ListAll(ctx context.Context) ([]model.Customer, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Customer, 0, len(s.Customers))
	for _, customer := range s.Customers {
		out = append(out, *customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

// TransactionRepositoryStub keeps an in-memory append-only ledger.
type TransactionRepositoryStub struct {
	AppendFn         func(context.Context, *model.PointsTransaction) error
	GetFn            func(context.Context, string) (*model.PointsTransaction, error)
	ListAllFn        func(context.Context) ([]model.PointsTransaction, error)
	ListByCustomerFn func(context.Context, string) ([]model.PointsTransaction, error)

	mu      sync.Mutex
	Entries []model.PointsTransaction
	Err     error
}

// Append records the entry in arrival order.
func (s *TransactionRepositoryStub) Append(ctx context.Context, transaction *model.PointsTransaction) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, transaction)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, *transaction)
	return nil
}

// Get returns the matching entry or not found.
func (s *TransactionRepositoryStub) Get(ctx context.Context, transactionID string) (*model.PointsTransaction, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, transactionID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.Entries {
		if entry.TransactionID == transactionID {
			copied := entry
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every entry ordered by transaction identifier.
func (s *TransactionRepositoryStub) ListAll(ctx context.Context) ([]model.PointsTransaction, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PointsTransaction, len(s.Entries))
	copy(out, s.Entries)
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionID < out[j].TransactionID })
	return out, nil
}

// ListByCustomer returns the customer's entries, most recent first.
func (s *TransactionRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PointsTransaction, 0)
	for _, entry := range s.Entries {
		if entry.CustomerID == customerID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionDate.After(out[j].TransactionDate) })
	return out, nil
}

// RewardRepositoryStub stores catalog entries keyed by reward identifier.
type RewardRepositoryStub struct {
	GetFn     func(context.Context, string) (*model.Reward, error)
	ListAllFn func(context.Context) ([]model.Reward, error)
	UpsertFn  func(context.Context, *model.Reward) error

	mu      sync.Mutex
	Rewards map[string]*model.Reward
	Err     error
}

// NewRewardRepositoryStub constructs stub repository with initialized maps.
func NewRewardRepositoryStub() *RewardRepositoryStub {
	return &RewardRepositoryStub{Rewards: make(map[string]*model.Reward)}
}

// Get fetches reward by identifier or returns not found.
func (s *RewardRepositoryStub) Get(ctx context.Context, rewardID string) (*model.Reward, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, rewardID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if reward, ok := s.Rewards[rewardID]; ok {
		copied := *reward
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns stored rewards ordered by identifier.
func (s *RewardRepositoryStub) ListAll(ctx context.Context) ([]model.Reward, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reward, 0, len(s.Rewards))
	for _, reward := range s.Rewards {
		out = append(out, *reward)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RewardID < out[j].RewardID })
	return out, nil
}

// Upsert replaces the record under the reward identifier.
func (s *RewardRepositoryStub) Upsert(ctx context.Context, reward *model.Reward) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, reward)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Rewards == nil {
		s.Rewards = make(map[string]*model.Reward)
	}
	stored := *reward
	s.Rewards[reward.RewardID] = &stored
	return nil
}
