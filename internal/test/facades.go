package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// ServiceFacadeStub provides controllable behaviour for HTTP layer tests.
type ServiceFacadeStub struct {
	GetCustomerFn    func(context.Context, string) (*model.Customer, error)
	ListCustomersFn  func(context.Context) ([]model.Customer, error)
	CreateCustomerFn func(context.Context, string, string, string, string) (*model.Customer, error)

	GetTransactionFn    func(context.Context, string) (*model.PointsTransaction, error)
	ListTransactionsFn  func(context.Context) ([]model.PointsTransaction, error)
	ListForCustomerFn   func(context.Context, string) ([]model.PointsTransaction, error)
	CreateTransactionFn func(context.Context, string, string, int, string) (*model.PointsTransaction, error)

	GetRewardFn   func(context.Context, string) (*model.Reward, error)
	ListRewardsFn func(context.Context) ([]model.Reward, error)
	SaveRewardFn  func(context.Context, *model.Reward) error
}

// GetCustomer delegates to the override or returns a default profile.
func (s ServiceFacadeStub) GetCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	if s.GetCustomerFn != nil {
		return s.GetCustomerFn(ctx, customerID)
	}
	return &model.Customer{CustomerID: customerID, FirstName: "Jane", LastName: "Doe"}, nil
}

// ListCustomers returns configured customers.
func (s ServiceFacadeStub) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	if s.ListCustomersFn != nil {
		return s.ListCustomersFn(ctx)
	}
	return []model.Customer{{CustomerID: "CUST000000001001"}}, nil
}

// CreateCustomer returns the created profile for registration scenarios.
func (s ServiceFacadeStub) CreateCustomer(ctx context.Context, firstName, lastName, emailAddress, phoneNumber string) (*model.Customer, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, firstName, lastName, emailAddress, phoneNumber)
	}
	return &model.Customer{
		CustomerID:   "CUST000000001001",
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: emailAddress,
		PhoneNumber:  phoneNumber,
	}, nil
}

// GetTransaction delegates to the override or returns a default entry.
func (s ServiceFacadeStub) GetTransaction(ctx context.Context, transactionID string) (*model.PointsTransaction, error) {
	if s.GetTransactionFn != nil {
		return s.GetTransactionFn(ctx, transactionID)
	}
	return &model.PointsTransaction{TransactionID: transactionID}, nil
}

// ListTransactions returns the configured ledger slice.
func (s ServiceFacadeStub) ListTransactions(ctx context.Context) ([]model.PointsTransaction, error) {
	if s.ListTransactionsFn != nil {
		return s.ListTransactionsFn(ctx)
	}
	return []model.PointsTransaction{{TransactionID: "TXN-0000000000AB"}}, nil
}

// ListTransactionsForCustomer returns the configured customer history.
func (s ServiceFacadeStub) ListTransactionsForCustomer(ctx context.Context, customerID string) ([]model.PointsTransaction, error) {
	if s.ListForCustomerFn != nil {
		return s.ListForCustomerFn(ctx, customerID)
	}
	return []model.PointsTransaction{{TransactionID: "TXN-0000000000AB", CustomerID: customerID}}, nil
}

// CreateTransaction returns the appended entry for creation scenarios.
func (s ServiceFacadeStub) CreateTransaction(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error) {
	if s.CreateTransactionFn != nil {
		return s.CreateTransactionFn(ctx, customerID, transactionType, pointsAmount, description)
	}
	return &model.PointsTransaction{
		TransactionID:   "TXN-0000000000AB",
		CustomerID:      customerID,
		TransactionType: transactionType,
		PointsAmount:    pointsAmount,
		Description:     description,
		TransactionDate: time.Unix(0, 0).UTC(),
	}, nil
}

// GetReward delegates to the override or returns a default entry.
func (s ServiceFacadeStub) GetReward(ctx context.Context, rewardID string) (*model.Reward, error) {
	if s.GetRewardFn != nil {
		return s.GetRewardFn(ctx, rewardID)
	}
	return &model.Reward{RewardID: rewardID, RewardName: "Coffee"}, nil
}

// ListRewards returns the configured catalog slice.
func (s ServiceFacadeStub) ListRewards(ctx context.Context) ([]model.Reward, error) {
	if s.ListRewardsFn != nil {
		return s.ListRewardsFn(ctx)
	}
	return []model.Reward{{RewardID: "RW-1"}}, nil
}

// SaveReward executes the configured save handler.
func (s ServiceFacadeStub) SaveReward(ctx context.Context, reward *model.Reward) error {
	if s.SaveRewardFn != nil {
		return s.SaveRewardFn(ctx, reward)
	}
	return nil
}

// TransactionCreateCall stores information about CreateTransaction invocations.
type TransactionCreateCall struct {
	CustomerID      string
	TransactionType string
	PointsAmount    int
	Description     string
}

// WorkerFacadeStub mimics worker interactions with the rewards facade.
type WorkerFacadeStub struct {
	Batches        [][]model.SocialAward
	PendingFn      func(context.Context, int) ([]model.SocialAward, error)
	CreateFn       func(context.Context, string, string, int, string) (*model.PointsTransaction, error)
	AcknowledgeFn  func(context.Context, string) error
	Created        []TransactionCreateCall
	Acknowledged   []string
	mu             sync.Mutex
	pendingCallSeq int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingSocialAwards returns batches from the configured queue.
func (s *WorkerFacadeStub) PendingSocialAwards(ctx context.Context, limit int) ([]model.SocialAward, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.pendingCallSeq, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CreateTransaction records ledger append requests.
func (s *WorkerFacadeStub) CreateTransaction(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, transactionType, pointsAmount, description)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, TransactionCreateCall{
		CustomerID:      customerID,
		TransactionType: transactionType,
		PointsAmount:    pointsAmount,
		Description:     description,
	})
	return &model.PointsTransaction{TransactionID: "TXN-0000000000AB", CustomerID: customerID}, nil
}

// AcknowledgeSocialAward records claimed award identifiers.
func (s *WorkerFacadeStub) AcknowledgeSocialAward(ctx context.Context, awardID string) error {
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, awardID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acknowledged = append(s.Acknowledged, awardID)
	return nil
}

// AwardSourceStub feeds social awards into facade and worker tests.
type AwardSourceStub struct {
	PendingFn     func(context.Context, int) ([]model.SocialAward, error)
	AcknowledgeFn func(context.Context, string) error
	Awards        []model.SocialAward
	Err           error

	mu           sync.Mutex
	Acknowledged []string
}

// PendingAwards returns configured awards or the stored error.
func (s *AwardSourceStub) PendingAwards(ctx context.Context, limit int) ([]model.SocialAward, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if limit < len(s.Awards) {
		return s.Awards[:limit], nil
	}
	return s.Awards, nil
}

// Acknowledge records the claimed award identifier.
func (s *AwardSourceStub) Acknowledge(ctx context.Context, awardID string) error {
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, awardID)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acknowledged = append(s.Acknowledged, awardID)
	return nil
}
