package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/loyaltyworks/rewards/internal/adapter/social"
	"github.com/loyaltyworks/rewards/internal/domain/model"
	testhelpers "github.com/loyaltyworks/rewards/internal/test"
)

func TestNewAwardProcessorDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	proc := NewAwardProcessor(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, logger)
	if proc.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", proc.batchSize)
	}
	if proc.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", proc.workers)
	}
}

func TestAwardProcessorCreatesLedgerEntries(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.SocialAward{{
		{AwardID: "AW-1", CustomerID: "CUST000000001001", PostID: "POST-9", Points: 25},
	}}}
	proc := NewAwardProcessor(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		processed := len(facade.Acknowledged) > 0
		facade.Unlock()
		if processed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for award processing")
		case <-time.After(10 * time.Millisecond):
		}
	}

	proc.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Created) == 0 {
		t.Fatal("expected ledger entry creation")
	}
	created := facade.Created[0]
	if created.CustomerID != "CUST000000001001" || created.TransactionType != model.TransactionTypeSocialBonus || created.PointsAmount != 25 {
		t.Fatalf("unexpected ledger entry: %+v", created)
	}
	if created.Description != "Social media bonus for post POST-9" {
		t.Fatalf("unexpected description: %q", created.Description)
	}
	if facade.Acknowledged[0] != "AW-1" {
		t.Fatalf("expected award AW-1 acknowledged, got %v", facade.Acknowledged)
	}
}

func TestAwardProcessorLeavesAwardPendingOnLedgerFailure(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.SocialAward{{{AwardID: "AW-1", CustomerID: "CUST000000001001", Points: 5}}},
		CreateFn: func(context.Context, string, string, int, string) (*model.PointsTransaction, error) {
			return nil, errors.New("db down")
		},
	}
	proc := NewAwardProcessor(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	proc.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Acknowledged) != 0 {
		t.Fatalf("award must stay pending when the ledger write fails, got %v", facade.Acknowledged)
	}
}

func TestAwardProcessorToleratesAlreadyClaimedAward(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	var acknowledges int32
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.SocialAward{{{AwardID: "AW-1", CustomerID: "CUST000000001001", Points: 5}}},
		AcknowledgeFn: func(context.Context, string) error {
			atomic.AddInt32(&acknowledges, 1)
			return social.ErrUnknownAward
		},
	}
	proc := NewAwardProcessor(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&acknowledges) == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for acknowledge attempt")
		case <-time.After(10 * time.Millisecond):
		}
	}
	proc.Stop()
}

func TestAwardProcessorHandlesRateLimiting(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		PendingFn: func(context.Context, int) ([]model.SocialAward, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, social.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}
			}
			return []model.SocialAward{{AwardID: "AW-1", CustomerID: "CUST000000001001", Points: 1}}, nil
		},
	}

	proc := NewAwardProcessor(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	proc.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		if len(facade.Acknowledged) > 0 {
			facade.Unlock()
			break
		}
		facade.Unlock()
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry")
		case <-time.After(10 * time.Millisecond):
		}
	}
	proc.Stop()
}
