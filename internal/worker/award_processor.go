package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/loyaltyworks/rewards/internal/adapter/social"
	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// RewardsFacade exposes the subset of application functionality required by the worker.
type RewardsFacade interface {
	PendingSocialAwards(ctx context.Context, limit int) ([]model.SocialAward, error)
	CreateTransaction(ctx context.Context, customerID, transactionType string, pointsAmount int, description string) (*model.PointsTransaction, error)
	AcknowledgeSocialAward(ctx context.Context, awardID string) error
}

// AwardProcessor polls the social post scoring feed and turns approved
// awards into SOCIAL_MEDIA_BONUS ledger entries.
type AwardProcessor struct {
	facade       RewardsFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.SocialAward
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewAwardProcessor constructs the award processor worker pool.
func NewAwardProcessor(facade RewardsFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *AwardProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &AwardProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.SocialAward, batchSize*workers),
	}
}

// Start launches background processing.
func (p *AwardProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *AwardProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *AwardProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *AwardProcessor) fetchAndDispatch(ctx context.Context) {
	awards, err := p.facade.PendingSocialAwards(ctx, p.batchSize)
	if err != nil {
		var tooMany social.TooManyRequestsError
		if errors.As(err, &tooMany) {
			p.logger.Warn("award feed rate limited", slog.Duration("retry_after", tooMany.RetryAfter))
			time.Sleep(tooMany.RetryAfter)
			return
		}
		p.logger.Error("fetch pending awards failed", slog.String("error", err.Error()))
		return
	}
	for _, award := range awards {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- award:
		}
	}
}

func (p *AwardProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case award, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleAward(ctx, award)
		}
	}
}

func (p *AwardProcessor) handleAward(ctx context.Context, award model.SocialAward) {
	description := fmt.Sprintf("Social media bonus for post %s", award.PostID)
	if _, err := p.facade.CreateTransaction(ctx, award.CustomerID, model.TransactionTypeSocialBonus, award.Points, description); err != nil {
		// Leave the award pending; the next poll retries it.
		p.logger.Error("award ledger entry failed", slog.String("award", award.AwardID), slog.String("error", err.Error()))
		return
	}

	if err := p.facade.AcknowledgeSocialAward(ctx, award.AwardID); err != nil {
		if errors.Is(err, social.ErrUnknownAward) {
			p.logger.Warn("award already claimed elsewhere", slog.String("award", award.AwardID))
			return
		}
		p.logger.Error("award acknowledge failed", slog.String("award", award.AwardID), slog.String("error", err.Error()))
	}
}
