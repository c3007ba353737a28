package usecase

import (
	"testing"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

func TestAggregateBalanceEmptyLedger(t *testing.T) {
	summary := AggregateBalance(nil)
	if summary.Earned != 0 || summary.Redeemed != 0 || summary.Available != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestAggregateBalanceMixedEntries(t *testing.T) {
	entries := []model.PointsTransaction{
		{TransactionType: "EARN", PointsAmount: 200},
		{TransactionType: "REDEEM", PointsAmount: 50},
		{TransactionType: "ADJUST", PointsAmount: 10},
		{TransactionType: "SOCIAL_MEDIA_BONUS", PointsAmount: 5},
		{TransactionType: "TRANSFER", PointsAmount: 999},
	}

	summary := AggregateBalance(entries)
	if summary.Earned != 215 {
		t.Fatalf("expected 215 earned, got %d", summary.Earned)
	}
	if summary.Redeemed != 50 {
		t.Fatalf("expected 50 redeemed, got %d", summary.Redeemed)
	}
	if summary.Available != 165 {
		t.Fatalf("expected 165 available, got %d", summary.Available)
	}
}

func TestAggregateBalanceCaseInsensitiveTypes(t *testing.T) {
	entries := []model.PointsTransaction{
		{TransactionType: "earn", PointsAmount: 100},
		{TransactionType: "Redeemed", PointsAmount: 40},
	}

	summary := AggregateBalance(entries)
	if summary.Earned != 100 || summary.Redeemed != 40 || summary.Available != 60 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestAggregateBalanceAllowsNegativeAvailable(t *testing.T) {
	entries := []model.PointsTransaction{
		{TransactionType: "EARN", PointsAmount: 10},
		{TransactionType: "REDEEM", PointsAmount: 25},
	}

	summary := AggregateBalance(entries)
	if summary.Available != -15 {
		t.Fatalf("expected available -15, got %d", summary.Available)
	}
}
