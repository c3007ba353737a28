package usecase

import "github.com/loyaltyworks/rewards/internal/domain/model"

// AggregateBalance folds a customer's complete transaction slice into a
// balance summary. The ledger is the source of truth: earned sums every
// earning-type amount, redeemed sums every spending-type amount, available
// is their difference and is deliberately not clamped at zero. Entries of
// unrecognized types contribute to neither sum. Expiration dates are stored
// on entries but never exclude them here.
func AggregateBalance(transactions []model.PointsTransaction) model.BalanceSummary {
	var summary model.BalanceSummary
	for _, t := range transactions {
		switch {
		case model.IsEarningType(t.TransactionType):
			summary.Earned += t.PointsAmount
		case model.IsSpendingType(t.TransactionType):
			summary.Redeemed += t.PointsAmount
		}
	}
	summary.Available = summary.Earned - summary.Redeemed
	return summary
}
