package model

// BalanceSummary aggregates a customer's ledger into lifetime earned,
// total redeemed and currently available points. Available may go negative;
// no floor is enforced so administrative adjustments keep working.
type BalanceSummary struct {
	Earned    int
	Redeemed  int
	Available int
}
