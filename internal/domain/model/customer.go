package model

import "time"

// Default profile values assigned when a customer is registered.
const (
	DefaultLoyaltyTier   = "Bronze"
	DefaultAccountStatus = "Active"
)

// Customer represents a loyalty program member profile.
//
// TotalLifetimePoints and CurrentAvailablePoints are projections computed
// from the transaction ledger on every read; any stored value is overwritten
// before the record leaves the registry.
type Customer struct {
	CustomerID             string
	FirstName              string
	LastName               string
	EmailAddress           string
	PhoneNumber            string
	RegistrationDate       time.Time
	LoyaltyTier            string
	TotalLifetimePoints    int
	CurrentAvailablePoints int
	AccountStatus          string
}
