package model

import (
	"strings"
	"time"
)

// Well-known transaction types. The type column is an open enumeration:
// anything outside the earning and spending sets is stored verbatim and
// contributes nothing to balances.
const (
	TransactionTypeEarn        = "EARN"
	TransactionTypeEarned      = "EARNED"
	TransactionTypeAdjust      = "ADJUST"
	TransactionTypeSocialBonus = "SOCIAL_MEDIA_BONUS"
	TransactionTypeRedeem      = "REDEEM"
	TransactionTypeRedeemed    = "REDEEMED"
)

// Metadata defaults stamped on every new ledger entry.
const (
	DefaultCreatedBy         = "SYSTEM"
	DefaultTransactionStatus = "COMPLETED"
)

// PointsLifetime is the fixed offset between an earn-type transaction and
// its expiration date. The millisecond literal is an inherited approximation
// of 24 months (720 days) and must stay bit-for-bit compatible with ledger
// entries written by earlier systems.
const PointsLifetime = time.Duration(62208000000) * time.Millisecond

// PointsTransaction is a single immutable ledger entry.
type PointsTransaction struct {
	TransactionID   string
	CustomerID      string
	TransactionType string
	PointsAmount    int
	TransactionDate time.Time
	ExpirationDate  *time.Time
	RelatedOrderID  string
	Description     string
	CreatedBy       string
	Status          string
}

// IsEarningType reports whether the type counts toward earned points.
func IsEarningType(transactionType string) bool {
	switch strings.ToUpper(transactionType) {
	case TransactionTypeEarn, TransactionTypeEarned, TransactionTypeAdjust, TransactionTypeSocialBonus:
		return true
	}
	return false
}

// IsSpendingType reports whether the type counts toward redeemed points.
func IsSpendingType(transactionType string) bool {
	switch strings.ToUpper(transactionType) {
	case TransactionTypeRedeem, TransactionTypeRedeemed:
		return true
	}
	return false
}

// IsExpiringType reports whether a new entry of this type receives an
// expiration date. Only plain earn entries expire; adjustments and social
// bonuses do not.
func IsExpiringType(transactionType string) bool {
	switch strings.ToUpper(transactionType) {
	case TransactionTypeEarn, TransactionTypeEarned:
		return true
	}
	return false
}
