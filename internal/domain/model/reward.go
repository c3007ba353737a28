package model

import "time"

// Catalog defaults applied when a reward is created without explicit values.
const (
	DefaultAvailabilityCount = 100
)

// Reward describes a redeemable catalog entry. The reward identifier is
// caller-supplied and acts as the upsert key; saving an existing identifier
// replaces every field. AvailabilityCount is informational only and is never
// decremented by redemptions.
type Reward struct {
	RewardID          string
	RewardName        string
	PointsRequired    int
	RewardType        string
	RewardValue       string
	AvailabilityCount int
	ExpirationDate    *time.Time
	Category          string
	Description       string
	IsActive          bool
}
