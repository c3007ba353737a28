package model

import "time"

// SocialAward is a bonus granted by the social post scoring service for an
// approved post. Awards stay pending on the feed until the ledger entry is
// written and the award acknowledged.
type SocialAward struct {
	AwardID    string
	CustomerID string
	PostID     string
	Points     int
	AwardedAt  time.Time
}
