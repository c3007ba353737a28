package dto

import (
	"encoding/xml"
	"time"
)

// RewardDocument represents a single catalog entry on the wire.
type RewardDocument struct {
	XMLName           xml.Name   `xml:"reward"`
	RewardID          string     `xml:"rewardId"`
	RewardName        string     `xml:"rewardName"`
	PointsRequired    int        `xml:"pointsRequired"`
	RewardType        string     `xml:"rewardType"`
	RewardValue       string     `xml:"rewardValue"`
	AvailabilityCount int        `xml:"availabilityCount"`
	ExpirationDate    *time.Time `xml:"expirationDate,omitempty"`
	Category          string     `xml:"category"`
	Description       string     `xml:"description"`
	IsActive          bool       `xml:"isActive"`
}

// RewardListDocument wraps a catalog collection.
type RewardListDocument struct {
	XMLName xml.Name         `xml:"rewards"`
	Rewards []RewardDocument `xml:"reward"`
}

// SaveRewardRequest describes the catalog upsert payload. Optional fields
// are pointers so creation defaults apply only when the element is absent.
type SaveRewardRequest struct {
	XMLName           xml.Name   `xml:"reward"`
	RewardID          string     `xml:"rewardId"`
	RewardName        string     `xml:"rewardName"`
	PointsRequired    int        `xml:"pointsRequired"`
	RewardType        string     `xml:"rewardType"`
	RewardValue       string     `xml:"rewardValue"`
	AvailabilityCount *int       `xml:"availabilityCount"`
	ExpirationDate    *time.Time `xml:"expirationDate"`
	Category          string     `xml:"category"`
	Description       string     `xml:"description"`
	IsActive          *bool      `xml:"isActive"`
}
