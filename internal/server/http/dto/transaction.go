package dto

import (
	"encoding/xml"
	"time"
)

// TransactionDocument represents a single ledger entry on the wire.
type TransactionDocument struct {
	XMLName         xml.Name   `xml:"transaction"`
	TransactionID   string     `xml:"transactionId"`
	CustomerID      string     `xml:"customerId"`
	TransactionType string     `xml:"transactionType"`
	PointsAmount    int        `xml:"pointsAmount"`
	TransactionDate time.Time  `xml:"transactionDate"`
	ExpirationDate  *time.Time `xml:"expirationDate,omitempty"`
	RelatedOrderID  string     `xml:"relatedOrderId,omitempty"`
	Description     string     `xml:"description,omitempty"`
	CreatedBy       string     `xml:"createdBy"`
	Status          string     `xml:"status"`
}

// TransactionListDocument wraps a ledger entry collection.
type TransactionListDocument struct {
	XMLName      xml.Name              `xml:"transactions"`
	Transactions []TransactionDocument `xml:"transaction"`
}

// CreateTransactionRequest describes the ledger append payload. Amount is a
// legacy alias for PointsAmount kept for older clients; pointer fields let
// the handler tell an absent element from a zero value.
type CreateTransactionRequest struct {
	XMLName         xml.Name `xml:"transaction"`
	CustomerID      string   `xml:"customerId"`
	TransactionType string   `xml:"transactionType"`
	PointsAmount    *int     `xml:"pointsAmount"`
	Amount          *int     `xml:"amount"`
	Description     string   `xml:"description"`
}
