package dto

import (
	"encoding/xml"
	"time"
)

// CustomerDocument represents a single customer on the wire.
type CustomerDocument struct {
	XMLName                xml.Name  `xml:"customer"`
	CustomerID             string    `xml:"customerId"`
	FirstName              string    `xml:"firstName"`
	LastName               string    `xml:"lastName"`
	EmailAddress           string    `xml:"emailAddress"`
	PhoneNumber            string    `xml:"phoneNumber"`
	RegistrationDate       time.Time `xml:"registrationDate"`
	LoyaltyTier            string    `xml:"loyaltyTier"`
	TotalLifetimePoints    int       `xml:"totalLifetimePoints"`
	CurrentAvailablePoints int       `xml:"currentAvailablePoints"`
	AccountStatus          string    `xml:"accountStatus"`
}

// CustomerListDocument wraps a customer collection.
type CustomerListDocument struct {
	XMLName   xml.Name           `xml:"customers"`
	Customers []CustomerDocument `xml:"customer"`
}

// CreateCustomerRequest describes the customer registration payload.
type CreateCustomerRequest struct {
	XMLName      xml.Name `xml:"customer"`
	FirstName    string   `xml:"firstName"`
	LastName     string   `xml:"lastName"`
	EmailAddress string   `xml:"emailAddress"`
	PhoneNumber  string   `xml:"phoneNumber"`
}
