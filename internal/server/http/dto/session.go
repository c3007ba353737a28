package dto

import "encoding/xml"

// SessionRequest carries login credentials for session creation.
type SessionRequest struct {
	XMLName  xml.Name `xml:"session"`
	Login    string   `xml:"login"`
	Password string   `xml:"password"`
}

// SessionDocument is returned after a successful login.
type SessionDocument struct {
	XMLName xml.Name `xml:"session"`
	Login   string   `xml:"login"`
	Role    string   `xml:"role"`
}

// ErrorDocument is the XML error body used across all endpoints.
type ErrorDocument struct {
	XMLName xml.Name `xml:"error"`
	Message string   `xml:",chardata"`
}
