package auth

import "time"

// Session identifies an authenticated service user.
type Session struct {
	Login string
	Role  string
}

// TokenStrategy issues and verifies session tokens carrying login and role.
type TokenStrategy interface {
	IssueToken(session Session) (string, error)
	ParseToken(token string) (Session, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
