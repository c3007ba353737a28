package auth

import (
	"fmt"
	"strings"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
)

// Service roles recognized by the boundary. The core performs no
// authorization; the role only travels with the request context.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type serviceUser struct {
	passwordHash string
	role         string
}

// CredentialStore validates service user credentials declared in
// configuration as comma-separated login:password:role triples. Passwords
// are hashed at construction and never kept in clear.
type CredentialStore struct {
	users  map[string]serviceUser
	hasher PasswordHasher
}

// NewCredentialStore parses the user spec and hashes every password.
func NewCredentialStore(spec string, hasher PasswordHasher) (*CredentialStore, error) {
	store := &CredentialStore{users: make(map[string]serviceUser), hasher: hasher}
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.SplitN(entry, ":", 3)
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("malformed user entry %q, want login:password:role", entry)
		}
		role := strings.ToLower(fields[2])
		switch role {
		case RoleAdmin, RoleManager, RoleEmployee:
		default:
			return nil, fmt.Errorf("unknown role %q for user %q", fields[2], fields[0])
		}
		hash, err := hasher.Hash(fields[1])
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", fields[0], err)
		}
		store.users[fields[0]] = serviceUser{passwordHash: hash, role: role}
	}
	if len(store.users) == 0 {
		return nil, fmt.Errorf("no service users configured")
	}
	return store, nil
}

// Authenticate checks the credentials and returns the user's role.
func (s *CredentialStore) Authenticate(login, password string) (string, error) {
	user, ok := s.users[login]
	if !ok {
		return "", domainErrors.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}
	return user.role, nil
}
