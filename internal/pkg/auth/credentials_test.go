package auth

import (
	"errors"
	"testing"

	domainErrors "github.com/loyaltyworks/rewards/internal/domain/errors"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Compare(hash string, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func TestNewCredentialStoreParsesUsers(t *testing.T) {
	store, err := NewCredentialStore("admin:secret:admin, manager1:pass:Manager ,clerk:pw:employee", plainHasher{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(store.users))
	}
	if store.users["manager1"].role != RoleManager {
		t.Fatalf("expected role normalized to manager, got %q", store.users["manager1"].role)
	}
	if store.users["admin"].passwordHash != "hash:secret" {
		t.Fatal("expected password hashed at construction")
	}
}

func TestNewCredentialStoreRejectsMalformedEntries(t *testing.T) {
	cases := []string{
		"adminonly",
		"admin:secret",
		":secret:admin",
		"admin::admin",
		"admin:secret:root",
		"",
		" , ,",
	}
	for _, spec := range cases {
		if _, err := NewCredentialStore(spec, plainHasher{}); err == nil {
			t.Fatalf("expected error for spec %q", spec)
		}
	}
}

func TestCredentialStoreAuthenticate(t *testing.T) {
	store, err := NewCredentialStore("admin:secret:admin", plainHasher{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	role, err := store.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("expected authentication to succeed: %v", err)
	}
	if role != RoleAdmin {
		t.Fatalf("unexpected role: %q", role)
	}

	if _, err := store.Authenticate("admin", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, err := store.Authenticate("ghost", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown login, got %v", err)
	}
}

func TestCredentialStoreWithBcryptHasher(t *testing.T) {
	store, err := NewCredentialStore("admin:secret:admin", NewBcryptHasher(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Authenticate("admin", "secret"); err != nil {
		t.Fatalf("expected bcrypt-backed authentication to succeed: %v", err)
	}
}
