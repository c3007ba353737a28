package auth

import (
	"github.com/loyaltyworks/rewards/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newCredentialStore),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type credentialParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newCredentialStore(p credentialParams) (*CredentialStore, error) {
	return NewCredentialStore(p.Config.AuthUsers, p.Hasher)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) TokenStrategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{})
}
