package social

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/loyaltyworks/rewards/internal/config"
	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// Module exposes the award feed client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.SocialFeedAddress == "" {
		return disabledClient{}, nil
	}
	return NewHTTPClient(p.Config.SocialFeedAddress, p.Logger)
}

// disabledClient is wired when no feed address is configured; polling is
// also skipped at the lifecycle level, this only guards direct calls.
type disabledClient struct{}

func (disabledClient) PendingAwards(context.Context, int) ([]model.SocialAward, error) {
	return nil, nil
}

func (disabledClient) Acknowledge(context.Context, string) error {
	return nil
}
