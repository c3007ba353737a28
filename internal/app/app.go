package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/loyaltyworks/rewards/internal/config"
	"github.com/loyaltyworks/rewards/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewRewardsFacade,
		newHTTPServer,
		newAwardProcessor,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *RewardsFacade
	Config *config.Config
	Logger *slog.Logger
}

func newAwardProcessor(p workerParams) *worker.AwardProcessor {
	return worker.NewAwardProcessor(
		p.Facade,
		p.Config.AwardPollInterval,
		p.Config.AwardBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.AwardProcessor
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	pollingEnabled := p.Config.SocialFeedAddress != ""

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting rewards service", slog.String("addr", p.Server.Addr))
			if pollingEnabled {
				p.Worker.Start(ctx)
			} else {
				p.Logger.Info("social award polling disabled")
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if pollingEnabled {
				p.Worker.Stop()
			}

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("rewards service stopped")
			return nil
		},
	})
}
