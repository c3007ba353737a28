package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/loyaltyworks/rewards/internal/pkg/auth"
	"github.com/loyaltyworks/rewards/internal/server/http/handlers"
	"github.com/loyaltyworks/rewards/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ServiceFacade, store *pkgAuth.CredentialStore, tokens pkgAuth.TokenStrategy, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(store, tokens)
	customerHandler := handlers.NewCustomerHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	rewardHandler := handlers.NewRewardHandler(facade)

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Create)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(store, tokens))

	authed.GET("/customers", customerHandler.List)
	authed.POST("/customers", customerHandler.Create)
	authed.GET("/customers/:customerId", customerHandler.Get)
	authed.GET("/customers/:customerId/transactions", transactionHandler.ListByCustomer)

	authed.GET("/transactions", transactionHandler.List)
	authed.POST("/transactions", transactionHandler.Create)
	authed.GET("/transactions/:transactionId", transactionHandler.Get)

	authed.GET("/rewards", rewardHandler.List)
	authed.POST("/rewards", rewardHandler.Save)
	authed.GET("/rewards/:rewardId", rewardHandler.Get)

	return engine
}
