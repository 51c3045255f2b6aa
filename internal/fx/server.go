package fx

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/alternativafozthiago/financas/config"
	"github.com/alternativafozthiago/financas/internal/logger"
	"github.com/alternativafozthiago/financas/internal/middleware"
	"github.com/alternativafozthiago/financas/internal/routes"
	"github.com/alternativafozthiago/financas/internal/session"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	validator middleware.IdentityValidator,
	sessions *session.Manager,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimit(rateLimiter))

	private := router.Group("/api")
	private.Use(middleware.Auth(validator, sessions))
	private.Use(middleware.RateLimitByUser(middleware.NewRateLimiter(100, time.Minute)))
	{
		private.GET("/dashboard", handler.GetDashboard)

		contacts := private.Group("/contacts")
		{
			contacts.POST("", handler.CreateContact)
			contacts.GET("", handler.GetContacts)
			contacts.GET("/:id", handler.GetContact)
			contacts.PATCH("/:id", handler.UpdateContact)
			contacts.DELETE("/:id", handler.DeleteContact)
		}

		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.PATCH("/:id/paid", handler.TogglePaidTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/payable", handler.GetPayableReport)
			reports.GET("/receivable", handler.GetReceivableReport)
		}

		private.POST("/session/signout", handler.SignOut)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
