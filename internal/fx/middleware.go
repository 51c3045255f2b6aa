package fx

import (
	"go.uber.org/fx"

	"github.com/alternativafozthiago/financas/config"
	"github.com/alternativafozthiago/financas/internal/logger"
	"github.com/alternativafozthiago/financas/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newIdentityValidator,
	),
)

func newIdentityValidator(cfg *config.Config) middleware.IdentityValidator {
	if cfg.GoogleOAuth.ClientID == "" {
		logger.Warn().Msg("GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
	}
	return middleware.NewGoogleIdentityValidator(cfg)
}
