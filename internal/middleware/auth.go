package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/alternativafozthiago/financas/config"
	"github.com/alternativafozthiago/financas/internal/contracts"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/logger"
	"github.com/alternativafozthiago/financas/internal/session"
)

// IdentityValidator valida um token de identidade e devolve o identificador
// opaco do dono. O identificador nunca é interpretado além de igualdade.
type IdentityValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// GoogleIdentityValidator valida ID tokens do Google contra o client id
// configurado e usa o subject do token como identidade.
type GoogleIdentityValidator struct {
	Audience string
}

func NewGoogleIdentityValidator(cfg *config.Config) *GoogleIdentityValidator {
	return &GoogleIdentityValidator{Audience: cfg.GoogleOAuth.ClientID}
}

func (v *GoogleIdentityValidator) Validate(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.Audience)
	if err != nil {
		return "", err
	}
	return payload.Subject, nil
}

// Auth exige um Bearer token válido, resolve a sessão da identidade e grava
// o user_id no contexto da requisição.
func Auth(validator IdentityValidator, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		owner, err := validator.Validate(c.Request.Context(), token)
		if err != nil {
			logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Token de identidade rejeitado")
			unauthorized(c)
			return
		}

		if sessions.Resolve(owner) != session.StateAuthenticated {
			unauthorized(c)
			return
		}

		c.Set("user_id", owner)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, contracts.ErrorResponse{
		Error:   appErrors.ErrUnauthorized.Code,
		Message: appErrors.ErrUnauthorized.Message,
	})
	c.Abort()
}
