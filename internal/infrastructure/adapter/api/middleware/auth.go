package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/gin-gonic/gin"
)

// WebhookSecretHeader carries the shared secret of the verification webhook
const WebhookSecretHeader = "X-Webhook-Secret"

const (
	actorIDKey   = "actor_id"
	actorRoleKey = "actor_role"
)

// Authenticate requires a valid, unrevoked bearer token and stores the
// actor id for handlers. Authorization is left to the use cases.
func Authenticate(issuer identity.TokenIssuer, revoker identity.SessionRevoker, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, logger, errs.ErrUnauthenticated)
			return
		}

		claims, err := issuer.Validate(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{
				"request_id": RequestIDFrom(c),
				"reason":     err.Error(),
			})
			AbortWithError(c, logger, err)
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.UID, claims.IssuedAt)
		if err != nil {
			logger.Error("Revocation check failed", map[string]any{
				"uid":   claims.UID,
				"error": err.Error(),
			})
			AbortWithError(c, logger, errs.ErrInternalServer)
			return
		}
		if revoked {
			AbortWithError(c, logger, errs.WithMessage(errs.ErrUnauthenticated, "session has been revoked"))
			return
		}

		c.Set(actorIDKey, claims.UID)
		c.Set(actorRoleKey, string(claims.Role))
		c.Next()
	}
}

// ActorID returns the authenticated uid, or "" on public routes
func ActorID(c *gin.Context) string {
	return c.GetString(actorIDKey)
}

// ActorRole returns the role claimed by the token. Use cases re-read the
// role from the user record.
func ActorRole(c *gin.Context) entity.Role {
	return entity.Role(c.GetString(actorRoleKey))
}

// WebhookSecret guards the verification webhook with a shared secret
func WebhookSecret(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(WebhookSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logger.Warn("Webhook call with a bad secret", map[string]any{
				"ip":         c.ClientIP(),
				"request_id": RequestIDFrom(c),
			})
			AbortWithError(c, logger, errs.ErrUnauthenticated)
			return
		}
		c.Next()
	}
}
