package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/chocodealers/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActorKey is the gin context key under which the resolved actor is stored
const ActorKey = "actor"

// ActorHeader carries the caller's platform identifier, e.g. a Telegram
// user ID
const ActorHeader = "X-Actor-ID"

// ResolveActor resolves the caller from the X-Actor-ID header against the
// actor registry. Requests without a known, active actor are rejected.
func ResolveActor(repo identity.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ActorHeader)
		if raw == "" {
			abortUnauthorized(c, "Missing "+ActorHeader+" header")
			return
		}

		externalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || externalID <= 0 {
			abortUnauthorized(c, "Malformed "+ActorHeader+" header")
			return
		}

		actor, err := repo.FindByExternalID(c.Request.Context(), externalID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				logger.Error("Actor lookup failed",
					zap.Int64("external_id", externalID),
					zap.Error(err),
				)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable,
					dto.NewErrorResponse("STORE_UNAVAILABLE", "Actor lookup failed"))
				return
			}
			abortUnauthorized(c, "Unknown actor")
			return
		}
		if !actor.IsActive {
			abortUnauthorized(c, "Actor is deactivated")
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// GetActor retrieves the resolved actor from the gin context
func GetActor(c *gin.Context) *identity.Actor {
	if value, exists := c.Get(ActorKey); exists {
		if actor, ok := value.(*identity.Actor); ok {
			return actor
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse("UNAUTHORIZED", message))
}
