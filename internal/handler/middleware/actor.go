package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorHeader carries the acting user's id on every authenticated route.
// Identity is asserted by the gateway tier; the server trusts the header.
const ActorHeader = "X-Sharer-User-Id"

const ctxActorIDKey = "actor_id"

// RequireActor rejects requests without a well-formed actor header.
// Existence of the user is checked by the usecase layer, not here.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ActorHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "X-Sharer-User-Id header required",
			})
			c.Abort()
			return
		}

		actorID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid X-Sharer-User-Id header format",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorIDKey, actorID)
		c.Next()
	}
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := actorID.(uuid.UUID)
	return id, ok
}
