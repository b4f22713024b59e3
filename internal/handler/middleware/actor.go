package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"
)

// ActorHeader carries the caller's identity, resolved upstream by the
// gateway. No credentials are handled here.
const ActorHeader = "X-Sharer-User-Id"

const ctxActorIDKey = "actor_id"

// RequireActor rejects requests without a well-formed actor header. Whether
// the user actually exists is checked per-operation, not here.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ActorHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errs.New("missing actor header"),
				"X-Sharer-User-Id header required", nil)
			return
		}

		actorID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest,
				err, "Invalid X-Sharer-User-Id header format", nil)
			return
		}

		c.Set(ctxActorIDKey, actorID)
		c.Next()
	}
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
