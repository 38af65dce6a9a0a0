package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/apperr"
	"github.com/talentbridge/recruitment-backend/internal/authz"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/respond"
)

const identityKey = "caller_identity"

// RequireAuth extracts the bearer token and stores the caller identity on
// the gin context. Missing or malformed credentials end the request with
// the uniform envelope.
func RequireAuth(tokens *TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(c, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthenticated(c, "invalid authorization header")
			return
		}
		identity, err := tokens.Parse(parts[1])
		if err != nil {
			abortUnauthenticated(c, "invalid token")
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole gates a route group on the caller's role. Fine-grained
// ownership checks stay in the services; this only fences whole route
// trees (candidate vs staff).
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			abortUnauthenticated(c, "caller identity required")
			return
		}
		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}
		respond.Abort(c, http.StatusForbidden, "insufficient role", string(apperr.CodeForbidden))
	}
}

func IdentityFrom(c *gin.Context) (authz.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return authz.Identity{}, false
	}
	identity, ok := value.(authz.Identity)
	return identity, ok
}

func abortUnauthenticated(c *gin.Context, message string) {
	respond.Abort(c, http.StatusUnauthorized, message, string(apperr.CodeUnauthenticated))
}
