package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

// Auth rejects requests without a bearer token with 401 and requests with a
// bad or expired one with 403.
func Auth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "Access token required"})
			return
		}

		identity, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the caller set by Auth.
func Identity(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
