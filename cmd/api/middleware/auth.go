package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prompt-hub/cmd/api/auth"
	"prompt-hub/config"
)

// ContextUID is the gin context key holding the authenticated uid.
const ContextUID = "uid"

var errBadAuthHeader = errors.New("missing_or_malformed_bearer_token")

// bearerToken pulls the token out of "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(c *gin.Context) (string, error) {
	scheme, rest, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", errBadAuthHeader
	}
	token := strings.TrimSpace(rest)
	if token == "" {
		return "", errBadAuthHeader
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}

// AuthRequired verifies the JWT on the request and stores the uid in the
// context for handlers. Any valid token passes; role checks happen in
// AdminAuth and inside the services.
func AuthRequired(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		uid, role, err := jwtManager.Parse(token)
		if err != nil {
			config.Log.Warnf("token parse error: %v", err)
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextUID, uid)
		c.Set("role", role)

		c.Next()
	}
}

// AdminAuth verifies the JWT and requires the admin role claim. The
// services still re-check is_admin against the user document, so a stale
// claim cannot moderate on its own.
func AdminAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		uid, role, err := jwtManager.Parse(token)
		if err != nil {
			config.Log.Warnf("token parse error: %v", err)
			abortUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			config.Log.Warnf("access denied: user %s has role %s, want admin", uid, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set(ContextUID, uid)
		c.Set("role", role)

		c.Next()
	}
}
