package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"medishare.backend/internal/domain/entities"
	"medishare.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// IdentityKey is the context key for the resolved identity
	IdentityKey = "identity"
)

// AccountGetter is the account lookup the resolver needs
type AccountGetter interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
}

// AuthMiddleware verifies the bearer token and resolves the caller's
// identity. Resolution re-reads the account store every request: the token
// carries only id and role, the identity's email and phone are always the
// account's current values. A token whose account no longer exists is
// rejected, which revokes deleted accounts without a revocation list.
//
// Every failure path returns the same generic 401 body so callers cannot
// probe why a token was refused.
func AuthMiddleware(tokenService *jwt.Service, accounts AccountGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			log.Printf("[AuthMiddleware] Request to %s failed: Authorization header is missing", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			log.Printf("[AuthMiddleware] Request to %s failed: Invalid authorization format", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := tokenService.Validate(tokenString)
		if err != nil {
			log.Printf("[AuthMiddleware] Request to %s failed: %v", c.Request.URL.Path, err)
			abortUnauthorized(c)
			return
		}

		account, err := accounts.GetAccountByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			log.Printf("[AuthMiddleware] Request to %s failed: account %s not resolvable: %v", c.Request.URL.Path, claims.AccountID, err)
			abortUnauthorized(c)
			return
		}

		c.Set(IdentityKey, entities.ResolvedIdentity{
			AccountID: account.ID,
			Role:      account.Role,
			Email:     account.Email,
			Phone:     account.Phone,
		})

		c.Next()
	}
}

// GetIdentity gets the resolved identity from the gin context
func GetIdentity(c *gin.Context) (entities.ResolvedIdentity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return entities.ResolvedIdentity{}, false
	}
	identity, ok := v.(entities.ResolvedIdentity)
	return identity, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": "Authorization denied",
	})
}
