package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the middleware. Downstream code reads the
// resolved role and actor, never the token.
const (
	ContextKeyActor = "actor"
	ContextKeyRole  = "role"
)

// Middleware provides bearer-token authentication for gin routes
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and sets the actor identity and
// resolved role on the request context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextKeyActor, claims.Email)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the resolved role passes the check
func (m *Middleware) RequireRole(check func(Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		if !check(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "role does not permit this operation"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor's email, or empty.
func ActorFromContext(c *gin.Context) string {
	if actor, ok := c.Get(ContextKeyActor); ok {
		if email, ok := actor.(string); ok {
			return email
		}
	}
	return ""
}

// RoleFromContext returns the resolved role, defaulting to viewer.
func RoleFromContext(c *gin.Context) Role {
	if value, ok := c.Get(ContextKeyRole); ok {
		if role, ok := value.(Role); ok && role.IsValid() {
			return role
		}
	}
	return RoleViewer
}
