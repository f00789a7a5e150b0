package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/lmrivero/chatsurvey/internal/app/auth"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
	"github.com/lmrivero/chatsurvey/internal/pkg/auth"
)

// actorKey is the gin context key the authenticated actor is stored under
const actorKey = "actor"

// AuthMiddleware is the authentication gate. It validates bearer tokens and
// resolves them to a live user before any resource logic runs.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// Authenticate validates the Authorization header, verifies the token and
// attaches the resolved actor to the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication token required"))
			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		// Tokens are not invalidated when a user is deleted, so the user
		// must be re-checked on every request.
		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("User not found"))
			return
		}

		c.Set(actorKey, appauth.Actor{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})

		c.Next()
	}
}

// RequireRoles evaluates the role predicate of the authorization policy.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	policy := appauth.Policy{Roles: roles}
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		if err := appauth.Evaluate(actor, policy, 0, 0); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("You don't have permission to access this resource"))
			return
		}

		c.Next()
	}
}

// GetActor returns the authenticated actor attached by Authenticate.
func GetActor(c *gin.Context) (appauth.Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return appauth.Actor{}, false
	}
	actor, ok := value.(appauth.Actor)
	return actor, ok
}
