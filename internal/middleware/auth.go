package middleware

import (
	"errors"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/pkg/token"
	"storefront-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie carrying the short-lived access token.
const AccessTokenCookie = "access_token"

// UserFinder looks up the live user row for the authorization check.
type UserFinder interface {
	FindByID(id uint) (*models.User, error)
}

// RequireAuth validates the access token cookie and injects the decoded
// identity into the request context. Expiry is flagged separately from
// other failures so clients know when a silent renewal is worth trying.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(AccessTokenCookie)
		if err != nil || accessToken == "" {
			utils.HandleError(c, apperr.Authentication("authentication required"))
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccess(accessToken)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				utils.HandleError(c, apperr.Expired("session expired, please log in again"))
			} else {
				utils.HandleError(c, apperr.Authentication("invalid token"))
			}
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// RequireAdmin checks the admin flag against current storage instead of
// the token's cached claim: a privilege revoked mid-session takes
// effect on the next request, not after token expiry.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			utils.HandleError(c, apperr.Authentication("authentication required"))
			c.Abort()
			return
		}

		user, err := users.FindByID(userID.(uint))
		if err != nil || !user.IsAdmin {
			utils.HandleError(c, apperr.Authorization("admin privileges required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user's id from the request context.
// Only valid downstream of RequireAuth.
func UserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}
