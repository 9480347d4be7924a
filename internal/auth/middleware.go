package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey is where the middleware stashes the authenticated user id.
// Handlers read it through CurrentUserID, never directly.
const contextKey = "auth.user_id"

// Middleware resolves the session cookie to a user id and aborts with 401
// when it can't. Everything behind it can assume an authenticated caller.
func Middleware(sessions *SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		userID, err := sessions.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Set(contextKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the identity the middleware established.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(contextKey)
}
