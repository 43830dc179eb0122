package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mem "twitchfarm/pkg/memcache"
	"twitchfarm/pkg/utils"
)

const SessionCookieName = "session_token"

// SessionAuthMiddleware rejects requests without a valid session. The
// cookie carries a signed session id; the id must still resolve against
// the server-side store, so logout and expiry take effect immediately.
func SessionAuthMiddleware(sessions mem.SessionStore, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, sessionID, ok := resolveSession(c, sessions, secret)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set("account_id", accountID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// OptionalSessionMiddleware sets the caller identity when a valid session
// exists and passes through otherwise. Used by the auth status route.
func OptionalSessionMiddleware(sessions mem.SessionStore, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID, sessionID, ok := resolveSession(c, sessions, secret); ok {
			c.Set("account_id", accountID)
			c.Set("session_id", sessionID)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context, sessions mem.SessionStore, secret []byte) (int64, string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return 0, "", false
	}

	sessionID, err := utils.ValidateSessionToken(cookie, secret)
	if err != nil {
		return 0, "", false
	}

	accountID, ok := sessions.Get(sessionID)
	if !ok {
		return 0, "", false
	}

	return accountID, sessionID, true
}

// AccountID returns the authenticated caller's account id set by the
// session middleware.
func AccountID(c *gin.Context) int64 {
	return c.GetInt64("account_id")
}
