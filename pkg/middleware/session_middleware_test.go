package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	mem "twitchfarm/pkg/memcache"
	"twitchfarm/pkg/utils"
)

var testSecret = []byte("test-session-secret")

func newAuthRouter(sessions mem.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", SessionAuthMiddleware(sessions, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	router.GET("/optional", OptionalSessionMiddleware(sessions, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	return router
}

func sessionCookie(t *testing.T, sessionID string) *http.Cookie {
	t.Helper()
	token, err := utils.CreateSessionToken(sessionID, testSecret)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func TestSessionAuthMiddleware_NoCookie(t *testing.T) {
	router := newAuthRouter(mem.NewSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestSessionAuthMiddleware_ValidSession(t *testing.T) {
	sessions := mem.NewSessions()
	sessionID := sessions.Create(5, time.Hour)

	router := newAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, sessionID))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSessionAuthMiddleware_DeletedSession(t *testing.T) {
	sessions := mem.NewSessions()
	sessionID := sessions.Create(5, time.Hour)
	cookie := sessionCookie(t, sessionID)
	sessions.Delete(sessionID)

	router := newAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want 401", w.Code)
	}
}

func TestSessionAuthMiddleware_ForgedCookie(t *testing.T) {
	sessions := mem.NewSessions()
	sessionID := sessions.Create(5, time.Hour)

	forged, err := utils.CreateSessionToken(sessionID, []byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	router := newAuthRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: forged})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status with forged cookie = %d, want 401", w.Code)
	}
}

func TestOptionalSessionMiddleware_PassesWithoutSession(t *testing.T) {
	router := newAuthRouter(mem.NewSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
