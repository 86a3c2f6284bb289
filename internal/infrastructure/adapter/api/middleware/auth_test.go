package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/mocks/port/session"
)

const testCookieName = "whitecat_session"

func init() {
	gin.SetMode(gin.TestMode)
}

// echoIdentity is the terminal handler the middlewares run in front of
func echoIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id": c.GetString(ContextUserID),
		"token":   c.GetString(ContextSessionToken),
	})
}

func performRequest(router *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuth(t *testing.T) {
	newRouter := func(sessions *session.MockStore) *gin.Engine {
		router := gin.New()
		router.GET("/probe", RequireAuth(sessions, testCookieName), echoIdentity)
		return router
	}

	t.Run("should reject a request without a cookie", func(t *testing.T) {
		sessions := new(session.MockStore)
		recorder := performRequest(newRouter(sessions), "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, float64(domainerr.CodeUnauthorized), body["code"])
		sessions.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		sessions := new(session.MockStore)
		sessions.On("Get", "stale-token").Return(nil, false)

		recorder := performRequest(newRouter(sessions), "stale-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should reject a pre-auth session", func(t *testing.T) {
		sessions := new(session.MockStore)
		sessions.On("Get", "pre-auth-token").
			Return(&entity.Session{ID: "pre-auth-token", OAuthState: "state-1"}, true)

		recorder := performRequest(newRouter(sessions), "pre-auth-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should expose the user id to the handler", func(t *testing.T) {
		sessions := new(session.MockStore)
		sessions.On("Get", "authed-token").
			Return(&entity.Session{ID: "authed-token", UserID: "discord-1"}, true)

		recorder := performRequest(newRouter(sessions), "authed-token")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "discord-1", body["user_id"])
		assert.Equal(t, "authed-token", body["token"])
	})
}

func TestOptionalAuth(t *testing.T) {
	newRouter := func(sessions *session.MockStore) *gin.Engine {
		router := gin.New()
		router.GET("/probe", OptionalAuth(sessions, testCookieName), echoIdentity)
		return router
	}

	t.Run("should pass an anonymous request through", func(t *testing.T) {
		sessions := new(session.MockStore)

		recorder := performRequest(newRouter(sessions), "")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "", body["user_id"])
	})

	t.Run("should pass a request with a stale token through without identity", func(t *testing.T) {
		sessions := new(session.MockStore)
		sessions.On("Get", "stale-token").Return(nil, false)

		recorder := performRequest(newRouter(sessions), "stale-token")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "", body["user_id"])
	})

	t.Run("should attach identity for a valid session", func(t *testing.T) {
		sessions := new(session.MockStore)
		sessions.On("Get", "authed-token").
			Return(&entity.Session{ID: "authed-token", UserID: "discord-1"}, true)

		recorder := performRequest(newRouter(sessions), "authed-token")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "discord-1", body["user_id"])
	})
}
