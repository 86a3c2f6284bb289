package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/logger"
)

func newTestProvider(authURL, tokenURL, apiBaseURL string) *Provider {
	return NewProvider(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:3000/auth/discord/callback",
		AuthURL:      authURL,
		TokenURL:     tokenURL,
		APIBaseURL:   apiBaseURL,
	}, logger.NewNoopLogger())
}

func TestProvider_AuthorizationURL(t *testing.T) {
	provider := newTestProvider("", "", "")

	rawURL := provider.AuthorizationURL("state-1")

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "discord.com", parsed.Host)
	assert.Equal(t, "/api/oauth2/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "identify email", query.Get("scope"))
	assert.Equal(t, "http://localhost:3000/auth/discord/callback", query.Get("redirect_uri"))
}

func TestProvider_ExchangeCode(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the tokens from the token endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "code-1", r.FormValue("code"))
			assert.Equal(t, "authorization_code", r.FormValue("grant_type"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "access-1",
				"refresh_token": "refresh-1",
				"token_type":    "Bearer",
				"scope":         "identify email",
				"expires_in":    604800,
			})
		}))
		defer server.Close()

		provider := newTestProvider("", server.URL, "")

		tokens, err := provider.ExchangeCode(ctx, "code-1")

		require.NoError(t, err)
		assert.Equal(t, "access-1", tokens.AccessToken)
		assert.Equal(t, "refresh-1", tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
		assert.Equal(t, "identify email", tokens.Scope)
		assert.Greater(t, tokens.ExpiresIn, int64(0))
	})

	t.Run("should wrap a token endpoint rejection with its status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
		}))
		defer server.Close()

		provider := newTestProvider("", server.URL, "")

		tokens, err := provider.ExchangeCode(ctx, "bad-code")

		assert.Nil(t, tokens)
		assert.ErrorIs(t, err, errs.ErrUpstreamAuth)

		var authErr *errs.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "exchange_code", authErr.Operation)
		assert.Equal(t, http.StatusBadRequest, authErr.Status)
	})
}

func TestProvider_FetchProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should fetch the profile and derive the avatar URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/@me", r.URL.Path)
			assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":            "discord-1",
				"username":      "whitecat",
				"discriminator": "0",
				"email":         "cat@example.com",
				"avatar":        "abc123",
			})
		}))
		defer server.Close()

		provider := newTestProvider("", "", server.URL)

		profile, err := provider.FetchProfile(ctx, "access-1")

		require.NoError(t, err)
		assert.Equal(t, "discord-1", profile.ID)
		assert.Equal(t, "whitecat", profile.Username)
		assert.Equal(t, "cat@example.com", profile.Email)
		assert.Equal(t, "https://cdn.discordapp.com/avatars/discord-1/abc123.png", profile.AvatarURL)
	})

	t.Run("should wrap a non-200 response with its status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := newTestProvider("", "", server.URL)

		profile, err := provider.FetchProfile(ctx, "expired-token")

		assert.Nil(t, profile)

		var authErr *errs.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "fetch_profile", authErr.Operation)
		assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	})
}

func TestAvatarURL(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		avatarHash    string
		discriminator string
		expected      string
	}{
		{
			name:       "custom avatar hash",
			userID:     "discord-1",
			avatarHash: "abc123",
			expected:   "https://cdn.discordapp.com/avatars/discord-1/abc123.png",
		},
		{
			name:          "default avatar by discriminator",
			userID:        "discord-1",
			discriminator: "0007",
			expected:      "https://cdn.discordapp.com/embed/avatars/2.png",
		},
		{
			name:          "migrated account without discriminator",
			userID:        "discord-1",
			discriminator: "0",
			expected:      "https://cdn.discordapp.com/embed/avatars/0.png",
		},
		{
			name:          "unparsable discriminator falls back to the first default",
			userID:        "discord-1",
			discriminator: "",
			expected:      "https://cdn.discordapp.com/embed/avatars/0.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvatarURL(tt.userID, tt.avatarHash, tt.discriminator))
		})
	}
}
