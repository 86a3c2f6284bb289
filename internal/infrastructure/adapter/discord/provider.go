package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	identityport "github.com/whitecat-hosting/whitecat/internal/domain/port/identity"
	"golang.org/x/oauth2"
)

// Discord endpoints and CDN layout
const (
	defaultAuthURL    = "https://discord.com/api/oauth2/authorize"
	defaultTokenURL   = "https://discord.com/api/oauth2/token"
	defaultAPIBaseURL = "https://discord.com/api"
	cdnBaseURL        = "https://cdn.discordapp.com"

	// Discord ships this many default embed avatars
	defaultAvatarCount = 5

	requestTimeout = 10 * time.Second
)

// Config holds the Discord application credentials. The URL fields default
// to Discord's public endpoints and exist so tests can point the provider at
// a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	AuthURL    string
	TokenURL   string
	APIBaseURL string
}

// Provider implements the identity port against Discord's OAuth2 API
type Provider struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewProvider creates a Discord identity provider
func NewProvider(cfg Config, logger coreport.Logger) *Provider {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	apiBaseURL := cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// AuthorizationURL builds the Discord authorization URL carrying the given
// anti-forgery state
func (p *Provider) AuthorizationURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*identityport.Tokens, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		status := 0
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return nil, &errs.AuthError{Operation: "exchange_code", Status: status, Err: err}
	}

	tokens := &identityport.Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		tokens.Scope = scope
	}
	if !token.Expiry.IsZero() {
		tokens.ExpiresIn = int64(time.Until(token.Expiry).Seconds())
	}
	return tokens, nil
}

// profileResponse mirrors the fields of GET /users/@me that we use
type profileResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar"`
}

// FetchProfile fetches the remote profile for an access token
func (p *Provider) FetchProfile(ctx context.Context, accessToken string) (*identityport.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+"/users/@me", nil)
	if err != nil {
		return nil, &errs.AuthError{Operation: "fetch_profile", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &errs.AuthError{Operation: "fetch_profile", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.AuthError{
			Operation: "fetch_profile",
			Status:    resp.StatusCode,
			Err:       fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &errs.AuthError{Operation: "fetch_profile", Err: err}
	}

	return &identityport.Profile{
		ID:            body.ID,
		Username:      body.Username,
		Discriminator: body.Discriminator,
		Email:         body.Email,
		AvatarURL:     AvatarURL(body.ID, body.Avatar, body.Discriminator),
	}, nil
}

// AvatarURL derives the CDN avatar URL deterministically: a custom avatar
// hash maps to the user's uploaded avatar, anything else to one of Discord's
// default embed avatars selected by discriminator mod 5.
func AvatarURL(userID, avatarHash, discriminator string) string {
	if avatarHash != "" {
		return fmt.Sprintf("%s/avatars/%s/%s.png", cdnBaseURL, userID, avatarHash)
	}

	// Accounts migrated off discriminators report "0", which still selects
	// a stable default.
	disc, err := strconv.Atoi(discriminator)
	if err != nil {
		disc = 0
	}
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBaseURL, disc%defaultAvatarCount)
}

// Compile-time interface check
var _ identityport.Provider = (*Provider)(nil)
