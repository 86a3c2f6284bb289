package identity

import "context"

// Tokens holds the credentials returned by the provider's code exchange
type Tokens struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	ExpiresIn    int64 // Seconds until the access token expires
}

// Profile holds the remote profile fetched with an access token. AvatarURL
// is already derived by the adapter: a CDN URL built from the avatar hash
// when one exists, or one of the provider's default avatars otherwise.
type Profile struct {
	ID            string
	Username      string
	Discriminator string
	Email         string
	AvatarURL     string
}

// Provider is the external identity provider the login flow delegates to.
// It is not owned by this system; failures surface as AuthError.
type Provider interface {
	// AuthorizationURL builds the URL the browser is redirected to,
	// carrying the given anti-forgery state value
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens
	ExchangeCode(ctx context.Context, code string) (*Tokens, error)

	// FetchProfile fetches the remote profile for an access token
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
}
