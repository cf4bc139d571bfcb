package googleadsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

func newTestOAuthClient(tokenURL string) *OAuthClient {
	cfg := config.GoogleAds{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost/callback",
		AuthURL:      "https://accounts.example.com/o/oauth2/v2/auth",
		TokenURL:     tokenURL,
	}
	return NewOAuthClient(cfg, transport.NewClient(domain.PlatformGoogleAds, config.Adapter{Timeout: time.Second}))
}

func TestExchangeCodeForTokens(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, err error, accessToken string)
	}{
		{
			name: "troca o código por tokens",
			handler: func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
				assert.Equal(t, "the-code", r.PostForm.Get("code"))
				assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
				assert.Equal(t, "http://localhost/callback", r.PostForm.Get("redirect_uri"))
				w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3599,"scope":"adwords"}`))
			},
			validate: func(t *testing.T, err error, accessToken string) {
				require.NoError(t, err)
				assert.Equal(t, "at", accessToken)
			},
		},
		{
			name: "resposta não 2xx vira TOKEN_EXCHANGE_FAILED",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_grant"}`))
			},
			validate: func(t *testing.T, err error, accessToken string) {
				assert.Equal(t, apiErrors.ErrTokenExchangeFailed, apiErrors.CodeOf(err, ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			tokenResp, err := newTestOAuthClient(server.URL).ExchangeCodeForTokens(context.Background(), "the-code", "")

			accessToken := ""
			if tokenResp != nil {
				accessToken = tokenResp.AccessToken
			}
			tt.validate(t, err, accessToken)
		})
	}
}

func TestExchangeCodeForTokens_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestOAuthClient(server.URL).ExchangeCodeForTokens(context.Background(), "code", "")

	assert.Equal(t, apiErrors.ErrNetwork, apiErrors.CodeOf(err, ""))
}

func TestRefreshAccessToken_KeepsRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		w.Write([]byte(`{"access_token":"new-access","expires_in":3600}`))
	}))
	defer server.Close()

	tokenResp, err := newTestOAuthClient(server.URL).RefreshAccessToken(context.Background(), "original-refresh")
	require.NoError(t, err)

	assert.Equal(t, "new-access", tokenResp.AccessToken)
	assert.Equal(t, "original-refresh", tokenResp.RefreshToken)
}

func TestRefreshAccessToken_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestOAuthClient(server.URL).RefreshAccessToken(context.Background(), "refresh")

	assert.Equal(t, apiErrors.ErrTokenRefreshFailed, apiErrors.CodeOf(err, ""))
}

func TestRequestToken_MissingClientCredentials(t *testing.T) {
	client := NewOAuthClient(config.GoogleAds{}, transport.NewClient(domain.PlatformGoogleAds, config.Adapter{}))

	_, err := client.RefreshAccessToken(context.Background(), "refresh")

	assert.Equal(t, apiErrors.ErrMissingCredentials, apiErrors.CodeOf(err, ""))
}

func TestGenerateAuthURL(t *testing.T) {
	authURL, err := newTestOAuthClient("").GenerateAuthURL("company-1", "")
	require.NoError(t, err)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "accounts.example.com", parsed.Host)
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, "company-1", query.Get("state"))
	assert.Contains(t, query.Get("scope"), "https://www.googleapis.com/auth/adwords")
	assert.Contains(t, query.Get("scope"), "email")
}

func TestParseIDToken(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1122",
		"email": "ana@empresa.com",
		"name":  "Ana",
	}).SignedString([]byte("qualquer"))
	require.NoError(t, err)

	profile, err := ParseIDToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "1122", profile.Subject)
	assert.Equal(t, "ana@empresa.com", profile.Email)
	assert.Equal(t, "Ana", profile.Name)

	_, err = ParseIDToken("")
	assert.Error(t, err)
}
