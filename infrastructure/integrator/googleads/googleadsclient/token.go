package googleadsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var oauthScopes = []string{
	"https://www.googleapis.com/auth/adwords",
	"openid",
	"email",
	"profile",
}

// OAuthClient fala com o endpoint de token OAuth2 do Google
type OAuthClient struct {
	cfg  config.GoogleAds
	http *transport.Client
}

func NewOAuthClient(cfg config.GoogleAds, httpClient *transport.Client) *OAuthClient {
	return &OAuthClient{
		cfg:  cfg,
		http: httpClient,
	}
}

// GenerateAuthURL monta a URL de consentimento; o companyID volta no parâmetro state
func (c *OAuthClient) GenerateAuthURL(companyID, redirectURI string) (string, error) {
	if c.cfg.ClientID == "" {
		return "", apiErrors.New(apiErrors.ErrMissingCredentials, "GOOGLE_ADS_CLIENT_ID não configurado").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	if redirectURI == "" {
		redirectURI = c.cfg.RedirectURI
	}

	params := url.Values{}
	params.Add("client_id", c.cfg.ClientID)
	params.Add("redirect_uri", redirectURI)
	params.Add("response_type", "code")
	params.Add("scope", strings.Join(oauthScopes, " "))
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	params.Add("state", companyID)

	return c.cfg.AuthURL + "?" + params.Encode(), nil
}

// ExchangeCodeForTokens troca o código de autorização por tokens
func (c *OAuthClient) ExchangeCodeForTokens(ctx context.Context, code, redirectURI string) (*googleadsdomain.TokenResponse, error) {
	if code == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "código de autorização não pode ser vazio").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	if redirectURI == "" {
		redirectURI = c.cfg.RedirectURI
	}

	params := url.Values{}
	params.Add("grant_type", "authorization_code")
	params.Add("code", code)
	params.Add("redirect_uri", redirectURI)

	return c.requestToken(ctx, params, "token_exchange", apiErrors.ErrTokenExchangeFailed)
}

// RefreshAccessToken obtém um novo access token. Quando a resposta não traz
// refresh token, o token informado continua valendo.
func (c *OAuthClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*googleadsdomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "refresh token não pode ser vazio").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	params := url.Values{}
	params.Add("grant_type", "refresh_token")
	params.Add("refresh_token", refreshToken)

	tokenResp, err := c.requestToken(ctx, params, "token_refresh", apiErrors.ErrTokenRefreshFailed)
	if err != nil {
		return nil, err
	}

	if tokenResp.RefreshToken == "" {
		tokenResp.RefreshToken = refreshToken
	}

	return tokenResp, nil
}

func (c *OAuthClient) requestToken(ctx context.Context, params url.Values, operation, failureCode string) (*googleadsdomain.TokenResponse, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "GOOGLE_ADS_CLIENT_ID/GOOGLE_ADS_CLIENT_SECRET não configurados").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	params.Set("client_id", c.cfg.ClientID)
	params.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequest(http.MethodPost, c.cfg.TokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"operation":   operation,
			"status_code": resp.StatusCode,
		}).Error("google ads: falha no endpoint de token")
		return nil, apiErrors.Wrap(
			errors.New(string(resp.Body)),
			failureCode,
			fmt.Sprintf("erro ao obter token. Status: %d", resp.StatusCode),
		).WithPlatform(domain.PlatformGoogleAds.String())
	}

	var tokenResp googleadsdomain.TokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResp); err != nil {
		return nil, apiErrors.Wrap(err, failureCode, "erro ao decodificar resposta de token").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	if tokenResp.AccessToken == "" {
		return nil, apiErrors.New(failureCode, "token retornado pela API é vazio").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	logrus.WithField("expires_in", FormatDuration(tokenResp.ExpiresIn)).Debug("google ads: token obtido")

	return &tokenResp, nil
}

// ParseIDToken lê as claims de perfil do id_token sem validar a assinatura.
// O token chega direto do endpoint de token via TLS.
func ParseIDToken(idToken string) (*googleadsdomain.ProfileClaims, error) {
	if idToken == "" {
		return nil, errors.New("id_token vazio")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("erro ao ler id_token: %w", err)
	}

	profile := &googleadsdomain.ProfileClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		profile.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		profile.Name = name
	}

	return profile, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	hours := duration / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d horas e %d minutos", hours, minutes)
}
