package taboolaclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	tabooladomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Margem antes da expiração em que o token é renovado
const tokenMargin = time.Minute

type Client interface {
	GetAccount(ctx context.Context, creds tabooladomain.Credentials) (*tabooladomain.Account, error)
	GetCampaigns(ctx context.Context, creds tabooladomain.Credentials) ([]tabooladomain.Campaign, error)
	GetDailyReport(ctx context.Context, creds tabooladomain.Credentials, dateRange domain.DateRange) ([]tabooladomain.ReportRow, error)
	CreateCampaign(ctx context.Context, creds tabooladomain.Credentials, campaign tabooladomain.Campaign) (*tabooladomain.Campaign, error)
}

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

type TaboolaClient struct {
	cfg  config.Taboola
	http *transport.Client

	mu     sync.Mutex
	tokens map[string]cachedToken
	now    func() time.Time
}

func NewClient(cfg config.Taboola, httpClient *transport.Client) *TaboolaClient {
	return &TaboolaClient{
		cfg:    cfg,
		http:   httpClient,
		tokens: make(map[string]cachedToken),
		now:    time.Now,
	}
}

// accessToken reaproveita o token do client_id enquanto ele for válido
func (c *TaboolaClient) accessToken(ctx context.Context, creds tabooladomain.Credentials) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.tokens[creds.ClientID]; ok && c.now().Add(tokenMargin).Before(cached.expiresAt) {
		return cached.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, c.cfg.URL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(ctx, req, "token")
	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"client_id":   creds.ClientID,
			"status_code": resp.StatusCode,
		}).Error("taboola: falha ao obter token")
		return "", apiErrors.Wrap(errors.New(string(resp.Body)), apiErrors.ErrTokenExchangeFailed,
			fmt.Sprintf("falha ao obter token. Status: %d", resp.StatusCode)).WithPlatform(domain.PlatformTaboola.String())
	}

	var tokenResp tabooladomain.TokenResponse
	if err := json.Unmarshal(resp.Body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		return "", apiErrors.New(apiErrors.ErrTokenExchangeFailed, "resposta de token inválida").
			WithPlatform(domain.PlatformTaboola.String())
	}

	c.tokens[creds.ClientID] = cachedToken{
		accessToken: tokenResp.AccessToken,
		expiresAt:   c.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}

	return tokenResp.AccessToken, nil
}

func (c *TaboolaClient) do(ctx context.Context, creds tabooladomain.Credentials, method, path, operation string, payload, out any) error {
	token, err := c.accessToken(ctx, creds)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar a requisição: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.cfg.URL+path, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		if resp.StatusCode == http.StatusUnauthorized {
			c.forget(creds.ClientID)
		}
		return transport.APIError(domain.PlatformTaboola, operation, resp)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformTaboola.String())
	}
	return nil
}

func (c *TaboolaClient) forget(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, clientID)
}

func (c *TaboolaClient) GetAccount(ctx context.Context, creds tabooladomain.Credentials) (*tabooladomain.Account, error) {
	var account tabooladomain.Account
	if err := c.do(ctx, creds, http.MethodGet, "/api/1.0/users/current/account", "account", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *TaboolaClient) GetCampaigns(ctx context.Context, creds tabooladomain.Credentials) ([]tabooladomain.Campaign, error) {
	var response tabooladomain.CampaignsResponse
	path := fmt.Sprintf("/api/1.0/%s/campaigns/", url.PathEscape(creds.AccountID))
	if err := c.do(ctx, creds, http.MethodGet, path, "campaigns", nil, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (c *TaboolaClient) CreateCampaign(ctx context.Context, creds tabooladomain.Credentials, campaign tabooladomain.Campaign) (*tabooladomain.Campaign, error) {
	var created tabooladomain.Campaign
	path := fmt.Sprintf("/api/1.0/%s/campaigns/", url.PathEscape(creds.AccountID))
	if err := c.do(ctx, creds, http.MethodPost, path, "create_campaign", campaign, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
