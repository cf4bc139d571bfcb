package outbrainclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	outbraindomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/outbrain/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetMarketer(ctx context.Context, creds outbraindomain.Credentials) (*outbraindomain.Marketer, error)
	GetCampaigns(ctx context.Context, creds outbraindomain.Credentials) ([]outbraindomain.Campaign, error)
	GetPeriodicReport(ctx context.Context, creds outbraindomain.Credentials, dateRange domain.DateRange) ([]outbraindomain.PeriodicResult, error)
	CreateBudget(ctx context.Context, creds outbraindomain.Credentials, budget outbraindomain.Budget) (*outbraindomain.Budget, error)
	CreateCampaign(ctx context.Context, creds outbraindomain.Credentials, campaign outbraindomain.Campaign) (*outbraindomain.Campaign, error)
}

type OutbrainClient struct {
	cfg  config.Outbrain
	http *transport.Client

	// O OB-TOKEN-V1 vale 30 dias; é descartado ao receber 401
	mu     sync.Mutex
	tokens map[string]string
}

func NewClient(cfg config.Outbrain, httpClient *transport.Client) *OutbrainClient {
	return &OutbrainClient{
		cfg:    cfg,
		http:   httpClient,
		tokens: make(map[string]string),
	}
}

func (c *OutbrainClient) token(ctx context.Context, creds outbraindomain.Credentials) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token, ok := c.tokens[creds.Username]; ok {
		return token, nil
	}

	req, err := http.NewRequest(http.MethodGet, c.cfg.URL+"/login", nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.http.Do(ctx, req, "login")
	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"username":    creds.Username,
			"status_code": resp.StatusCode,
		}).Error("outbrain: falha no login")
		return "", apiErrors.Wrap(errors.New(string(resp.Body)), apiErrors.ErrTokenExchangeFailed,
			fmt.Sprintf("falha no login. Status: %d", resp.StatusCode)).WithPlatform(domain.PlatformOutbrain.String())
	}

	token := resp.Header.Get(outbraindomain.TokenHeader)
	if token == "" {
		var login outbraindomain.LoginResponse
		if err := json.Unmarshal(resp.Body, &login); err == nil {
			token = login.Token
		}
	}
	if token == "" {
		return "", apiErrors.New(apiErrors.ErrTokenExchangeFailed, "login sem OB-TOKEN-V1").
			WithPlatform(domain.PlatformOutbrain.String())
	}

	c.tokens[creds.Username] = token
	return token, nil
}

func (c *OutbrainClient) forget(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, username)
}

func (c *OutbrainClient) do(ctx context.Context, creds outbraindomain.Credentials, method, path, operation string, payload, out any) error {
	token, err := c.token(ctx, creds)
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
	req.Header.Set(outbraindomain.TokenHeader, token)
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
			c.forget(creds.Username)
		}
		return transport.APIError(domain.PlatformOutbrain, operation, resp)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformOutbrain.String())
	}
	return nil
}

func (c *OutbrainClient) GetMarketer(ctx context.Context, creds outbraindomain.Credentials) (*outbraindomain.Marketer, error) {
	var marketer outbraindomain.Marketer
	if err := c.do(ctx, creds, http.MethodGet, "/marketers/"+url.PathEscape(creds.MarketerID), "marketer", nil, &marketer); err != nil {
		return nil, err
	}
	return &marketer, nil
}

func (c *OutbrainClient) GetCampaigns(ctx context.Context, creds outbraindomain.Credentials) ([]outbraindomain.Campaign, error) {
	query := url.Values{}
	query.Set("extraFields", "Locations,BidBySections")
	query.Set("includeArchived", "true")

	var response outbraindomain.CampaignsResponse
	path := fmt.Sprintf("/marketers/%s/campaigns?%s", url.PathEscape(creds.MarketerID), query.Encode())
	if err := c.do(ctx, creds, http.MethodGet, path, "campaigns", nil, &response); err != nil {
		return nil, err
	}
	return response.Campaigns, nil
}

func (c *OutbrainClient) GetPeriodicReport(ctx context.Context, creds outbraindomain.Credentials, dateRange domain.DateRange) ([]outbraindomain.PeriodicResult, error) {
	query := url.Values{}
	query.Set("from", dateRange.StartString())
	query.Set("to", dateRange.EndString())
	query.Set("breakdown", "daily")

	var response outbraindomain.PeriodicResponse
	path := fmt.Sprintf("/reports/marketers/%s/periodic?%s", url.PathEscape(creds.MarketerID), query.Encode())
	if err := c.do(ctx, creds, http.MethodGet, path, "report", nil, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

func (c *OutbrainClient) CreateBudget(ctx context.Context, creds outbraindomain.Credentials, budget outbraindomain.Budget) (*outbraindomain.Budget, error) {
	var created outbraindomain.Budget
	path := fmt.Sprintf("/marketers/%s/budgets", url.PathEscape(creds.MarketerID))
	if err := c.do(ctx, creds, http.MethodPost, path, "create_budget", budget, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *OutbrainClient) CreateCampaign(ctx context.Context, creds outbraindomain.Credentials, campaign outbraindomain.Campaign) (*outbraindomain.Campaign, error) {
	var created outbraindomain.Campaign
	if err := c.do(ctx, creds, http.MethodPost, "/campaigns", "create_campaign", campaign, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
