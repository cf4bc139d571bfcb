package linkedinclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	linkedindomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const analyticsFields = "impressions,clicks,costInLocalCurrency,externalWebsiteConversions,conversionValueInLocalCurrency,dateRange"

type Client interface {
	GetAdAccount(ctx context.Context, token, accountID string) (*linkedindomain.AdAccount, error)
	GetCampaigns(ctx context.Context, token, accountID string) ([]linkedindomain.Campaign, error)
	GetDailyAnalytics(ctx context.Context, token, accountID string, start, end time.Time) ([]linkedindomain.AnalyticsElement, error)
	CreateCampaign(ctx context.Context, token, accountID string, campaign linkedindomain.Campaign) (string, error)
}

type LinkedInClient struct {
	cfg  config.LinkedIn
	http *transport.Client
}

func NewClient(cfg config.LinkedIn, httpClient *transport.Client) *LinkedInClient {
	return &LinkedInClient{
		cfg:  cfg,
		http: httpClient,
	}
}

func (c *LinkedInClient) GetAdAccount(ctx context.Context, token, accountID string) (*linkedindomain.AdAccount, error) {
	var account linkedindomain.AdAccount
	if err := c.get(ctx, token, fmt.Sprintf("%s/adAccounts/%s", c.cfg.URL, accountID), "ad_account", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *LinkedInClient) GetCampaigns(ctx context.Context, token, accountID string) ([]linkedindomain.Campaign, error) {
	endpoint := fmt.Sprintf("%s/adAccounts/%s/adCampaigns?q=search", c.cfg.URL, accountID)

	var response linkedindomain.CampaignsResponse
	if err := c.get(ctx, token, endpoint, "campaigns", &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

// GetDailyAnalytics consulta o /adAnalytics por conta com granularidade diária.
// Os parâmetros usam a sintaxe Rest.li e não podem ser codificados por url.Values.
func (c *LinkedInClient) GetDailyAnalytics(ctx context.Context, token, accountID string, start, end time.Time) ([]linkedindomain.AnalyticsElement, error) {
	accountURN := url.QueryEscape("urn:li:sponsoredAccount:" + accountID)
	dateRange := fmt.Sprintf("(start:(year:%d,month:%d,day:%d),end:(year:%d,month:%d,day:%d))",
		start.Year(), int(start.Month()), start.Day(), end.Year(), int(end.Month()), end.Day())

	endpoint := fmt.Sprintf("%s/adAnalytics?q=analytics&pivot=ACCOUNT&timeGranularity=DAILY&dateRange=%s&accounts=List(%s)&fields=%s",
		c.cfg.URL, dateRange, accountURN, analyticsFields)

	var response linkedindomain.AnalyticsResponse
	if err := c.get(ctx, token, endpoint, "analytics", &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

// CreateCampaign devolve o id lido do cabeçalho x-restli-id
func (c *LinkedInClient) CreateCampaign(ctx context.Context, token, accountID string, campaign linkedindomain.Campaign) (string, error) {
	payload, err := json.Marshal(campaign)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/adAccounts/%s/adCampaigns", c.cfg.URL, accountID), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req, "create_campaign")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", transport.APIError(domain.PlatformLinkedIn, "create_campaign", resp)
	}

	id := resp.Header.Get("x-restli-id")
	if id == "" {
		return "", apiErrors.New(apiErrors.ErrParse, "resposta sem x-restli-id").WithPlatform(domain.PlatformLinkedIn.String())
	}
	return id, nil
}

func (c *LinkedInClient) get(ctx context.Context, token, endpoint, operation string, out any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, token)

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return transport.APIError(domain.PlatformLinkedIn, operation, resp)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformLinkedIn.String())
	}
	return nil
}

func (c *LinkedInClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("LinkedIn-Version", c.cfg.Version)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
}
