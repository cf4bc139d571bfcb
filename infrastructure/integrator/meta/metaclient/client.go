package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error)
	GetAdCampaignsByAccountID(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error)
	GetAdAccountDailyInsights(ctx context.Context, token, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error)
	CreateAdCampaign(ctx context.Context, token, accountID string, params url.Values) (string, error)
	GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
}

type MetaClient struct {
	Cfg  config.Meta
	http *transport.Client
}

func NewClient(cfg config.Meta, httpClient *transport.Client) *MetaClient {
	return &MetaClient{
		Cfg:  cfg,
		http: httpClient,
	}
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency,timezone_name")
	params.Add("access_token", token)

	var account metadomain.AdAccount
	if err := c.get(ctx, fmt.Sprintf("%s/act_%s?%s", c.Cfg.URL, accountID, params.Encode()), "ad_account", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *MetaClient) get(ctx context.Context, requestURL, operation string, out any) error {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return err
	}

	body, err := HandleResponse(resp, operation)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformMeta.String())
	}
	return nil
}

// HandleResponse devolve o corpo em caso de sucesso. Erros de token expirado
// viram TOKEN_EXPIRED para que o tenant refaça a autorização.
func HandleResponse(resp *transport.Response, operation string) ([]byte, error) {
	if resp.IsSuccess() {
		return resp.Body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(resp.Body, &errorResp); err == nil && errorResp.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":     errorResp.Error.Code,
			"subcode":  errorResp.Error.ErrorSubcode,
			"trace_id": errorResp.Error.FBTraceID,
		}).Warn("Token expirado detectado pela API Meta")

		return nil, apiErrors.New(apiErrors.ErrTokenExpired, errorResp.Error.Message).
			WithPlatform(domain.PlatformMeta.String())
	}

	return nil, transport.APIError(domain.PlatformMeta, operation, resp)
}
