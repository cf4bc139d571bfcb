package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Auth identifica quem faz a chamada: token Bearer e conta usada no login-customer-id
type Auth struct {
	AccessToken     string
	LoginCustomerID string
}

type Client interface {
	Search(ctx context.Context, auth Auth, customerID, query string) ([]googleadsdomain.Row, error)
	Mutate(ctx context.Context, auth Auth, customerID, resource string, operations []googleadsdomain.MutateOperation) ([]googleadsdomain.MutateResult, error)
	MutateClientLink(ctx context.Context, auth Auth, managerID string, operation googleadsdomain.MutateOperation) (*googleadsdomain.MutateResult, error)
	ListAccessibleCustomers(ctx context.Context, auth Auth) ([]string, error)
}

type GoogleAdsClient struct {
	cfg  config.GoogleAds
	http *transport.Client
}

func NewClient(cfg config.GoogleAds, httpClient *transport.Client) *GoogleAdsClient {
	return &GoogleAdsClient{
		cfg:  cfg,
		http: httpClient,
	}
}

// Search executa a consulta GAQL e percorre todas as páginas
func (c *GoogleAdsClient) Search(ctx context.Context, auth Auth, customerID, query string) ([]googleadsdomain.Row, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.APIURL, config.NormalizeCustomerID(customerID))

	rows := make([]googleadsdomain.Row, 0)
	pageToken := ""
	for {
		var page googleadsdomain.SearchResponse
		request := googleadsdomain.SearchRequest{Query: query, PageToken: pageToken}
		if err := c.post(ctx, auth, endpoint, "search", request, &page); err != nil {
			return nil, err
		}

		rows = append(rows, page.Results...)
		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}

// Mutate envia operações para customers/{id}/{resource}:mutate
func (c *GoogleAdsClient) Mutate(ctx context.Context, auth Auth, customerID, resource string, operations []googleadsdomain.MutateOperation) ([]googleadsdomain.MutateResult, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/%s:mutate", c.cfg.APIURL, config.NormalizeCustomerID(customerID), resource)

	var response googleadsdomain.MutateResponse
	if err := c.post(ctx, auth, endpoint, resource, googleadsdomain.MutateRequest{Operations: operations}, &response); err != nil {
		return nil, err
	}

	if len(response.Results) != len(operations) {
		return nil, apiErrors.New(apiErrors.ErrParse,
			fmt.Sprintf("mutate de %s retornou %d resultados para %d operações", resource, len(response.Results), len(operations)),
		).WithPlatform(domain.PlatformGoogleAds.String())
	}

	return response.Results, nil
}

// MutateClientLink cria ou altera o vínculo agindo como a conta gerente
func (c *GoogleAdsClient) MutateClientLink(ctx context.Context, auth Auth, managerID string, operation googleadsdomain.MutateOperation) (*googleadsdomain.MutateResult, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/customerClientLinks:mutate", c.cfg.APIURL, config.NormalizeCustomerID(managerID))

	var response googleadsdomain.ClientLinkMutateResponse
	request := googleadsdomain.ClientLinkMutateRequest{Operation: operation}
	if err := c.post(ctx, auth, endpoint, "customerClientLinks", request, &response); err != nil {
		return nil, err
	}

	return &response.Result, nil
}

func (c *GoogleAdsClient) ListAccessibleCustomers(ctx context.Context, auth Auth) ([]string, error) {
	endpoint := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.cfg.APIURL)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, auth)

	resp, err := c.http.Do(ctx, req, "list_accessible_customers")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, newAPIError("list_accessible_customers", resp)
	}

	var response googleadsdomain.ListAccessibleCustomersResponse
	if err := json.Unmarshal(resp.Body, &response); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrParse, "erro ao decodificar contas acessíveis").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	ids := make([]string, 0, len(response.ResourceNames))
	for _, name := range response.ResourceNames {
		ids = append(ids, googleadsdomain.ResourceID(name))
	}
	return ids, nil
}

func (c *GoogleAdsClient) post(ctx context.Context, auth Auth, endpoint, operation string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req, auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		apiErr := newAPIError(operation, resp)
		logrus.WithFields(logrus.Fields{
			"operation":   operation,
			"status_code": resp.StatusCode,
			"error":       apiErr.Error(),
		}).Warn("google ads: resposta de erro da API")
		return apiErr
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	return nil
}

func (c *GoogleAdsClient) setHeaders(req *http.Request, auth Auth) {
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if auth.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", config.NormalizeCustomerID(auth.LoginCustomerID))
	}
}

// newAPIError mantém o corpo tipado da API dentro do CoreError para inspeção via errors.As
func newAPIError(operation string, resp *transport.Response) *apiErrors.CoreError {
	apiErr := &googleadsdomain.APIError{StatusCode: resp.StatusCode, Raw: string(resp.Body)}
	_ = json.Unmarshal(resp.Body, &apiErr.Response)

	code := apiErrors.ErrAPI
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		code = apiErrors.ErrTokenExpired
	case apiErr.IsDeveloperTokenNotApproved():
		code = apiErrors.ErrTestTokenProductionAccount
	}

	return apiErrors.Wrap(apiErr, code, fmt.Sprintf("erro na resposta da API em %s. Status: %d", operation, resp.StatusCode)).
		WithPlatform(domain.PlatformGoogleAds.String())
}
