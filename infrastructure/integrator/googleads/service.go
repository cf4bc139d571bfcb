package googleads

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

const (
	customerQuery = `SELECT customer.id, customer.descriptive_name, customer.currency_code, customer.time_zone, customer.test_account, customer.manager FROM customer LIMIT 1`

	campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, campaign.start_date, campaign.end_date, campaign_budget.amount_micros, campaign_budget.delivery_method, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value FROM campaign WHERE campaign.status != 'REMOVED' ORDER BY campaign.name`

	analyticsQuery = `SELECT campaign.id, segments.date, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' AND campaign.status != 'REMOVED'`
)

// TokenExchanger troca o código de autorização por tokens no connect
type TokenExchanger interface {
	ExchangeCodeForTokens(ctx context.Context, code, redirectURI string) (*googleadsdomain.TokenResponse, error)
}

// AccessTokenSource entrega um access token válido para um refresh token
type AccessTokenSource interface {
	GetValidAccessToken(ctx context.Context, refreshToken string) (string, error)
	Store(refreshToken, accessToken string, expiresIn int64)
}

type GoogleAdsIntegrator struct {
	cfg       config.GoogleAds
	Client    googleadsclient.Client
	exchanger TokenExchanger
	tokens    AccessTokenSource
}

func New(cfg config.GoogleAds, client googleadsclient.Client, exchanger TokenExchanger, tokens AccessTokenSource) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:       cfg,
		Client:    client,
		exchanger: exchanger,
		tokens:    tokens,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogleAds
}

// DecodeCredentials converte o blob opaco nas credenciais tipadas da rede principal
func DecodeCredentials(creds domain.PlatformCredentials) (*googleadsdomain.Credentials, error) {
	var decoded googleadsdomain.Credentials
	if err := mapstructure.Decode(creds.Data, &decoded); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrMissingCredentials, "credenciais do Google Ads inválidas").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	decoded.CustomerID = config.NormalizeCustomerID(decoded.CustomerID)
	decoded.LoginCustomerID = config.NormalizeCustomerID(decoded.LoginCustomerID)
	return &decoded, nil
}

// PrepareCredentials troca o código de autorização quando presente e
// devolve o blob pronto para ser guardado, sem o código.
func (s *GoogleAdsIntegrator) PrepareCredentials(ctx context.Context, creds domain.PlatformCredentials) (domain.PlatformCredentials, error) {
	decoded, err := DecodeCredentials(creds)
	if err != nil {
		return creds, err
	}

	prepared := domain.PlatformCredentials{Platform: domain.PlatformGoogleAds, Data: map[string]string{}}
	for key, value := range creds.Data {
		prepared.Data[key] = value
	}
	delete(prepared.Data, "code")
	delete(prepared.Data, "redirect_uri")
	prepared.Data["customer_id"] = decoded.CustomerID

	if decoded.Code != "" {
		tokenResp, err := s.exchanger.ExchangeCodeForTokens(ctx, decoded.Code, decoded.RedirectURI)
		if err != nil {
			return creds, err
		}

		prepared.Data["access_token"] = tokenResp.AccessToken
		if tokenResp.RefreshToken != "" {
			prepared.Data["refresh_token"] = tokenResp.RefreshToken
			s.tokens.Store(tokenResp.RefreshToken, tokenResp.AccessToken, tokenResp.ExpiresIn)
		}

		if profile, err := googleadsclient.ParseIDToken(tokenResp.IDToken); err == nil && profile.Email != "" {
			prepared.Data["email"] = profile.Email
		}
	}

	if prepared.Data["refresh_token"] == "" && prepared.Data["access_token"] == "" {
		return creds, apiErrors.New(apiErrors.ErrMissingCredentials, "refresh token ou código de autorização obrigatório").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	if decoded.CustomerID == "" {
		return creds, apiErrors.New(apiErrors.ErrInvalidCustomerID, "customer_id obrigatório").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	return prepared, nil
}

// Auth resolve o token do tenant e a conta de login das chamadas
func (s *GoogleAdsIntegrator) Auth(ctx context.Context, creds domain.PlatformCredentials) (googleadsclient.Auth, *googleadsdomain.Credentials, error) {
	decoded, err := DecodeCredentials(creds)
	if err != nil {
		return googleadsclient.Auth{}, nil, err
	}
	if decoded.CustomerID == "" {
		return googleadsclient.Auth{}, nil, apiErrors.New(apiErrors.ErrInvalidCustomerID, "customer_id não informado").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	accessToken := decoded.AccessToken
	if decoded.RefreshToken != "" {
		accessToken, err = s.tokens.GetValidAccessToken(ctx, decoded.RefreshToken)
		if err != nil {
			return googleadsclient.Auth{}, nil, err
		}
	}
	if accessToken == "" {
		return googleadsclient.Auth{}, nil, apiErrors.New(apiErrors.ErrMissingCredentials, "nenhum token disponível").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	login := decoded.LoginCustomerID
	if login == "" {
		login = decoded.CustomerID
	}

	return googleadsclient.Auth{AccessToken: accessToken, LoginCustomerID: login}, decoded, nil
}

// ManagerAuth usa o refresh token da conta gerente configurada
func (s *GoogleAdsIntegrator) ManagerAuth(ctx context.Context) (googleadsclient.Auth, error) {
	if s.cfg.ManagerCustomerID == "" || s.cfg.ManagerRefreshToken == "" {
		return googleadsclient.Auth{}, apiErrors.New(apiErrors.ErrConfiguration, "conta gerente do Google Ads não configurada").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	accessToken, err := s.tokens.GetValidAccessToken(ctx, s.cfg.ManagerRefreshToken)
	if err != nil {
		return googleadsclient.Auth{}, err
	}

	return googleadsclient.Auth{AccessToken: accessToken, LoginCustomerID: s.cfg.ManagerCustomerID}, nil
}

func (s *GoogleAdsIntegrator) ManagerCustomerID() string {
	return s.cfg.ManagerCustomerID
}

func (s *GoogleAdsIntegrator) CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
	auth, decoded, err := s.Auth(ctx, creds)
	if err != nil {
		return nil, err
	}

	customer, err := s.GetCustomer(ctx, auth, decoded.CustomerID)
	if err != nil {
		return nil, err
	}

	return &domain.AccountInfo{
		ID:       customer.ID,
		Name:     customer.DescriptiveName,
		Currency: customer.CurrencyCode,
		Timezone: customer.TimeZone,
		Email:    decoded.Email,
	}, nil
}

func (s *GoogleAdsIntegrator) GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error) {
	auth, decoded, err := s.Auth(ctx, creds)
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.Search(ctx, auth, decoded.CustomerID, campaignsQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": decoded.CustomerID,
			"error":       err.Error(),
		}).Error("google ads: falha ao buscar campanhas")
		return nil, err
	}

	campaigns := make([]domain.UnifiedCampaign, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		campaigns = append(campaigns, FactoryUnifiedCampaign(row, decoded.CustomerID))
	}

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error) {
	auth, decoded, err := s.Auth(ctx, creds)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(analyticsQuery, dateRange.StartString(), dateRange.EndString())
	rows, err := s.Client.Search(ctx, auth, decoded.CustomerID, query)
	if err != nil {
		return nil, err
	}

	daily := make(map[string]*domain.UnifiedMetrics)
	campaignIDs := make(map[string]struct{})
	var summary domain.UnifiedMetrics

	for _, row := range rows {
		if row.Metrics == nil {
			continue
		}
		if row.Campaign != nil {
			campaignIDs[row.Campaign.ID] = struct{}{}
		}

		metrics := FactoryMetrics(row.Metrics)
		summary.Accumulate(metrics)

		if row.Segments != nil && row.Segments.Date != "" {
			day, ok := daily[row.Segments.Date]
			if !ok {
				day = &domain.UnifiedMetrics{}
				daily[row.Segments.Date] = day
			}
			day.Accumulate(metrics)
		}
	}
	summary.Recompute()

	return &domain.PlatformAnalytics{
		Platform:      domain.PlatformGoogleAds,
		Summary:       summary,
		CampaignCount: len(campaignIDs),
		DailyData:     sortedDaily(daily),
	}, nil
}

// CreateCampaign cria orçamento e campanha pausada com CPC manual
func (s *GoogleAdsIntegrator) CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error) {
	auth, decoded, err := s.Auth(ctx, creds)
	if err != nil {
		return nil, err
	}

	budgetName, err := s.CreateCampaignBudget(ctx, auth, decoded.CustomerID, draft.Name, draft.Budget.Amount)
	if err != nil {
		return nil, err
	}

	channel := draft.Type
	if channel == "" {
		channel = "SEARCH"
	}

	campaignName, err := s.CreateCampaignResource(ctx, auth, decoded.CustomerID, CampaignInput{
		Name:           draft.Name,
		ChannelType:    channel,
		BudgetResource: budgetName,
		StartDate:      draft.StartDate,
		EndDate:        draft.EndDate,
	})
	if err != nil {
		return nil, err
	}

	return &domain.UnifiedCampaign{
		ID:        googleadsdomain.ResourceID(campaignName),
		Name:      draft.Name,
		Platform:  domain.PlatformGoogleAds,
		Status:    domain.CampaignStatusPaused,
		Type:      channel,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Budget: domain.Budget{
			Amount:   draft.Budget.Amount,
			Currency: draft.Budget.Currency,
			Period:   domain.BudgetPeriodDaily,
		},
		Targeting: draft.Targeting,
		Creative:  draft.Creative,
		PlatformData: map[string]string{
			"resourceName":       campaignName,
			"budgetResourceName": budgetName,
			"customerId":         decoded.CustomerID,
		},
	}, nil
}

func (s *GoogleAdsIntegrator) GetCustomer(ctx context.Context, auth googleadsclient.Auth, customerID string) (*googleadsdomain.Customer, error) {
	rows, err := s.Client.Search(ctx, auth, customerID, customerQuery)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || rows[0].Customer == nil {
		return nil, apiErrors.New(apiErrors.ErrAPI, fmt.Sprintf("cliente %s não encontrado", customerID)).
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	return rows[0].Customer, nil
}

// FactoryUnifiedCampaign converte a linha GAQL no modelo unificado
func FactoryUnifiedCampaign(row googleadsdomain.Row, customerID string) domain.UnifiedCampaign {
	campaign := domain.UnifiedCampaign{
		ID:       row.Campaign.ID,
		Name:     row.Campaign.Name,
		Platform: domain.PlatformGoogleAds,
		Status:   MapCampaignStatus(row.Campaign.Status),
		Type:     row.Campaign.AdvertisingChannelType,
		Budget:   domain.Budget{Period: domain.BudgetPeriodDaily},
		PlatformData: map[string]string{
			"resourceName": row.Campaign.ResourceName,
			"customerId":   customerID,
		},
	}

	if start, err := utils.ParseDate(row.Campaign.StartDate); err == nil {
		campaign.StartDate = start
	}
	if end, err := utils.ParseDate(row.Campaign.EndDate); err == nil {
		campaign.EndDate = end
	}

	if row.CampaignBudget != nil {
		campaign.Budget.Amount = utils.MicrosToCents(row.CampaignBudget.AmountMicros)
		campaign.PlatformData["deliveryMethod"] = row.CampaignBudget.DeliveryMethod
	}

	if row.Metrics != nil {
		campaign.Metrics = FactoryMetrics(row.Metrics)
	}

	return campaign
}

// FactoryMetrics converte micros para centavos e recalcula as razões
func FactoryMetrics(m *googleadsdomain.Metrics) domain.UnifiedMetrics {
	metrics := domain.UnifiedMetrics{
		Impressions:     m.Impressions,
		Clicks:          m.Clicks,
		Cost:            utils.MicrosToCents(m.CostMicros),
		Conversions:     m.Conversions,
		ConversionValue: utils.MajorToCents(m.ConversionsValue),
	}
	metrics.Recompute()
	return metrics
}

// MapCampaignStatus mapeia o status da rede; valores desconhecidos viram PAUSED
func MapCampaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "ENABLED":
		return domain.CampaignStatusEnabled
	case "REMOVED":
		return domain.CampaignStatusRemoved
	default:
		return domain.CampaignStatusPaused
	}
}

func sortedDaily(daily map[string]*domain.UnifiedMetrics) []domain.DailyMetrics {
	result := make([]domain.DailyMetrics, 0, len(daily))
	for date, metrics := range daily {
		metrics.Recompute()
		result = append(result, domain.DailyMetrics{Date: date, Metrics: *metrics})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
