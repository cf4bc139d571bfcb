package meta

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

const defaultObjective = "OUTCOME_TRAFFIC"

type MetaIntegrator struct {
	Client metaclient.Client
	now    func() time.Time
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

func decodeCredentials(creds domain.PlatformCredentials) (*metadomain.Credentials, error) {
	var decoded metadomain.Credentials
	if err := mapstructure.Decode(creds.Data, &decoded); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrMissingCredentials, "credenciais do Meta inválidas").
			WithPlatform(domain.PlatformMeta.String())
	}

	decoded.AccountID = strings.TrimPrefix(decoded.AccountID, "act_")
	if decoded.AccessToken == "" || decoded.AccountID == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "access_token e account_id são obrigatórios").
			WithPlatform(domain.PlatformMeta.String())
	}
	return &decoded, nil
}

// PrepareCredentials troca o token de curta duração por um de longa duração
// quando exchange_token=true e grava a data de expiração calculada.
func (s *MetaIntegrator) PrepareCredentials(ctx context.Context, creds domain.PlatformCredentials) (domain.PlatformCredentials, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return creds, err
	}

	prepared := domain.PlatformCredentials{Platform: domain.PlatformMeta, Data: map[string]string{}}
	for key, value := range creds.Data {
		prepared.Data[key] = value
	}
	delete(prepared.Data, "exchange_token")
	prepared.Data["account_id"] = decoded.AccountID

	if decoded.ExchangeToken != "true" {
		return prepared, nil
	}

	tokenResp, err := s.Client.GetLongLivedToken(ctx, decoded.AccessToken)
	if err != nil {
		return creds, err
	}

	prepared.Data["access_token"] = tokenResp.AccessToken
	if tokenResp.ExpiresIn > 0 {
		expiresAt := metaclient.CalculateTokenExpiration(s.now(), tokenResp.ExpiresIn)
		prepared.Data["token_expires_at"] = expiresAt.UTC().Format(time.RFC3339)
	}

	return prepared, nil
}

func (s *MetaIntegrator) CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	account, err := s.Client.GetAdAccount(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		return nil, err
	}

	return &domain.AccountInfo{
		ID:       account.AccountID,
		Name:     account.Name,
		Currency: account.Currency,
		Timezone: account.TimezoneName,
	}, nil
}

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetAdCampaignsByAccountID(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": decoded.AccountID,
			"error":      err.Error(),
		}).Error("meta: falha ao buscar campanhas")
		return nil, err
	}

	currency := ""
	if account, err := s.Client.GetAdAccount(ctx, decoded.AccessToken, decoded.AccountID); err == nil {
		currency = account.Currency
	} else {
		logrus.WithField("account_id", decoded.AccountID).WithError(err).Warn("meta: moeda da conta indisponível")
	}

	unified := make([]domain.UnifiedCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		unified = append(unified, FactoryUnifiedCampaign(campaign, decoded.AccountID, currency))
	}
	return unified, nil
}

func (s *MetaIntegrator) GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	insights, err := s.Client.GetAdAccountDailyInsights(ctx, decoded.AccessToken, decoded.AccountID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": decoded.AccountID,
			"start_date": dateRange.StartString(),
			"end_date":   dateRange.EndString(),
			"error":      err.Error(),
		}).Error("meta: falha ao buscar insights")
		return nil, err
	}

	campaigns, err := s.Client.GetAdCampaignsByAccountID(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		logrus.WithField("account_id", decoded.AccountID).WithError(err).Warn("meta: contagem de campanhas indisponível")
	}

	var summary domain.UnifiedMetrics
	daily := make([]domain.DailyMetrics, 0, len(insights))
	for _, insight := range insights {
		metrics := FactoryMetrics(insight)
		summary.Accumulate(metrics)
		daily = append(daily, domain.DailyMetrics{Date: insight.DateStart, Metrics: metrics})
	}
	summary.Recompute()
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return &domain.PlatformAnalytics{
		Platform:      domain.PlatformMeta,
		Summary:       summary,
		CampaignCount: len(campaigns),
		DailyData:     daily,
	}, nil
}

// CreateCampaign cria a campanha pausada. O orçamento já está em centavos, como a Graph API espera.
func (s *MetaIntegrator) CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	objective := draft.Type
	if objective == "" {
		objective = defaultObjective
	}

	period := draft.Budget.Period
	if period == "" {
		period = domain.BudgetPeriodDaily
	}

	params := url.Values{}
	params.Add("name", draft.Name)
	params.Add("objective", objective)
	params.Add("status", "PAUSED")
	params.Add("special_ad_categories", "[]")
	if period == domain.BudgetPeriodLifetime {
		params.Add("lifetime_budget", strconv.FormatInt(draft.Budget.Amount, 10))
	} else {
		params.Add("daily_budget", strconv.FormatInt(draft.Budget.Amount, 10))
	}
	if draft.StartDate != nil {
		params.Add("start_time", draft.StartDate.Format(metadomain.TimeLayout))
	}
	if draft.EndDate != nil {
		params.Add("stop_time", draft.EndDate.Format(metadomain.TimeLayout))
	}

	id, err := s.Client.CreateAdCampaign(ctx, decoded.AccessToken, decoded.AccountID, params)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  decoded.AccountID,
		"campaign_id": id,
	}).Info("meta: campanha criada")

	return &domain.UnifiedCampaign{
		ID:        id,
		Name:      draft.Name,
		Platform:  domain.PlatformMeta,
		Status:    domain.CampaignStatusPaused,
		Type:      objective,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Budget:    domain.Budget{Amount: draft.Budget.Amount, Currency: draft.Budget.Currency, Period: period},
		Targeting: draft.Targeting,
		Creative:  draft.Creative,
		PlatformData: map[string]string{
			"accountId": decoded.AccountID,
		},
	}, nil
}

func FactoryUnifiedCampaign(campaign metadomain.Campaign, accountID, currency string) domain.UnifiedCampaign {
	unified := domain.UnifiedCampaign{
		ID:       campaign.ID,
		Name:     campaign.Name,
		Platform: domain.PlatformMeta,
		Status:   MapCampaignStatus(campaign.Status),
		Type:     campaign.Objective,
		PlatformData: map[string]string{
			"accountId": accountID,
		},
	}

	switch {
	case campaign.DailyBudget != "":
		unified.Budget = factoryBudget(campaign.DailyBudget, currency, domain.BudgetPeriodDaily)
	case campaign.LifetimeBudget != "":
		unified.Budget = factoryBudget(campaign.LifetimeBudget, currency, domain.BudgetPeriodLifetime)
	default:
		unified.Budget = domain.Budget{Currency: currency, Period: domain.BudgetPeriodDaily}
	}

	unified.StartDate = parseTime(campaign.StartTime)
	unified.EndDate = parseTime(campaign.StopTime)

	return unified
}

func factoryBudget(value, currency string, period domain.BudgetPeriod) domain.Budget {
	amount, err := utils.ParseInt64(value)
	if err != nil {
		logrus.WithField("budget", value).Warn("meta: orçamento inválido")
	}
	return domain.Budget{Amount: amount, Currency: currency, Period: period}
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(metadomain.TimeLayout, value)
	if err != nil {
		logrus.WithField("time", value).Warn("meta: data inválida")
		return nil
	}
	parsed = parsed.UTC()
	return &parsed
}

// FactoryMetrics converte uma linha de insight. Spend e action_values vêm em unidade maior.
func FactoryMetrics(insight metadomain.Insight) domain.UnifiedMetrics {
	impressions, err := utils.ParseInt64(insight.Impressions)
	if err != nil {
		logrus.WithField("impressions", insight.Impressions).Warn("meta: impressões inválidas")
	}
	clicks, err := utils.ParseInt64(insight.Clicks)
	if err != nil {
		logrus.WithField("clicks", insight.Clicks).Warn("meta: cliques inválidos")
	}
	cost, err := utils.ParseMajorToCents(insight.Spend)
	if err != nil {
		logrus.WithField("spend", insight.Spend).Warn("meta: custo inválido")
	}

	metrics := domain.UnifiedMetrics{
		Impressions:     impressions,
		Clicks:          clicks,
		Cost:            cost,
		Conversions:     insight.GetConversions(),
		ConversionValue: utils.MajorToCents(insight.GetConversionValue()),
	}
	metrics.Recompute()
	return metrics
}

func MapCampaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "ACTIVE":
		return domain.CampaignStatusEnabled
	case "DELETED", "ARCHIVED":
		return domain.CampaignStatusRemoved
	default:
		return domain.CampaignStatusPaused
	}
}
