package linkedin

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	linkedindomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

type LinkedInIntegrator struct {
	Client linkedinclient.Client
}

func New(client linkedinclient.Client) *LinkedInIntegrator {
	return &LinkedInIntegrator{Client: client}
}

func (s *LinkedInIntegrator) Platform() domain.Platform {
	return domain.PlatformLinkedIn
}

func decodeCredentials(creds domain.PlatformCredentials) (*linkedindomain.Credentials, error) {
	var decoded linkedindomain.Credentials
	if err := mapstructure.Decode(creds.Data, &decoded); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrMissingCredentials, "credenciais do LinkedIn inválidas").
			WithPlatform(domain.PlatformLinkedIn.String())
	}
	if decoded.AccessToken == "" || decoded.AccountID == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "access_token e account_id são obrigatórios").
			WithPlatform(domain.PlatformLinkedIn.String())
	}
	return &decoded, nil
}

func (s *LinkedInIntegrator) CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	account, err := s.Client.GetAdAccount(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		return nil, err
	}

	return &domain.AccountInfo{
		ID:       strconv.FormatInt(account.ID, 10),
		Name:     account.Name,
		Currency: account.Currency,
	}, nil
}

func (s *LinkedInIntegrator) GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": decoded.AccountID,
			"error":      err.Error(),
		}).Error("linkedin: falha ao buscar campanhas")
		return nil, err
	}

	unified := make([]domain.UnifiedCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		unified = append(unified, FactoryUnifiedCampaign(campaign, decoded.AccountID))
	}
	return unified, nil
}

func (s *LinkedInIntegrator) GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	elements, err := s.Client.GetDailyAnalytics(ctx, decoded.AccessToken, decoded.AccountID, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, decoded.AccessToken, decoded.AccountID)
	if err != nil {
		logrus.WithField("account_id", decoded.AccountID).WithError(err).Warn("linkedin: contagem de campanhas indisponível")
	}

	var summary domain.UnifiedMetrics
	daily := make([]domain.DailyMetrics, 0, len(elements))
	for _, element := range elements {
		metrics := FactoryMetrics(element)
		summary.Accumulate(metrics)

		start := element.DateRange.Start
		daily = append(daily, domain.DailyMetrics{
			Date:    fmt.Sprintf("%04d-%02d-%02d", start.Year, start.Month, start.Day),
			Metrics: metrics,
		})
	}
	summary.Recompute()
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return &domain.PlatformAnalytics{
		Platform:      domain.PlatformLinkedIn,
		Summary:       summary,
		CampaignCount: len(campaigns),
		DailyData:     daily,
	}, nil
}

// CreateCampaign cria a campanha como rascunho com orçamento diário
func (s *LinkedInIntegrator) CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	campaignType := draft.Type
	if campaignType == "" {
		campaignType = "TEXT_AD"
	}

	start := time.Now()
	if draft.StartDate != nil {
		start = *draft.StartDate
	}
	schedule := &linkedindomain.RunSchedule{Start: start.UnixMilli()}
	if draft.EndDate != nil {
		schedule.End = draft.EndDate.UnixMilli()
	}

	budget := &linkedindomain.Money{
		Amount:       strconv.FormatFloat(utils.CentsToMajor(draft.Budget.Amount), 'f', 2, 64),
		CurrencyCode: draft.Budget.Currency,
	}

	request := linkedindomain.Campaign{
		Account:     "urn:li:sponsoredAccount:" + decoded.AccountID,
		Name:        draft.Name,
		Status:      "DRAFT",
		Type:        campaignType,
		CostType:    "CPC",
		RunSchedule: schedule,
		Locale:      &linkedindomain.Locale{Country: "BR", Language: "pt"},
	}
	if draft.Budget.Period == domain.BudgetPeriodLifetime {
		request.TotalBudget = budget
	} else {
		request.DailyBudget = budget
	}

	id, err := s.Client.CreateCampaign(ctx, decoded.AccessToken, decoded.AccountID, request)
	if err != nil {
		return nil, err
	}

	period := draft.Budget.Period
	if period == "" {
		period = domain.BudgetPeriodDaily
	}

	return &domain.UnifiedCampaign{
		ID:        id,
		Name:      draft.Name,
		Platform:  domain.PlatformLinkedIn,
		Status:    domain.CampaignStatusDraft,
		Type:      campaignType,
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

func FactoryUnifiedCampaign(campaign linkedindomain.Campaign, accountID string) domain.UnifiedCampaign {
	unified := domain.UnifiedCampaign{
		ID:       strconv.FormatInt(campaign.ID, 10),
		Name:     campaign.Name,
		Platform: domain.PlatformLinkedIn,
		Status:   MapCampaignStatus(campaign.Status),
		Type:     campaign.Type,
		PlatformData: map[string]string{
			"accountId": accountID,
			"costType":  campaign.CostType,
		},
	}

	switch {
	case campaign.DailyBudget != nil:
		unified.Budget = factoryBudget(campaign.DailyBudget, domain.BudgetPeriodDaily)
	case campaign.TotalBudget != nil:
		unified.Budget = factoryBudget(campaign.TotalBudget, domain.BudgetPeriodLifetime)
	default:
		unified.Budget = domain.Budget{Period: domain.BudgetPeriodDaily}
	}

	if campaign.RunSchedule != nil {
		if campaign.RunSchedule.Start > 0 {
			start := time.UnixMilli(campaign.RunSchedule.Start).UTC()
			unified.StartDate = &start
		}
		if campaign.RunSchedule.End > 0 {
			end := time.UnixMilli(campaign.RunSchedule.End).UTC()
			unified.EndDate = &end
		}
	}

	return unified
}

func factoryBudget(money *linkedindomain.Money, period domain.BudgetPeriod) domain.Budget {
	amount, err := utils.ParseMajorToCents(money.Amount)
	if err != nil {
		logrus.WithField("amount", money.Amount).Warn("linkedin: orçamento inválido")
	}
	return domain.Budget{Amount: amount, Currency: money.CurrencyCode, Period: period}
}

// FactoryMetrics converte valores decimais em moeda local para centavos
func FactoryMetrics(element linkedindomain.AnalyticsElement) domain.UnifiedMetrics {
	cost, err := utils.ParseMajorToCents(element.CostInLocalCurrency)
	if err != nil {
		logrus.WithField("cost", element.CostInLocalCurrency).Warn("linkedin: custo inválido")
	}
	value, err := utils.ParseMajorToCents(element.ConversionValueInLocalCurrency)
	if err != nil {
		logrus.WithField("conversion_value", element.ConversionValueInLocalCurrency).Warn("linkedin: valor de conversão inválido")
	}

	metrics := domain.UnifiedMetrics{
		Impressions:     element.Impressions,
		Clicks:          element.Clicks,
		Cost:            cost,
		Conversions:     element.ExternalWebsiteConversions,
		ConversionValue: value,
	}
	metrics.Recompute()
	return metrics
}

// MapCampaignStatus mapeia o status do LinkedIn; valores desconhecidos viram PAUSED
func MapCampaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "ACTIVE":
		return domain.CampaignStatusEnabled
	case "ARCHIVED", "CANCELED", "REMOVED", "COMPLETED":
		return domain.CampaignStatusRemoved
	case "DRAFT":
		return domain.CampaignStatusDraft
	default:
		return domain.CampaignStatusPaused
	}
}
