package taboola

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	tabooladomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/taboolaclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

type TaboolaIntegrator struct {
	Client taboolaclient.Client
}

func New(client taboolaclient.Client) *TaboolaIntegrator {
	return &TaboolaIntegrator{Client: client}
}

func (s *TaboolaIntegrator) Platform() domain.Platform {
	return domain.PlatformTaboola
}

func decodeCredentials(creds domain.PlatformCredentials) (*tabooladomain.Credentials, error) {
	var decoded tabooladomain.Credentials
	if err := mapstructure.Decode(creds.Data, &decoded); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrMissingCredentials, "credenciais do Taboola inválidas").
			WithPlatform(domain.PlatformTaboola.String())
	}
	if decoded.ClientID == "" || decoded.ClientSecret == "" || decoded.AccountID == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "client_id, client_secret e account_id são obrigatórios").
			WithPlatform(domain.PlatformTaboola.String())
	}
	return &decoded, nil
}

func (s *TaboolaIntegrator) CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	account, err := s.Client.GetAccount(ctx, *decoded)
	if err != nil {
		return nil, err
	}

	return &domain.AccountInfo{
		ID:       account.AccountID,
		Name:     account.Name,
		Currency: account.Currency,
		Timezone: account.TimeZoneName,
	}, nil
}

func (s *TaboolaIntegrator) GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, *decoded)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": decoded.AccountID,
			"error":      err.Error(),
		}).Error("taboola: falha ao buscar campanhas")
		return nil, err
	}

	unified := make([]domain.UnifiedCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		unified = append(unified, FactoryUnifiedCampaign(campaign, decoded.AccountID))
	}
	return unified, nil
}

func (s *TaboolaIntegrator) GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	rows, err := s.Client.GetDailyReport(ctx, *decoded, dateRange)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, *decoded)
	if err != nil {
		logrus.WithField("account_id", decoded.AccountID).WithError(err).Warn("taboola: contagem de campanhas indisponível")
	}

	var summary domain.UnifiedMetrics
	daily := make([]domain.DailyMetrics, 0, len(rows))
	for _, row := range rows {
		metrics := FactoryMetrics(row)
		summary.Accumulate(metrics)
		daily = append(daily, domain.DailyMetrics{Date: row.Day(), Metrics: metrics})
	}
	summary.Recompute()
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return &domain.PlatformAnalytics{
		Platform:      domain.PlatformTaboola,
		Summary:       summary,
		CampaignCount: len(campaigns),
		DailyData:     daily,
	}, nil
}

// CreateCampaign cria a campanha inativa; o orçamento é convertido para a unidade maior
func (s *TaboolaIntegrator) CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	period := draft.Budget.Period
	if period == "" {
		period = domain.BudgetPeriodDaily
	}

	request := tabooladomain.Campaign{
		Name:               draft.Name,
		BrandingText:       draft.Name,
		IsActive:           false,
		MarketingObjective: draft.Type,
	}
	amount := utils.CentsToMajor(draft.Budget.Amount)
	if period == domain.BudgetPeriodLifetime {
		request.SpendingLimit = amount
		request.SpendingLimitModel = tabooladomain.SpendingLimitEntire
	} else {
		request.DailyCap = amount
		request.SpendingLimitModel = tabooladomain.SpendingLimitNone
	}
	if draft.StartDate != nil {
		request.StartDate = draft.StartDate.Format(time.DateOnly)
	}
	if draft.EndDate != nil {
		request.EndDate = draft.EndDate.Format(time.DateOnly)
	}

	created, err := s.Client.CreateCampaign(ctx, *decoded, request)
	if err != nil {
		return nil, err
	}

	return &domain.UnifiedCampaign{
		ID:        created.ID,
		Name:      draft.Name,
		Platform:  domain.PlatformTaboola,
		Status:    domain.CampaignStatusPaused,
		Type:      draft.Type,
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

func FactoryUnifiedCampaign(campaign tabooladomain.Campaign, accountID string) domain.UnifiedCampaign {
	unified := domain.UnifiedCampaign{
		ID:       campaign.ID,
		Name:     campaign.Name,
		Platform: domain.PlatformTaboola,
		Status:   MapCampaignStatus(campaign.Status),
		Type:     campaign.MarketingObjective,
		PlatformData: map[string]string{
			"accountId": accountID,
			"isActive":  strconv.FormatBool(campaign.IsActive),
		},
	}

	if campaign.SpendingLimitModel == tabooladomain.SpendingLimitEntire && campaign.SpendingLimit > 0 {
		unified.Budget = domain.Budget{Amount: utils.MajorToCents(campaign.SpendingLimit), Period: domain.BudgetPeriodLifetime}
	} else {
		unified.Budget = domain.Budget{Amount: utils.MajorToCents(campaign.DailyCap), Period: domain.BudgetPeriodDaily}
	}
	if campaign.Spent > 0 {
		spent := utils.MajorToCents(campaign.Spent)
		unified.Budget.Spent = &spent
		if unified.Budget.Period == domain.BudgetPeriodLifetime {
			remaining := max(unified.Budget.Amount-spent, 0)
			unified.Budget.Remaining = &remaining
		}
	}

	if start, err := utils.ParseDate(campaign.StartDate); err == nil {
		unified.StartDate = start
	}
	if end, err := utils.ParseDate(campaign.EndDate); err == nil {
		unified.EndDate = end
	}

	return unified
}

// FactoryMetrics converte uma linha do relatório; spent e conversions_value vêm na unidade maior
func FactoryMetrics(row tabooladomain.ReportRow) domain.UnifiedMetrics {
	metrics := domain.UnifiedMetrics{
		Impressions:     row.Impressions,
		Clicks:          row.Clicks,
		Cost:            utils.MajorToCents(row.Spent),
		Conversions:     row.CpaActionsNum,
		ConversionValue: utils.MajorToCents(row.ConversionsValue),
	}
	metrics.Recompute()
	return metrics
}

func MapCampaignStatus(status string) domain.CampaignStatus {
	switch status {
	case "RUNNING":
		return domain.CampaignStatusEnabled
	case "TERMINATED", "EXPIRED":
		return domain.CampaignStatusRemoved
	case "PENDING_APPROVAL":
		return domain.CampaignStatusDraft
	default:
		return domain.CampaignStatusPaused
	}
}
