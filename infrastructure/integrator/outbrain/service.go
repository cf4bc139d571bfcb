package outbrain

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	outbraindomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/outbrain/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/outbrain/outbrainclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

type OutbrainIntegrator struct {
	Client outbrainclient.Client
}

func New(client outbrainclient.Client) *OutbrainIntegrator {
	return &OutbrainIntegrator{Client: client}
}

func (s *OutbrainIntegrator) Platform() domain.Platform {
	return domain.PlatformOutbrain
}

func decodeCredentials(creds domain.PlatformCredentials) (*outbraindomain.Credentials, error) {
	var decoded outbraindomain.Credentials
	if err := mapstructure.Decode(creds.Data, &decoded); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrMissingCredentials, "credenciais do Outbrain inválidas").
			WithPlatform(domain.PlatformOutbrain.String())
	}
	if decoded.Username == "" || decoded.Password == "" || decoded.MarketerID == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingCredentials, "username, password e marketer_id são obrigatórios").
			WithPlatform(domain.PlatformOutbrain.String())
	}
	return &decoded, nil
}

func (s *OutbrainIntegrator) CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	marketer, err := s.Client.GetMarketer(ctx, *decoded)
	if err != nil {
		return nil, err
	}

	return &domain.AccountInfo{
		ID:       marketer.ID,
		Name:     marketer.Name,
		Currency: marketer.Currency,
	}, nil
}

func (s *OutbrainIntegrator) GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, *decoded)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"marketer_id": decoded.MarketerID,
			"error":       err.Error(),
		}).Error("outbrain: falha ao buscar campanhas")
		return nil, err
	}

	unified := make([]domain.UnifiedCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		unified = append(unified, FactoryUnifiedCampaign(campaign, decoded.MarketerID))
	}
	return unified, nil
}

func (s *OutbrainIntegrator) GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	results, err := s.Client.GetPeriodicReport(ctx, *decoded, dateRange)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, *decoded)
	if err != nil {
		logrus.WithField("marketer_id", decoded.MarketerID).WithError(err).Warn("outbrain: contagem de campanhas indisponível")
	}

	var summary domain.UnifiedMetrics
	daily := make([]domain.DailyMetrics, 0, len(results))
	for _, result := range results {
		metrics := FactoryMetrics(result.Metrics)
		summary.Accumulate(metrics)
		daily = append(daily, domain.DailyMetrics{Date: resultDay(result.Metadata), Metrics: metrics})
	}
	summary.Recompute()
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return &domain.PlatformAnalytics{
		Platform:      domain.PlatformOutbrain,
		Summary:       summary,
		CampaignCount: len(campaigns),
		DailyData:     daily,
	}, nil
}

// CreateCampaign cria primeiro o orçamento e depois a campanha desabilitada apontando para ele
func (s *OutbrainIntegrator) CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error) {
	decoded, err := decodeCredentials(creds)
	if err != nil {
		return nil, err
	}

	period := draft.Budget.Period
	if period == "" {
		period = domain.BudgetPeriodDaily
	}

	budget := outbraindomain.Budget{
		Name:       fmt.Sprintf("%s Budget", draft.Name),
		Amount:     utils.CentsToMajor(draft.Budget.Amount),
		Type:       outbraindomain.BudgetTypeDaily,
		Pacing:     "AUTOMATIC",
		RunForever: draft.EndDate == nil,
	}
	if period == domain.BudgetPeriodLifetime {
		budget.Type = outbraindomain.BudgetTypeCampaign
	}
	start := time.Now()
	if draft.StartDate != nil {
		start = *draft.StartDate
	}
	budget.StartDate = start.Format(time.DateOnly)
	if draft.EndDate != nil {
		budget.EndDate = draft.EndDate.Format(time.DateOnly)
	}

	createdBudget, err := s.Client.CreateBudget(ctx, *decoded, budget)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"marketer_id": decoded.MarketerID,
			"error":       err.Error(),
		}).Error("outbrain: falha ao criar orçamento")
		return nil, err
	}

	created, err := s.Client.CreateCampaign(ctx, *decoded, outbraindomain.Campaign{
		Name:      draft.Name,
		Enabled:   false,
		BudgetID:  createdBudget.ID,
		Objective: draft.Type,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"marketer_id": decoded.MarketerID,
			"budget_id":   createdBudget.ID,
			"error":       err.Error(),
		}).Error("outbrain: orçamento criado mas a campanha falhou")
		return nil, err
	}

	return &domain.UnifiedCampaign{
		ID:        created.ID,
		Name:      draft.Name,
		Platform:  domain.PlatformOutbrain,
		Status:    domain.CampaignStatusPaused,
		Type:      draft.Type,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Budget:    domain.Budget{Amount: draft.Budget.Amount, Currency: draft.Budget.Currency, Period: period},
		Targeting: draft.Targeting,
		Creative:  draft.Creative,
		PlatformData: map[string]string{
			"marketerId": decoded.MarketerID,
			"budgetId":   createdBudget.ID,
		},
	}, nil
}

func FactoryUnifiedCampaign(campaign outbraindomain.Campaign, marketerID string) domain.UnifiedCampaign {
	unified := domain.UnifiedCampaign{
		ID:       campaign.ID,
		Name:     campaign.Name,
		Platform: domain.PlatformOutbrain,
		Status:   MapCampaignStatus(campaign),
		Type:     campaign.Objective,
		PlatformData: map[string]string{
			"marketerId": marketerID,
		},
	}

	if campaign.Budget == nil {
		unified.Budget = domain.Budget{Period: domain.BudgetPeriodDaily}
		return unified
	}

	budget := campaign.Budget
	unified.PlatformData["budgetId"] = budget.ID
	unified.Budget = domain.Budget{
		Amount:   utils.MajorToCents(budget.Amount),
		Currency: budget.Currency,
		Period:   domain.BudgetPeriodDaily,
	}
	if budget.Type == outbraindomain.BudgetTypeCampaign {
		unified.Budget.Period = domain.BudgetPeriodLifetime
	}
	if budget.AmountSpent > 0 {
		spent := utils.MajorToCents(budget.AmountSpent)
		remaining := utils.MajorToCents(budget.AmountRemaining)
		unified.Budget.Spent = &spent
		unified.Budget.Remaining = &remaining
	}

	if start, err := utils.ParseDate(budget.StartDate); err == nil {
		unified.StartDate = start
	}
	if end, err := utils.ParseDate(budget.EndDate); err == nil {
		unified.EndDate = end
	}

	return unified
}

func resultDay(metadata outbraindomain.PeriodicMetadata) string {
	day := metadata.FromDate
	if day == "" {
		day = metadata.ID
	}
	if len(day) > 10 {
		day = day[:10]
	}
	return day
}

// FactoryMetrics converte as métricas do relatório periódico; spend e sumValue vêm na unidade maior
func FactoryMetrics(metrics outbraindomain.PeriodicMetrics) domain.UnifiedMetrics {
	unified := domain.UnifiedMetrics{
		Impressions:     int64(metrics.Impressions),
		Clicks:          int64(metrics.Clicks),
		Cost:            utils.MajorToCents(metrics.Spend),
		Conversions:     metrics.Conversions,
		ConversionValue: utils.MajorToCents(metrics.SumValue),
	}
	unified.Recompute()
	return unified
}

// MapCampaignStatus: arquivada é REMOVED, habilitada é ENABLED, o resto é PAUSED
func MapCampaignStatus(campaign outbraindomain.Campaign) domain.CampaignStatus {
	switch {
	case campaign.Archived:
		return domain.CampaignStatusRemoved
	case campaign.Enabled:
		return domain.CampaignStatusEnabled
	default:
		return domain.CampaignStatusPaused
	}
}
