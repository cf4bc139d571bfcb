package advertising

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

// Limiares usados nas recomendações
const (
	lowROASThreshold  = 1.0
	highROASThreshold = 2.0
	lowCTRThreshold   = 1.0
)

const noActivePlatformRecommendation = "Nenhuma plataforma com investimento no período. Conecte uma rede e ative campanhas para gerar dados."

// GetUnifiedAnalytics soma as métricas de todas as redes conectadas no período.
// Sem período, usa os últimos 30 dias.
func (s *Service) GetUnifiedAnalytics(ctx context.Context, companyID string, dateRange *domain.DateRange) domain.Response[*domain.UnifiedAnalytics] {
	if companyID == "" {
		return fail[*domain.UnifiedAnalytics](ErrCompanyRequired, apiErrors.ErrAnalytics)
	}

	period := domain.DefaultDateRange(s.now())
	if dateRange != nil {
		period = *dateRange
	}
	if period.EndDate.Before(period.StartDate) {
		return domain.Fail[*domain.UnifiedAnalytics](apiErrors.ErrInvalidRequest, "data final anterior à data inicial", "")
	}

	results := fanOut(ctx, s, func(ctx context.Context, platform domain.Platform, adapter PlatformAdapter) *domain.PlatformAnalytics {
		return s.platformAnalytics(ctx, companyID, platform, adapter, period)
	})

	analytics := Aggregate(results, period)

	s.saveSnapshot(ctx, companyID, analytics)

	return domain.Ok(analytics)
}

func (s *Service) platformAnalytics(ctx context.Context, companyID string, platform domain.Platform, adapter PlatformAdapter, period domain.DateRange) *domain.PlatformAnalytics {
	fields := logrus.Fields{
		"company_id": companyID,
		"platform":   platform,
		"start_date": period.StartString(),
		"end_date":   period.EndString(),
	}

	creds, err := s.credentials(ctx, companyID, platform)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao carregar credenciais")
		return nil
	}
	if creds == nil {
		return nil
	}

	analytics, err := adapter.GetAnalytics(ctx, *creds, period)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao buscar analytics da plataforma")
		return nil
	}

	return analytics
}

func (s *Service) saveSnapshot(ctx context.Context, companyID string, analytics *domain.UnifiedAnalytics) {
	if s.history == nil {
		return
	}

	now := s.now()
	snapshot := &domain.AnalyticsSnapshot{
		CompanyID: companyID,
		Date:      now,
		Timestamp: now,
		Analytics: *analytics,
	}

	if err := s.history.Save(ctx, snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      err.Error(),
		}).Warn("Erro ao gravar snapshot de analytics")
	}
}

// Aggregate soma as quantidades aditivas de cada rede e recalcula as razões uma única vez.
// O detalhamento traz uma entrada por rede de AllPlatforms; redes sem conexão ou com falha
// (entradas nil) aparecem zeradas e inativas.
func Aggregate(results []*domain.PlatformAnalytics, period domain.DateRange) *domain.UnifiedAnalytics {
	analytics := &domain.UnifiedAnalytics{
		PlatformBreakdown: make([]domain.PlatformBreakdown, 0, len(domain.AllPlatforms)),
		DailyData:         make([]domain.DailyMetrics, 0),
		DateRange:         period,
	}

	byPlatform := make(map[domain.Platform]*domain.PlatformAnalytics, len(results))
	for _, result := range results {
		if result != nil {
			byPlatform[result.Platform] = result
		}
	}

	daily := make(map[string]*domain.UnifiedMetrics)

	for _, platform := range domain.AllPlatforms {
		result, ok := byPlatform[platform]
		if !ok {
			analytics.PlatformBreakdown = append(analytics.PlatformBreakdown, domain.PlatformBreakdown{Platform: platform})
			continue
		}

		summary := result.Summary
		summary.Recompute()
		analytics.Summary.Accumulate(summary)

		analytics.PlatformBreakdown = append(analytics.PlatformBreakdown, domain.PlatformBreakdown{
			Platform:      platform,
			Metrics:       summary,
			CampaignCount: result.CampaignCount,
			IsActive:      summary.Cost > 0,
		})

		for _, day := range result.DailyData {
			merged, ok := daily[day.Date]
			if !ok {
				merged = &domain.UnifiedMetrics{}
				daily[day.Date] = merged
			}
			merged.Accumulate(day.Metrics)
		}
	}
	analytics.Summary.Recompute()

	for date, metrics := range daily {
		metrics.Recompute()
		analytics.DailyData = append(analytics.DailyData, domain.DailyMetrics{Date: date, Metrics: *metrics})
	}
	sort.Slice(analytics.DailyData, func(i, j int) bool {
		return analytics.DailyData[i].Date < analytics.DailyData[j].Date
	})

	analytics.Insights = buildInsights(analytics.PlatformBreakdown)

	return analytics
}

// buildInsights considera apenas redes ativas (custo > 0); sem nenhuma, melhor e pior ficam vazios
func buildInsights(breakdown []domain.PlatformBreakdown) domain.Insights {
	insights := domain.Insights{Recommendations: make([]string, 0)}

	var (
		active    []domain.PlatformBreakdown
		inactive  []string
		totalROAS float64
		totalCost int64
	)
	for _, platform := range breakdown {
		if !platform.IsActive {
			inactive = append(inactive, platform.Platform.String())
			continue
		}
		active = append(active, platform)
		totalROAS += platform.Metrics.ROAS
		totalCost += platform.Metrics.Cost
	}

	if len(active) == 0 {
		insights.Recommendations = append(insights.Recommendations, noActivePlatformRecommendation)
		return insights
	}

	best, worst := active[0], active[0]
	for _, platform := range active[1:] {
		if platform.Metrics.ROAS > best.Metrics.ROAS {
			best = platform
		}
		if platform.Metrics.ROAS < worst.Metrics.ROAS {
			worst = platform
		}
	}

	insights.BestPerformingPlatform = best.Platform
	insights.WorstPerformingPlatform = worst.Platform
	insights.TotalBudgetUtilization = utils.RoundWithTwoDecimalPlace(float64(totalCost) / float64(len(active)))
	insights.AverageROAS = utils.RoundWithTwoDecimalPlace(totalROAS / float64(len(active)))

	if best.Metrics.ROAS > highROASThreshold {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("%s tem ROAS de %.2f. Avalie aumentar o investimento nessa rede.", best.Platform, best.Metrics.ROAS))
	}
	if len(active) > 1 && best.Platform != worst.Platform {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("Considere realocar orçamento de %s para %s, que tem ROAS de %.2f.", worst.Platform, best.Platform, best.Metrics.ROAS))
	}

	var poor []string
	for _, platform := range active {
		if platform.Metrics.ROAS < lowROASThreshold {
			poor = append(poor, platform.Platform.String())
		}
	}
	if len(poor) > 0 {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("Revise a performance de %s: ROAS abaixo de %.1f.", strings.Join(poor, ", "), lowROASThreshold))
	}

	for _, platform := range active {
		if platform.Metrics.Impressions > 0 && platform.Metrics.CTR < lowCTRThreshold {
			insights.Recommendations = append(insights.Recommendations,
				fmt.Sprintf("O CTR de %s está abaixo de %.1f%%. Teste novos títulos e imagens.", platform.Platform, lowCTRThreshold))
		}
	}

	if len(inactive) > 0 {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("Considere testar %s para ampliar o alcance.", strings.Join(inactive, ", ")))
	}

	return insights
}

// GetAnalyticsHistory lista os snapshots mais recentes do tenant
func (s *Service) GetAnalyticsHistory(ctx context.Context, companyID string, limit uint64) domain.Response[[]*domain.AnalyticsSnapshot] {
	if companyID == "" {
		return fail[[]*domain.AnalyticsSnapshot](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}
	if s.history == nil {
		return fail[[]*domain.AnalyticsSnapshot](ErrHistoryUnavailable, apiErrors.ErrConfiguration)
	}

	snapshots, err := s.history.ListByCompany(ctx, companyID, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      err.Error(),
		}).Error("Erro ao listar histórico de analytics")
		return fail[[]*domain.AnalyticsSnapshot](err, apiErrors.ErrDatabaseOperation)
	}

	return domain.Ok(snapshots)
}
