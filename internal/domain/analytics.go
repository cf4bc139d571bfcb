package domain

import "time"

// DateRange delimita o período de consulta de métricas (datas inclusivas)
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// DefaultDateRange retorna os últimos 30 dias até ontem
func DefaultDateRange(now time.Time) DateRange {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	return DateRange{
		StartDate: end.AddDate(0, 0, -29),
		EndDate:   end,
	}
}

func (d DateRange) StartString() string {
	return d.StartDate.Format(time.DateOnly)
}

func (d DateRange) EndString() string {
	return d.EndDate.Format(time.DateOnly)
}

// DailyMetrics é a métrica de um dia, com data no formato YYYY-MM-DD
type DailyMetrics struct {
	Date    string         `json:"date"`
	Metrics UnifiedMetrics `json:"metrics"`
}

// PlatformAnalytics é o resultado bruto de analytics de uma única rede
type PlatformAnalytics struct {
	Platform      Platform       `json:"platform"`
	Summary       UnifiedMetrics `json:"summary"`
	CampaignCount int            `json:"campaignCount"`
	DailyData     []DailyMetrics `json:"dailyData,omitempty"`
}

type PlatformBreakdown struct {
	Platform      Platform       `json:"platform"`
	Metrics       UnifiedMetrics `json:"metrics"`
	CampaignCount int            `json:"campaignCount"`
	IsActive      bool           `json:"isActive"`
}

type Insights struct {
	BestPerformingPlatform  Platform `json:"bestPerformingPlatform,omitempty"`
	WorstPerformingPlatform Platform `json:"worstPerformingPlatform,omitempty"`
	// TotalBudgetUtilization é o custo médio (centavos) das redes ativas
	TotalBudgetUtilization float64  `json:"totalBudgetUtilization"`
	AverageROAS            float64  `json:"averageRoas"`
	Recommendations        []string `json:"recommendations"`
}

type UnifiedAnalytics struct {
	Summary           UnifiedMetrics      `json:"summary"`
	PlatformBreakdown []PlatformBreakdown `json:"platformBreakdown"`
	DailyData         []DailyMetrics      `json:"dailyData"`
	Insights          Insights            `json:"insights"`
	DateRange         DateRange           `json:"dateRange"`
}

// AnalyticsSnapshot é o registro datado de um UnifiedAnalytics no histórico
type AnalyticsSnapshot struct {
	ID        string           `json:"id"`
	CompanyID string           `json:"companyId"`
	Date      time.Time        `json:"date"`
	Timestamp time.Time        `json:"timestamp"`
	Analytics UnifiedAnalytics `json:"analytics"`
}
