package domain

// UnifiedMetrics reúne as métricas normalizadas de todas as redes.
// Valores monetários (Cost, ConversionValue, CPC, CPA) estão em centavos.
// CTR, CPC, CPA e ROAS são derivados e devem ser recalculados após qualquer soma.
type UnifiedMetrics struct {
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Cost            int64   `json:"cost"`
	Conversions     float64 `json:"conversions"`
	ConversionValue int64   `json:"conversionValue"`

	CTR  float64 `json:"ctr"`
	CPC  float64 `json:"cpc"`
	CPA  float64 `json:"cpa"`
	ROAS float64 `json:"roas"`
}

// Recompute recalcula as razões a partir das quantidades aditivas
func (m *UnifiedMetrics) Recompute() {
	m.CTR = 0
	if m.Impressions > 0 {
		m.CTR = float64(m.Clicks) / float64(m.Impressions) * 100
	}

	m.CPC = 0
	if m.Clicks > 0 {
		m.CPC = float64(m.Cost) / float64(m.Clicks)
	}

	m.CPA = 0
	if m.Conversions > 0 {
		m.CPA = float64(m.Cost) / m.Conversions
	}

	m.ROAS = 0
	if m.Cost > 0 {
		m.ROAS = float64(m.ConversionValue) / float64(m.Cost)
	}
}

// Accumulate soma apenas as quantidades aditivas; as razões ficam desatualizadas até Recompute
func (m *UnifiedMetrics) Accumulate(other UnifiedMetrics) {
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Cost += other.Cost
	m.Conversions += other.Conversions
	m.ConversionValue += other.ConversionValue
}

// SumMetrics soma as quantidades aditivas e recalcula as razões uma única vez sobre o total
func SumMetrics(items ...UnifiedMetrics) UnifiedMetrics {
	var total UnifiedMetrics
	for _, item := range items {
		total.Accumulate(item)
	}
	total.Recompute()
	return total
}
