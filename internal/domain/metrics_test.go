package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestUnifiedMetrics_Recompute(t *testing.T) {
	tests := []struct {
		name     string
		metrics  UnifiedMetrics
		expected UnifiedMetrics
	}{
		{
			name:    "sem custo e sem impressões zera todas as razões",
			metrics: UnifiedMetrics{CTR: 12, CPC: 3, CPA: 4, ROAS: 9},
		},
		{
			name: "calcula razões a partir das quantidades aditivas",
			metrics: UnifiedMetrics{
				Impressions:     1000,
				Clicks:          50,
				Cost:            10000,
				Conversions:     4,
				ConversionValue: 25000,
			},
			expected: UnifiedMetrics{
				Impressions:     1000,
				Clicks:          50,
				Cost:            10000,
				Conversions:     4,
				ConversionValue: 25000,
				CTR:             5,
				CPC:             200,
				CPA:             2500,
				ROAS:            2.5,
			},
		},
		{
			name:     "valor de conversão sem custo mantém ROAS zero",
			metrics:  UnifiedMetrics{ConversionValue: 500},
			expected: UnifiedMetrics{ConversionValue: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.metrics
			m.Recompute()
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestSumMetrics_DoesNotSumRatios(t *testing.T) {
	a := UnifiedMetrics{Cost: 100, ConversionValue: 200}
	a.Recompute()
	b := UnifiedMetrics{Cost: 300, ConversionValue: 1200}
	b.Recompute()

	total := SumMetrics(a, b)

	assert.Equal(t, 2.0, a.ROAS)
	assert.Equal(t, 4.0, b.ROAS)
	assert.Equal(t, 3.5, total.ROAS)
}

func TestSumMetrics_RatiosFollowTotals(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("roas e ctr são recalculados sobre os totais", prop.ForAll(
		func(costs, values, impressions, clicks []int64) bool {
			items := make([]UnifiedMetrics, len(costs))
			var cost, value, imp, clk int64
			for i := range costs {
				item := UnifiedMetrics{Cost: costs[i]}
				if i < len(values) {
					item.ConversionValue = values[i]
				}
				if i < len(impressions) {
					item.Impressions = impressions[i]
				}
				if i < len(clicks) {
					item.Clicks = clicks[i]
				}
				item.Recompute()
				items[i] = item

				cost += item.Cost
				value += item.ConversionValue
				imp += item.Impressions
				clk += item.Clicks
			}

			total := SumMetrics(items...)

			expectedROAS := 0.0
			if cost > 0 {
				expectedROAS = float64(value) / float64(cost)
			}
			expectedCTR := 0.0
			if imp > 0 {
				expectedCTR = float64(clk) / float64(imp) * 100
			}

			return total.ROAS == expectedROAS && total.CTR == expectedCTR
		},
		gen.SliceOf(gen.Int64Range(0, 1_000_000_00)),
		gen.SliceOf(gen.Int64Range(0, 1_000_000_00)),
		gen.SliceOf(gen.Int64Range(0, 10_000_000)),
		gen.SliceOf(gen.Int64Range(0, 100_000)),
	))

	properties.TestingRun(t)
}
