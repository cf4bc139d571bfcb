package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "advertising"

// Resultados usados nos rótulos "outcome" e "result"
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
)

var (
	AdapterRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adapter_requests_total",
		Help:      "Requisições às redes de anúncios por plataforma, operação e resultado.",
	}, []string{"platform", "operation", "outcome"})

	AdapterLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "adapter_request_duration_seconds",
		Help:      "Duração das requisições às redes de anúncios.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"platform", "operation"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Consultas ao armazenamento de documentos por coleção e resultado.",
	}, []string{"collection", "result"})

	PipelineSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "campaign_pipeline_steps_total",
		Help:      "Passos da construção de campanhas por tipo e resultado.",
	}, []string{"step", "outcome"})

	ManagerLinkTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_link_transitions_total",
		Help:      "Transições de vínculo com a conta gerente por status de destino e resultado.",
	}, []string{"status", "outcome"})

	AnalyticsHistoryDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_history_deleted_total",
		Help:      "Snapshots de analytics removidos pela limpeza de retenção.",
	})
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
