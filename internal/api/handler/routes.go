package handler

import (
	"net/http"

	"github.com/vfg2006/multiplatform-ads-api/internal/api/handler/router"
	"github.com/vfg2006/multiplatform-ads-api/internal/metrics"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/advertising"
	"github.com/vfg2006/multiplatform-ads-api/pkg/middleware"
)

// Rotas de tenant exigem o cabeçalho X-Company-ID
var companyScoped = []router.Middleware{middleware.RequireCompany()}

// Services reúne as dependências da camada HTTP. OAuth é opcional.
type Services struct {
	Advertising advertising.Orchestrator
	OAuth       AuthURLGenerator
	Cron        CronJobServices
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Status(service advertising.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: GetServiceStatus(service),
		},
	}
}

func Platforms(service advertising.Orchestrator) []router.Route {
	return router.Group(companyScoped,
		router.Route{
			Path:    "/v1/connections",
			Method:  http.MethodGet,
			Handler: ListConnections(service),
		},
		router.Route{
			Path:    "/v1/platforms/:platform/connect",
			Method:  http.MethodPost,
			Handler: ConnectPlatform(service),
		},
		router.Route{
			Path:    "/v1/platforms/:platform/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
	)
}

func Campaigns(service advertising.Orchestrator) []router.Route {
	return router.Group(companyScoped,
		router.Route{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
	)
}

func Analytics(service advertising.Orchestrator) []router.Route {
	return router.Group(companyScoped,
		router.Route{
			Path:    "/v1/analytics",
			Method:  http.MethodGet,
			Handler: GetUnifiedAnalytics(service),
		},
		router.Route{
			Path:    "/v1/analytics/history",
			Method:  http.MethodGet,
			Handler: GetAnalyticsHistory(service),
		},
	)
}

func GoogleAds(service advertising.Orchestrator) []router.Route {
	return router.Group(companyScoped,
		router.Route{
			Path:    "/v1/google-ads/campaigns/comprehensive",
			Method:  http.MethodPost,
			Handler: CreateComprehensiveCampaign(service),
		},
		router.Route{
			Path:    "/v1/google-ads/manager-link",
			Method:  http.MethodGet,
			Handler: CheckManagerLink(service),
		},
		router.Route{
			Path:    "/v1/google-ads/manager-link/invitation",
			Method:  http.MethodPost,
			Handler: SendManagerInvitation(service),
		},
		router.Route{
			Path:    "/v1/google-ads/manager-link/reactivate",
			Method:  http.MethodPost,
			Handler: ReactivateManagerLink(service),
		},
		router.Route{
			Path:    "/v1/google-ads/manager-link/accept",
			Method:  http.MethodPost,
			Handler: AcceptManagerInvitation(service),
		},
	)
}

func OAuth(generator AuthURLGenerator) []router.Route {
	return router.Group(companyScoped,
		router.Route{
			Path:    "/v1/google-ads/oauth/url",
			Method:  http.MethodGet,
			Handler: GetGoogleAdsAuthURL(generator),
		},
	)
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// All reúne todas as rotas da API
func All(services Services) []router.ConfigRouter {
	configs := []router.ConfigRouter{
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Metrics()...),
		router.WithRoutes(Status(services.Advertising)...),
		router.WithRoutes(Platforms(services.Advertising)...),
		router.WithRoutes(Campaigns(services.Advertising)...),
		router.WithRoutes(Analytics(services.Advertising)...),
		router.WithRoutes(GoogleAds(services.Advertising)...),
		router.WithRoutes(CronJobs(services.Cron)...),
	}

	if services.OAuth != nil {
		configs = append(configs, router.WithRoutes(OAuth(services.OAuth)...))
	}

	return configs
}
