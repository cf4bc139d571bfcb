package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/internal/api/handler/router"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/advertising/mocks"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"github.com/vfg2006/multiplatform-ads-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

const company = "empresa-1"

type fakeCron struct {
	triggered int
	busy      bool
}

func (f *fakeCron) TriggerManualSync() bool {
	f.triggered++
	return !f.busy
}

func (f *fakeCron) GetStatus() map[string]any {
	return map[string]any{"running": f.busy}
}

type fakeAuthURL struct{}

func (fakeAuthURL) GenerateAuthURL(companyID, redirectURI string) (string, error) {
	if redirectURI == "" {
		return "", apiErrors.New(apiErrors.ErrMissingCredentials, "GOOGLE_ADS_CLIENT_ID não configurado")
	}
	return "https://accounts.example/auth?state=" + companyID, nil
}

func newTestRouter(t *testing.T, cron CronJob) (http.Handler, *mocks.MockOrchestrator) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockOrchestrator(ctrl)

	services := Services{
		Advertising: service,
		OAuth:       fakeAuthURL{},
		Cron:        CronJobServices{AnalyticsCleanup: cron},
	}

	return router.New(All(services)...), service
}

func doRequest(h http.Handler, method, path, body string, withCompany bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if withCompany {
		req.Header.Set(middleware.CompanyIDHeader, company)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdvertisingRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(t *testing.T, service *mocks.MockOrchestrator)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "conecta plataforma com o tenant do cabeçalho",
			method: http.MethodPost,
			path:   "/v1/platforms/meta/connect",
			body:   `{"authData":{"access_token":"tok"}}`,
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					ConnectPlatform(gomock.Any(), company, domain.PlatformMeta, map[string]string{"access_token": "tok"}).
					Return(domain.Ok(&domain.PlatformConnection{Platform: domain.PlatformMeta, Status: domain.ConnectionStatusConnected}))
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp domain.Response[*domain.PlatformConnection]
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, domain.ConnectionStatusConnected, resp.Data.Status)
			},
		},
		{
			name:   "falha do núcleo usa o status do código",
			method: http.MethodPost,
			path:   "/v1/platforms/tiktok/campaigns",
			body:   `{"name":"Black Friday"}`,
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					CreateCampaign(gomock.Any(), company, domain.Platform("tiktok"), domain.CampaignDraft{Name: "Black Friday"}).
					Return(domain.Fail[*domain.UnifiedCampaign](apiErrors.ErrUnsupportedPlatform, "plataforma não suportada", ""))
			},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrUnsupportedPlatform)
			},
		},
		{
			name:       "corpo inválido não chama o núcleo",
			method:     http.MethodPost,
			path:       "/v1/google-ads/campaigns/comprehensive",
			body:       `{"customerId":`,
			setup:      func(t *testing.T, service *mocks.MockOrchestrator) {},
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
			},
		},
		{
			name:   "campanha completa criada retorna 201",
			method: http.MethodPost,
			path:   "/v1/google-ads/campaigns/comprehensive",
			body:   `{"customerId":"123-456-7890","name":"Óculos","dailyBudget":5000}`,
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					CreateComprehensiveCampaign(gomock.Any(), company, domain.ComprehensiveCampaignSpec{
						CustomerID:  "123-456-7890",
						Name:        "Óculos",
						DailyBudget: 5000,
					}).
					Return(domain.Ok(&domain.ComprehensiveCampaignResult{CampaignID: "99"}))
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "analytics com período explícito",
			method: http.MethodGet,
			path:   "/v1/analytics?startDate=2024-05-01&endDate=2024-05-10",
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					GetUnifiedAnalytics(gomock.Any(), company, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dateRange *domain.DateRange) domain.Response[*domain.UnifiedAnalytics] {
						require.NotNil(t, dateRange)
						assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), dateRange.StartDate)
						assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), dateRange.EndDate)
						return domain.Ok(&domain.UnifiedAnalytics{})
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "analytics sem período delega o padrão ao núcleo",
			method: http.MethodGet,
			path:   "/v1/analytics",
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					GetUnifiedAnalytics(gomock.Any(), company, (*domain.DateRange)(nil)).
					Return(domain.Ok(&domain.UnifiedAnalytics{}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "analytics com apenas uma data é recusado",
			method:     http.MethodGet,
			path:       "/v1/analytics?startDate=2024-05-01",
			setup:      func(t *testing.T, service *mocks.MockOrchestrator) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "histórico usa limite padrão",
			method: http.MethodGet,
			path:   "/v1/analytics/history",
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					GetAnalyticsHistory(gomock.Any(), company, uint64(defaultHistoryLimit)).
					Return(domain.Ok([]*domain.AnalyticsSnapshot{}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "histórico com limite inválido",
			method:     http.MethodGet,
			path:       "/v1/analytics/history?limit=abc",
			setup:      func(t *testing.T, service *mocks.MockOrchestrator) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "convite ao gerente repassa o customerId",
			method: http.MethodPost,
			path:   "/v1/google-ads/manager-link/invitation",
			body:   `{"customerId":"123-456-7890"}`,
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					SendManagerInvitation(gomock.Any(), company, "123-456-7890").
					Return(domain.Fail[*domain.LinkResult](apiErrors.ErrInvitationFailed, "falha", domain.PlatformGoogleAds))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "verificação de vínculo sem customerId",
			method: http.MethodGet,
			path:   "/v1/google-ads/manager-link",
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().
					CheckManagerLink(gomock.Any(), company, "").
					Return(domain.Ok(&domain.LinkCheck{Linked: true, CanVerify: true}))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "status do serviço não exige tenant",
			method: http.MethodGet,
			path:   "/v1/status",
			setup: func(t *testing.T, service *mocks.MockOrchestrator) {
				service.EXPECT().GetServiceStatus().Return(domain.Ok(&domain.ServiceStatus{Configured: true}))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, service := newTestRouter(t, &fakeCron{})
			tt.setup(t, service)

			rec := doRequest(h, tt.method, tt.path, tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestTenantRoutes_RequireCompany(t *testing.T) {
	h, _ := newTestRouter(t, &fakeCron{})

	for _, path := range []string{"/v1/campaigns", "/v1/connections", "/v1/analytics"} {
		rec := doRequest(h, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t, &fakeCron{})

	rec := doRequest(h, http.MethodGet, "/v1/nao-existe", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrNotFound)
}

func TestHealthcheck(t *testing.T) {
	h, _ := newTestRouter(t, &fakeCron{})

	rec := doRequest(h, http.MethodGet, "/healthcheck", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

func TestGetGoogleAdsAuthURL(t *testing.T) {
	h, _ := newTestRouter(t, &fakeCron{})

	rec := doRequest(h, http.MethodGet, "/v1/google-ads/oauth/url?redirectUri=https://app.example/callback", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://accounts.example/auth?state="+company, body["url"])

	rec = doRequest(h, http.MethodGet, "/v1/google-ads/oauth/url", "", true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingCredentials)
}
