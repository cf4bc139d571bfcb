package taboola

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/taboolaclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

type backstage struct {
	tokenCalls atomic.Int32
	handler    http.HandlerFunc
}

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) (*TaboolaIntegrator, *backstage) {
	fake := &backstage{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			fake.tokenCalls.Add(1)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "tb-client", r.PostForm.Get("client_id"))
			w.Write([]byte(`{"access_token":"tb-token","token_type":"bearer","expires_in":43200}`))
			return
		}
		assert.Equal(t, "Bearer tb-token", r.Header.Get("Authorization"))
		fake.handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := taboolaclient.NewClient(
		config.Taboola{URL: server.URL},
		transport.NewClient(domain.PlatformTaboola, config.Adapter{Timeout: time.Second}),
	)
	return New(client), fake
}

func credentials() domain.PlatformCredentials {
	return domain.PlatformCredentials{
		Platform: domain.PlatformTaboola,
		Data:     map[string]string{"client_id": "tb-client", "client_secret": "tb-secret", "account_id": "loja-br"},
	}
}

func TestCheckConnection(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1.0/users/current/account", r.URL.Path)
		w.Write([]byte(`{"id":1,"name":"Loja BR","account_id":"loja-br","currency":"BRL","time_zone_name":"America/Sao_Paulo"}`))
	})

	info, err := integrator.CheckConnection(context.Background(), credentials())
	require.NoError(t, err)

	assert.Equal(t, "loja-br", info.ID)
	assert.Equal(t, "BRL", info.Currency)
}

func TestCheckConnection_MissingCredentials(t *testing.T) {
	integrator, fake := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("nenhuma chamada de rede esperada")
	})

	_, err := integrator.CheckConnection(context.Background(), domain.PlatformCredentials{
		Platform: domain.PlatformTaboola,
		Data:     map[string]string{"client_id": "tb-client"},
	})

	assert.Equal(t, apiErrors.ErrMissingCredentials, apiErrors.CodeOf(err, ""))
	assert.Equal(t, int32(0), fake.tokenCalls.Load())
}

func TestGetCampaigns(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1.0/loja-br/campaigns/", r.URL.Path)
		w.Write([]byte(`{"results":[
			{"id":"11","name":"Nativo","status":"RUNNING","is_active":true,"daily_cap":80.5,"spending_limit_model":"NONE","start_date":"2024-05-01"},
			{"id":"12","name":"Total","status":"PAUSED","spending_limit":1000,"spending_limit_model":"ENTIRE","spent":250.25},
			{"id":"13","name":"Encerrada","status":"TERMINATED"}
		]}`))
	})

	campaigns, err := integrator.GetCampaigns(context.Background(), credentials())
	require.NoError(t, err)
	require.Len(t, campaigns, 3)

	assert.Equal(t, domain.CampaignStatusEnabled, campaigns[0].Status)
	assert.Equal(t, int64(8050), campaigns[0].Budget.Amount)
	assert.Equal(t, domain.BudgetPeriodDaily, campaigns[0].Budget.Period)
	require.NotNil(t, campaigns[0].StartDate)

	assert.Equal(t, domain.BudgetPeriodLifetime, campaigns[1].Budget.Period)
	require.NotNil(t, campaigns[1].Budget.Remaining)
	assert.Equal(t, int64(74975), *campaigns[1].Budget.Remaining)

	assert.Equal(t, domain.CampaignStatusRemoved, campaigns[2].Status)
}

func TestGetAnalytics_ReusesToken(t *testing.T) {
	integrator, fake := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/1.0/loja-br/reports/campaign-summary/dimensions/day":
			assert.Equal(t, "2024-05-01", r.URL.Query().Get("start_date"))
			assert.Equal(t, "2024-05-02", r.URL.Query().Get("end_date"))
			w.Write([]byte(`{"results":[
				{"date":"2024-05-02 00:00:00.0","impressions":2000,"clicks":40,"spent":20.0,"cpa_actions_num":2,"conversions_value":100.0},
				{"date":"2024-05-01 00:00:00.0","impressions":1000,"clicks":10,"spent":5.0,"cpa_actions_num":0,"conversions_value":0}
			]}`))
		case "/api/1.0/loja-br/campaigns/":
			w.Write([]byte(`{"results":[{"id":"11","name":"Nativo","status":"RUNNING"}]}`))
		default:
			t.Fatalf("caminho inesperado %s", r.URL.Path)
		}
	})

	analytics, err := integrator.GetAnalytics(context.Background(), credentials(), domain.DateRange{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), fake.tokenCalls.Load())
	assert.Equal(t, 1, analytics.CampaignCount)
	require.Len(t, analytics.DailyData, 2)
	assert.Equal(t, "2024-05-01", analytics.DailyData[0].Date)
	assert.Equal(t, int64(2500), analytics.Summary.Cost)
	assert.Equal(t, int64(10000), analytics.Summary.ConversionValue)
	assert.InDelta(t, 4.0, analytics.Summary.ROAS, 0.0001)
	assert.InDelta(t, 50/3000.0*100, analytics.Summary.CTR, 0.0001)
}

func TestCreateCampaign(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"99","name":"Nova","status":"PAUSED","is_active":false}`))
	})

	campaign, err := integrator.CreateCampaign(context.Background(), credentials(), domain.CampaignDraft{
		Name:   "Nova",
		Budget: domain.Budget{Amount: 5000, Currency: "BRL", Period: domain.BudgetPeriodLifetime},
	})
	require.NoError(t, err)

	assert.Equal(t, "99", campaign.ID)
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
	assert.Equal(t, domain.BudgetPeriodLifetime, campaign.Budget.Period)
}

func TestGetCampaigns_Unauthorized(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"http_status":401,"message":"token expirado"}`))
	})

	_, err := integrator.GetCampaigns(context.Background(), credentials())

	assert.Equal(t, apiErrors.ErrTokenExpired, apiErrors.CodeOf(err, ""))
}
