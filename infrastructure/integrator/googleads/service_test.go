package googleads

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

type staticTokens struct {
	stored map[string]string
}

func (s *staticTokens) GetValidAccessToken(ctx context.Context, refreshToken string) (string, error) {
	return "access-for-" + refreshToken, nil
}

func (s *staticTokens) Store(refreshToken, accessToken string, expiresIn int64) {
	if s.stored == nil {
		s.stored = map[string]string{}
	}
	s.stored[refreshToken] = accessToken
}

type fakeExchanger struct {
	resp *googleadsdomain.TokenResponse
	err  error
}

func (f *fakeExchanger) ExchangeCodeForTokens(ctx context.Context, code, redirectURI string) (*googleadsdomain.TokenResponse, error) {
	return f.resp, f.err
}

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) (*GoogleAdsIntegrator, *staticTokens) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.GoogleAds{
		APIURL:              server.URL,
		DeveloperToken:      "dev",
		ManagerCustomerID:   "9999999999",
		ManagerRefreshToken: "manager-rt",
	}
	client := googleadsclient.NewClient(cfg, transport.NewClient(domain.PlatformGoogleAds, config.Adapter{Timeout: time.Second}))
	tokens := &staticTokens{}

	return New(cfg, client, &fakeExchanger{}, tokens), tokens
}

func tenantCredentials() domain.PlatformCredentials {
	return domain.PlatformCredentials{
		Platform: domain.PlatformGoogleAds,
		Data: map[string]string{
			"customer_id":   "123-456-7890",
			"refresh_token": "tenant-rt",
			"email":         "ana@empresa.com",
		},
	}
}

func TestCheckConnection(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-for-tenant-rt", r.Header.Get("Authorization"))
		assert.Equal(t, "1234567890", r.Header.Get("login-customer-id"))
		w.Write([]byte(`{"results":[{"customer":{"id":"1234567890","descriptiveName":"Loja","currencyCode":"BRL","timeZone":"America/Sao_Paulo"}}]}`))
	})

	info, err := integrator.CheckConnection(context.Background(), tenantCredentials())
	require.NoError(t, err)

	assert.Equal(t, &domain.AccountInfo{
		ID:       "1234567890",
		Name:     "Loja",
		Currency: "BRL",
		Timezone: "America/Sao_Paulo",
		Email:    "ana@empresa.com",
	}, info)
}

func TestCheckConnection_MissingCustomerID(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("nenhuma chamada de rede esperada")
	})

	creds := domain.PlatformCredentials{Platform: domain.PlatformGoogleAds, Data: map[string]string{"refresh_token": "rt"}}
	_, err := integrator.CheckConnection(context.Background(), creds)

	assert.Equal(t, apiErrors.ErrInvalidCustomerID, apiErrors.CodeOf(err, ""))
}

func TestGetCampaigns(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "campaign.status != 'REMOVED'")
		w.Write([]byte(`{"results":[
			{"campaign":{"id":"1","name":"Busca","status":"ENABLED","advertisingChannelType":"SEARCH","startDate":"2024-05-01"},
			 "campaignBudget":{"amountMicros":"50000000"},
			 "metrics":{"impressions":"1000","clicks":"50","costMicros":"25000000","conversions":5,"conversionsValue":100}},
			{"campaign":{"id":"2","name":"Rascunho","status":"UNKNOWN"}}
		]}`))
	})

	campaigns, err := integrator.GetCampaigns(context.Background(), tenantCredentials())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	first := campaigns[0]
	assert.Equal(t, domain.CampaignStatusEnabled, first.Status)
	assert.Equal(t, int64(5000), first.Budget.Amount)
	assert.Equal(t, int64(2500), first.Metrics.Cost)
	assert.Equal(t, int64(10000), first.Metrics.ConversionValue)
	assert.InDelta(t, 4.0, first.Metrics.ROAS, 0.0001)
	assert.InDelta(t, 5.0, first.Metrics.CTR, 0.0001)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2024-05-01", first.StartDate.Format(time.DateOnly))

	assert.Equal(t, domain.CampaignStatusPaused, campaigns[1].Status)
	assert.Zero(t, campaigns[1].Metrics.ROAS)
}

func TestGetAnalytics_AggregatesByDay(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "BETWEEN '2024-05-01' AND '2024-05-02'")
		w.Write([]byte(`{"results":[
			{"campaign":{"id":"1"},"segments":{"date":"2024-05-02"},"metrics":{"impressions":"100","clicks":"10","costMicros":"10000000","conversionsValue":20}},
			{"campaign":{"id":"2"},"segments":{"date":"2024-05-01"},"metrics":{"impressions":"100","clicks":"30","costMicros":"30000000","conversionsValue":30}},
			{"campaign":{"id":"1"},"segments":{"date":"2024-05-01"},"metrics":{"impressions":"200","clicks":"20","costMicros":"10000000","conversionsValue":10}}
		]}`))
	})

	dateRange := domain.DateRange{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	analytics, err := integrator.GetAnalytics(context.Background(), tenantCredentials(), dateRange)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.CampaignCount)
	assert.Equal(t, int64(400), analytics.Summary.Impressions)
	assert.Equal(t, int64(5000), analytics.Summary.Cost)
	assert.InDelta(t, 1.2, analytics.Summary.ROAS, 0.0001)

	require.Len(t, analytics.DailyData, 2)
	assert.Equal(t, "2024-05-01", analytics.DailyData[0].Date)
	assert.Equal(t, int64(300), analytics.DailyData[0].Metrics.Impressions)
	assert.InDelta(t, 1.0, analytics.DailyData[0].Metrics.ROAS, 0.0001)
	assert.InDelta(t, 2.0, analytics.DailyData[1].Metrics.ROAS, 0.0001)
}

func TestCreateCampaign_CreatesBudgetThenPausedCampaign(t *testing.T) {
	var paths []string
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body, _ := io.ReadAll(r.Body)

		switch {
		case strings.HasSuffix(r.URL.Path, "campaignBudgets:mutate"):
			assert.Contains(t, string(body), `"amountMicros":"20000000"`)
			w.Write([]byte(`{"results":[{"resourceName":"customers/1234567890/campaignBudgets/7"}]}`))
		case strings.HasSuffix(r.URL.Path, "campaigns:mutate"):
			assert.Contains(t, string(body), `"status":"PAUSED"`)
			assert.Contains(t, string(body), `"campaignBudget":"customers/1234567890/campaignBudgets/7"`)
			assert.Contains(t, string(body), `"manualCpc":{}`)
			w.Write([]byte(`{"results":[{"resourceName":"customers/1234567890/campaigns/88"}]}`))
		}
	})

	draft := domain.CampaignDraft{Name: "Inverno", Budget: domain.Budget{Amount: 2000, Currency: "BRL"}}
	campaign, err := integrator.CreateCampaign(context.Background(), tenantCredentials(), draft)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/customers/1234567890/campaignBudgets:mutate",
		"/customers/1234567890/campaigns:mutate",
	}, paths)
	assert.Equal(t, "88", campaign.ID)
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
	assert.Equal(t, "customers/1234567890/campaignBudgets/7", campaign.PlatformData["budgetResourceName"])
}

func TestPrepareCredentials(t *testing.T) {
	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "ana@empresa.com"}).SignedString([]byte("k"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    map[string]string
		exchange *fakeExchanger
		validate func(t *testing.T, prepared domain.PlatformCredentials, tokens *staticTokens, err error)
	}{
		{
			name:     "troca o código e guarda os tokens",
			input:    map[string]string{"customer_id": "123-456-7890", "code": "auth-code"},
			exchange: &fakeExchanger{resp: &googleadsdomain.TokenResponse{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600, IDToken: idToken}},
			validate: func(t *testing.T, prepared domain.PlatformCredentials, tokens *staticTokens, err error) {
				require.NoError(t, err)
				assert.Equal(t, "rt", prepared.Get("refresh_token"))
				assert.Equal(t, "1234567890", prepared.Get("customer_id"))
				assert.Equal(t, "ana@empresa.com", prepared.Get("email"))
				assert.Empty(t, prepared.Get("code"))
				assert.Equal(t, "at", tokens.stored["rt"])
			},
		},
		{
			name:     "falha na troca é propagada",
			input:    map[string]string{"customer_id": "1", "code": "auth-code"},
			exchange: &fakeExchanger{err: apiErrors.New(apiErrors.ErrTokenExchangeFailed, "invalid_grant")},
			validate: func(t *testing.T, prepared domain.PlatformCredentials, tokens *staticTokens, err error) {
				assert.Equal(t, apiErrors.ErrTokenExchangeFailed, apiErrors.CodeOf(err, ""))
			},
		},
		{
			name:     "sem token e sem código é credencial ausente",
			input:    map[string]string{"customer_id": "1"},
			exchange: &fakeExchanger{},
			validate: func(t *testing.T, prepared domain.PlatformCredentials, tokens *staticTokens, err error) {
				assert.Equal(t, apiErrors.ErrMissingCredentials, apiErrors.CodeOf(err, ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, tokens := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {})
			integrator.exchanger = tt.exchange

			prepared, err := integrator.PrepareCredentials(context.Background(), domain.PlatformCredentials{
				Platform: domain.PlatformGoogleAds,
				Data:     tt.input,
			})

			tt.validate(t, prepared, tokens, err)
		})
	}
}

func TestManagerAuth_RequiresConfiguration(t *testing.T) {
	integrator := New(config.GoogleAds{}, nil, nil, &staticTokens{})

	_, err := integrator.ManagerAuth(context.Background())

	assert.Equal(t, apiErrors.ErrConfiguration, apiErrors.CodeOf(err, ""))
}

func TestLinks(t *testing.T) {
	integrator, _ := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/customers/9999999999/googleAds:search":
			assert.Contains(t, string(body), "customers/1234567890")
			w.Write([]byte(`{"results":[{"customerClientLink":{"resourceName":"customers/9999999999/customerClientLinks/1234567890~42","managerLinkId":"42","status":"CANCELED"}}]}`))
		case "/customers/9999999999/customerClientLinks:mutate":
			assert.Contains(t, string(body), `"updateMask":"status"`)
			assert.Contains(t, string(body), `"status":"PENDING"`)
			w.Write([]byte(`{"result":{"resourceName":"customers/9999999999/customerClientLinks/1234567890~42"}}`))
		default:
			t.Fatalf("caminho inesperado %s", r.URL.Path)
		}
	})

	auth := googleadsclient.Auth{AccessToken: "manager", LoginCustomerID: "9999999999"}

	link, err := integrator.FindClientLink(context.Background(), auth, "9999999999", "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", link.Status)
	assert.Equal(t, "42", googleadsdomain.LinkIDFromResourceName(link.ResourceName))

	err = integrator.UpdateClientLinkStatus(context.Background(), auth, "9999999999", link.ResourceName, "PENDING")
	assert.NoError(t, err)
}
