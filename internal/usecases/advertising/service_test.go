package advertising

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/advertising/mocks"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/credentialing"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const companyID = "company-1"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	now      time.Time
	store    *documentstore.MemoryStore
	caches   *caching.Caches
	vault    *credentialing.Vault
	adapters map[domain.Platform]*mocks.MockPlatformAdapter
	service  *Service
}

func newFixture(t *testing.T, platforms ...domain.Platform) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		now:      time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
		adapters: make(map[domain.Platform]*mocks.MockPlatformAdapter),
	}
	clock := func() time.Time { return f.now }

	f.store = documentstore.NewMemoryStore(clock)
	f.caches = caching.New(f.store)

	vault, err := credentialing.NewVault(f.store, "segredo-de-teste")
	require.NoError(t, err)
	f.vault = vault

	adapters := make([]PlatformAdapter, 0, len(platforms))
	for _, platform := range platforms {
		adapter := mocks.NewMockPlatformAdapter(ctrl)
		adapter.EXPECT().Platform().Return(platform).AnyTimes()
		f.adapters[platform] = adapter
		adapters = append(adapters, adapter)
	}

	cfg := &config.Config{Cache: config.Cache{CampaignTTL: 15 * time.Minute}}
	f.service = NewService(cfg, vault, f.caches, adapters...)
	f.service.now = clock

	return f
}

func (f *fixture) connect(t *testing.T, platform domain.Platform) domain.PlatformCredentials {
	t.Helper()
	creds := domain.PlatformCredentials{Platform: platform, Data: map[string]string{"access_token": "tok-" + platform.String()}}
	require.NoError(t, f.vault.Save(context.Background(), companyID, creds))
	return creds
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

type fakeHistory struct {
	mu    sync.Mutex
	saved []*domain.AnalyticsSnapshot
	err   error
}

func (h *fakeHistory) Save(_ context.Context, snapshot *domain.AnalyticsSnapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saved = append(h.saved, snapshot)
	return h.err
}

func (h *fakeHistory) ListByCompany(_ context.Context, companyID string, _ uint64) ([]*domain.AnalyticsSnapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*domain.AnalyticsSnapshot
	for _, s := range h.saved {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (h *fakeHistory) DeleteOlderThan(context.Context, int) (int64, error) {
	return 0, nil
}

func TestConnectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, resp domain.Response[*domain.PlatformConnection])
	}{
		{
			name:     "plataforma não registrada",
			platform: domain.PlatformLinkedIn,
			setup:    func(f *fixture) {},
			validate: func(t *testing.T, f *fixture, resp domain.Response[*domain.PlatformConnection]) {
				assert.False(t, resp.Success)
				assert.Equal(t, apiErrors.ErrUnsupportedPlatform, resp.Error.Code)
				assert.Equal(t, domain.PlatformLinkedIn, resp.Error.Platform)
			},
		},
		{
			name:     "conexão válida grava credenciais e status",
			platform: domain.PlatformMeta,
			setup: func(f *fixture) {
				f.adapters[domain.PlatformMeta].EXPECT().
					CheckConnection(gomock.Any(), gomock.Any()).
					Return(&domain.AccountInfo{ID: "act_1", Name: "Loja"}, nil)
			},
			validate: func(t *testing.T, f *fixture, resp domain.Response[*domain.PlatformConnection]) {
				require.True(t, resp.Success)
				assert.Equal(t, domain.ConnectionStatusConnected, resp.Data.Status)
				assert.Equal(t, f.now, *resp.Data.LastConnected)

				creds, err := f.vault.Load(context.Background(), companyID, domain.PlatformMeta)
				require.NoError(t, err)
				require.NotNil(t, creds)
				assert.Equal(t, "tok", creds.Get("access_token"))

				entry, err := f.caches.Connections.Get(context.Background(), domain.DocumentKey(companyID, domain.PlatformMeta))
				require.NoError(t, err)
				assert.Equal(t, "Loja", entry.Value.AccountInfo.Name)
			},
		},
		{
			name:     "falha na verificação grava status de erro e não guarda credenciais",
			platform: domain.PlatformMeta,
			setup: func(f *fixture) {
				f.adapters[domain.PlatformMeta].EXPECT().
					CheckConnection(gomock.Any(), gomock.Any()).
					Return(nil, apiErrors.New(apiErrors.ErrTokenExpired, "token expirado"))
			},
			validate: func(t *testing.T, f *fixture, resp domain.Response[*domain.PlatformConnection]) {
				assert.False(t, resp.Success)
				assert.Equal(t, apiErrors.ErrConnection, resp.Error.Code)

				creds, err := f.vault.Load(context.Background(), companyID, domain.PlatformMeta)
				require.NoError(t, err)
				assert.Nil(t, creds)

				entry, err := f.caches.Connections.Get(context.Background(), domain.DocumentKey(companyID, domain.PlatformMeta))
				require.NoError(t, err)
				assert.Equal(t, domain.ConnectionStatusError, entry.Value.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.PlatformMeta)
			tt.setup(f)

			resp := f.service.ConnectPlatform(context.Background(), companyID, tt.platform, map[string]string{"access_token": "tok"})

			tt.validate(t, f, resp)
		})
	}
}

type preparingAdapter struct {
	*mocks.MockPlatformAdapter
	*mocks.MockCredentialPreparer
}

func TestConnectPlatform_PreparesCredentials(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	adapter := preparingAdapter{mocks.NewMockPlatformAdapter(ctrl), mocks.NewMockCredentialPreparer(ctrl)}
	adapter.MockPlatformAdapter.EXPECT().Platform().Return(domain.PlatformGoogleAds).AnyTimes()
	adapter.MockCredentialPreparer.EXPECT().PrepareCredentials(gomock.Any(), gomock.Any()).
		Return(domain.PlatformCredentials{Platform: domain.PlatformGoogleAds, Data: map[string]string{"refresh_token": "rt", "customer_id": "1234567890"}}, nil)
	adapter.MockPlatformAdapter.EXPECT().CheckConnection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error) {
			assert.Equal(t, "rt", creds.Get("refresh_token"))
			return &domain.AccountInfo{ID: "1234567890"}, nil
		})

	service := NewService(f.service.cfg, f.vault, f.caches, adapter)
	service.now = f.service.now

	resp := service.ConnectPlatform(context.Background(), companyID, domain.PlatformGoogleAds, map[string]string{"code": "abc"})

	require.True(t, resp.Success)
	creds, err := f.vault.Load(context.Background(), companyID, domain.PlatformGoogleAds)
	require.NoError(t, err)
	assert.Equal(t, "rt", creds.Get("refresh_token"))
	assert.Empty(t, creds.Get("code"))
}

func TestGetAllPlatformConnections_IsIdempotent(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta, domain.PlatformTaboola)
	f.connect(t, domain.PlatformMeta)

	f.adapters[domain.PlatformMeta].EXPECT().
		CheckConnection(gomock.Any(), gomock.Any()).
		Return(&domain.AccountInfo{ID: "act_1"}, nil).
		Times(1)

	first := f.service.GetAllPlatformConnections(context.Background(), companyID)
	f.advance(time.Hour)
	second := f.service.GetAllPlatformConnections(context.Background(), companyID)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Data, second.Data)
	require.Len(t, second.Data, 2)
	assert.Equal(t, domain.PlatformMeta, second.Data[0].Platform)
	assert.Equal(t, domain.ConnectionStatusConnected, second.Data[0].Status)
	assert.Equal(t, domain.ConnectionStatusDisconnected, second.Data[1].Status)
}

func TestGetAllPlatformConnections_RechecksCachedError(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta)
	f.connect(t, domain.PlatformMeta)

	gomock.InOrder(
		f.adapters[domain.PlatformMeta].EXPECT().
			CheckConnection(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		f.adapters[domain.PlatformMeta].EXPECT().
			CheckConnection(gomock.Any(), gomock.Any()).
			Return(&domain.AccountInfo{ID: "act_1"}, nil),
	)

	first := f.service.GetAllPlatformConnections(context.Background(), companyID)
	second := f.service.GetAllPlatformConnections(context.Background(), companyID)

	assert.Equal(t, domain.ConnectionStatusError, first.Data[0].Status)
	assert.Equal(t, "timeout", first.Data[0].Error)
	assert.Equal(t, domain.ConnectionStatusConnected, second.Data[0].Status)
}

func TestGetAllPlatformConnections_PersistsDisconnected(t *testing.T) {
	f := newFixture(t, domain.PlatformTaboola)

	resp := f.service.GetAllPlatformConnections(context.Background(), companyID)

	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, domain.ConnectionStatusDisconnected, resp.Data[0].Status)

	stored, err := f.caches.Connections.Get(context.Background(), domain.DocumentKey(companyID, domain.PlatformTaboola))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.ConnectionStatusDisconnected, stored.Value.Status)

	f.adapters[domain.PlatformTaboola].EXPECT().
		CheckConnection(gomock.Any(), gomock.Any()).
		Return(&domain.AccountInfo{ID: "acc-1"}, nil)

	connected := f.service.ConnectPlatform(context.Background(), companyID, domain.PlatformTaboola, map[string]string{"client_id": "id"})
	require.True(t, connected.Success)

	after := f.service.GetAllPlatformConnections(context.Background(), companyID)
	assert.Equal(t, domain.ConnectionStatusConnected, after.Data[0].Status)
}

func TestGetAllCampaigns_CacheWithinTTL(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta)
	f.connect(t, domain.PlatformMeta)

	live := []domain.UnifiedCampaign{{ID: "1", Name: "Verão", Platform: domain.PlatformMeta, Status: domain.CampaignStatusEnabled}}
	f.adapters[domain.PlatformMeta].EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(live, nil).Times(1)

	first := f.service.GetAllCampaigns(context.Background(), companyID)
	f.advance(10 * time.Minute)
	second := f.service.GetAllCampaigns(context.Background(), companyID)

	require.True(t, second.Success)
	assert.Equal(t, live, first.Data)
	assert.Equal(t, live, second.Data)
}

func TestGetAllCampaigns_StaleFallback(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta)
	f.connect(t, domain.PlatformMeta)

	live := []domain.UnifiedCampaign{{ID: "1", Name: "Verão", Platform: domain.PlatformMeta, Status: domain.CampaignStatusEnabled}}
	gomock.InOrder(
		f.adapters[domain.PlatformMeta].EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(live, nil),
		f.adapters[domain.PlatformMeta].EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return(nil, errors.New("503")),
	)

	f.service.GetAllCampaigns(context.Background(), companyID)
	f.advance(16 * time.Minute)
	resp := f.service.GetAllCampaigns(context.Background(), companyID)

	require.True(t, resp.Success)
	assert.Equal(t, live, resp.Data)
}

func TestGetAllCampaigns_SortedByROAS(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta, domain.PlatformTaboola, domain.PlatformOutbrain)
	f.connect(t, domain.PlatformMeta)
	f.connect(t, domain.PlatformTaboola)

	f.adapters[domain.PlatformMeta].EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return([]domain.UnifiedCampaign{
		{ID: "m1", Metrics: domain.UnifiedMetrics{ROAS: 1.5}},
		{ID: "m2", Metrics: domain.UnifiedMetrics{ROAS: 4}},
	}, nil)
	f.adapters[domain.PlatformTaboola].EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).Return([]domain.UnifiedCampaign{
		{ID: "t1", Metrics: domain.UnifiedMetrics{ROAS: 2}},
	}, nil)

	resp := f.service.GetAllCampaigns(context.Background(), companyID)

	require.True(t, resp.Success)
	ids := make([]string, 0, len(resp.Data))
	for _, c := range resp.Data {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"m2", "t1", "m1"}, ids)
}

func TestGetUnifiedAnalytics(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta, domain.PlatformTaboola, domain.PlatformOutbrain)
	f.connect(t, domain.PlatformMeta)
	f.connect(t, domain.PlatformTaboola)
	f.connect(t, domain.PlatformOutbrain)

	history := &fakeHistory{}
	f.service.WithHistory(history)

	period := domain.DateRange{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	f.adapters[domain.PlatformMeta].EXPECT().GetAnalytics(gomock.Any(), gomock.Any(), period).Return(&domain.PlatformAnalytics{
		Platform:      domain.PlatformMeta,
		Summary:       domain.UnifiedMetrics{Impressions: 1000, Clicks: 50, Cost: 10000, ConversionValue: 40000},
		CampaignCount: 2,
		DailyData: []domain.DailyMetrics{
			{Date: "2024-05-02", Metrics: domain.UnifiedMetrics{Impressions: 400, Clicks: 20, Cost: 4000, ConversionValue: 16000}},
			{Date: "2024-05-01", Metrics: domain.UnifiedMetrics{Impressions: 600, Clicks: 30, Cost: 6000, ConversionValue: 24000}},
		},
	}, nil)
	f.adapters[domain.PlatformTaboola].EXPECT().GetAnalytics(gomock.Any(), gomock.Any(), period).Return(&domain.PlatformAnalytics{
		Platform:      domain.PlatformTaboola,
		Summary:       domain.UnifiedMetrics{Impressions: 1000, Clicks: 10, Cost: 10000, ConversionValue: 5000},
		CampaignCount: 1,
		DailyData: []domain.DailyMetrics{
			{Date: "2024-05-01", Metrics: domain.UnifiedMetrics{Impressions: 1000, Clicks: 10, Cost: 10000, ConversionValue: 5000}},
		},
	}, nil)
	f.adapters[domain.PlatformOutbrain].EXPECT().GetAnalytics(gomock.Any(), gomock.Any(), period).Return(nil, errors.New("login falhou"))

	resp := f.service.GetUnifiedAnalytics(context.Background(), companyID, &period)

	require.True(t, resp.Success)
	analytics := resp.Data

	assert.Equal(t, int64(2000), analytics.Summary.Impressions)
	assert.Equal(t, int64(20000), analytics.Summary.Cost)
	assert.InDelta(t, 2.25, analytics.Summary.ROAS, 1e-9)
	assert.InDelta(t, 3.0, analytics.Summary.CTR, 1e-9)

	require.Len(t, analytics.PlatformBreakdown, len(domain.AllPlatforms))
	meta := analytics.PlatformBreakdown[2]
	assert.Equal(t, domain.PlatformMeta, meta.Platform)
	assert.True(t, meta.IsActive)
	assert.InDelta(t, 4.0, meta.Metrics.ROAS, 1e-9)
	outbrain := analytics.PlatformBreakdown[4]
	assert.Equal(t, domain.PlatformOutbrain, outbrain.Platform)
	assert.False(t, outbrain.IsActive)
	assert.Zero(t, outbrain.Metrics)

	require.Len(t, analytics.DailyData, 2)
	assert.Equal(t, "2024-05-01", analytics.DailyData[0].Date)
	assert.Equal(t, int64(16000), analytics.DailyData[0].Metrics.Cost)
	assert.InDelta(t, 29000.0/16000.0, analytics.DailyData[0].Metrics.ROAS, 1e-9)

	assert.Equal(t, domain.PlatformMeta, analytics.Insights.BestPerformingPlatform)
	assert.Equal(t, domain.PlatformTaboola, analytics.Insights.WorstPerformingPlatform)
	assert.Equal(t, 10000.0, analytics.Insights.TotalBudgetUtilization)
	assert.Equal(t, 2.25, analytics.Insights.AverageROAS)
	assert.Equal(t, []string{
		"meta tem ROAS de 4.00. Avalie aumentar o investimento nessa rede.",
		"Considere realocar orçamento de taboola para meta, que tem ROAS de 4.00.",
		"Revise a performance de taboola: ROAS abaixo de 1.0.",
		"Considere testar google-ads, linkedin, outbrain para ampliar o alcance.",
	}, analytics.Insights.Recommendations)

	require.Len(t, history.saved, 1)
	assert.Equal(t, companyID, history.saved[0].CompanyID)

	listed := f.service.GetAnalyticsHistory(context.Background(), companyID, 10)
	require.True(t, listed.Success)
	assert.Len(t, listed.Data, 1)
}

func TestGetUnifiedAnalytics_NoActivePlatform(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta)

	resp := f.service.GetUnifiedAnalytics(context.Background(), companyID, nil)

	require.True(t, resp.Success)
	require.Len(t, resp.Data.PlatformBreakdown, len(domain.AllPlatforms))
	for _, entry := range resp.Data.PlatformBreakdown {
		assert.False(t, entry.IsActive)
	}
	assert.Empty(t, resp.Data.Insights.BestPerformingPlatform)
	assert.Empty(t, resp.Data.Insights.WorstPerformingPlatform)
	assert.Equal(t, []string{noActivePlatformRecommendation}, resp.Data.Insights.Recommendations)
	assert.Equal(t, "2024-05-09", resp.Data.DateRange.EndString())
}

func TestGetAnalyticsHistory_WithoutRepository(t *testing.T) {
	f := newFixture(t)

	resp := f.service.GetAnalyticsHistory(context.Background(), companyID, 5)

	assert.False(t, resp.Success)
	assert.Equal(t, apiErrors.ErrConfiguration, resp.Error.Code)
}

func TestCreateCampaign(t *testing.T) {
	draft := domain.CampaignDraft{Name: "Nova", Budget: domain.Budget{Amount: 5000, Period: domain.BudgetPeriodDaily}}

	t.Run("sem credenciais", func(t *testing.T) {
		f := newFixture(t, domain.PlatformTaboola)

		resp := f.service.CreateCampaign(context.Background(), companyID, domain.PlatformTaboola, draft)

		assert.False(t, resp.Success)
		assert.Equal(t, apiErrors.ErrMissingCredentials, resp.Error.Code)
	})

	t.Run("encaminha ao integrador", func(t *testing.T) {
		f := newFixture(t, domain.PlatformTaboola)
		creds := f.connect(t, domain.PlatformTaboola)

		f.adapters[domain.PlatformTaboola].EXPECT().CreateCampaign(gomock.Any(), creds, draft).
			Return(&domain.UnifiedCampaign{ID: "99", Name: "Nova", Status: domain.CampaignStatusPaused}, nil)

		resp := f.service.CreateCampaign(context.Background(), companyID, domain.PlatformTaboola, draft)

		require.True(t, resp.Success)
		assert.Equal(t, "99", resp.Data.ID)
	})

	t.Run("erro do integrador mantém o código", func(t *testing.T) {
		f := newFixture(t, domain.PlatformTaboola)
		f.connect(t, domain.PlatformTaboola)

		f.adapters[domain.PlatformTaboola].EXPECT().CreateCampaign(gomock.Any(), gomock.Any(), draft).
			Return(nil, apiErrors.New(apiErrors.ErrTokenExpired, "token expirado"))

		resp := f.service.CreateCampaign(context.Background(), companyID, domain.PlatformTaboola, draft)

		assert.False(t, resp.Success)
		assert.Equal(t, apiErrors.ErrTokenExpired, resp.Error.Code)
		assert.Equal(t, domain.PlatformTaboola, resp.Error.Platform)
	})
}

func TestGetServiceStatus(t *testing.T) {
	f := newFixture(t, domain.PlatformMeta)
	f.service.cfg.SecretKey = "segredo"
	f.service.cfg.Meta = config.Meta{AppID: "app", AppSecret: "secret"}

	resp := f.service.GetServiceStatus()

	require.True(t, resp.Success)
	assert.False(t, resp.Data.Configured)
	assert.True(t, resp.Data.Platforms[domain.PlatformMeta].Configured)
	assert.False(t, resp.Data.Platforms[domain.PlatformGoogleAds].Configured)
	assert.Len(t, resp.Data.Platforms, len(domain.AllPlatforms))
}
