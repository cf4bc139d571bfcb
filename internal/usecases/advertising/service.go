package advertising

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/repository"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

// Service é o orquestrador multi-rede. Toda operação pública devolve o envelope
// domain.Response e nunca propaga erro de uma rede para as demais.
type Service struct {
	cfg      *config.Config
	adapters map[domain.Platform]PlatformAdapter
	vault    CredentialStore
	caches   *caching.Caches
	history  repository.AnalyticsHistoryRepository
	google   GoogleAdsAccess
	links    ManagerLinker
	builder  CampaignBuilder
	now      func() time.Time
}

func NewService(cfg *config.Config, vault CredentialStore, caches *caching.Caches, adapters ...PlatformAdapter) *Service {
	registered := make(map[domain.Platform]PlatformAdapter, len(adapters))
	for _, adapter := range adapters {
		registered[adapter.Platform()] = adapter
	}

	return &Service{
		cfg:      cfg,
		adapters: registered,
		vault:    vault,
		caches:   caches,
		now:      time.Now,
	}
}

// WithHistory habilita a gravação dos snapshots de analytics
func (s *Service) WithHistory(history repository.AnalyticsHistoryRepository) *Service {
	s.history = history
	return s
}

// WithGoogleAds habilita as operações de vínculo e de campanha completa
func (s *Service) WithGoogleAds(google GoogleAdsAccess, links ManagerLinker, builder CampaignBuilder) *Service {
	s.google = google
	s.links = links
	s.builder = builder
	return s
}

func (s *Service) adapter(platform domain.Platform) (PlatformAdapter, bool) {
	adapter, ok := s.adapters[platform]
	return adapter, ok
}

// credentials retorna nil, nil quando o tenant não conectou a plataforma
func (s *Service) credentials(ctx context.Context, companyID string, platform domain.Platform) (*domain.PlatformCredentials, error) {
	creds, err := s.vault.Load(ctx, companyID, platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar credenciais de %s: %w", platform, err)
	}
	return creds, nil
}

func fail[T any](err error, fallback string) domain.Response[T] {
	apiErr := apiErrors.FromError(err, fallback)
	return domain.Fail[T](apiErr.Code, apiErr.Message, domain.Platform(apiErr.Platform))
}

// fanOut executa fn para cada plataforma registrada e guarda o resultado pela posição em AllPlatforms
func fanOut[T any](ctx context.Context, s *Service, fn func(ctx context.Context, platform domain.Platform, adapter PlatformAdapter) T) []T {
	results := make([]T, len(domain.AllPlatforms))

	g, gctx := errgroup.WithContext(ctx)
	for i, platform := range domain.AllPlatforms {
		adapter, ok := s.adapter(platform)
		if !ok {
			continue
		}
		i, platform := i, platform
		g.Go(func() error {
			results[i] = fn(gctx, platform, adapter)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ConnectPlatform valida as credenciais contra a rede e grava credenciais e conexão
func (s *Service) ConnectPlatform(ctx context.Context, companyID string, platform domain.Platform, authData map[string]string) domain.Response[*domain.PlatformConnection] {
	if companyID == "" {
		return fail[*domain.PlatformConnection](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}

	adapter, ok := s.adapter(platform)
	if !ok {
		return domain.Fail[*domain.PlatformConnection](apiErrors.ErrUnsupportedPlatform,
			fmt.Sprintf("plataforma não suportada: %s", platform), platform)
	}

	fields := logrus.Fields{
		"company_id": companyID,
		"platform":   platform,
	}

	creds := domain.PlatformCredentials{Platform: platform, Data: authData}
	if preparer, ok := adapter.(CredentialPreparer); ok {
		prepared, err := preparer.PrepareCredentials(ctx, creds)
		if err != nil {
			logrus.WithFields(fields).WithError(err).Error("Erro ao preparar credenciais")
			return s.connectionFailed(ctx, companyID, platform, err)
		}
		creds = prepared
	}

	info, err := adapter.CheckConnection(ctx, creds)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Falha ao validar conexão")
		return s.connectionFailed(ctx, companyID, platform, err)
	}

	if err := s.vault.Save(ctx, companyID, creds); err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao gravar credenciais")
		return fail[*domain.PlatformConnection](err, apiErrors.ErrConnection)
	}

	connection := domain.NewConnectedStatus(platform, info, s.now())
	s.saveConnection(ctx, companyID, connection)

	logrus.WithFields(fields).Info("Plataforma conectada")
	return domain.Ok(connection)
}

func (s *Service) connectionFailed(ctx context.Context, companyID string, platform domain.Platform, err error) domain.Response[*domain.PlatformConnection] {
	s.saveConnection(ctx, companyID, domain.NewErrorStatus(platform, err))
	return domain.Fail[*domain.PlatformConnection](apiErrors.ErrConnection, err.Error(), platform)
}

func (s *Service) saveConnection(ctx context.Context, companyID string, connection *domain.PlatformConnection) {
	if err := s.caches.Connections.Put(ctx, domain.DocumentKey(companyID, connection.Platform), *connection); err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"platform":   connection.Platform,
			"error":      err.Error(),
		}).Warn("Erro ao gravar status de conexão")
	}
}

// GetAllPlatformConnections prefere o registro salvo sem erro; senão verifica ao vivo e grava o resultado
func (s *Service) GetAllPlatformConnections(ctx context.Context, companyID string) domain.Response[[]domain.PlatformConnection] {
	if companyID == "" {
		return fail[[]domain.PlatformConnection](ErrCompanyRequired, apiErrors.ErrFetchConnections)
	}

	results := fanOut(ctx, s, func(ctx context.Context, platform domain.Platform, adapter PlatformAdapter) *domain.PlatformConnection {
		return s.connectionStatus(ctx, companyID, platform, adapter)
	})

	connections := make([]domain.PlatformConnection, 0, len(results))
	for _, connection := range results {
		if connection != nil {
			connections = append(connections, *connection)
		}
	}

	return domain.Ok(connections)
}

func (s *Service) connectionStatus(ctx context.Context, companyID string, platform domain.Platform, adapter PlatformAdapter) *domain.PlatformConnection {
	key := domain.DocumentKey(companyID, platform)
	fields := logrus.Fields{
		"company_id": companyID,
		"platform":   platform,
	}

	cached, err := s.caches.Connections.Get(ctx, key)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao ler status de conexão salvo")
	}
	if cached != nil && cached.Value.Status != domain.ConnectionStatusError {
		return &cached.Value
	}

	connection := s.checkConnection(ctx, companyID, platform, adapter, fields)
	s.saveConnection(ctx, companyID, connection)
	return connection
}

// checkConnection verifica a rede ao vivo; todo resultado, inclusive disconnected, é gravado pelo chamador
func (s *Service) checkConnection(ctx context.Context, companyID string, platform domain.Platform, adapter PlatformAdapter, fields logrus.Fields) *domain.PlatformConnection {
	creds, err := s.credentials(ctx, companyID, platform)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao carregar credenciais")
		return domain.NewErrorStatus(platform, err)
	}
	if creds == nil {
		return domain.NewDisconnectedStatus(platform)
	}

	info, err := adapter.CheckConnection(ctx, *creds)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Verificação de conexão falhou")
		return domain.NewErrorStatus(platform, err)
	}
	return domain.NewConnectedStatus(platform, info, s.now())
}

// GetServiceStatus relata a configuração de cada rede sem nunca falhar
func (s *Service) GetServiceStatus() domain.Response[*domain.ServiceStatus] {
	problems := s.cfg.Validate()

	status := &domain.ServiceStatus{
		Configured: len(problems) == 0,
		Errors:     problems["core"],
		Platforms:  make(map[domain.Platform]domain.PlatformStatus, len(domain.AllPlatforms)),
		APIVersion: s.cfg.GoogleAds.APIVersion,
		CheckedAt:  s.now(),
	}

	for _, platform := range domain.AllPlatforms {
		_, registered := s.adapter(platform)
		errs := problems[platform.String()]
		if !registered {
			errs = append(errs, "integração não registrada")
		}
		status.Platforms[platform] = domain.PlatformStatus{
			Configured: len(errs) == 0,
			Errors:     errs,
		}
	}

	return domain.Ok(status)
}
