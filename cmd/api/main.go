package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/migrations"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/outbrain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/outbrain/outbrainclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/taboolaclient"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/transport"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/repository"
	"github.com/vfg2006/multiplatform-ads-api/internal/api"
	"github.com/vfg2006/multiplatform-ads-api/internal/api/handler"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/scheduler"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/advertising"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/campaignbuilding"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/credentialing"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/managerlinking"
	"github.com/vfg2006/multiplatform-ads-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	for platform, problems := range cfg.Validate() {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"problems": problems,
		}).Warn("Configuração incompleta")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	store, err := documentstore.New(cfg, pgConn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o armazenamento de documentos")
	}

	vault, err := credentialing.NewVault(store, cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cofre de credenciais")
	}

	caches := caching.New(store)
	historyRepo := repository.NewAnalyticsHistoryRepository(pgConn)

	// Rede principal
	googleHTTP := transport.NewClient(domain.PlatformGoogleAds, cfg.Adapter)
	oauthClient := googleadsclient.NewOAuthClient(cfg.GoogleAds, googleHTTP)
	googleIntegrator := googleads.New(
		cfg.GoogleAds,
		googleadsclient.NewClient(cfg.GoogleAds, googleHTTP),
		oauthClient,
		googleadsclient.NewTokenManager(oauthClient),
	)

	linkService := managerlinking.NewService(googleIntegrator, caches.ManagerLinks, cfg.GoogleAds.ManagerCustomerID)
	pipeline := campaignbuilding.NewPipeline(googleIntegrator, linkService, cfg.GoogleAds.ManagerCustomerID, cfg.CampaignBuild)

	linkedinIntegrator := linkedin.New(linkedinclient.NewClient(cfg.LinkedIn, transport.NewClient(domain.PlatformLinkedIn, cfg.Adapter)))
	metaIntegrator := meta.New(metaclient.NewClient(cfg.Meta, transport.NewClient(domain.PlatformMeta, cfg.Adapter)))
	taboolaIntegrator := taboola.New(taboolaclient.NewClient(cfg.Taboola, transport.NewClient(domain.PlatformTaboola, cfg.Adapter)))
	outbrainIntegrator := outbrain.New(outbrainclient.NewClient(cfg.Outbrain, transport.NewClient(domain.PlatformOutbrain, cfg.Adapter)))

	advertisingService := advertising.NewService(
		cfg,
		vault,
		caches,
		googleIntegrator,
		linkedinIntegrator,
		metaIntegrator,
		taboolaIntegrator,
		outbrainIntegrator,
	).
		WithHistory(historyRepo).
		WithGoogleAds(googleIntegrator, linkService, pipeline)

	analyticsCleanupService := scheduler.NewAnalyticsCleanupService(historyRepo, cfg.AnalyticsCleanup)
	if err := analyticsCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de analytics")
	} else {
		logrus.Info("Agendador de limpeza de analytics iniciado com sucesso")
	}

	services := handler.Services{
		Advertising: advertisingService,
		OAuth:       oauthClient,
		Cron:        handler.CronJobServices{AnalyticsCleanup: analyticsCleanupService},
	}

	server := api.New(cfg, services, api.WithShutdownHook(cancel))

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
