package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/repository"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/metrics"
)

// AnalyticsCleanupService apaga periodicamente os snapshots de analytics fora da retenção
type AnalyticsCleanupService struct {
	scheduler    *gocron.Scheduler
	config       config.AnalyticsCleanup
	historyRepo  repository.AnalyticsHistoryRepository
	running      bool
	mutex        sync.Mutex
	lastStarted  time.Time
	lastFinished time.Time
	lastDeleted  int64
	lastError    string
}

func NewAnalyticsCleanupService(historyRepo repository.AnalyticsHistoryRepository, cfg config.AnalyticsCleanup) *AnalyticsCleanupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.CronSchedule,
		"retention_days": cfg.RetentionDays,
		"enabled":        cfg.Enabled,
	}).Info("Configuração da limpeza de analytics carregada")

	return &AnalyticsCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		historyRepo: historyRepo,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto termina
func (s *AnalyticsCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de analytics desabilitada por configuração")
		return nil
	}
	if s.config.RetentionDays <= 0 {
		return fmt.Errorf("retenção de analytics inválida: %d dias", s.config.RetentionDays)
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de analytics: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Agendador de limpeza de analytics iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// tryStart marca a execução como em andamento; falso se já houver uma
func (s *AnalyticsCleanupService) tryStart() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStarted = time.Now()
	return true
}

func (s *AnalyticsCleanupService) finish(deleted int64, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	s.lastFinished = time.Now()
	s.lastDeleted = deleted
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *AnalyticsCleanupService) cleanup(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Limpeza de analytics já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

func (s *AnalyticsCleanupService) run(ctx context.Context) {
	deleted, err := s.historyRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	s.finish(deleted, err)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"retention_days": s.config.RetentionDays,
			"error":          err.Error(),
		}).Error("Erro na limpeza de analytics")
		return
	}

	metrics.AnalyticsHistoryDeleted.Add(float64(deleted))
	logrus.WithFields(logrus.Fields{
		"retention_days": s.config.RetentionDays,
		"deleted":        deleted,
	}).Info("Limpeza de analytics concluída")
}

// TriggerManualSync dispara a limpeza fora do agendamento; retorna falso se já houver uma em andamento
func (s *AnalyticsCleanupService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Limpeza de analytics já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual de analytics")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"running":               s.running,
		"last_run_started_at":   s.lastStarted,
		"last_run_completed_at": s.lastFinished,
		"last_run_deleted":      s.lastDeleted,
		"last_run_error":        s.lastError,
	}
}
