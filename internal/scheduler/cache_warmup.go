package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/usecases/loading"
)

// warmupTimeout limita cada execução do aquecimento
const warmupTimeout = 2 * time.Minute

// CacheRefresher é a parte do cache usada pelo aquecimento
type CacheRefresher interface {
	Refresh(ctx context.Context) (*loading.Snapshot, error)
}

// CacheWarmupConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CacheWarmupService recarrega o dataset periodicamente para que as requisições
// encontrem o cache sempre pronto
type CacheWarmupService struct {
	scheduler           *gocron.Scheduler
	config              CacheWarmupConfig
	cache               CacheRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

// NewCacheWarmupService cria uma nova instância do serviço de aquecimento do cache
func NewCacheWarmupService(cache CacheRefresher, appConfig *config.Config) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: appConfig.CacheWarmup.CronSchedule,
		SyncEnabled:  appConfig.CacheWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
	}).Info("Configuração do agendador de aquecimento do cache carregada")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		cache:     cache,
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento do cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// warmup recarrega o cache, ignorando a execução se outra ainda estiver em andamento
func (s *CacheWarmupService) warmup() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	snapshot, err := s.cache.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aquecer o cache do dataset")

		s.syncMutex.Lock()
		s.lastError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastVersion = snapshot.Version
	s.lastError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"version":  snapshot.Version,
		"records":  len(snapshot.Records),
	}).Info("Aquecimento do cache concluído")
}

// TriggerManualSync inicia manualmente um aquecimento. Retorna false se já houver um em andamento.
func (s *CacheWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do cache")
	go s.warmup()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   formatTimestamp(s.lastSyncStartedAt),
		"last_sync_completed_at": formatTimestamp(s.lastSyncCompletedAt),
		"last_version":           s.lastVersion,
		"last_error":             s.lastError,
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
