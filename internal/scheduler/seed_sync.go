package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
)

// SeedSyncConfig representa a configuração da recarga periódica
type SeedSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// SeedSyncService agenda a recarga periódica da base a partir da fonte externa
type SeedSyncService struct {
	scheduler   *gocron.Scheduler
	config      SeedSyncConfig
	seeder      seeding.Seeder
	baseCtx     context.Context
	syncRunning bool
	syncMutex   sync.Mutex
}

func NewSeedSyncService(seeder seeding.Seeder, appConfig *config.Config) *SeedSyncService {
	syncConfig := SeedSyncConfig{
		CronSchedule: appConfig.SeedSync.CronSchedule,
		SyncEnabled:  appConfig.SeedSync.Enabled,
		// Margem sobre o timeout HTTP para a gravação na base
		Timeout: 2 * appConfig.Seed.Timeout(),
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga carregada")

	return &SeedSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		seeder:    seeder,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *SeedSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Recarga periódica desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncSeed)
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SeedSyncService) syncSeed() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(s.baseCtx, s.config.Timeout)
	defer cancel()

	result, err := s.seeder.Seed(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na recarga agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"count":  result.Count,
	}).Info("Recarga agendada concluída")
}

// TriggerManualSync inicia manualmente uma recarga em segundo plano
func (s *SeedSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual")
	go s.syncSeed()
}

// GetStatus retorna o status da última carga e a configuração do agendamento
func (s *SeedSyncService) GetStatus() domain.SeedSyncStatus {
	return domain.SeedSyncStatus{
		SeedStatus: s.seeder.Status(),
		Cron:       s.config.CronSchedule,
		Enabled:    s.config.SyncEnabled,
	}
}
