package seeding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const SuccessMessage = "Database initialized successfully!"

type Seeder interface {
	Seed(ctx context.Context) (*domain.SeedResult, error)
	Status() domain.SeedStatus
}

type Service struct {
	productFeed           productfeed.ProductFeedIntegrator
	transactionRepository repository.TransactionRepository

	// seedMutex serializa as cargas; statusMutex protege os campos abaixo
	seedMutex     sync.Mutex
	statusMutex   sync.RWMutex
	running       bool
	lastStartedAt time.Time
	lastResult    *domain.SeedResult
	lastErr       error

	generateID func() (string, error)
	now        func() time.Time
}

func NewService(
	productFeed productfeed.ProductFeedIntegrator,
	transactionRepository repository.TransactionRepository,
) *Service {
	return &Service{
		productFeed:           productFeed,
		transactionRepository: transactionRepository,
		generateID:            utils.GenerateID,
		now:                   time.Now,
	}
}

// Seed substitui todo o conteúdo da base pelos registros da fonte externa.
// Chamadas concorrentes aguardam a carga em andamento e então executam a sua.
func (s *Service) Seed(ctx context.Context) (*domain.SeedResult, error) {
	s.seedMutex.Lock()
	defer s.seedMutex.Unlock()

	runID, err := s.generateID()
	if err != nil {
		return nil, NewSeedError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	startedAt := s.now().UTC()
	s.markStarted(startedAt)

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando carga de transações")

	result, err := s.run(ctx, runID, startedAt)
	s.markFinished(result, err)

	if err != nil {
		logger.WithError(err).Error("Falha na carga de transações")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"count":       result.Count,
		"duration_ms": result.CompletedAt.Sub(result.StartedAt).Milliseconds(),
	}).Info("Carga de transações concluída")

	return result, nil
}

func (s *Service) run(ctx context.Context, runID string, startedAt time.Time) (*domain.SeedResult, error) {
	transactions, err := s.productFeed.FetchTransactions(ctx)
	if err != nil {
		return nil, NewSeedError(ErrSeedFetch, apiErrors.ErrExternalService, runID, err.Error())
	}

	if err := s.transactionRepository.ReplaceAll(ctx, transactions); err != nil {
		return nil, NewSeedError(ErrSeedStore, apiErrors.ErrDatabaseOperation, runID, err.Error())
	}

	return &domain.SeedResult{
		RunID:       runID,
		Count:       len(transactions),
		StartedAt:   startedAt,
		CompletedAt: s.now().UTC(),
	}, nil
}

func (s *Service) markStarted(startedAt time.Time) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.running = true
	s.lastStartedAt = startedAt
}

func (s *Service) markFinished(result *domain.SeedResult, err error) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	s.running = false
	s.lastErr = err
	if result != nil {
		s.lastResult = result
	}
}

// Status retorna o estado atual e o resultado da última carga bem-sucedida
func (s *Service) Status() domain.SeedStatus {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	status := domain.SeedStatus{
		Running: s.running,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}

	if s.lastResult != nil {
		completedAt := s.lastResult.CompletedAt
		status.LastRunID = s.lastResult.RunID
		status.LastCount = s.lastResult.Count
		status.LastCompletedAt = &completedAt
	}

	// Apenas a mensagem pública do erro; a causa interna fica nos logs
	var seedErr *SeedError
	if errors.As(s.lastErr, &seedErr) {
		status.LastError = seedErr.Err.Error()
	}

	return status
}
