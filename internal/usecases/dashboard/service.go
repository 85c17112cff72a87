package dashboard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type DashboardService interface {
	ListTransactions(ctx context.Context, params ListParams) (*domain.TransactionsPage, error)
	GetMonthlyStatistics(ctx context.Context, month, year string) ([]domain.CategoryStatistic, error)
	GetBarChart(ctx context.Context) ([]domain.MonthBar, error)
	GetPieChart(ctx context.Context) ([]domain.CategoryTotal, error)
	GetCombinedData(ctx context.Context, month, year string) (*domain.CombinedReport, error)
}

type Service struct {
	transactionRepository repository.TransactionRepository
	now                   func() time.Time
}

func NewService(transactionRepository repository.TransactionRepository) DashboardService {
	return &Service{
		transactionRepository: transactionRepository,
		now:                   time.Now,
	}
}

func queryFailed(operation string, err error) error {
	logrus.WithError(err).WithField("operation", operation).Error("Falha ao consultar transações")
	return NewDashboardError(ErrQueryFailed, apiErrors.ErrDatabaseOperation, err.Error())
}

// ListTransactions retorna uma página das transações filtradas e o total de
// registros que atendem ao filtro, independente da paginação
func (s *Service) ListTransactions(ctx context.Context, params ListParams) (*domain.TransactionsPage, error) {
	filter, err := buildListFilter(params, s.now())
	if err != nil {
		return nil, err
	}
	page := buildPagination(params)

	var (
		transactions []*domain.Transaction
		total        int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepository.List(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.transactionRepository.Count(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, queryFailed("list", err)
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	return &domain.TransactionsPage{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// GetMonthlyStatistics conta as transações de cada categoria no mês informado
func (s *Service) GetMonthlyStatistics(ctx context.Context, month, year string) ([]domain.CategoryStatistic, error) {
	y, m, err := parsePeriod(month, year)
	if err != nil {
		return nil, err
	}

	groups, err := s.transactionRepository.CountGrouped(ctx, domain.Aggregation{
		Filter:  domain.TransactionFilter{}.WithDateRange(domain.MonthRange(y, m)),
		GroupBy: domain.GroupByCategory,
	})
	if err != nil {
		return nil, queryFailed("statistics", err)
	}

	return toCategoryStatistics(groups), nil
}

// GetBarChart conta as transações por mês do calendário, em toda a base
func (s *Service) GetBarChart(ctx context.Context) ([]domain.MonthBar, error) {
	groups, err := s.transactionRepository.CountGrouped(ctx, domain.Aggregation{
		GroupBy: domain.GroupByMonth,
	})
	if err != nil {
		return nil, queryFailed("bar-chart", err)
	}

	bars := make([]domain.MonthBar, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, domain.MonthBar{Month: g.Bucket, TotalSales: g.Count})
	}

	return bars, nil
}

// GetPieChart conta as transações por categoria, em toda a base
func (s *Service) GetPieChart(ctx context.Context) ([]domain.CategoryTotal, error) {
	groups, err := s.transactionRepository.CountGrouped(ctx, domain.Aggregation{
		GroupBy: domain.GroupByCategory,
	})
	if err != nil {
		return nil, queryFailed("pie-chart", err)
	}

	pie := make([]domain.CategoryTotal, 0, len(groups))
	for _, g := range groups {
		pie = append(pie, domain.CategoryTotal{Category: g.Category, Total: g.Count})
	}

	return pie, nil
}

// GetCombinedData executa as três agregações do mês em paralelo.
// O intervalo vai do primeiro instante do mês ao último instante do último dia.
func (s *Service) GetCombinedData(ctx context.Context, month, year string) (*domain.CombinedReport, error) {
	y, m, err := parsePeriod(month, year)
	if err != nil {
		return nil, err
	}

	filter := domain.TransactionFilter{}.WithDateRange(domain.CalendarMonthRange(y, m))

	var (
		categories []domain.GroupCount
		days       []domain.GroupCount
		totals     *domain.TotalStatistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.transactionRepository.CountGrouped(gctx, domain.Aggregation{
			Filter:  filter,
			GroupBy: domain.GroupByCategory,
		})
		return err
	})
	g.Go(func() error {
		var err error
		days, err = s.transactionRepository.CountGrouped(gctx, domain.Aggregation{
			Filter:  filter,
			GroupBy: domain.GroupByDay,
		})
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.transactionRepository.Totals(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, queryFailed("combined-data", err)
	}

	report := &domain.CombinedReport{
		PieChartData: toCategoryStatistics(categories),
		BarChartData: make([]domain.DayBar, 0, len(days)),
	}
	for _, d := range days {
		report.BarChartData = append(report.BarChartData, domain.DayBar{Day: d.Bucket, TotalSales: d.Count})
	}
	if totals != nil {
		report.TotalStatistics = *totals
	}

	return report, nil
}

func toCategoryStatistics(groups []domain.GroupCount) []domain.CategoryStatistic {
	statistics := make([]domain.CategoryStatistic, 0, len(groups))
	for _, g := range groups {
		statistics = append(statistics, domain.CategoryStatistic{Category: g.Category, TotalSales: g.Count})
	}
	return statistics
}
