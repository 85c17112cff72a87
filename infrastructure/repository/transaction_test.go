package repository

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

const selectColumns = "SELECT id, title, description, price, category, sold, image, date_of_sale FROM transactions"

func newMockRepository(t *testing.T) (TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTransactionRepository(&postgres.Connection{DB: db}), mock
}

func TestBuildListQuery(t *testing.T) {
	february := domain.MonthRange(2022, time.February)

	tests := []struct {
		name     string
		filter   domain.TransactionFilter
		page     domain.Pagination
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "sem filtros",
			filter:   domain.TransactionFilter{},
			page:     domain.Pagination{Page: 2, PerPage: 10},
			wantSQL:  selectColumns + " ORDER BY seq ASC LIMIT 10 OFFSET 10",
			wantArgs: nil,
		},
		{
			name:     "intervalo mensal semiaberto com busca",
			filter:   domain.TransactionFilter{}.WithDateRange(february).WithTitleSearch("Shirt"),
			page:     domain.Pagination{Page: 1, PerPage: 5},
			wantSQL:  selectColumns + " WHERE date_of_sale >= $1 AND date_of_sale < $2 AND title ILIKE $3 ORDER BY seq ASC LIMIT 5 OFFSET 0",
			wantArgs: []interface{}{february.From, february.To, "%Shirt%"},
		},
		{
			name:     "intervalo anual inclusivo",
			filter:   domain.TransactionFilter{}.WithDateRange(domain.YearRange(2022)),
			page:     domain.Pagination{Page: 1, PerPage: 10},
			wantSQL:  selectColumns + " WHERE date_of_sale >= $1 AND date_of_sale <= $2 ORDER BY seq ASC LIMIT 10 OFFSET 0",
			wantArgs: []interface{}{domain.YearRange(2022).From, domain.YearRange(2022).To},
		},
		{
			name:     "página enorme não estoura o offset",
			filter:   domain.TransactionFilter{},
			page:     domain.Pagination{Page: math.MaxInt, PerPage: 10},
			wantSQL:  selectColumns + " ORDER BY seq ASC LIMIT 10 OFFSET 9223372036854775807",
			wantArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(tt.filter, tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListQuery_EscapesLikeWildcards(t *testing.T) {
	_, args, err := buildListQuery(
		domain.TransactionFilter{}.WithTitleSearch(`50%_off\`),
		domain.Pagination{Page: 1, PerPage: 10},
	)

	require.NoError(t, err)
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}

func TestBuildGroupedQuery(t *testing.T) {
	tests := []struct {
		name    string
		groupBy domain.GroupKey
		wantSQL string
	}{
		{
			name:    "categoria",
			groupBy: domain.GroupByCategory,
			wantSQL: "SELECT category AS group_key, COUNT(*) AS total FROM transactions GROUP BY group_key ORDER BY group_key ASC",
		},
		{
			name:    "mês",
			groupBy: domain.GroupByMonth,
			wantSQL: "SELECT EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC')::int AS group_key, COUNT(*) AS total FROM transactions GROUP BY group_key ORDER BY group_key ASC",
		},
		{
			name:    "dia",
			groupBy: domain.GroupByDay,
			wantSQL: "SELECT EXTRACT(DAY FROM date_of_sale AT TIME ZONE 'UTC')::int AS group_key, COUNT(*) AS total FROM transactions GROUP BY group_key ORDER BY group_key ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGroupedQuery(domain.Aggregation{GroupBy: tt.groupBy})

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Empty(t, args)
		})
	}

	t.Run("chave inválida", func(t *testing.T) {
		_, _, err := buildGroupedQuery(domain.Aggregation{GroupBy: "weekday"})
		assert.Error(t, err)
	})
}

func TestBuildGroupedQuery_WithFilter(t *testing.T) {
	december := domain.MonthRange(2022, time.December)

	query, args, err := buildGroupedQuery(domain.Aggregation{
		Filter:  domain.TransactionFilter{}.WithDateRange(december),
		GroupBy: domain.GroupByCategory,
	})

	require.NoError(t, err)
	assert.Equal(t, "SELECT category AS group_key, COUNT(*) AS total FROM transactions WHERE date_of_sale >= $1 AND date_of_sale < $2 GROUP BY group_key ORDER BY group_key ASC", query)
	assert.Equal(t, []interface{}{
		time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, args)
}

func TestBuildTotalsQuery(t *testing.T) {
	query, _, err := buildTotalsQuery(domain.TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, "SELECT COALESCE(SUM(price), 0), COUNT(*) FROM transactions", query)
}

func TestTransactionRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)
	soldAt := time.Date(2022, 2, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectColumns)).
		WithArgs("%shirt%").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(int64(1), "Slim Shirt", "cotton", "10.50", "men's clothing", true, "http://img/1.jpg", soldAt))

	transactions, err := repo.List(
		context.Background(),
		domain.TransactionFilter{}.WithTitleSearch("shirt"),
		domain.Pagination{Page: 1, PerPage: 10},
	)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, "Slim Shirt", transactions[0].Title)
	assert.True(t, transactions[0].Price.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, soldAt, transactions[0].DateOfSale)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_List_LargePerPage(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectColumns)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	transactions, err := repo.List(
		context.Background(),
		domain.TransactionFilter{},
		domain.Pagination{Page: 1, PerPage: 2305843009213693952},
	)

	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_List_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectColumns)).WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background(), domain.TransactionFilter{}, domain.Pagination{Page: 1, PerPage: 10})

	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Count(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(60)))

	total, err := repo.Count(context.Background(), domain.TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(60), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_CountGrouped(t *testing.T) {
	t.Run("por categoria", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT category AS group_key")).
			WillReturnRows(sqlmock.NewRows([]string{"group_key", "total"}).
				AddRow("A", int64(2)).
				AddRow("B", int64(1)))

		groups, err := repo.CountGrouped(context.Background(), domain.Aggregation{GroupBy: domain.GroupByCategory})

		require.NoError(t, err)
		assert.Equal(t, []domain.GroupCount{
			{Category: "A", Count: 2},
			{Category: "B", Count: 1},
		}, groups)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("por mês", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXTRACT(MONTH FROM date_of_sale")).
			WillReturnRows(sqlmock.NewRows([]string{"group_key", "total"}).
				AddRow(int64(2), int64(2)).
				AddRow(int64(3), int64(1)))

		groups, err := repo.CountGrouped(context.Background(), domain.Aggregation{GroupBy: domain.GroupByMonth})

		require.NoError(t, err)
		assert.Equal(t, []domain.GroupCount{
			{Bucket: 2, Count: 2},
			{Bucket: 3, Count: 1},
		}, groups)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tabela vazia retorna lista vazia", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT category AS group_key")).
			WillReturnRows(sqlmock.NewRows([]string{"group_key", "total"}))

		groups, err := repo.CountGrouped(context.Background(), domain.Aggregation{GroupBy: domain.GroupByCategory})

		require.NoError(t, err)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

func TestTransactionRepository_Totals(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(price), 0), COUNT(*) FROM transactions")).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce", "count"}).AddRow("30.00", int64(2)))

	totals, err := repo.Totals(context.Background(), domain.TransactionFilter{})

	require.NoError(t, err)
	assert.True(t, totals.TotalSales.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, int64(2), totals.TotalProducts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ReplaceAll(t *testing.T) {
	soldAt := time.Date(2022, 2, 5, 10, 0, 0, 0, time.UTC)
	transactions := []*domain.Transaction{
		{ID: 1, Title: "A", Price: decimal.NewFromInt(10), Category: "x", DateOfSale: soldAt},
		{ID: 2, Title: "B", Price: decimal.NewFromInt(20), Category: "y", DateOfSale: soldAt},
	}

	t.Run("sucesso apaga e insere dentro da mesma transação", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions")).
			WillReturnResult(sqlmock.NewResult(0, 5))
		prepared := mock.ExpectPrepare(regexp.QuoteMeta(`COPY "transactions"`))
		prepared.ExpectExec().
			WithArgs(int64(1), "A", "", "10", "x", false, "", soldAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prepared.ExpectExec().
			WithArgs(int64(2), "B", "", "20", "y", false, "", soldAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		prepared.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.ReplaceAll(context.Background(), transactions)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha na inserção desfaz a limpeza", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions")).
			WillReturnResult(sqlmock.NewResult(0, 5))
		prepared := mock.ExpectPrepare(regexp.QuoteMeta(`COPY "transactions"`))
		prepared.ExpectExec().WillReturnError(errors.New("duplicate key value"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), transactions)

		assert.ErrorContains(t, err, "duplicate key value")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha na limpeza não insere nada", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions")).
			WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), transactions)

		assert.ErrorContains(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
