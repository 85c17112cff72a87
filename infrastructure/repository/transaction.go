// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

const (
	transactionsTable = "transactions"
	groupKeyColumn    = "group_key"
)

var transactionColumns = []string{
	"id",
	"title",
	"description",
	"price",
	"category",
	"sold",
	"image",
	"date_of_sale",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type TransactionRepository interface {
	List(ctx context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]*domain.Transaction, error)
	Count(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	CountGrouped(ctx context.Context, aggregation domain.Aggregation) ([]domain.GroupCount, error)
	Totals(ctx context.Context, filter domain.TransactionFilter) (*domain.TotalStatistics, error)
	ReplaceAll(ctx context.Context, transactions []*domain.Transaction) error
}

type transactionRepository struct {
	conn postgres.Conn
}

func NewTransactionRepository(conn postgres.Conn) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// applyFilter traduz os critérios do filtro para cláusulas WHERE
func applyFilter(builder squirrel.SelectBuilder, filter domain.TransactionFilter) squirrel.SelectBuilder {
	if filter.DateRange != nil {
		builder = builder.Where(squirrel.GtOrEq{"date_of_sale": filter.DateRange.From})
		if filter.DateRange.ToInclusive {
			builder = builder.Where(squirrel.LtOrEq{"date_of_sale": filter.DateRange.To})
		} else {
			builder = builder.Where(squirrel.Lt{"date_of_sale": filter.DateRange.To})
		}
	}

	if filter.TitleSearch != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + likeEscaper.Replace(filter.TitleSearch) + "%"})
	}

	return builder
}

// groupExpression retorna a expressão SQL de cada chave de agrupamento.
// Mês e dia são extraídos em UTC.
func groupExpression(key domain.GroupKey) (string, error) {
	switch key {
	case domain.GroupByCategory:
		return "category", nil
	case domain.GroupByMonth:
		return "EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC')::int", nil
	case domain.GroupByDay:
		return "EXTRACT(DAY FROM date_of_sale AT TIME ZONE 'UTC')::int", nil
	default:
		return "", fmt.Errorf("chave de agrupamento inválida: %q", key)
	}
}

func buildListQuery(filter domain.TransactionFilter, page domain.Pagination) (string, []interface{}, error) {
	builder := squirrel.
		Select(transactionColumns...).
		From(transactionsTable)

	return applyFilter(builder, filter).
		OrderBy("seq ASC").
		Limit(uint64(page.PerPage)).
		Offset(page.Offset()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildCountQuery(filter domain.TransactionFilter) (string, []interface{}, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(transactionsTable)

	return applyFilter(builder, filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildGroupedQuery(aggregation domain.Aggregation) (string, []interface{}, error) {
	expression, err := groupExpression(aggregation.GroupBy)
	if err != nil {
		return "", nil, err
	}

	builder := squirrel.
		Select(fmt.Sprintf("%s AS %s", expression, groupKeyColumn), "COUNT(*) AS total").
		From(transactionsTable)

	return applyFilter(builder, aggregation.Filter).
		GroupBy(groupKeyColumn).
		OrderBy(groupKeyColumn + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildTotalsQuery(filter domain.TransactionFilter) (string, []interface{}, error) {
	builder := squirrel.
		Select("COALESCE(SUM(price), 0)", "COUNT(*)").
		From(transactionsTable)

	return applyFilter(builder, filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *transactionRepository) List(ctx context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]*domain.Transaction, error) {
	query, args, err := buildListQuery(filter, page)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	query, args, err := buildCountQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

func (r *transactionRepository) CountGrouped(ctx context.Context, aggregation domain.Aggregation) ([]domain.GroupCount, error) {
	query, args, err := buildGroupedQuery(aggregation)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.GroupCount, 0)
	for rows.Next() {
		var group domain.GroupCount

		if aggregation.GroupBy == domain.GroupByCategory {
			err = rows.Scan(&group.Category, &group.Count)
		} else {
			err = rows.Scan(&group.Bucket, &group.Count)
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agrupamento: %w", err)
		}

		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *transactionRepository) Totals(ctx context.Context, filter domain.TransactionFilter) (*domain.TotalStatistics, error) {
	query, args, err := buildTotalsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.TotalStatistics{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.TotalSales, &totals.TotalProducts)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular totais: %w", err)
	}

	return totals, nil
}

// ReplaceAll apaga todas as transações e insere as novas em uma única
// transação do banco; qualquer falha mantém o conteúdo anterior
func (r *transactionRepository) ReplaceAll(ctx context.Context, transactions []*domain.Transaction) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(transactionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return wrapDatabaseError("erro ao limpar transações", err)
		}

		stmt, err := tx.PrepareContext(ctx, pq.CopyIn(transactionsTable, transactionColumns...))
		if err != nil {
			return wrapDatabaseError("erro ao preparar inserção em lote", err)
		}

		for _, t := range transactions {
			_, err := stmt.ExecContext(ctx,
				t.ID,
				t.Title,
				t.Description,
				t.Price,
				t.Category,
				t.Sold,
				t.Image,
				t.DateOfSale.UTC(),
			)
			if err != nil {
				stmt.Close()
				return wrapDatabaseError(fmt.Sprintf("erro ao inserir transação %d", t.ID), err)
			}
		}

		// Exec sem argumentos envia os dados pendentes do COPY
		if _, err := stmt.ExecContext(ctx); err != nil {
			stmt.Close()
			return wrapDatabaseError("erro ao finalizar inserção em lote", err)
		}

		return stmt.Close()
	})
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	err := rows.Scan(
		&transaction.ID,
		&transaction.Title,
		&transaction.Description,
		&transaction.Price,
		&transaction.Category,
		&transaction.Sold,
		&transaction.Image,
		&transaction.DateOfSale,
	)
	if err != nil {
		return nil, err
	}

	transaction.DateOfSale = transaction.DateOfSale.UTC()

	return transaction, nil
}

func wrapDatabaseError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (código: %s)", message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", message, err)
}
