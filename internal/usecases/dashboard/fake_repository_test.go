package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

// memoryRepository aplica os mesmos filtros e agrupamentos do repositório
// Postgres sobre uma lista em memória
type memoryRepository struct {
	transactions []*domain.Transaction
}

func (r *memoryRepository) matches(filter domain.TransactionFilter) []*domain.Transaction {
	result := make([]*domain.Transaction, 0)
	for _, t := range r.transactions {
		if filter.DateRange != nil && !filter.DateRange.Contains(t.DateOfSale) {
			continue
		}
		if filter.TitleSearch != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.TitleSearch)) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (r *memoryRepository) List(_ context.Context, filter domain.TransactionFilter, page domain.Pagination) ([]*domain.Transaction, error) {
	matched := r.matches(filter)
	if page.Offset() >= uint64(len(matched)) {
		return []*domain.Transaction{}, nil
	}
	start := int(page.Offset())
	end := start + page.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *memoryRepository) Count(_ context.Context, filter domain.TransactionFilter) (int64, error) {
	return int64(len(r.matches(filter))), nil
}

func (r *memoryRepository) CountGrouped(_ context.Context, aggregation domain.Aggregation) ([]domain.GroupCount, error) {
	byCategory := map[string]int64{}
	byBucket := map[int]int64{}

	for _, t := range r.matches(aggregation.Filter) {
		switch aggregation.GroupBy {
		case domain.GroupByCategory:
			byCategory[t.Category]++
		case domain.GroupByMonth:
			byBucket[int(t.DateOfSale.UTC().Month())]++
		case domain.GroupByDay:
			byBucket[t.DateOfSale.UTC().Day()]++
		}
	}

	groups := make([]domain.GroupCount, 0)
	for category, count := range byCategory {
		groups = append(groups, domain.GroupCount{Category: category, Count: count})
	}
	for bucket, count := range byBucket {
		groups = append(groups, domain.GroupCount{Bucket: bucket, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Category != groups[j].Category {
			return groups[i].Category < groups[j].Category
		}
		return groups[i].Bucket < groups[j].Bucket
	})

	return groups, nil
}

func (r *memoryRepository) Totals(_ context.Context, filter domain.TransactionFilter) (*domain.TotalStatistics, error) {
	totals := &domain.TotalStatistics{TotalSales: decimal.Zero}
	for _, t := range r.matches(filter) {
		totals.TotalSales = totals.TotalSales.Add(t.Price)
		totals.TotalProducts++
	}
	return totals, nil
}

func (r *memoryRepository) ReplaceAll(_ context.Context, transactions []*domain.Transaction) error {
	r.transactions = transactions
	return nil
}
