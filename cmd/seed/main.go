// Comando seed executa uma carga completa da base e imprime a
// distribuição de categorias resultante
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed/productfeedclient"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if err := run(); err != nil {
		logrus.WithError(err).Error("Falha na carga")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Seed.Timeout())
	defer cancel()

	if err := postgres.EnsureSchema(cfg.Database.DSN); err != nil {
		return err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	transactionRepo := repository.NewTransactionRepository(conn)
	seeder := seeding.NewService(
		productfeed.New(productfeedclient.NewClient(cfg.Seed)),
		transactionRepo,
	)

	result, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}

	pie, err := dashboard.NewService(transactionRepo).GetPieChart(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (run %s)\n\n", seeding.SuccessMessage, result.RunID)
	renderCategories(os.Stdout, pie, result.Count)

	return nil
}

// renderCategories imprime a quantidade de transações por categoria
func renderCategories(w io.Writer, pie []domain.CategoryTotal, total int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Categoria", "Transações"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, slice := range pie {
		table.Append([]string{slice.Category, strconv.FormatInt(slice.Total, 10)})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total)})

	table.Render()
}
