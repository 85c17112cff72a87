package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/productfeed/productfeedclient"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/api"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := postgres.EnsureSchema(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o schema do banco de dados")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	transactionRepo := repository.NewTransactionRepository(pgConn)

	productFeedClient := productfeedclient.NewClient(cfg.Seed)
	productFeedIntegrator := productfeed.New(productFeedClient)

	dashboardService := dashboard.NewService(transactionRepo)
	seedService := seeding.NewService(productFeedIntegrator, transactionRepo)

	seedSyncService := scheduler.NewSeedSyncService(seedService, cfg)
	if err := seedSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga")
	} else {
		logrus.Info("Agendador de recarga iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, seedService, seedSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
