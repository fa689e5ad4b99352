package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier/trierclient"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/api"
	"github.com/vfg2006/sgf-sync-api/internal/config"
	"github.com/vfg2006/sgf-sync-api/internal/scheduler"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/enriching"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/sgf-sync-api/pkg/log"
)

func main() {
	log.Setup()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	purchasesRepo := repository.NewPurchasesRepository(pgConn)
	productsRepo := repository.NewProductsRepository(pgConn)
	sellersRepo := repository.NewSellersRepository(pgConn)
	suppliersRepo := repository.NewSuppliersRepository(pgConn)
	factsRepo := repository.NewFactsRepository(pgConn)
	checkpointRepo := repository.NewCheckpointRepository(pgConn)

	trierClient := trierclient.NewClient(cfg.Trier)
	trierIntegrator := trier.NewIntegrator(trierClient)

	enricher := enriching.NewService(salesRepo, sellersRepo, productsRepo, factsRepo)

	backfillService := syncing.NewBackfillService(
		cfg.Sync,
		trierIntegrator,
		salesRepo,
		purchasesRepo,
		checkpointRepo,
	)

	incrementalService := syncing.NewIncrementalService(
		trierIntegrator,
		salesRepo,
		purchasesRepo,
		productsRepo,
		sellersRepo,
		suppliersRepo,
	)

	bootstrapService := syncing.NewBootstrapService(
		trierIntegrator,
		backfillService,
		incrementalService,
		enricher,
		salesRepo,
		purchasesRepo,
		productsRepo,
		sellersRepo,
		suppliersRepo,
	)

	reportingService := reporting.NewService(
		cfg.Reporting,
		factsRepo,
		purchasesRepo,
		productsRepo,
		sellersRepo,
		suppliersRepo,
	)

	sched := scheduler.New(
		cfg.Sync.PollInterval,
		scheduler.DefaultTasks(cfg.Sync, incrementalService, enricher)...,
	)

	// Carga inicial e ciclo contínuo na mesma goroutine: o agendador só
	// entra em ação depois que as cargas pendentes terminam.
	go func() {
		if err := bootstrapService.InitialLoad(ctx); err != nil {
			logrus.WithError(err).Error("Erro na carga inicial de dados")
		}
		sched.Start(ctx)
	}()

	server, err := api.New(cfg, reportingService, sched)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
