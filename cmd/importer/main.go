package main

import (
	"context"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/imroc/req/v3"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gastos-dev/bankmail-importer/pkg/export"
	"github.com/gastos-dev/bankmail-importer/pkg/gmail"
	"github.com/gastos-dev/bankmail-importer/pkg/notifications"
	"github.com/gastos-dev/bankmail-importer/pkg/parser"
	"github.com/gastos-dev/bankmail-importer/pkg/printer"
	"github.com/gastos-dev/bankmail-importer/pkg/processor"
	"github.com/gastos-dev/bankmail-importer/pkg/repo"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	if err = repo.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewPostgres(db)

	httpClient, err := googleClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build google client")
	}

	fetcher, err := gmail.NewFetcher(ctx, httpClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gmail fetcher")
	}

	processorCfg := &processor.Config{
		Fetcher:  fetcher,
		Registry: parser.NewRegistry(),
		Repo:     dataRepo,
		Query:    gmail.BuildQuery(),
	}

	if cfg.EmailDumpDir != "" {
		processorCfg.BodyDump = gmail.NewBodyDump(cfg.EmailDumpDir)
	}

	if cfg.TelegramBotToken != "" {
		processorCfg.NotificationSvc = notifications.NewTelegram(
			cfg.TelegramBotToken,
			req.DefaultClient(),
		)
		processorCfg.Printer = printer.NewPrinter()
		processorCfg.ChatID = cfg.TelegramChatID
	}

	summary, err := processor.NewProcessor(processorCfg).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("import run failed")
	}

	log.Info().
		Int("fetched", summary.Fetched).
		Int("imported", len(summary.Imported)).
		Int("duplicates", summary.Duplicates).
		Int("skipped", summary.Skipped).
		Int("unmatched", summary.Unmatched).
		Int("errors", len(summary.Errors)).
		Msg("import run finished")

	if cfg.ExportFile != "" {
		to := time.Now().UTC()
		from := to.AddDate(0, 0, -cfg.ExportDays)

		report, exportErr := export.NewExporter(dataRepo).Report(ctx, from, to)
		if exportErr != nil {
			log.Fatal().Err(exportErr).Msg("failed to build report")
		}

		if exportErr = os.WriteFile(cfg.ExportFile, report, 0o644); exportErr != nil {
			log.Fatal().Err(exportErr).Msg("failed to write report")
		}

		log.Info().Str("file", cfg.ExportFile).Msg("report written")
	}
}
