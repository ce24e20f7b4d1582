package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gastos-dev/bankmail-importer/pkg/gmail"
	"github.com/gastos-dev/bankmail-importer/pkg/notifications"
	"github.com/gastos-dev/bankmail-importer/pkg/parser"
	"github.com/gastos-dev/bankmail-importer/pkg/printer"
	"github.com/gastos-dev/bankmail-importer/pkg/processor"
	"github.com/gastos-dev/bankmail-importer/pkg/repo"
)

var apiKey string

func main() {
	ctx := log.Logger.WithContext(context.Background())

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	apiKey = cfg.ApiKey

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

	r := mux.NewRouter()

	handle := NewHandler(processor.NewProcessor(processorCfg))
	r.Handle("/api/import", handle).Methods(http.MethodPost)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	panic(srv.ListenAndServe())
}
