package main

type Config struct {
	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING,required"`

	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
	GoogleTokenFile       string `env:"GOOGLE_TOKEN_FILE" envDefault:"token.json"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	EmailDumpDir string `env:"EMAIL_DUMP_DIR"`

	ExportFile string `env:"EXPORT_FILE"`
	ExportDays int    `env:"EXPORT_DAYS" envDefault:"30"`
}
