package main

type Config struct {
	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING,required"`

	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
	GoogleTokenFile       string `env:"GOOGLE_TOKEN_FILE" envDefault:"token.json"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	EmailDumpDir string `env:"EMAIL_DUMP_DIR"`

	ApiKey string `env:"API_KEY,required"`
}

type ImportResponse struct {
	Fetched    int      `json:"fetched"`
	Imported   int      `json:"imported"`
	Duplicates int      `json:"duplicates"`
	Skipped    int      `json:"skipped"`
	Unmatched  int      `json:"unmatched"`
	Errors     []string `json:"errors"`
}
