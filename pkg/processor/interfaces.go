package processor

import (
	"context"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
	"github.com/gastos-dev/bankmail-importer/pkg/parser"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Fetcher interface {
	ListMessageIDs(ctx context.Context, query string) ([]string, error)
	FetchEmails(ctx context.Context, ids []string) ([]*database.Email, error)
}

type Registry interface {
	ForSender(from string) parser.Extractor
}

type Repo interface {
	SaveTransaction(ctx context.Context, tx *database.Transaction) (string, error)
}

type NotificationSvc interface {
	SendMessage(
		ctx context.Context,
		chatID int64,
		text string,
	) error
}

type Printer interface {
	RunSummary(ctx context.Context, summary *RunSummary) string
}

type BodyDump interface {
	Save(ctx context.Context, email *database.Email) error
}
