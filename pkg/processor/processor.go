package processor

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/common"
)

type Config struct {
	Fetcher         Fetcher
	Registry        Registry
	Repo            Repo
	NotificationSvc NotificationSvc
	Printer         Printer
	BodyDump        BodyDump

	Query  string
	ChatID int64
}

type Processor struct {
	cfg *Config
}

func NewProcessor(
	cfg *Config,
) *Processor {
	return &Processor{
		cfg: cfg,
	}
}

// Run executes one full import cycle: list matching messages, download
// them, route each to its extractor and persist the results. A failure on
// a single email is recorded in the summary and does not stop the batch.
func (p *Processor) Run(ctx context.Context) (*RunSummary, error) {
	ids, err := p.cfg.Fetcher.ListMessageIDs(ctx, p.cfg.Query)
	if err != nil {
		return nil, err
	}

	emails, err := p.cfg.Fetcher.FetchEmails(ctx, ids)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		Fetched: len(emails),
	}

	for _, email := range emails {
		if p.cfg.BodyDump != nil {
			if dumpErr := p.cfg.BodyDump.Save(ctx, email); dumpErr != nil {
				zerolog.Ctx(ctx).Warn().Err(dumpErr).
					Str("message_id", email.ID).
					Msg("failed to dump email body")
			}
		}

		extractor := p.cfg.Registry.ForSender(email.From)
		if extractor == nil {
			zerolog.Ctx(ctx).Warn().
				Str("from", email.From).
				Str("message_id", email.ID).
				Msg("no extractor for sender")

			summary.Unmatched += 1

			continue
		}

		tx, parseErr := extractor.Parse(ctx, email)
		if parseErr != nil {
			zerolog.Ctx(ctx).Error().Err(parseErr).
				Str("message_id", email.ID).
				Msg("failed to parse email")

			zerolog.Ctx(ctx).Debug().
				Str("message_id", email.ID).
				Msg(spew.Sdump(email))

			summary.Errors = append(summary.Errors,
				errors.Wrapf(parseErr, "message %s", email.ID))

			continue
		}

		if tx == nil {
			summary.Skipped += 1

			continue
		}

		if _, saveErr := p.cfg.Repo.SaveTransaction(ctx, tx); saveErr != nil {
			if errors.Is(saveErr, common.ErrDuplicate) {
				summary.Duplicates += 1

				continue
			}

			zerolog.Ctx(ctx).Error().Err(saveErr).
				Str("message_id", email.ID).
				Msg("failed to save transaction")

			summary.Errors = append(summary.Errors,
				errors.Wrapf(saveErr, "message %s", email.ID))

			continue
		}

		summary.Imported = append(summary.Imported, tx)
	}

	p.notify(ctx, summary)

	return summary, nil
}

func (p *Processor) notify(ctx context.Context, summary *RunSummary) {
	if p.cfg.NotificationSvc == nil || p.cfg.Printer == nil {
		return
	}

	text := p.cfg.Printer.RunSummary(ctx, summary)

	if err := p.cfg.NotificationSvc.SendMessage(ctx, p.cfg.ChatID, text); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send run summary")
	}
}
