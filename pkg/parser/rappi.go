package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const (
	rappiCardPaymentSubject  = "Recibimos el pago de tu Rappicard"
	rappiCardCashbackSubject = "Recibimos el abono de tu Rappicard"

	rappiPaymentDescription = "Pago de Rappicard"
)

// Rappi extracts RappiCard payment confirmations, with or without a
// cashback mention. Both templates share the same extraction routine.
type Rappi struct {
	amountRe *regexp.Regexp
	dateRe   *regexp.Regexp
}

func NewRappi() *Rappi {
	return &Rappi{
		amountRe: regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{1,2})?)`),
		dateRe:   regexp.MustCompile(`(?i)(\d{1,2} [a-z]{3} \d{4})`),
	}
}

func (r *Rappi) Type() database.Bank {
	return database.Rappi
}

func (r *Rappi) Parse(
	ctx context.Context,
	email *database.Email,
) (*database.Transaction, error) {
	subject := DecodeSubject(email.Subject)

	if strings.Contains(subject, rappiCardPaymentSubject) ||
		strings.Contains(subject, rappiCardCashbackSubject) {
		return r.parseCardPayment(ctx, bodyPreferPlain(email), email.ID), nil
	}

	return nil, nil
}

func (r *Rappi) parseCardPayment(
	ctx context.Context,
	body string,
	emailID string,
) *database.Transaction {
	tx := newTransaction(database.Rappi, emailID, database.TransactionTypeExpense)
	tx.Description = rappiPaymentDescription

	if m := r.amountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	if m := r.dateRe.FindStringSubmatch(body); len(m) == 2 {
		rawDate := strings.ToLower(m[1]) // 15 ene 2026

		parsed, err := ParseSpanishDatetime(rawDate, "2 Jan 2006")
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("date", rawDate).
				Msg("failed to parse payment date")
		} else {
			tx.Date = &parsed
		}
	}

	return tx
}
