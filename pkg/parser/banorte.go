package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const banorteSpeiOutgoingSubject = "Transferencia a Otros Bancos Nacionales - SPEI"

// Banorte extracts outgoing SPEI transfer notifications. The templates are
// rigid HTML tables, so every field is anchored to its label cell.
type Banorte struct {
	amountRe      *regexp.Regexp
	descriptionRe *regexp.Regexp
	timeRe        *regexp.Regexp
	dateRe        *regexp.Regexp
}

func NewBanorte() *Banorte {
	return &Banorte{
		amountRe: regexp.MustCompile(
			`Importe: </td>\s*<td nowrap="nowrap">\s*\$([\d,]+\.\d{2}) MN\s*</td>`),
		descriptionRe: regexp.MustCompile(
			`Operación: </td>\s*<td align="left" nowrap="nowrap">\s*(.*?)\s*</td>`),
		timeRe: regexp.MustCompile(
			`(?is)Hora de Operación: </td>\s*<td nowrap="nowrap">\s*(\d{2}:\d{2}:\d{2} horas)\s*</td>`),
		dateRe: regexp.MustCompile(
			`Fecha de Operación: </td>\s*<td nowrap="nowrap">\s*(\d{1,2}/[A-Za-z]{3}/\d{4})\s*</td>`),
	}
}

func (b *Banorte) Type() database.Bank {
	return database.Banorte
}

func (b *Banorte) Parse(
	ctx context.Context,
	email *database.Email,
) (*database.Transaction, error) {
	subject := DecodeSubject(email.Subject)

	if strings.Contains(subject, banorteSpeiOutgoingSubject) {
		return b.parseOutgoingTransfer(ctx, bodyPreferHTML(email), email.ID), nil
	}

	return nil, nil
}

func (b *Banorte) parseOutgoingTransfer(
	ctx context.Context,
	body string,
	emailID string,
) *database.Transaction {
	tx := newTransaction(database.Banorte, emailID, database.TransactionTypeExpense)

	if m := b.amountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	if m := b.descriptionRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Description = m[1]
	}

	operationTime := "00:00:00"
	if m := b.timeRe.FindStringSubmatch(body); len(m) == 2 {
		operationTime = strings.TrimSpace(strings.ReplaceAll(m[1], "horas", ""))
	}

	if m := b.dateRe.FindStringSubmatch(body); len(m) == 2 {
		rawDate := strings.ToLower(m[1]) // 15/ene/2026

		assembled := fmt.Sprintf("%s %s", strings.ReplaceAll(rawDate, "/", " "), operationTime)

		parsed, err := ParseSpanishDatetime(assembled, "2 Jan 2006 15:04:05")
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("date", rawDate).
				Msg("failed to parse operation date")
		} else {
			tx.Date = &parsed
		}
	}

	return tx
}
