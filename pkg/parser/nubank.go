package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const (
	nubankCardPaymentSubject   = "¡Recibimos tu pago!"
	nubankSpeiOutgoingSubject  = "Tu transferencia fue exitosa"
	nubankSpeiReceptionSubject = "¡Recibiste una transferencia!"

	nubankTransferDescription    = "Transferencia"
	nubankCardPaymentDescription = "Pago tarjeta de crédito Nu"
)

// Nubank extracts credit card payment confirmations and SPEI transfer
// notifications. Unlike the HTML-table banks, Nubank templates degrade well
// to plain text, so the plain body is preferred.
type Nubank struct {
	bareAmountRe *regexp.Regexp
	montoRe      *regexp.Regexp
	fechaRe      *regexp.Regexp
	horaRe       *regexp.Regexp
}

func NewNubank() *Nubank {
	return &Nubank{
		bareAmountRe: regexp.MustCompile(`\$([\d,]+\.\d{2})`),
		montoRe:      regexp.MustCompile(`Monto\s*:\s*\$?\s*([\d,]+(?:\.\d{2})?)`),
		fechaRe:      regexp.MustCompile(`Fecha\s*:\s*(\d{1,2}/[A-Z]{3}/\d{4})`),
		horaRe:       regexp.MustCompile(`Hora\s*:\s*(\d{1,2}:\d{2})`),
	}
}

func (n *Nubank) Type() database.Bank {
	return database.Nubank
}

func (n *Nubank) Parse(
	ctx context.Context,
	email *database.Email,
) (*database.Transaction, error) {
	subject := DecodeSubject(email.Subject)
	body := bodyPreferPlain(email)

	switch {
	case strings.Contains(subject, nubankCardPaymentSubject):
		return n.parseCardPayment(ctx, body, email), nil
	case strings.Contains(subject, nubankSpeiOutgoingSubject):
		return n.parseOutgoingTransfer(ctx, body, email.ID), nil
	case strings.Contains(subject, nubankSpeiReceptionSubject):
		return n.parseSpeiReception(ctx, body, email), nil
	}

	return nil, nil
}

// parseOutgoingTransfer reads the embedded Fecha/Hora pair, which reflects
// the actual transaction time and is authoritative over the envelope date.
func (n *Nubank) parseOutgoingTransfer(
	ctx context.Context,
	body string,
	emailID string,
) *database.Transaction {
	tx := newTransaction(database.Nubank, emailID, database.TransactionTypeExpense)
	tx.Description = nubankTransferDescription

	if m := n.montoRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	dateMatch := n.fechaRe.FindStringSubmatch(body)
	timeMatch := n.horaRe.FindStringSubmatch(body)

	if len(dateMatch) == 2 && len(timeMatch) == 2 {
		assembled := fmt.Sprintf("%s %s", dateMatch[1], timeMatch[1]) // 21/DIC/2025 14:03

		parsed, err := ParseSpanishDatetime(assembled, "2/Jan/2006 15:04")
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("date", assembled).
				Msg("failed to parse transfer date")
		} else {
			tx.Date = &parsed
		}
	}

	return tx
}

func (n *Nubank) parseCardPayment(
	ctx context.Context,
	body string,
	email *database.Email,
) *database.Transaction {
	date := ParseEnvelopeDate(ctx, email.Date)
	if date == nil {
		return nil
	}

	tx := newTransaction(database.Nubank, email.ID, database.TransactionTypeExpense)
	tx.Description = nubankCardPaymentDescription
	tx.Date = date

	if m := n.bareAmountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	return tx
}

func (n *Nubank) parseSpeiReception(
	ctx context.Context,
	body string,
	email *database.Email,
) *database.Transaction {
	date := ParseEnvelopeDate(ctx, email.Date)
	if date == nil {
		return nil
	}

	tx := newTransaction(database.Nubank, email.ID, database.TransactionTypeIncome)
	tx.Description = nubankTransferDescription
	tx.Date = date

	if m := n.bareAmountRe.FindStringSubmatch(body); len(m) == 2 {
		tx.Amount = ParseAmount(m[1])
	}

	return tx
}
