package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const (
	mercadoPagoSpeiOutgoingSubject = "Tu transferencia fue enviada"

	mercadoPagoTransferDescription = "Transferencia"
)

// MercadoPago extracts outgoing transfer confirmations. The template
// embeds no timestamp of its own, so the envelope date is required and a
// record without one is discarded.
type MercadoPago struct {
	amountRe *regexp.Regexp
}

func NewMercadoPago() *MercadoPago {
	return &MercadoPago{
		amountRe: regexp.MustCompile(
			`(?is)transferencia de\s*(?:<span[^>]*>)?\$\s*([\d,]+(?:\.\d{1,2})?)(?:</span>)?\.?`),
	}
}

func (m *MercadoPago) Type() database.Bank {
	return database.MercadoPago
}

func (m *MercadoPago) Parse(
	ctx context.Context,
	email *database.Email,
) (*database.Transaction, error) {
	subject := DecodeSubject(email.Subject)

	if strings.Contains(subject, mercadoPagoSpeiOutgoingSubject) {
		return m.parseOutgoingTransfer(ctx, bodyPreferPlain(email), email), nil
	}

	return nil, nil
}

func (m *MercadoPago) parseOutgoingTransfer(
	ctx context.Context,
	body string,
	email *database.Email,
) *database.Transaction {
	date := ParseEnvelopeDate(ctx, email.Date)
	if date == nil {
		return nil
	}

	tx := newTransaction(database.MercadoPago, email.ID, database.TransactionTypeExpense)
	tx.Description = mercadoPagoTransferDescription
	tx.Date = date

	if match := m.amountRe.FindStringSubmatch(body); len(match) == 2 {
		tx.Amount = ParseAmount(match[1])
	}

	return tx
}
