package parser

import (
	"context"

	"github.com/google/uuid"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// Extractor turns one bank's notification email into a normalized
// transaction. A nil transaction with a nil error means the email is not a
// supported notification type; that is the common outcome for most mail a
// bank sends and is not an error.
//
// Extractors must never fail on malformed bodies. Every field has a safe
// default (zero amount, empty description, nil date) and only the presence
// of a known subject trigger decides whether extraction is attempted.
type Extractor interface {
	Type() database.Bank
	Parse(ctx context.Context, email *database.Email) (*database.Transaction, error)
}

func newTransaction(
	bank database.Bank,
	emailID string,
	txType database.TransactionType,
) *database.Transaction {
	return &database.Transaction{
		ID:      uuid.NewString(),
		EmailID: emailID,
		Source:  bank,
		Type:    txType,
		Status:  database.StatusApproved,
	}
}
