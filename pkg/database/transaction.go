package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeExpense = TransactionType("expense")
	TransactionTypeIncome  = TransactionType("income")
)

const StatusApproved = "approved"

// Transaction is the canonical extracted fact. It is created once by an
// extractor and never mutated afterwards. Amount carries magnitude only;
// direction lives in Type. Date is nil when no trustworthy timestamp could
// be extracted and the routine tolerates that.
type Transaction struct {
	ID          string `gorm:"primaryKey"`
	EmailID     string `gorm:"uniqueIndex"`
	Source      Bank
	Date        *time.Time
	Amount      decimal.Decimal
	Description string
	Type        TransactionType
	Merchant    *string
	Reference   *string
	Status      string
	CreatedAt   time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}

// Email is one decoded message handed over by the mail-retrieval layer.
// Date keeps the raw RFC-2822-ish envelope header; extractors parse it
// themselves because several banks embed a better timestamp in the body.
type Email struct {
	ID        string
	Subject   string
	From      string
	To        string
	Date      string
	BodyPlain string
	BodyHTML  string
}
