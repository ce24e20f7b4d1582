package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gastos-dev/bankmail-importer/pkg/common"
	"github.com/gastos-dev/bankmail-importer/pkg/database"
	"github.com/gastos-dev/bankmail-importer/pkg/repo"
)

func newTestStore(t *testing.T) *repo.Postgres {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&database.Transaction{})
	assert.NoError(t, err)

	return repo.NewPostgres(db)
}

func testTransaction(emailID string) *database.Transaction {
	date := time.Date(2025, 12, 21, 9, 0, 0, 0, time.UTC)

	return &database.Transaction{
		ID:          uuid.NewString(),
		EmailID:     emailID,
		Source:      database.Nubank,
		Date:        &date,
		Amount:      decimal.RequireFromString("3500"),
		Description: "Pago tarjeta de crédito Nu",
		Type:        database.TransactionTypeExpense,
		Status:      database.StatusApproved,
	}
}

func TestSaveTransaction(t *testing.T) {
	store := newTestStore(t)

	tx := testTransaction("msg-001")

	id, err := store.SaveTransaction(context.TODO(), tx)
	assert.NoError(t, err)
	assert.Equal(t, tx.ID, id)
}

func TestSaveTransaction_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)

	first := testTransaction("msg-001")

	_, err := store.SaveTransaction(context.TODO(), first)
	assert.NoError(t, err)

	second := testTransaction("msg-001")

	_, err = store.SaveTransaction(context.TODO(), second)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDuplicate))

	transactions, err := store.ListTransactions(context.TODO(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, first.ID, transactions[0].ID)
}

func TestListTransactions_Window(t *testing.T) {
	store := newTestStore(t)

	inside := testTransaction("msg-001")

	outside := testTransaction("msg-002")
	outsideDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	outside.Date = &outsideDate

	_, err := store.SaveTransaction(context.TODO(), inside)
	assert.NoError(t, err)

	_, err = store.SaveTransaction(context.TODO(), outside)
	assert.NoError(t, err)

	transactions, err := store.ListTransactions(context.TODO(),
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, inside.ID, transactions[0].ID)
}
