package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gastos-dev/bankmail-importer/pkg/common"
	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{
		db: db,
	}
}

// SaveTransaction stores one extracted transaction, deduplicating on email
// id. A second record for the same email is skipped, never overwritten;
// callers get common.ErrDuplicate so they can log and move on.
func (p *Postgres) SaveTransaction(
	ctx context.Context,
	tx *database.Transaction,
) (string, error) {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	result := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email_id"}},
			DoNothing: true,
		}).
		Create(tx)
	if result.Error != nil {
		return "", errors.Wrapf(result.Error, "failed to save transaction for email %s", tx.EmailID)
	}

	if result.RowsAffected == 0 {
		return "", errors.Mark(
			errors.Newf("transaction for email %s already stored", tx.EmailID),
			common.ErrDuplicate,
		)
	}

	return tx.ID, nil
}

// ListTransactions returns stored transactions whose date falls inside
// [from, to), newest first. Records without a date are excluded since they
// cannot be placed in the window.
func (p *Postgres) ListTransactions(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]*database.Transaction, error) {
	var records []*database.Transaction

	err := p.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return records, nil
}
