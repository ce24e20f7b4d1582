package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_01_10_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists transactions
(
    id          varchar(36)  not null
        constraint transactions_pk
            primary key,
    email_id    varchar(255) not null,
    source      varchar(64)  not null,
    date        timestamp,
    amount      decimal      not null default 0,
    description text,
    type        varchar(16)  not null,
    merchant    text,
    reference   text,
    status      varchar(32),
    created_at  timestamp
);
`).Error
			},
		},
		{
			ID: "2026_01_10_EmailIdUnique",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create unique index if not exists idx_transactions_email_id
    on transactions (email_id);
`).Error
			},
		},
	}
}
