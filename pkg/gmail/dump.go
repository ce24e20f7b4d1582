package gmail

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// BodyDump writes fetched email bodies to disk so extraction failures can
// be reproduced from the exact input.
type BodyDump struct {
	dir string
}

func NewBodyDump(dir string) *BodyDump {
	return &BodyDump{
		dir: dir,
	}
}

func (d *BodyDump) Save(ctx context.Context, email *database.Email) error {
	body := email.BodyHTML
	extension := ".html"

	if body == "" {
		body = email.BodyPlain
		extension = ".txt"
	}

	if body == "" {
		zerolog.Ctx(ctx).Debug().
			Str("message_id", email.ID).
			Msg("no body content to dump")

		return nil
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return errors.Wrap(err, "unable to create dump directory")
	}

	filename := filepath.Join(d.dir, email.ID+extension)

	if err := os.WriteFile(filename, []byte(body), 0o644); err != nil {
		return errors.Wrapf(err, "unable to dump email %s", email.ID)
	}

	return nil
}
