package gmail

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

const (
	gmailUser = "me"

	defaultPageSize = 500
	defaultPoolSize = 5
)

type Fetcher struct {
	svc *gmailapi.Service
}

func NewFetcher(
	ctx context.Context,
	client *http.Client,
) (*Fetcher, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create gmail service")
	}

	return &Fetcher{
		svc: svc,
	}, nil
}

// ListMessageIDs walks every result page for the query and returns the
// matching message ids.
func (f *Fetcher) ListMessageIDs(ctx context.Context, query string) ([]string, error) {
	var ids []string

	pageToken := ""

	for {
		call := f.svc.Users.Messages.List(gmailUser).
			Q(query).
			MaxResults(defaultPageSize).
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, errors.Wrap(err, "unable to list messages")
		}

		for _, msg := range resp.Messages {
			ids = append(ids, msg.Id)
		}

		if resp.NextPageToken == "" {
			break
		}

		pageToken = resp.NextPageToken
	}

	return ids, nil
}

// FetchEmails downloads the raw messages concurrently and decodes them.
// Messages that fail to decode are logged and skipped; transport errors
// fail the whole batch.
func (f *Fetcher) FetchEmails(ctx context.Context, ids []string) ([]*database.Email, error) {
	pool := workerpool.New(defaultPoolSize)

	var (
		mu       sync.Mutex
		emails   []*database.Email
		finalErr error
	)

	for _, id := range ids {
		msgID := id

		pool.Submit(func() {
			mu.Lock()
			failed := finalErr != nil
			mu.Unlock()

			if failed {
				return
			}

			msg, err := f.svc.Users.Messages.Get(gmailUser, msgID).
				Format("raw").
				Context(ctx).
				Do()
			if err != nil {
				mu.Lock()
				finalErr = errors.Join(finalErr, errors.Wrapf(err, "unable to get message %s", msgID))
				mu.Unlock()

				return
			}

			raw, err := decodeRaw(msg.Raw)
			if err != nil {
				zerolog.Ctx(ctx).Error().Err(err).
					Str("message_id", msgID).
					Msg("unable to decode raw message")

				return
			}

			email, err := ParseRaw(msgID, raw)
			if err != nil {
				zerolog.Ctx(ctx).Error().Err(err).
					Str("message_id", msgID).
					Msg("unable to parse message")

				return
			}

			mu.Lock()
			emails = append(emails, email)
			mu.Unlock()
		})
	}

	pool.StopWait()

	if finalErr != nil {
		return nil, finalErr
	}

	return emails, nil
}

func decodeRaw(raw string) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(raw)
	if err == nil {
		return data, nil
	}

	return base64.RawURLEncoding.DecodeString(raw)
}
