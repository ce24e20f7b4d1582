package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
)

// googleClient builds an authenticated http client from the downloaded
// OAuth client secret and a previously issued token. Token refresh is
// handled by the oauth2 transport.
func googleClient(ctx context.Context, cfg Config) (*http.Client, error) {
	secret, err := os.ReadFile(cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read client secret")
	}

	oauthConfig, err := google.ConfigFromJSON(secret, gmailapi.GmailReadonlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse client secret")
	}

	tokenBytes, err := os.ReadFile(cfg.GoogleTokenFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read token file")
	}

	var token oauth2.Token
	if err = json.Unmarshal(tokenBytes, &token); err != nil {
		return nil, errors.Wrap(err, "unable to parse token file")
	}

	return oauthConfig.Client(ctx, &token), nil
}
