package gmail

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/gastos-dev/bankmail-importer/pkg/database"
)

// ParseRaw decodes an RFC 2822 message into the flat shape the extractors
// consume. Attachments are skipped and only the first text/plain and
// text/html parts are kept.
func ParseRaw(id string, raw []byte) (*database.Email, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read message %s", id)
	}

	email := &database.Email{
		ID:      id,
		Subject: msg.Header.Get("Subject"),
		From:    msg.Header.Get("From"),
		To:      msg.Header.Get("To"),
		Date:    msg.Header.Get("Date"),
	}

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		if walkErr := collectParts(multipart.NewReader(msg.Body, params["boundary"]), email); walkErr != nil {
			return nil, errors.Wrapf(walkErr, "unable to walk message %s", id)
		}

		return email, nil
	}

	body := decodeBody(msg.Body, msg.Header.Get("Content-Transfer-Encoding"), params["charset"])

	if mediaType == "text/html" {
		email.BodyHTML = body
	} else {
		email.BodyPlain = body
	}

	return email, nil
}

func collectParts(reader *multipart.Reader, email *database.Email) error {
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		disposition := strings.ToLower(part.Header.Get("Content-Disposition"))
		if strings.Contains(disposition, "attachment") {
			continue
		}

		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}

		switch {
		case strings.HasPrefix(mediaType, "multipart/"):
			if err = collectParts(multipart.NewReader(part, params["boundary"]), email); err != nil {
				return err
			}
		case mediaType == "text/plain" && email.BodyPlain == "":
			email.BodyPlain = decodeBody(part, part.Header.Get("Content-Transfer-Encoding"), params["charset"])
		case mediaType == "text/html" && email.BodyHTML == "":
			email.BodyHTML = decodeBody(part, part.Header.Get("Content-Transfer-Encoding"), params["charset"])
		}
	}
}

func decodeBody(r io.Reader, transferEncoding, charset string) string {
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	}

	data, err := io.ReadAll(r)
	if err != nil && len(data) == 0 {
		return ""
	}

	return decodeCharset(data, charset)
}

func decodeCharset(data []byte, charset string) string {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "us-ascii":
		return string(data)
	case "iso-8859-1", "latin1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err == nil {
			return string(decoded)
		}
	case "windows-1252":
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err == nil {
			return string(decoded)
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}

	return string(decoded)
}
