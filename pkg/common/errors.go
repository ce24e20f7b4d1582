package common

import "github.com/cockroachdb/errors"

var (
	ErrDuplicate    = errors.New("duplicate transaction")
	ErrUnknownMonth = errors.New("unknown month name")
)
