package config

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown format name")
	ErrMalformedNumber = errors.New("malformed number")
)
