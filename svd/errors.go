package svd

import "errors"

var (
	ErrUnknownValue    = errors.New("unknown enumerated value")
	ErrUnknownListItem = errors.New("expected a register or cluster entry")
)
