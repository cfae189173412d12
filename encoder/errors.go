package encoder

import "errors"

var (
	ErrNilEntity              = errors.New("cannot encode a nil entity")
	ErrInvalidWriteConstraint = errors.New("write constraint must set exactly one member")
	ErrInvalidEnumeratedValue = errors.New("enumerated value needs a value or isDefault")
)
