package svd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Access defines the access rights of a register or field. It may be
// specified at a higher level than individual fields.
type Access uint8

const (
	// ReadOnly permits reads. Writes have an undefined effect.
	ReadOnly Access = iota

	// ReadWrite permits both reads and writes.
	ReadWrite

	// ReadWriteOnce always permits reads. Only the first write after a reset
	// affects the content.
	ReadWriteOnce

	// WriteOnce gives undefined read results. Only the first write after a
	// reset affects the content.
	WriteOnce

	// WriteOnly gives undefined read results. Writes are permitted.
	WriteOnly
)

// DefaultAccess is assumed by the model layer when no access is given.
const DefaultAccess = ReadWrite

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	case ReadWriteOnce:
		return "read-writeOnce"
	case WriteOnce:
		return "writeOnce"
	case WriteOnly:
		return "write-only"
	}
	return fmt.Sprintf("Access(%d)", uint8(a))
}

// CanRead reports whether the register or field is readable at least once.
func (a Access) CanRead() bool {
	switch a {
	case ReadOnly, ReadWrite, ReadWriteOnce:
		return true
	case WriteOnce, WriteOnly:
		return false
	}
	return false
}

// CanWrite reports whether the register or field is writable at least once.
func (a Access) CanWrite() bool {
	switch a {
	case ReadWrite, ReadWriteOnce, WriteOnce, WriteOnly:
		return true
	case ReadOnly:
		return false
	}
	return false
}

func AccessFromString(s string) (Access, bool) {
	switch s {
	case "read-only":
		return ReadOnly, true
	case "read-write":
		return ReadWrite, true
	case "read-writeOnce":
		return ReadWriteOnce, true
	case "writeOnce":
		return WriteOnce, true
	case "write-only":
		return WriteOnly, true
	}
	return 0, false
}

func (a *Access) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "access", AccessFromString, a)
}
