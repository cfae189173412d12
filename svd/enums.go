package svd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReadAction is the side effect a read has on a register or field.
type ReadAction uint8

const (
	ReadClear ReadAction = iota
	ReadSet
	ReadModify
	ReadModifyExternal
)

func (r ReadAction) String() string {
	switch r {
	case ReadClear:
		return "clear"
	case ReadSet:
		return "set"
	case ReadModify:
		return "modify"
	case ReadModifyExternal:
		return "modifyExternal"
	}
	return fmt.Sprintf("ReadAction(%d)", uint8(r))
}

func ReadActionFromString(s string) (ReadAction, bool) {
	switch s {
	case "clear":
		return ReadClear, true
	case "set":
		return ReadSet, true
	case "modify":
		return ReadModify, true
	case "modifyExternal":
		return ReadModifyExternal, true
	}
	return 0, false
}

func (r *ReadAction) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "readAction", ReadActionFromString, r)
}

// Protection is the security privilege required to access an address region.
type Protection uint8

const (
	Secure Protection = iota
	NonSecure
	Privileged
)

func (p Protection) String() string {
	switch p {
	case Secure:
		return "s"
	case NonSecure:
		return "n"
	case Privileged:
		return "p"
	}
	return fmt.Sprintf("Protection(%d)", uint8(p))
}

func ProtectionFromString(s string) (Protection, bool) {
	switch s {
	case "s":
		return Secure, true
	case "n":
		return NonSecure, true
	case "p":
		return Privileged, true
	}
	return 0, false
}

func (p *Protection) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "protection", ProtectionFromString, p)
}

// Usage selects whether an enumerated value set applies to reads, writes or both.
type Usage uint8

const (
	UsageRead Usage = iota
	UsageWrite
	UsageReadWrite
)

func (u Usage) String() string {
	switch u {
	case UsageRead:
		return "read"
	case UsageWrite:
		return "write"
	case UsageReadWrite:
		return "read-write"
	}
	return fmt.Sprintf("Usage(%d)", uint8(u))
}

func UsageFromString(s string) (Usage, bool) {
	switch s {
	case "read":
		return UsageRead, true
	case "write":
		return UsageWrite, true
	case "read-write":
		return UsageReadWrite, true
	}
	return 0, false
}

func (u *Usage) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "usage", UsageFromString, u)
}

type AddressBlockUsage uint8

const (
	UsageRegisters AddressBlockUsage = iota
	UsageBuffer
	UsageReserved
)

func (u AddressBlockUsage) String() string {
	switch u {
	case UsageRegisters:
		return "registers"
	case UsageBuffer:
		return "buffer"
	case UsageReserved:
		return "reserved"
	}
	return fmt.Sprintf("AddressBlockUsage(%d)", uint8(u))
}

func AddressBlockUsageFromString(s string) (AddressBlockUsage, bool) {
	switch s {
	case "registers":
		return UsageRegisters, true
	case "buffer":
		return UsageBuffer, true
	case "reserved":
		return UsageReserved, true
	}
	return 0, false
}

func (u *AddressBlockUsage) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "usage", AddressBlockUsageFromString, u)
}

// BitRangeType records which of the three SVD notations described a field's
// bit position.
type BitRangeType uint8

const (
	BitRangeOffsetWidth BitRangeType = iota
	BitRangeMsbLsb
	BitRangeString
)

func (b BitRangeType) String() string {
	switch b {
	case BitRangeOffsetWidth:
		return "offsetWidth"
	case BitRangeMsbLsb:
		return "msbLsb"
	case BitRangeString:
		return "bitRange"
	}
	return fmt.Sprintf("BitRangeType(%d)", uint8(b))
}

func BitRangeTypeFromString(s string) (BitRangeType, bool) {
	switch s {
	case "offsetWidth":
		return BitRangeOffsetWidth, true
	case "msbLsb":
		return BitRangeMsbLsb, true
	case "bitRange":
		return BitRangeString, true
	}
	return 0, false
}

func (b *BitRangeType) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "rangeType", BitRangeTypeFromString, b)
}
