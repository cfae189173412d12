package svd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ModifiedWriteValues describes how data written to a register or field is
// manipulated before it is stored.
type ModifiedWriteValues uint8

const (
	OneToClear ModifiedWriteValues = iota
	OneToSet
	OneToToggle
	ZeroToClear
	ZeroToSet
	ZeroToToggle
	Clear
	Set
	Modify
)

// DefaultModifiedWriteValues stores written values unchanged.
const DefaultModifiedWriteValues = Modify

func (m ModifiedWriteValues) String() string {
	switch m {
	case OneToClear:
		return "oneToClear"
	case OneToSet:
		return "oneToSet"
	case OneToToggle:
		return "oneToToggle"
	case ZeroToClear:
		return "zeroToClear"
	case ZeroToSet:
		return "zeroToSet"
	case ZeroToToggle:
		return "zeroToToggle"
	case Clear:
		return "clear"
	case Set:
		return "set"
	case Modify:
		return "modify"
	}
	return fmt.Sprintf("ModifiedWriteValues(%d)", uint8(m))
}

func ModifiedWriteValuesFromString(s string) (ModifiedWriteValues, bool) {
	switch s {
	case "oneToClear":
		return OneToClear, true
	case "oneToSet":
		return OneToSet, true
	case "oneToToggle":
		return OneToToggle, true
	case "zeroToClear":
		return ZeroToClear, true
	case "zeroToSet":
		return ZeroToSet, true
	case "zeroToToggle":
		return ZeroToToggle, true
	case "clear":
		return Clear, true
	case "set":
		return Set, true
	case "modify":
		return Modify, true
	}
	return 0, false
}

func (m *ModifiedWriteValues) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, "modifiedWriteValues", ModifiedWriteValuesFromString, m)
}
