package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IdentifierFormat is the casing applied to a name on output.
type IdentifierFormat uint8

const (
	Original IdentifierFormat = iota
	Camel
	Pascal
	Snake
	Constant
	Upper
	Lower
)

var identifierFormatNames = map[IdentifierFormat]string{
	Original: "original",
	Camel:    "camel",
	Pascal:   "pascal",
	Snake:    "snake",
	Constant: "constant",
	Upper:    "upper",
	Lower:    "lower",
}

func (f IdentifierFormat) String() string {
	return nameOf(identifierFormatNames, f, "IdentifierFormat")
}

func (f IdentifierFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *IdentifierFormat) UnmarshalYAML(value *yaml.Node) error {
	return decodeName(value, identifierFormatNames, f)
}

// NumberFormat is the textual rendering of an unsigned integer.
type NumberFormat uint8

const (
	Dec NumberFormat = iota
	UpperHex
	UpperHex8
	UpperHex16
	LowerHex
	LowerHex8
	LowerHex16
	Bin
)

var numberFormatNames = map[NumberFormat]string{
	Dec:        "dec",
	UpperHex:   "upperHex",
	UpperHex8:  "upperHex8",
	UpperHex16: "upperHex16",
	LowerHex:   "lowerHex",
	LowerHex8:  "lowerHex8",
	LowerHex16: "lowerHex16",
	Bin:        "bin",
}

func (f NumberFormat) String() string {
	return nameOf(numberFormatNames, f, "NumberFormat")
}

func (f NumberFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *NumberFormat) UnmarshalYAML(value *yaml.Node) error {
	return decodeName(value, numberFormatNames, f)
}

// Sorting is the key registers and clusters are ordered by.
type Sorting uint8

const (
	SortNone Sorting = iota
	SortOffset
	SortOffsetReversed
	SortName
)

var sortingNames = map[Sorting]string{
	SortNone:           "none",
	SortOffset:         "offset",
	SortOffsetReversed: "offsetReversed",
	SortName:           "name",
}

func (s Sorting) String() string {
	return nameOf(sortingNames, s, "Sorting")
}

func (s Sorting) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Sorting) UnmarshalYAML(value *yaml.Node) error {
	return decodeName(value, sortingNames, s)
}

// Partition groups registers and clusters before sorting.
type Partition uint8

const (
	PartitionNone Partition = iota
	RegistersFirst
	ClustersFirst
)

var partitionNames = map[Partition]string{
	PartitionNone:  "none",
	RegistersFirst: "registers",
	ClustersFirst:  "clusters",
}

func (p Partition) String() string {
	return nameOf(partitionNames, p, "Partition")
}

func (p Partition) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *Partition) UnmarshalYAML(value *yaml.Node) error {
	return decodeName(value, partitionNames, p)
}

// BitRangeFormat selects the notation used for field bit positions.
type BitRangeFormat uint8

const (
	// BitRangePreserve keeps the notation recorded in the model.
	BitRangePreserve BitRangeFormat = iota
	BitRangeString
	BitRangeOffsetWidth
	BitRangeMsbLsb
)

var bitRangeFormatNames = map[BitRangeFormat]string{
	BitRangePreserve:    "preserve",
	BitRangeString:      "bitRange",
	BitRangeOffsetWidth: "offsetWidth",
	BitRangeMsbLsb:      "msbLsb",
}

func (f BitRangeFormat) String() string {
	return nameOf(bitRangeFormatNames, f, "BitRangeFormat")
}

func (f BitRangeFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *BitRangeFormat) UnmarshalYAML(value *yaml.Node) error {
	return decodeName(value, bitRangeFormatNames, f)
}

func nameOf[T ~uint8](names map[T]string, v T, kind string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", kind, uint8(v))
}

func fromName[T comparable](names map[T]string, s string) (T, bool) {
	for v, name := range names {
		if name == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func decodeName[T comparable](value *yaml.Node, names map[T]string, out *T) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, ok := fromName(names, s)
	if !ok {
		return fmt.Errorf("line %d: %w %q", value.Line, ErrUnknownFormat, s)
	}
	*out = v
	return nil
}
