package svd

type Field struct {
	FieldInfo `yaml:",inline"`
	Dim       *DimElement `yaml:"dimElement"`
}

func SingleField(info FieldInfo) *Field {
	return &Field{FieldInfo: info}
}

func ArrayField(info FieldInfo, dim DimElement) *Field {
	return &Field{FieldInfo: info, Dim: &dim}
}

func (f *Field) IsArray() bool {
	return f.Dim != nil
}

type FieldInfo struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`

	BitRange `yaml:",inline"`

	Access              *Access              `yaml:"access"`
	ModifiedWriteValues *ModifiedWriteValues `yaml:"modifiedWriteValues"`
	WriteConstraint     *WriteConstraint     `yaml:"writeConstraint"`
	ReadAction          *ReadAction          `yaml:"readAction"`
	EnumeratedValues    []EnumeratedValues   `yaml:"enumeratedValues"`
	DerivedFrom         *string              `yaml:"derivedFrom"`
}

// BitRange locates a field inside its register.
type BitRange struct {
	Offset    uint32       `yaml:"bitOffset"`
	Width     uint32       `yaml:"bitWidth"`
	RangeType BitRangeType `yaml:"rangeType"`
}

func (b BitRange) LSB() uint32 {
	return b.Offset
}

// MSB returns the most significant bit. A zero width is treated as one bit.
func (b BitRange) MSB() uint32 {
	if b.Width == 0 {
		return b.Offset
	}
	return b.Offset + b.Width - 1
}

type EnumeratedValues struct {
	Name           *string           `yaml:"name"`
	HeaderEnumName *string           `yaml:"headerEnumName"`
	Usage          *Usage            `yaml:"usage"`
	Values         []EnumeratedValue `yaml:"enumeratedValue"`
	DerivedFrom    *string           `yaml:"derivedFrom"`
}

type EnumeratedValue struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Value       *uint64 `yaml:"value"`
	IsDefault   *bool   `yaml:"isDefault"`
}

// WriteConstraint restricts the values software may write. Exactly one of
// its members is expected to be set.
type WriteConstraint struct {
	WriteAsRead         *bool                 `yaml:"writeAsRead"`
	UseEnumeratedValues *bool                 `yaml:"useEnumeratedValues"`
	Range               *WriteConstraintRange `yaml:"range"`
}

type WriteConstraintRange struct {
	Min uint64 `yaml:"minimum"`
	Max uint64 `yaml:"maximum"`
}
