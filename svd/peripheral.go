package svd

// Peripheral is a single peripheral or, when Dim is set, an array of
// identically shaped peripherals.
type Peripheral struct {
	PeripheralInfo `yaml:",inline"`
	Dim            *DimElement `yaml:"dimElement"`
}

func SinglePeripheral(info PeripheralInfo) *Peripheral {
	return &Peripheral{PeripheralInfo: info}
}

func ArrayPeripheral(info PeripheralInfo, dim DimElement) *Peripheral {
	return &Peripheral{PeripheralInfo: info, Dim: &dim}
}

func (p *Peripheral) IsArray() bool {
	return p.Dim != nil
}

type PeripheralInfo struct {
	Name                string  `yaml:"name"`
	DisplayName         *string `yaml:"displayName"`
	Version             *string `yaml:"version"`
	Description         *string `yaml:"description"`
	AlternatePeripheral *string `yaml:"alternatePeripheral"`
	GroupName           *string `yaml:"groupName"`
	PrependToName       *string `yaml:"prependToName"`
	AppendToName        *string `yaml:"appendToName"`
	HeaderStructName    *string `yaml:"headerStructName"`
	BaseAddress         uint64  `yaml:"baseAddress"`

	// Default properties inherited by every register of the peripheral.
	RegisterProperties `yaml:",inline"`

	AddressBlocks []AddressBlock   `yaml:"addressBlock"`
	Interrupts    []Interrupt      `yaml:"interrupt"`
	Registers     RegisterClusters `yaml:"registers"`
	DerivedFrom   *string          `yaml:"derivedFrom"`
}

type AddressBlock struct {
	Offset     uint32            `yaml:"offset"`
	Size       uint32            `yaml:"size"`
	Usage      AddressBlockUsage `yaml:"usage"`
	Protection *Protection       `yaml:"protection"`
}

type Interrupt struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Value       uint32  `yaml:"value"`
}

// RegisterProperties is the group of properties a peripheral, cluster or
// register may define for itself and its descendants.
type RegisterProperties struct {
	Size       *uint32     `yaml:"size"`
	Access     *Access     `yaml:"access"`
	Protection *Protection `yaml:"protection"`
	ResetValue *uint64     `yaml:"resetValue"`
	ResetMask  *uint64     `yaml:"resetMask"`
}

// DimElement describes how an element is replicated.
type DimElement struct {
	Dim           uint32         `yaml:"dim"`
	DimIncrement  uint32         `yaml:"dimIncrement"`
	DimIndex      []string       `yaml:"dimIndex"`
	DimName       *string        `yaml:"dimName"`
	DimArrayIndex *DimArrayIndex `yaml:"dimArrayIndex"`
}

type DimArrayIndex struct {
	HeaderEnumName *string           `yaml:"headerEnumName"`
	Values         []EnumeratedValue `yaml:"enumeratedValue"`
}
