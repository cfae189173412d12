// Package config holds the formatting policy applied by the encoder and the
// primitive formatters it relies on.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var rawDefault []byte

var defaults Config

// Config selects, per category, the identifier and number formats used on
// output together with the register and cluster ordering. The zero value
// keeps every name as it is, writes numbers in decimal and preserves source
// order.
type Config struct {
	PeripheralName        IdentifierFormat `yaml:"peripheralName"`
	PeripheralBaseAddress NumberFormat     `yaml:"peripheralBaseAddress"`

	AddressBlockOffset NumberFormat `yaml:"addressBlockOffset"`
	AddressBlockSize   NumberFormat `yaml:"addressBlockSize"`

	InterruptName IdentifierFormat `yaml:"interruptName"`

	ClusterName          IdentifierFormat `yaml:"clusterName"`
	ClusterAddressOffset NumberFormat     `yaml:"clusterAddressOffset"`

	RegisterClusterSorting   Sorting   `yaml:"registerClusterSorting"`
	RegistersOrClustersFirst Partition `yaml:"registersOrClustersFirst"`

	RegisterName          IdentifierFormat `yaml:"registerName"`
	RegisterAddressOffset NumberFormat     `yaml:"registerAddressOffset"`
	RegisterSize          NumberFormat     `yaml:"registerSize"`
	RegisterResetValue    NumberFormat     `yaml:"registerResetValue"`
	RegisterResetMask     NumberFormat     `yaml:"registerResetMask"`

	FieldName     IdentifierFormat `yaml:"fieldName"`
	FieldBitRange BitRangeFormat   `yaml:"fieldBitRange"`

	EnumeratedValuesName IdentifierFormat `yaml:"enumeratedValuesName"`
	EnumeratedValueName  IdentifierFormat `yaml:"enumeratedValueName"`
	EnumeratedValueValue NumberFormat     `yaml:"enumeratedValueValue"`

	DimDim       NumberFormat `yaml:"dimDim"`
	DimIncrement NumberFormat `yaml:"dimIncrement"`
}

// Default returns a copy of the built-in configuration.
func Default() *Config {
	c := defaults
	return &c
}

// Parse decodes a YAML configuration on top of the built-in defaults.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func init() {
	if err := yaml.Unmarshal(rawDefault, &defaults); err != nil {
		panic(err)
	}
}
