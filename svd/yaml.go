package svd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeEnum[T any](value *yaml.Node, kind string, fromString func(string) (T, bool), out *T) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, ok := fromString(s)
	if !ok {
		return fmt.Errorf("line %d: %w: %s %q", value.Line, ErrUnknownValue, kind, s)
	}
	*out = v
	return nil
}

// LoadPeripherals decodes a YAML document holding a "peripherals" sequence.
func LoadPeripherals(data []byte) ([]*Peripheral, error) {
	var doc struct {
		Peripherals []*Peripheral `yaml:"peripherals"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Peripherals, nil
}
