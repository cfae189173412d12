// Package encoder turns an SVD model into a tree of markup elements according
// to a formatting configuration.
//
// Encoding is a pure function of its inputs: the model and the configuration
// are only read, and every call builds a fresh tree. A nil *config.Config
// behaves like the zero configuration.
package encoder

import (
	"fmt"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

// Encode encodes any model entity.
func Encode(e svd.Entity, cfg *config.Config) (*Element, error) {
	cfg = orZero(cfg)
	switch v := e.(type) {
	case *svd.Peripheral:
		return encodePeripheral(v, cfg)
	case *svd.Register:
		return encodeRegister(v, cfg)
	case *svd.Cluster:
		return encodeCluster(v, cfg)
	case *svd.Field:
		return encodeField(v, cfg)
	case *svd.Interrupt:
		return encodeInterrupt(v, cfg)
	case *svd.AddressBlock:
		return encodeAddressBlock(v, cfg)
	case *svd.DimElement:
		return encodeDimElement(v, cfg)
	case *svd.EnumeratedValues:
		return encodeEnumeratedValues(v, cfg)
	case *svd.EnumeratedValue:
		return encodeEnumeratedValue(v, cfg)
	case *svd.WriteConstraint:
		return encodeWriteConstraint(v)
	}
	return nil, fmt.Errorf("%w: %T", ErrNilEntity, e)
}

func EncodePeripheral(p *svd.Peripheral, cfg *config.Config) (*Element, error) {
	return encodePeripheral(p, orZero(cfg))
}

func EncodeRegister(r *svd.Register, cfg *config.Config) (*Element, error) {
	return encodeRegister(r, orZero(cfg))
}

func EncodeCluster(c *svd.Cluster, cfg *config.Config) (*Element, error) {
	return encodeCluster(c, orZero(cfg))
}

func EncodeField(f *svd.Field, cfg *config.Config) (*Element, error) {
	return encodeField(f, orZero(cfg))
}

// EncodeRegisterProperties returns the property nodes to be placed directly
// inside the owning element.
func EncodeRegisterProperties(p *svd.RegisterProperties, cfg *config.Config) []Node {
	return encodeRegisterProperties(p, orZero(cfg))
}

func orZero(cfg *config.Config) *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// encodeArray builds an element for an array-capable entity. Array entities
// start from the dimension element and have the entity's own element merged
// on top.
func encodeArray(name string, dim *svd.DimElement, cfg *config.Config, info func() (*Element, error)) (*Element, error) {
	if dim == nil {
		return info()
	}

	d, err := encodeDimElement(dim, cfg)
	if err != nil {
		return nil, err
	}
	e, err := info()
	if err != nil {
		return nil, err
	}

	base := NewElement(name)
	base.Merge(d)
	base.Merge(e)
	return base, nil
}

// optional appends a text node for v only when v is set.
func optional[T any](e *Element, name string, v *T, render func(T) string) {
	if v != nil {
		e.appendChild(NewNode(name, render(*v)))
	}
}

func verbatim(s string) string {
	return s
}

func caseOf(f config.IdentifierFormat) func(string) string {
	return func(s string) string {
		return config.ChangeCase(s, f)
	}
}

func numberOf[T ~uint32 | ~uint64](f config.NumberFormat) func(T) string {
	return func(v T) string {
		return config.FormatNumber(uint64(v), f)
	}
}

func setDerivedFrom(e *Element, derivedFrom *string, f config.IdentifierFormat) {
	if derivedFrom != nil {
		e.Attributes["derivedFrom"] = config.ChangeCase(*derivedFrom, f)
	}
}
