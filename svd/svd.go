// Package svd holds the in-memory CMSIS-SVD model consumed by the encoder.
//
// Every optional schema element is a pointer or a slice; nil means the
// element was not given. Values are treated as read-only snapshots.
package svd

// Entity is implemented by every model element that can be encoded.
type Entity interface {
	entity()
}

// Ptr returns a pointer to a copy of v. It is a convenience for filling in
// optional model fields.
func Ptr[T any](v T) *T {
	return &v
}

func (*Peripheral) entity()       {}
func (*Register) entity()         {}
func (*Cluster) entity()          {}
func (*Field) entity()            {}
func (*Interrupt) entity()        {}
func (*AddressBlock) entity()     {}
func (*DimElement) entity()       {}
func (*EnumeratedValues) entity() {}
func (*EnumeratedValue) entity()  {}
func (*WriteConstraint) entity()  {}
