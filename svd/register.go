package svd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RegisterCluster is either a *Register or a *Cluster.
type RegisterCluster interface {
	Entity
	GetName() string
	GetAddressOffset() uint32
	isRegisterCluster()
}

// RegisterClusters keeps registers and clusters in declaration order.
type RegisterClusters []RegisterCluster

func (rc *RegisterClusters) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrUnknownListItem)
	}

	items := make(RegisterClusters, 0, len(value.Content))
	for _, n := range value.Content {
		var entry struct {
			Register *Register `yaml:"register"`
			Cluster  *Cluster  `yaml:"cluster"`
		}
		if err := n.Decode(&entry); err != nil {
			return err
		}

		switch {
		case entry.Register != nil && entry.Cluster == nil:
			items = append(items, entry.Register)
		case entry.Cluster != nil && entry.Register == nil:
			items = append(items, entry.Cluster)
		default:
			return fmt.Errorf("line %d: %w", n.Line, ErrUnknownListItem)
		}
	}

	*rc = items
	return nil
}

type Register struct {
	RegisterInfo `yaml:",inline"`
	Dim          *DimElement `yaml:"dimElement"`
}

func SingleRegister(info RegisterInfo) *Register {
	return &Register{RegisterInfo: info}
}

func ArrayRegister(info RegisterInfo, dim DimElement) *Register {
	return &Register{RegisterInfo: info, Dim: &dim}
}

func (r *Register) IsArray() bool {
	return r.Dim != nil
}

func (r *Register) GetName() string {
	return r.Name
}

func (r *Register) GetAddressOffset() uint32 {
	return r.AddressOffset
}

func (*Register) isRegisterCluster() {}

type RegisterInfo struct {
	Name              string  `yaml:"name"`
	DisplayName       *string `yaml:"displayName"`
	Description       *string `yaml:"description"`
	AlternateGroup    *string `yaml:"alternateGroup"`
	AlternateRegister *string `yaml:"alternateRegister"`
	AddressOffset     uint32  `yaml:"addressOffset"`

	RegisterProperties `yaml:",inline"`

	ModifiedWriteValues *ModifiedWriteValues `yaml:"modifiedWriteValues"`
	WriteConstraint     *WriteConstraint     `yaml:"writeConstraint"`
	ReadAction          *ReadAction          `yaml:"readAction"`
	Fields              []Field              `yaml:"fields"`
	DerivedFrom         *string              `yaml:"derivedFrom"`
}

type Cluster struct {
	ClusterInfo `yaml:",inline"`
	Dim         *DimElement `yaml:"dimElement"`
}

func SingleCluster(info ClusterInfo) *Cluster {
	return &Cluster{ClusterInfo: info}
}

func ArrayCluster(info ClusterInfo, dim DimElement) *Cluster {
	return &Cluster{ClusterInfo: info, Dim: &dim}
}

func (c *Cluster) IsArray() bool {
	return c.Dim != nil
}

func (c *Cluster) GetName() string {
	return c.Name
}

func (c *Cluster) GetAddressOffset() uint32 {
	return c.AddressOffset
}

func (*Cluster) isRegisterCluster() {}

type ClusterInfo struct {
	Name             string  `yaml:"name"`
	Description      *string `yaml:"description"`
	AlternateCluster *string `yaml:"alternateCluster"`
	HeaderStructName *string `yaml:"headerStructName"`
	AddressOffset    uint32  `yaml:"addressOffset"`

	RegisterProperties `yaml:",inline"`

	Children    RegisterClusters `yaml:"children"`
	DerivedFrom *string          `yaml:"derivedFrom"`
}
