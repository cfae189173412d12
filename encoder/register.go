package encoder

import (
	"fmt"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

func encodeRegister(r *svd.Register, cfg *config.Config) (*Element, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: register", ErrNilEntity)
	}
	return encodeArray("register", r.Dim, cfg, func() (*Element, error) {
		return encodeRegisterInfo(&r.RegisterInfo, cfg)
	})
}

func encodeRegisterInfo(info *svd.RegisterInfo, cfg *config.Config) (*Element, error) {
	name := caseOf(cfg.RegisterName)

	elem := NewElement("register")
	elem.appendChild(NewNode("name", name(info.Name)))
	optional(elem, "displayName", info.DisplayName, verbatim)
	optional(elem, "description", info.Description, verbatim)
	optional(elem, "alternateGroup", info.AlternateGroup, verbatim)
	optional(elem, "alternateRegister", info.AlternateRegister, name)
	elem.appendChild(NewNode("addressOffset", config.FormatNumber(uint64(info.AddressOffset), cfg.RegisterAddressOffset)))
	elem.appendChild(encodeRegisterProperties(&info.RegisterProperties, cfg)...)
	optional(elem, "modifiedWriteValues", info.ModifiedWriteValues, svd.ModifiedWriteValues.String)

	if info.WriteConstraint != nil {
		wc, err := encodeWriteConstraint(info.WriteConstraint)
		if err != nil {
			return nil, err
		}
		elem.appendChild(wc)
	}

	optional(elem, "readAction", info.ReadAction, svd.ReadAction.String)

	if info.Fields != nil {
		fields := NewElement("fields")
		for i := range info.Fields {
			f, err := encodeField(&info.Fields[i], cfg)
			if err != nil {
				return nil, err
			}
			fields.appendChild(f)
		}
		elem.appendChild(fields)
	}

	setDerivedFrom(elem, info.DerivedFrom, cfg.RegisterName)
	return elem, nil
}

func encodeCluster(c *svd.Cluster, cfg *config.Config) (*Element, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: cluster", ErrNilEntity)
	}
	return encodeArray("cluster", c.Dim, cfg, func() (*Element, error) {
		return encodeClusterInfo(&c.ClusterInfo, cfg)
	})
}

func encodeClusterInfo(info *svd.ClusterInfo, cfg *config.Config) (*Element, error) {
	name := caseOf(cfg.ClusterName)

	elem := NewElement("cluster")
	elem.appendChild(NewNode("name", name(info.Name)))
	optional(elem, "description", info.Description, verbatim)
	optional(elem, "alternateCluster", info.AlternateCluster, name)
	optional(elem, "headerStructName", info.HeaderStructName, name)
	elem.appendChild(NewNode("addressOffset", config.FormatNumber(uint64(info.AddressOffset), cfg.ClusterAddressOffset)))
	elem.appendChild(encodeRegisterProperties(&info.RegisterProperties, cfg)...)

	children, err := encodeRegisterClusters(info.Children, cfg)
	if err != nil {
		return nil, err
	}
	elem.appendChild(children...)

	setDerivedFrom(elem, info.DerivedFrom, cfg.ClusterName)
	return elem, nil
}

// encodeRegisterClusters orders the entries according to the configuration
// and encodes each one.
func encodeRegisterClusters(items svd.RegisterClusters, cfg *config.Config) ([]Node, error) {
	for _, rc := range items {
		if isNilEntry(rc) {
			return nil, fmt.Errorf("%w: register or cluster entry", ErrNilEntity)
		}
	}

	sorted := SortRegisterClusters(items, cfg.RegistersOrClustersFirst, cfg.RegisterClusterSorting)
	nodes := make([]Node, 0, len(sorted))
	for _, rc := range sorted {
		var (
			e   *Element
			err error
		)
		switch rc := rc.(type) {
		case *svd.Register:
			e, err = encodeRegister(rc, cfg)
		case *svd.Cluster:
			e, err = encodeCluster(rc, cfg)
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, e)
	}
	return nodes, nil
}

func isNilEntry(rc svd.RegisterCluster) bool {
	switch rc := rc.(type) {
	case *svd.Register:
		return rc == nil
	case *svd.Cluster:
		return rc == nil
	}
	return true
}
