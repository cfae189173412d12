package encoder

import (
	"fmt"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

func encodePeripheral(p *svd.Peripheral, cfg *config.Config) (*Element, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: peripheral", ErrNilEntity)
	}
	return encodeArray("peripheral", p.Dim, cfg, func() (*Element, error) {
		return encodePeripheralInfo(&p.PeripheralInfo, cfg)
	})
}

func encodePeripheralInfo(info *svd.PeripheralInfo, cfg *config.Config) (*Element, error) {
	name := caseOf(cfg.PeripheralName)

	elem := NewElement("peripheral")
	elem.appendChild(NewNode("name", name(info.Name)))
	optional(elem, "displayName", info.DisplayName, verbatim)
	optional(elem, "version", info.Version, verbatim)
	optional(elem, "description", info.Description, verbatim)
	optional(elem, "alternatePeripheral", info.AlternatePeripheral, name)
	optional(elem, "groupName", info.GroupName, verbatim)
	optional(elem, "prependToName", info.PrependToName, name)
	optional(elem, "appendToName", info.AppendToName, name)
	optional(elem, "headerStructName", info.HeaderStructName, name)
	elem.appendChild(NewNode("baseAddress", config.FormatNumber(info.BaseAddress, cfg.PeripheralBaseAddress)))
	elem.appendChild(encodeRegisterProperties(&info.RegisterProperties, cfg)...)

	for i := range info.AddressBlocks {
		ab, err := encodeAddressBlock(&info.AddressBlocks[i], cfg)
		if err != nil {
			return nil, err
		}
		elem.appendChild(ab)
	}

	// Interrupts keep their declaration order.
	for i := range info.Interrupts {
		irq, err := encodeInterrupt(&info.Interrupts[i], cfg)
		if err != nil {
			return nil, err
		}
		elem.appendChild(irq)
	}

	if info.Registers != nil {
		children, err := encodeRegisterClusters(info.Registers, cfg)
		if err != nil {
			return nil, err
		}
		registers := NewElement("registers")
		registers.Children = children
		elem.appendChild(registers)
	}

	setDerivedFrom(elem, info.DerivedFrom, cfg.PeripheralName)
	return elem, nil
}

func encodeAddressBlock(ab *svd.AddressBlock, cfg *config.Config) (*Element, error) {
	if ab == nil {
		return nil, fmt.Errorf("%w: address block", ErrNilEntity)
	}

	elem := NewElement("addressBlock")
	elem.appendChild(
		NewNode("offset", config.FormatNumber(uint64(ab.Offset), cfg.AddressBlockOffset)),
		NewNode("size", config.FormatNumber(uint64(ab.Size), cfg.AddressBlockSize)),
		NewNode("usage", ab.Usage.String()),
	)
	optional(elem, "protection", ab.Protection, svd.Protection.String)
	return elem, nil
}

func encodeInterrupt(irq *svd.Interrupt, cfg *config.Config) (*Element, error) {
	if irq == nil {
		return nil, fmt.Errorf("%w: interrupt", ErrNilEntity)
	}

	elem := NewElement("interrupt")
	elem.appendChild(NewNode("name", config.ChangeCase(irq.Name, cfg.InterruptName)))
	optional(elem, "description", irq.Description, verbatim)
	elem.appendChild(NewNode("value", config.FormatNumber(uint64(irq.Value), config.Dec)))
	return elem, nil
}

func encodeRegisterProperties(p *svd.RegisterProperties, cfg *config.Config) []Node {
	if p == nil {
		return nil
	}

	// Collect into a scratch element so the optional helper can be reused.
	scratch := &Element{}
	optional(scratch, "size", p.Size, numberOf[uint32](cfg.RegisterSize))
	optional(scratch, "access", p.Access, svd.Access.String)
	optional(scratch, "protection", p.Protection, svd.Protection.String)
	optional(scratch, "resetValue", p.ResetValue, numberOf[uint64](cfg.RegisterResetValue))
	optional(scratch, "resetMask", p.ResetMask, numberOf[uint64](cfg.RegisterResetMask))
	return scratch.Children
}
