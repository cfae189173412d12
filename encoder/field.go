package encoder

import (
	"fmt"
	"strconv"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

func encodeField(f *svd.Field, cfg *config.Config) (*Element, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: field", ErrNilEntity)
	}
	return encodeArray("field", f.Dim, cfg, func() (*Element, error) {
		return encodeFieldInfo(&f.FieldInfo, cfg)
	})
}

func encodeFieldInfo(info *svd.FieldInfo, cfg *config.Config) (*Element, error) {
	elem := NewElement("field")
	elem.appendChild(NewNode("name", config.ChangeCase(info.Name, cfg.FieldName)))
	optional(elem, "description", info.Description, verbatim)
	elem.appendChild(encodeBitRange(info.BitRange, cfg.FieldBitRange)...)
	optional(elem, "access", info.Access, svd.Access.String)
	optional(elem, "modifiedWriteValues", info.ModifiedWriteValues, svd.ModifiedWriteValues.String)

	if info.WriteConstraint != nil {
		wc, err := encodeWriteConstraint(info.WriteConstraint)
		if err != nil {
			return nil, err
		}
		elem.appendChild(wc)
	}

	optional(elem, "readAction", info.ReadAction, svd.ReadAction.String)

	for i := range info.EnumeratedValues {
		ev, err := encodeEnumeratedValues(&info.EnumeratedValues[i], cfg)
		if err != nil {
			return nil, err
		}
		elem.appendChild(ev)
	}

	setDerivedFrom(elem, info.DerivedFrom, cfg.FieldName)
	return elem, nil
}

func encodeBitRange(br svd.BitRange, f config.BitRangeFormat) []Node {
	rangeType := br.RangeType
	switch f {
	case config.BitRangeString:
		rangeType = svd.BitRangeString
	case config.BitRangeOffsetWidth:
		rangeType = svd.BitRangeOffsetWidth
	case config.BitRangeMsbLsb:
		rangeType = svd.BitRangeMsbLsb
	}

	switch rangeType {
	case svd.BitRangeString:
		return []Node{NewNode("bitRange", fmt.Sprintf("[%d:%d]", br.MSB(), br.LSB()))}
	case svd.BitRangeMsbLsb:
		return []Node{
			NewNode("lsb", strconv.FormatUint(uint64(br.LSB()), 10)),
			NewNode("msb", strconv.FormatUint(uint64(br.MSB()), 10)),
		}
	}
	return []Node{
		NewNode("bitOffset", strconv.FormatUint(uint64(br.Offset), 10)),
		NewNode("bitWidth", strconv.FormatUint(uint64(br.Width), 10)),
	}
}

func encodeEnumeratedValues(ev *svd.EnumeratedValues, cfg *config.Config) (*Element, error) {
	if ev == nil {
		return nil, fmt.Errorf("%w: enumerated values", ErrNilEntity)
	}
	name := caseOf(cfg.EnumeratedValuesName)

	elem := NewElement("enumeratedValues")
	optional(elem, "name", ev.Name, name)
	optional(elem, "headerEnumName", ev.HeaderEnumName, name)
	optional(elem, "usage", ev.Usage, svd.Usage.String)

	for i := range ev.Values {
		v, err := encodeEnumeratedValue(&ev.Values[i], cfg)
		if err != nil {
			return nil, err
		}
		elem.appendChild(v)
	}

	setDerivedFrom(elem, ev.DerivedFrom, cfg.EnumeratedValuesName)
	return elem, nil
}

func encodeEnumeratedValue(ev *svd.EnumeratedValue, cfg *config.Config) (*Element, error) {
	if ev == nil {
		return nil, fmt.Errorf("%w: enumerated value", ErrNilEntity)
	}
	if ev.Value == nil && (ev.IsDefault == nil || !*ev.IsDefault) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnumeratedValue, ev.Name)
	}

	elem := NewElement("enumeratedValue")
	elem.appendChild(NewNode("name", config.ChangeCase(ev.Name, cfg.EnumeratedValueName)))
	optional(elem, "description", ev.Description, verbatim)
	optional(elem, "value", ev.Value, numberOf[uint64](cfg.EnumeratedValueValue))
	optional(elem, "isDefault", ev.IsDefault, strconv.FormatBool)
	return elem, nil
}

func encodeWriteConstraint(wc *svd.WriteConstraint) (*Element, error) {
	if wc == nil {
		return nil, fmt.Errorf("%w: write constraint", ErrNilEntity)
	}

	set := 0
	if wc.WriteAsRead != nil {
		set++
	}
	if wc.UseEnumeratedValues != nil {
		set++
	}
	if wc.Range != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: %d members set", ErrInvalidWriteConstraint, set)
	}

	elem := NewElement("writeConstraint")
	optional(elem, "writeAsRead", wc.WriteAsRead, strconv.FormatBool)
	optional(elem, "useEnumeratedValues", wc.UseEnumeratedValues, strconv.FormatBool)
	if wc.Range != nil {
		r := NewElement("range")
		r.appendChild(
			NewNode("minimum", strconv.FormatUint(wc.Range.Min, 10)),
			NewNode("maximum", strconv.FormatUint(wc.Range.Max, 10)),
		)
		elem.appendChild(r)
	}
	return elem, nil
}
