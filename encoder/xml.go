package encoder

import (
	"encoding/xml"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MarshalXML writes the element tree. Attributes are written in key order so
// the output is deterministic.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}

	keys := maps.Keys(e.Attributes)
	slices.Sort(keys)
	for _, k := range keys {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: k}, Value: e.Attributes[k]})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		switch c := c.(type) {
		case *Element:
			if err := c.MarshalXML(enc, xml.StartElement{}); err != nil {
				return err
			}
		case Text:
			if err := enc.EncodeToken(xml.CharData(c)); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(start.End())
}

// WriteXML serializes e to w, indenting nested elements with indent.
func (e *Element) WriteXML(w io.Writer, indent string) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}
