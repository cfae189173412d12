package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

func encodeDimElement(d *svd.DimElement, cfg *config.Config) (*Element, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: dimension element", ErrNilEntity)
	}

	elem := NewElement("dimElement")
	elem.appendChild(
		NewNode("dim", config.FormatNumber(uint64(d.Dim), cfg.DimDim)),
		NewNode("dimIncrement", config.FormatNumber(uint64(d.DimIncrement), cfg.DimIncrement)),
	)
	if len(d.DimIndex) > 0 {
		elem.appendChild(NewNode("dimIndex", formatDimIndex(d.DimIndex)))
	}
	optional(elem, "dimName", d.DimName, verbatim)

	if d.DimArrayIndex != nil {
		dai := NewElement("dimArrayIndex")
		optional(dai, "headerEnumName", d.DimArrayIndex.HeaderEnumName, verbatim)
		for i := range d.DimArrayIndex.Values {
			v, err := encodeEnumeratedValue(&d.DimArrayIndex.Values[i], cfg)
			if err != nil {
				return nil, err
			}
			dai.appendChild(v)
		}
		elem.appendChild(dai)
	}
	return elem, nil
}

// formatDimIndex writes consecutive numeric or letter indices as a range and
// everything else as a comma separated list.
func formatDimIndex(index []string) string {
	if len(index) > 1 && (isNumericRange(index) || isLetterRange(index)) {
		return index[0] + "-" + index[len(index)-1]
	}
	return strings.Join(index, ",")
}

func isNumericRange(index []string) bool {
	start, err := strconv.ParseUint(index[0], 10, 32)
	if err != nil {
		return false
	}
	for i, s := range index {
		if s != strconv.FormatUint(start+uint64(i), 10) {
			return false
		}
	}
	return true
}

func isLetterRange(index []string) bool {
	for i, s := range index {
		if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
			return false
		}
		if s[0] != index[0][0]+byte(i) {
			return false
		}
	}
	return true
}
