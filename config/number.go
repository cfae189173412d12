package config

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber renders v in the given format. Dec is used for any format
// that is not recognised.
func FormatNumber(v uint64, f NumberFormat) string {
	switch f {
	case UpperHex:
		return fmt.Sprintf("0x%X", v)
	case UpperHex8:
		return fmt.Sprintf("0x%08X", v)
	case UpperHex16:
		return fmt.Sprintf("0x%016X", v)
	case LowerHex:
		return fmt.Sprintf("0x%x", v)
	case LowerHex8:
		return fmt.Sprintf("0x%08x", v)
	case LowerHex16:
		return fmt.Sprintf("0x%016x", v)
	case Bin:
		return "0b" + strconv.FormatUint(v, 2)
	}
	return strconv.FormatUint(v, 10)
}

// ParseNumber reads back a value produced by FormatNumber with the same
// format.
func ParseNumber(s string, f NumberFormat) (uint64, error) {
	prefix, base := "", 10
	switch f {
	case UpperHex, UpperHex8, UpperHex16, LowerHex, LowerHex8, LowerHex16:
		prefix, base = "0x", 16
	case Bin:
		prefix, base = "0b", 2
	}

	digits := s
	if prefix != "" {
		if !strings.HasPrefix(strings.ToLower(s), prefix) {
			return 0, fmt.Errorf("%w: %q is missing the %s prefix", ErrMalformedNumber, s, prefix)
		}
		digits = s[len(prefix):]
	}

	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedNumber, s, err)
	}
	return value, nil
}
