package tabular

import (
	"strconv"
	"strings"
)

// NormalizeNumber parses a raw metric cell into a float. Thousands
// separators are stripped and dash-like placeholder glyphs ("—", "−")
// count as no data, so only ASCII digits and the decimal point survive.
// The second return is false when the cell holds no usable value; that is
// the only failure signal, never an error.
func NormalizeNumber(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		// e.g. multiple decimal points
		return 0, false
	}
	return v, true
}
