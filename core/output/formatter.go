// Package output renders reports for humans and machines. It never
// computes costs; it only formats what core/report produced.
package output

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"neoncost/core/report"
	"neoncost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is the human-readable terminal report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, r *report.Report) error
}

// New returns the formatter for a format name.
func New(f Format) (Formatter, error) {
	switch f {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Input("unknown output format: " + string(f))
	}
}

// formatCurrency renders a dollar amount as $x,xxx.xx. Going through
// decimal keeps float artifacts out of rendered money.
func formatCurrency(v float64) string {
	return "$" + groupThousands(decimal.NewFromFloat(v).StringFixed(2))
}

// formatNumber renders a quantity with thousands separators and two
// decimal places.
func formatNumber(v float64) string {
	return groupThousands(decimal.NewFromFloat(v).StringFixed(2))
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
