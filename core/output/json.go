package output

import (
	"io"

	"github.com/goccy/go-json"

	"neoncost/core/report"
)

// JSONFormatter renders the report as an indented JSON document. The
// report struct carries its own JSON tags, so this is a straight encode;
// a nil forecast serializes as null.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the JSON report to w.
func (f *JSONFormatter) Render(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
