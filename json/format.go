package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/figdoc"
)

var _ figdoc.Formatter = (*Formatter)(nil)

// Formatter writes an extraction result as JSON.
type Formatter struct {
	Pretty bool
}

// Format implements figdoc.Formatter.
func (f *Formatter) Format(w io.Writer, r *figdoc.ExtractionResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// Marshal encodes v for query evaluation and node inspection output.
func Marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
