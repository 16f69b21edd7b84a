package figdoc

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var _ Formatter = FormatterFunc(nil)

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(w io.Writer, r *ExtractionResult) error

// Format calls f(w, r).
func (f FormatterFunc) Format(w io.Writer, r *ExtractionResult) error {
	return f(w, r)
}

// TextFormatter renders a result as a plain text report.
var TextFormatter = FormatterFunc(func(w io.Writer, r *ExtractionResult) error {
	_, err := io.WriteString(w, FormatText(r))
	return err
})

// FormatText renders a result as a plain text report: a header with file
// metadata and statistics followed by every text with its path.
func FormatText(r *ExtractionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s\n", r.Metadata.FileName)
	fmt.Fprintf(&b, "Version: %s\n", r.Metadata.Version)
	fmt.Fprintf(&b, "Extracted: %s\n\n", r.Metadata.ExtractedAt.Format(time.RFC3339))

	b.WriteString("Statistics:\n")
	fmt.Fprintf(&b, "  Pages: %d\n", r.Stats.TotalPages)
	fmt.Fprintf(&b, "  Frames: %d\n", r.Stats.TotalFrames)
	fmt.Fprintf(&b, "  Text nodes: %d\n", r.Stats.TotalTextNodes)
	fmt.Fprintf(&b, "  Characters: %d\n", r.Stats.TotalCharacters)
	fmt.Fprintf(&b, "  Extraction time: %dms\n", r.Stats.ExtractionTimeMS)
	fmt.Fprintf(&b, "  Memory: %.2fMB\n\n", r.Stats.MemorySizeMB)

	b.WriteString("Text Content:\n")
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n\n")

	for _, t := range r.Texts {
		fmt.Fprintf(&b, "Path: %s\n", t.Path.String())
		fmt.Fprintf(&b, "Node ID: %s\n", t.NodeID)
		if t.Style != nil {
			fmt.Fprintf(&b, "Style: %s %gpt (weight: %d)\n", t.Style.FontFamily, t.Style.FontSize, t.Style.FontWeight)
		}
		fmt.Fprintf(&b, "\n%s\n\n", t.Text)
		b.WriteString(strings.Repeat("-", 80))
		b.WriteString("\n\n")
	}

	return b.String()
}
