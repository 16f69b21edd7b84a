// Package markdown renders extraction results as Markdown documents.
package markdown

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fwojciec/figdoc"
	md "github.com/nao1215/markdown"
)

// Ensure Formatter implements figdoc.Formatter.
var _ figdoc.Formatter = (*Formatter)(nil)

// Formatter renders a full report: metadata, statistics, page structure and
// every extracted text with its hierarchy path.
type Formatter struct{}

// Format writes r to w as Markdown.
func (f *Formatter) Format(w io.Writer, r *figdoc.ExtractionResult) error {
	doc := md.NewMarkdown(w).
		H1(r.Metadata.FileName).
		PlainText("").
		PlainText(fmt.Sprintf("%s %s", md.Bold("Version:"), r.Metadata.Version)).
		PlainText(fmt.Sprintf("%s %s", md.Bold("Extracted:"), r.Metadata.ExtractedAt.UTC().Format(time.RFC3339))).
		PlainText("").
		H2("Statistics").
		PlainText("").
		Table(md.TableSet{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Pages", strconv.Itoa(r.Stats.TotalPages)},
				{"Frames", strconv.Itoa(r.Stats.TotalFrames)},
				{"Text nodes", strconv.Itoa(r.Stats.TotalTextNodes)},
				{"Characters", strconv.Itoa(r.Stats.TotalCharacters)},
				{"Extraction time", fmt.Sprintf("%dms", r.Stats.ExtractionTimeMS)},
				{"Memory", fmt.Sprintf("%.2fMB", r.Stats.MemorySizeMB)},
			},
		}).
		PlainText("").
		H2("Document Structure").
		PlainText("")

	if len(r.Structure.Pages) > 0 {
		items := make([]string, 0, len(r.Structure.Pages))
		for _, p := range r.Structure.Pages {
			items = append(items, fmt.Sprintf("%s (%d frames, %d text nodes)", md.Bold(p.Name), p.FrameCount, p.TextNodeCount))
		}
		doc.BulletList(items...).PlainText("")
	}

	doc.H2("Text Content").PlainText("")

	currentPage := ""
	for i, t := range r.Texts {
		if i == 0 || t.Path.PageName != currentPage {
			currentPage = t.Path.PageName
			doc.H3(currentPage).PlainText("")
		}
		doc.PlainText(fmt.Sprintf("%s %s", md.Bold("Path:"), t.Path.String()))
		if t.Style != nil {
			doc.PlainText(md.Italic(fmt.Sprintf("%gpt %s", t.Style.FontSize, t.Style.FontFamily)))
		}
		doc.PlainText("").
			PlainText(t.Text).
			PlainText("").
			HorizontalRule().
			PlainText("")
	}

	return doc.Build()
}
