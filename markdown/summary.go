package markdown

import (
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/figdoc"
	md "github.com/nao1215/markdown"
)

// GeneralSection names the group for texts outside any section.
const GeneralSection = "General"

// descriptionMinLength is the byte length above which a text counts as a
// description rather than a UI label.
const descriptionMinLength = 50

// Ensure SummaryFormatter implements figdoc.Formatter.
var _ figdoc.Formatter = (*SummaryFormatter)(nil)

// SummaryFormatter renders a compact digest for language models: texts are
// deduplicated and grouped by page and section, then sorted into notes,
// descriptions and labels.
type SummaryFormatter struct{}

type sectionContent struct {
	notes        []string
	descriptions []string
	labels       []string
}

// Format writes the summary of r to w.
func (f *SummaryFormatter) Format(w io.Writer, r *figdoc.ExtractionResult) error {
	pages := summarize(r.Texts)

	doc := md.NewMarkdown(w).H1(r.Metadata.FileName)

	for _, page := range sortedKeys(pages) {
		doc.PlainText("").H2(page)

		sections := pages[page]
		for _, section := range sortedKeys(sections) {
			content := sections[section]
			doc.PlainText("").H3(section)

			if len(content.notes) > 0 {
				doc.PlainText("").H4("Notes")
				for _, note := range content.notes {
					doc.PlainText("").Blockquote(note)
				}
			}
			if len(content.descriptions) > 0 {
				doc.PlainText("").H4("Descriptions").PlainText("").BulletList(content.descriptions...)
			}
			if len(content.labels) > 0 {
				doc.PlainText("").H4("UI Labels").PlainText("").BulletList(content.labels...)
			}

			doc.PlainText("").HorizontalRule()
		}
	}

	return doc.Build()
}

func summarize(texts []figdoc.ExtractedText) map[string]map[string]*sectionContent {
	seen := make(map[string]struct{})
	pages := make(map[string]map[string]*sectionContent)

	for _, t := range texts {
		trimmed := strings.TrimSpace(t.Text)
		normalized := strings.ToLower(trimmed)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		section := GeneralSection
		if t.Path.SectionName != nil {
			section = *t.Path.SectionName
		}

		sections, ok := pages[t.Path.PageName]
		if !ok {
			sections = make(map[string]*sectionContent)
			pages[t.Path.PageName] = sections
		}
		content, ok := sections[section]
		if !ok {
			content = &sectionContent{}
			sections[section] = content
		}

		switch {
		case t.NodeType == figdoc.TextNodeSticky:
			content.notes = append(content.notes, trimmed)
		case isDescription(trimmed):
			content.descriptions = append(content.descriptions, trimmed)
		default:
			content.labels = append(content.labels, trimmed)
		}
	}

	return pages
}

func isDescription(text string) bool {
	return len(text) > descriptionMinLength || strings.Contains(text, "\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
