// Package extract turns decoded Figma documents into extraction results.
// It holds the text extractor visitor, the page structure summarizer and
// the service that ties fetching, decoding and extraction together.
package extract

import "github.com/fwojciec/figdoc"

var _ figdoc.Visitor = (*TextExtractor)(nil)

// TextExtractor collects the non-blank text of every visited node together
// with its hierarchy path. Sequence numbers are gapless: skipped nodes do
// not consume one.
type TextExtractor struct {
	filter *figdoc.FilterCriteria
	texts  []figdoc.ExtractedText
}

// NewTextExtractor returns an extractor. When filter carries a frame
// pattern, only nodes whose section or one of whose frames matches it are
// collected. A nil filter collects everything.
func NewTextExtractor(filter *figdoc.FilterCriteria) *TextExtractor {
	return &TextExtractor{filter: filter, texts: []figdoc.ExtractedText{}}
}

// Visit implements figdoc.Visitor.
func (e *TextExtractor) Visit(node *figdoc.Node, _ int, path []string) {
	chars, ok := node.Characters()
	if !ok || figdoc.IsBlank(chars) {
		return
	}

	hp := figdoc.BuildHierarchyPath(path)
	if !e.matchesFrame(hp) {
		return
	}

	text := figdoc.ExtractedText{
		NodeID:         node.ID,
		NodeType:       figdoc.TextNodeText,
		Text:           chars,
		Path:           hp,
		SequenceNumber: len(e.texts),
	}
	switch d := node.Data.(type) {
	case *figdoc.StickyData:
		text.NodeType = figdoc.TextNodeSticky
	case *figdoc.TextData:
		text.Style = figdoc.NewTextStyle(d.Style)
	}

	e.texts = append(e.texts, text)
}

func (e *TextExtractor) matchesFrame(hp figdoc.HierarchyPath) bool {
	if e.filter == nil || e.filter.FramePattern == nil {
		return true
	}
	if hp.SectionName != nil && e.filter.MatchesFrame(*hp.SectionName) {
		return true
	}
	for _, name := range hp.FrameNames {
		if e.filter.MatchesFrame(name) {
			return true
		}
	}
	return false
}

// Texts returns the collected texts in visit order.
func (e *TextExtractor) Texts() []figdoc.ExtractedText {
	return e.texts
}

// Count returns the number of collected texts.
func (e *TextExtractor) Count() int {
	return len(e.texts)
}
