package extract

import "github.com/fwojciec/figdoc"

// Summarize returns one PageInfo per page accepted by filter, in document
// order. A nil filter accepts every page.
//
// Text node counts include blank texts, so they can exceed the number of
// texts the extractor reports for the same page.
func Summarize(doc *figdoc.Document, filter *figdoc.FilterCriteria) figdoc.DocumentStructure {
	if filter == nil {
		filter = &figdoc.FilterCriteria{}
	}

	structure := figdoc.DocumentStructure{Pages: []figdoc.PageInfo{}}
	if doc == nil {
		return structure
	}

	for _, page := range doc.Pages() {
		if !filter.MatchesPage(page.Name) || !filter.MatchesPageID(page.ID) {
			continue
		}
		children := page.Children()
		structure.Pages = append(structure.Pages, figdoc.PageInfo{
			ID:            page.ID,
			Name:          page.Name,
			FrameCount:    countFrames(children),
			TextNodeCount: countTextNodes(children),
		})
	}
	return structure
}

// Extract collects the texts and page structure of doc. With an empty
// filter the whole document is walked; otherwise only the pages accepted by
// the page predicates are.
func Extract(doc *figdoc.Document, filter *figdoc.FilterCriteria) ([]figdoc.ExtractedText, figdoc.DocumentStructure) {
	if filter == nil {
		filter = &figdoc.FilterCriteria{}
	}

	structure := Summarize(doc, filter)
	extractor := NewTextExtractor(filter)

	if filter.IsEmpty() {
		figdoc.Traverse(doc, extractor)
		return extractor.Texts(), structure
	}

	var pageIDs []string
	if doc != nil {
		for _, page := range doc.Pages() {
			if filter.MatchesPage(page.Name) && filter.MatchesPageID(page.ID) {
				pageIDs = append(pageIDs, page.ID)
			}
		}
	}
	figdoc.TraversePages(doc, pageIDs, extractor)

	return extractor.Texts(), structure
}

func countFrames(nodes []*figdoc.Node) int {
	var n int
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if _, ok := node.Data.(*figdoc.FrameData); ok {
			n++
		}
	}
	return n
}

// countTextNodes counts text and sticky descendants, descending only
// through frames, groups, sections, components, component sets and
// instances.
func countTextNodes(nodes []*figdoc.Node) int {
	var count int
	stack := append([]*figdoc.Node(nil), nodes...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}

		switch d := node.Data.(type) {
		case *figdoc.TextData, *figdoc.StickyData:
			count++
		case *figdoc.FrameData:
			stack = append(stack, d.Children...)
		case *figdoc.GroupData:
			stack = append(stack, d.Children...)
		case *figdoc.SectionData:
			stack = append(stack, d.Children...)
		case *figdoc.ComponentData:
			stack = append(stack, d.Children...)
		case *figdoc.ComponentSetData:
			stack = append(stack, d.Children...)
		case *figdoc.InstanceData:
			stack = append(stack, d.Children...)
		}
	}
	return count
}
