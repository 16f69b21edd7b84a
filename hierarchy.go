package figdoc

import "strings"

// UnknownPage is the page name used when a node has no page ancestor.
const UnknownPage = "Unknown Page"

// HierarchyPathSeparator joins the segments of a HierarchyPath.
const HierarchyPathSeparator = " > "

// HierarchyPath locates a node by its page, optional section and chain of
// enclosing frames.
type HierarchyPath struct {
	PageName    string   `json:"pageName"`
	SectionName *string  `json:"sectionName,omitempty"`
	FrameNames  []string `json:"frameNames"`
	GroupNames  []string `json:"groupNames,omitempty"`
}

// String returns the segments of the path joined by " > ".
func (p HierarchyPath) String() string {
	parts := make([]string, 0, 2+len(p.FrameNames)+len(p.GroupNames))
	parts = append(parts, p.PageName)
	if p.SectionName != nil {
		parts = append(parts, *p.SectionName)
	}
	parts = append(parts, p.FrameNames...)
	parts = append(parts, p.GroupNames...)
	return strings.Join(parts, HierarchyPathSeparator)
}

// Section returns the section name, or "" if the path has none.
func (p HierarchyPath) Section() string {
	if p.SectionName == nil {
		return ""
	}
	return *p.SectionName
}

// BuildHierarchyPath converts an ancestor-name list, as handed to a Visitor,
// into a HierarchyPath. Index 0 is the document name and is dropped. The
// first remaining segment that looks like a section name becomes the section;
// every other segment is treated as a frame.
//
// A frame literally named "Section Header" is classified as a section. This
// is existing behaviour that downstream consumers rely on.
func BuildHierarchyPath(path []string) HierarchyPath {
	hp := HierarchyPath{PageName: UnknownPage, FrameNames: []string{}}
	if len(path) < 2 {
		return hp
	}

	hp.PageName = path[1]
	for _, segment := range path[2:] {
		if hp.SectionName == nil && IsSectionName(segment) {
			s := segment
			hp.SectionName = &s
			continue
		}
		hp.FrameNames = append(hp.FrameNames, segment)
	}
	return hp
}

// IsSectionName reports whether name looks like a section: it contains
// "section" in any case, contains " > ", or starts with "> ".
func IsSectionName(name string) bool {
	return strings.Contains(strings.ToLower(name), "section") ||
		strings.Contains(name, " > ") ||
		strings.HasPrefix(name, "> ")
}
