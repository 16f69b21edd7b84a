package figdoc

import (
	"regexp"
	"slices"
	"strings"
)

// FilterCriteria bounds the scope of an extraction. The zero value matches
// everything. Nil slices and nil patterns mean "not set".
type FilterCriteria struct {
	PageNames     []string
	PageIDs       []string
	PagePattern   *regexp.Regexp
	FramePattern  *regexp.Regexp
	IncludeHidden bool
}

// MatchesPage reports whether a page with the given name is in scope. When an
// allow-list is set the name must equal or contain one of its entries. When
// a page pattern is set the name must also match it.
func (f *FilterCriteria) MatchesPage(name string) bool {
	if f.PageNames != nil && !slices.ContainsFunc(f.PageNames, func(p string) bool {
		return p == name || strings.Contains(name, p)
	}) {
		return false
	}
	if f.PagePattern != nil && !f.PagePattern.MatchString(name) {
		return false
	}
	return true
}

// MatchesPageID reports whether a page with the given ID is in scope.
func (f *FilterCriteria) MatchesPageID(id string) bool {
	if f.PageIDs == nil {
		return true
	}
	return slices.Contains(f.PageIDs, id)
}

// MatchesFrame reports whether a frame name matches the frame pattern.
func (f *FilterCriteria) MatchesFrame(name string) bool {
	if f.FramePattern == nil {
		return true
	}
	return f.FramePattern.MatchString(name)
}

// IsEmpty reports whether no criterion is set.
func (f *FilterCriteria) IsEmpty() bool {
	return f.PageNames == nil &&
		f.PageIDs == nil &&
		f.PagePattern == nil &&
		f.FramePattern == nil &&
		!f.IncludeHidden
}

// CompilePattern compiles a user-supplied regular expression for the named
// filter field. Invalid syntax is reported as EINVALID.
func CompilePattern(field, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid %s pattern '%s': %v", field, pattern, err)
	}
	return re, nil
}

// ParsePageList splits a comma-separated list, trimming whitespace and
// dropping empty entries. It returns nil when nothing remains.
func ParsePageList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
