// Package figdoc extracts the textual content of Figma design files.
// It decodes the file JSON into a typed node tree, walks the tree with
// pluggable visitors, and flattens every text-bearing node into an ordered
// list annotated with its page/section/frame lineage, alongside a per-page
// structural summary.
//
// This package contains domain types, interfaces and the pure tree
// algorithms, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/, jmespath/).
package figdoc
