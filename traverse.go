package figdoc

// Visitor receives every node of a traversal in pre-order.
//
// The path slice lists the names of the node's ancestors, starting with the
// document name. It is only valid for the duration of the call; visitors that
// retain it must copy it.
type Visitor interface {
	Visit(node *Node, depth int, path []string)
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc func(node *Node, depth int, path []string)

// Visit calls f(node, depth, path).
func (f VisitorFunc) Visit(node *Node, depth int, path []string) {
	f(node, depth, path)
}

// Traverse walks the document depth-first in pre-order, starting at depth 1
// for the document's direct children.
func Traverse(doc *Document, v Visitor) {
	if doc == nil {
		return
	}
	walk(doc.Name, doc.Children, v)
}

// TraversePages performs the same walk as Traverse, restricted to the pages
// whose ID is in pageIDs. Pages are visited in document order regardless of
// the order of pageIDs.
func TraversePages(doc *Document, pageIDs []string, v Visitor) {
	if doc == nil {
		return
	}

	wanted := make(map[string]struct{}, len(pageIDs))
	for _, id := range pageIDs {
		wanted[id] = struct{}{}
	}

	var pages []*Node
	for _, child := range doc.Children {
		if child == nil {
			continue
		}
		if _, ok := child.Data.(*CanvasData); !ok {
			continue
		}
		if _, ok := wanted[child.ID]; ok {
			pages = append(pages, child)
		}
	}

	walk(doc.Name, pages, v)
}

// frame is a pending visit. pathLen is the length the shared path must be
// truncated to before the node is visited.
type frame struct {
	node    *Node
	depth   int
	pathLen int
}

// walk visits roots and their descendants using an explicit stack so that
// document depth is bounded by memory rather than goroutine stack size.
func walk(rootName string, roots []*Node, v Visitor) {
	path := []string{rootName}
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i], depth: 1, pathLen: 1})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}

		path = path[:f.pathLen]
		v.Visit(f.node, f.depth, path[:f.pathLen:f.pathLen])

		if !f.node.IsContainer() {
			continue
		}
		children := f.node.Children()
		if len(children) == 0 {
			continue
		}

		path = append(path, f.node.Name)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], depth: f.depth + 1, pathLen: len(path)})
		}
	}
}
