package figdoc_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/fwojciec/figdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvas(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeCanvas, ID: id, Name: name, Visible: true,
		Data: &figdoc.CanvasData{Children: children}}
}

func frameNode(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeFrame, ID: id, Name: name, Visible: true,
		Data: &figdoc.FrameData{Children: children}}
}

func groupNode(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeGroup, ID: id, Name: name, Visible: true,
		Data: &figdoc.GroupData{Children: children}}
}

func textNode(id, chars string) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeText, ID: id, Name: chars, Visible: true,
		Data: &figdoc.TextData{Characters: chars}}
}

func rectNode(id string) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeRectangle, ID: id, Name: "Rect", Visible: true,
		Data: &figdoc.RectangleData{}}
}

type visit struct {
	ID    string
	Depth int
	Path  []string
}

func record(visits *[]visit) figdoc.VisitorFunc {
	return func(n *figdoc.Node, depth int, path []string) {
		*visits = append(*visits, visit{ID: n.ID, Depth: depth, Path: slices.Clone(path)})
	}
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	t.Run("visits in pre-order with depth and ancestor path", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			canvas("0:1", "Page 1", frameNode("1:0", "Frame 1", textNode("1:1", "Hello, World!"))),
		}}

		var visits []visit
		figdoc.Traverse(doc, record(&visits))

		assert.Equal(t, []visit{
			{ID: "0:1", Depth: 1, Path: []string{"Doc"}},
			{ID: "1:0", Depth: 2, Path: []string{"Doc", "Page 1"}},
			{ID: "1:1", Depth: 3, Path: []string{"Doc", "Page 1", "Frame 1"}},
		}, visits)
	})

	t.Run("sibling subtrees do not share path segments", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			canvas("0:1", "P",
				frameNode("1:0", "A", groupNode("1:1", "G", textNode("1:2", "x"))),
				frameNode("2:0", "B", textNode("2:1", "y")),
				textNode("3:0", "z"),
			),
		}}

		var visits []visit
		figdoc.Traverse(doc, record(&visits))

		ids := make([]string, 0, len(visits))
		for _, v := range visits {
			ids = append(ids, v.ID)
		}
		assert.Equal(t, []string{"0:1", "1:0", "1:1", "1:2", "2:0", "2:1", "3:0"}, ids)
		assert.Equal(t, []string{"Doc", "P", "A", "G"}, visits[3].Path)
		assert.Equal(t, []string{"Doc", "P", "B"}, visits[5].Path)
		assert.Equal(t, []string{"Doc", "P"}, visits[6].Path)
		assert.Equal(t, 2, visits[6].Depth)
	})

	t.Run("leaves contribute no path segment", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			canvas("0:1", "P", rectNode("1:0"), textNode("1:1", "after")),
		}}

		var visits []visit
		figdoc.Traverse(doc, record(&visits))

		require.Len(t, visits, 3)
		assert.Equal(t, []string{"Doc", "P"}, visits[2].Path)
	})

	t.Run("descends into other nodes that carry children", func(t *testing.T) {
		t.Parallel()

		chars := "inner"
		other := &figdoc.Node{Type: "MYSTERY", ID: "9:0", Name: "Mystery", Visible: true,
			Data: &figdoc.OtherData{Characters: &chars, Children: []*figdoc.Node{textNode("9:1", "deep")}}}
		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{canvas("0:1", "P", other)}}

		var visits []visit
		figdoc.Traverse(doc, record(&visits))

		require.Len(t, visits, 3)
		assert.Equal(t, visit{ID: "9:1", Depth: 3, Path: []string{"Doc", "P", "Mystery"}}, visits[2])
	})

	t.Run("visits every node exactly once", func(t *testing.T) {
		t.Parallel()

		var nodes []*figdoc.Node
		for i := range 5 {
			var kids []*figdoc.Node
			for j := range 4 {
				kids = append(kids, textNode(fmt.Sprintf("%d:%d", i, j), "t"))
			}
			nodes = append(nodes, frameNode(fmt.Sprintf("f%d", i), "F", kids...))
		}
		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{canvas("0:1", "P", nodes...)}}

		seen := map[string]int{}
		figdoc.Traverse(doc, figdoc.VisitorFunc(func(n *figdoc.Node, _ int, _ []string) {
			seen[n.ID]++
		}))

		assert.Len(t, seen, 1+5+20)
		for id, n := range seen {
			assert.Equal(t, 1, n, id)
		}
	})

	t.Run("handles very deep documents", func(t *testing.T) {
		t.Parallel()

		const depth = 100000
		leaf := textNode("leaf", "bottom")
		node := leaf
		for i := range depth {
			node = groupNode(fmt.Sprintf("g%d", i), "G", node)
		}
		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{canvas("0:1", "P", node)}}

		var leafDepth, leafPathLen int
		figdoc.Traverse(doc, figdoc.VisitorFunc(func(n *figdoc.Node, d int, path []string) {
			if n.ID == "leaf" {
				leafDepth = d
				leafPathLen = len(path)
			}
		}))

		assert.Equal(t, depth+2, leafDepth)
		assert.Equal(t, depth+2, leafPathLen)
	})

	t.Run("ignores nil document", func(t *testing.T) {
		t.Parallel()

		called := false
		figdoc.Traverse(nil, figdoc.VisitorFunc(func(*figdoc.Node, int, []string) { called = true }))

		assert.False(t, called)
	})
}

func TestTraversePages(t *testing.T) {
	t.Parallel()

	t.Run("visits only selected pages", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			canvas("0:1", "A", textNode("1:1", "in A")),
			canvas("0:2", "B", textNode("2:1", "in B")),
		}}

		var visits []visit
		figdoc.TraversePages(doc, []string{"0:2"}, record(&visits))

		require.Len(t, visits, 2)
		for _, v := range visits {
			assert.NotContains(t, v.Path, "A")
		}
		assert.Equal(t, "0:2", visits[0].ID)
		assert.Equal(t, "2:1", visits[1].ID)
	})

	t.Run("keeps document order regardless of id order", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			canvas("0:1", "A"), canvas("0:2", "B"), canvas("0:3", "C"),
		}}

		var visits []visit
		figdoc.TraversePages(doc, []string{"0:3", "0:1"}, record(&visits))

		require.Len(t, visits, 2)
		assert.Equal(t, "0:1", visits[0].ID)
		assert.Equal(t, "0:3", visits[1].ID)
	})

	t.Run("skips non-canvas children even when their id is listed", func(t *testing.T) {
		t.Parallel()

		doc := &figdoc.Document{Name: "Doc", Children: []*figdoc.Node{
			frameNode("0:9", "Stray"), canvas("0:1", "A"),
		}}

		var visits []visit
		figdoc.TraversePages(doc, []string{"0:9", "0:1"}, record(&visits))

		require.Len(t, visits, 1)
		assert.Equal(t, "0:1", visits[0].ID)
	})
}
