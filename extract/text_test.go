package extract_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts text with hierarchy path", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "Page 1", frame("1:0", "Frame 1", text("1:1", "Hello, World!"))))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 1, e.Count())
		got := e.Texts()[0]
		assert.Equal(t, "1:1", got.NodeID)
		assert.Equal(t, "Hello, World!", got.Text)
		assert.Equal(t, figdoc.TextNodeText, got.NodeType)
		assert.Equal(t, "Page 1", got.Path.PageName)
		assert.Nil(t, got.Path.SectionName)
		assert.Equal(t, []string{"Frame 1"}, got.Path.FrameNames)
		assert.Equal(t, 0, got.SequenceNumber)
		assert.Nil(t, got.Style)
	})

	t.Run("skips whitespace-only text", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "Page 1", frame("1:0", "Frame 1", text("1:1", "   "))))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		assert.Zero(t, e.Count())
		assert.NotNil(t, e.Texts())
	})

	t.Run("sequence numbers are gapless across skipped nodes", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "P",
			text("1", "a"),
			text("2", " \n\t"),
			sticky("3", "b"),
			text("4", ""),
			text("5", "c"),
		))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		texts := e.Texts()
		require.Len(t, texts, 3)
		for i, tx := range texts {
			assert.Equal(t, i, tx.SequenceNumber)
		}
		assert.Equal(t, []string{"1", "3", "5"}, []string{texts[0].NodeID, texts[1].NodeID, texts[2].NodeID})
	})

	t.Run("sticky notes are typed as sticky", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "Board", sticky("1:1", "Remember this")))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 1, e.Count())
		assert.Equal(t, figdoc.TextNodeSticky, e.Texts()[0].NodeType)
		assert.Nil(t, e.Texts()[0].Style)
	})

	t.Run("captures style with defaults", func(t *testing.T) {
		t.Parallel()

		weight := 600
		n := text("1:1", "Styled")
		n.Data.(*figdoc.TextData).Style = &figdoc.TypeStyle{FontWeight: &weight}
		d := doc("Doc", page("0:1", "P", n))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 1, e.Count())
		assert.Equal(t, &figdoc.TextStyle{FontFamily: "Unknown", FontSize: 16, FontWeight: 600}, e.Texts()[0].Style)
	})

	t.Run("reports other nodes with characters as text", func(t *testing.T) {
		t.Parallel()

		chars := "widget label"
		blank := "  "
		d := doc("Doc", page("0:1", "P",
			&figdoc.Node{Type: "FUTURE", ID: "9:1", Data: &figdoc.OtherData{Characters: &chars}},
			&figdoc.Node{Type: "FUTURE", ID: "9:2", Data: &figdoc.OtherData{Characters: &blank}},
			&figdoc.Node{Type: "FUTURE", ID: "9:3", Data: &figdoc.OtherData{}},
		))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 1, e.Count())
		assert.Equal(t, "9:1", e.Texts()[0].NodeID)
		assert.Equal(t, figdoc.TextNodeText, e.Texts()[0].NodeType)
	})

	t.Run("classifies section-like frame as section", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "P", frame("1:0", "Section > Details", text("1:1", "inside"))))

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 1, e.Count())
		path := e.Texts()[0].Path
		require.NotNil(t, path.SectionName)
		assert.Equal(t, "Section > Details", *path.SectionName)
		assert.Empty(t, path.FrameNames)
	})

	t.Run("page name is the first segment after the document", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc",
			page("0:1", "Alpha", group("1:0", "G", frame("1:1", "F", text("1:2", "x")))),
			page("0:2", "Beta", text("2:1", "y")),
		)

		e := extract.NewTextExtractor(nil)
		figdoc.Traverse(d, e)

		require.Equal(t, 2, e.Count())
		assert.Equal(t, "Alpha", e.Texts()[0].Path.PageName)
		assert.Equal(t, []string{"G", "F"}, e.Texts()[0].Path.FrameNames)
		assert.Equal(t, "Beta", e.Texts()[1].Path.PageName)
	})

	t.Run("frame pattern keeps only matching frames", func(t *testing.T) {
		t.Parallel()

		d := doc("Doc", page("0:1", "P",
			frame("1:0", "Login Form", text("1:1", "Email")),
			frame("2:0", "Footer", text("2:1", "Copyright")),
			section("3:0", "Login Section", text("3:1", "Welcome back")),
			text("4:1", "Loose"),
		))
		filter := &figdoc.FilterCriteria{FramePattern: regexp.MustCompile(`Login`)}

		e := extract.NewTextExtractor(filter)
		figdoc.Traverse(d, e)

		texts := e.Texts()
		require.Len(t, texts, 2)
		assert.Equal(t, "1:1", texts[0].NodeID)
		assert.Equal(t, "3:1", texts[1].NodeID)
		assert.Equal(t, 1, texts[1].SequenceNumber)
	})
}
