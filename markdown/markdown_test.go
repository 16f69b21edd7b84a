package markdown_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testResult() *figdoc.ExtractionResult {
	return &figdoc.ExtractionResult{
		Metadata: figdoc.FileMetadata{
			FileKey:     "test123",
			FileName:    "Test File",
			Version:     "1.0",
			ExtractedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		Structure: figdoc.DocumentStructure{Pages: []figdoc.PageInfo{
			{ID: "0:1", Name: "Page 1", FrameCount: 2, TextNodeCount: 3},
		}},
		Texts: []figdoc.ExtractedText{
			{
				NodeID:   "1:1",
				NodeType: figdoc.TextNodeText,
				Text:     "Hello World",
				Path:     figdoc.HierarchyPath{PageName: "Page 1", FrameNames: []string{"Frame 1"}},
				Style:    &figdoc.TextStyle{FontFamily: "Inter", FontSize: 16, FontWeight: 400},
			},
		},
		Stats: figdoc.ExtractionStats{TotalPages: 1, TotalFrames: 2, TotalTextNodes: 1, TotalCharacters: 11, ExtractionTimeMS: 42, MemorySizeMB: 0.5},
	}
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := (&markdown.Formatter{}).Format(&buf, testResult())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "# Test File")
	assert.Contains(t, out, "**Version:** 1.0")
	assert.Contains(t, out, "**Extracted:** 2024-03-01T09:00:00Z")
	assert.Contains(t, out, "## Statistics")
	assert.Contains(t, out, "Text nodes")
	assert.Contains(t, out, "42ms")
	assert.Contains(t, out, "0.50MB")
	assert.Contains(t, out, "## Document Structure")
	assert.Contains(t, out, "- **Page 1** (2 frames, 3 text nodes)")
	assert.Contains(t, out, "### Page 1")
	assert.Contains(t, out, "**Path:** Page 1 > Frame 1")
	assert.Contains(t, out, "*16pt Inter*")
	assert.Contains(t, out, "Hello World")
}

func TestFormatter_PageHeadingOncePerRun(t *testing.T) {
	t.Parallel()

	r := testResult()
	r.Texts = []figdoc.ExtractedText{
		{NodeID: "1", Text: "a", Path: figdoc.HierarchyPath{PageName: "P1"}},
		{NodeID: "2", Text: "b", Path: figdoc.HierarchyPath{PageName: "P1"}},
		{NodeID: "3", Text: "c", Path: figdoc.HierarchyPath{PageName: "P2"}},
	}

	var buf bytes.Buffer
	require.NoError(t, (&markdown.Formatter{}).Format(&buf, r))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "### P1"))
	assert.Equal(t, 1, strings.Count(out, "### P2"))
}

func TestSummaryFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("groups by page and section", func(t *testing.T) {
		t.Parallel()

		r := testResult()
		r.Texts = []figdoc.ExtractedText{
			{NodeID: "1", NodeType: figdoc.TextNodeText, Text: "Submit", Path: figdoc.HierarchyPath{PageName: "Page 1", SectionName: ptr("Section A")}},
			{NodeID: "2", NodeType: figdoc.TextNodeSticky, Text: "TODO: Add validation", Path: figdoc.HierarchyPath{PageName: "Page 1", SectionName: ptr("Section A")}},
			{NodeID: "3", NodeType: figdoc.TextNodeText, Text: strings.Repeat("long text ", 6), Path: figdoc.HierarchyPath{PageName: "Page 1"}},
		}

		var buf bytes.Buffer
		require.NoError(t, (&markdown.SummaryFormatter{}).Format(&buf, r))

		out := buf.String()
		assert.Contains(t, out, "# Test File")
		assert.Contains(t, out, "## Page 1")
		assert.Contains(t, out, "### Section A")
		assert.Contains(t, out, "### General")
		assert.Contains(t, out, "#### Notes")
		assert.Contains(t, out, "> TODO: Add validation")
		assert.Contains(t, out, "#### UI Labels")
		assert.Contains(t, out, "- Submit")
		assert.Contains(t, out, "#### Descriptions")
		assert.Contains(t, out, "- long text long text")
		assert.Less(t, strings.Index(out, "### General"), strings.Index(out, "### Section A"))
	})

	t.Run("deduplicates case and whitespace variants", func(t *testing.T) {
		t.Parallel()

		r := testResult()
		r.Texts = []figdoc.ExtractedText{
			{NodeID: "1", Text: "Duplicate", Path: figdoc.HierarchyPath{PageName: "Page"}},
			{NodeID: "2", Text: "  duplicate ", Path: figdoc.HierarchyPath{PageName: "Page"}},
		}

		var buf bytes.Buffer
		require.NoError(t, (&markdown.SummaryFormatter{}).Format(&buf, r))

		assert.Equal(t, 1, strings.Count(strings.ToLower(buf.String()), "duplicate"))
	})

	t.Run("multi-line text is a description", func(t *testing.T) {
		t.Parallel()

		r := testResult()
		r.Texts = []figdoc.ExtractedText{
			{NodeID: "1", Text: "line one\nline two", Path: figdoc.HierarchyPath{PageName: "Page"}},
		}

		var buf bytes.Buffer
		require.NoError(t, (&markdown.SummaryFormatter{}).Format(&buf, r))

		assert.Contains(t, buf.String(), "#### Descriptions")
		assert.NotContains(t, buf.String(), "#### UI Labels")
	})
}
