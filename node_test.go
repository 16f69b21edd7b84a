package figdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/figdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Characters(t *testing.T) {
	t.Parallel()

	chars := "from other"
	tests := []struct {
		name   string
		node   *figdoc.Node
		want   string
		wantOK bool
	}{
		{"text", &figdoc.Node{Data: &figdoc.TextData{Characters: "hi"}}, "hi", true},
		{"sticky", &figdoc.Node{Data: &figdoc.StickyData{Characters: "note"}}, "note", true},
		{"other with characters", &figdoc.Node{Data: &figdoc.OtherData{Characters: &chars}}, "from other", true},
		{"other without characters", &figdoc.Node{Data: &figdoc.OtherData{}}, "", false},
		{"frame", &figdoc.Node{Data: &figdoc.FrameData{}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.node.Characters()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNode_IsContainer(t *testing.T) {
	t.Parallel()

	assert.True(t, (&figdoc.Node{Data: &figdoc.FrameData{}}).IsContainer())
	assert.True(t, (&figdoc.Node{Data: &figdoc.TableCellData{}}).IsContainer())
	assert.False(t, (&figdoc.Node{Data: &figdoc.TextData{}}).IsContainer())
	assert.False(t, (&figdoc.Node{Data: &figdoc.ShapeData{}}).IsContainer())
	assert.False(t, (&figdoc.Node{Data: &figdoc.OtherData{}}).IsContainer())
	assert.True(t, (&figdoc.Node{Data: &figdoc.OtherData{
		Children: []*figdoc.Node{{Data: &figdoc.TextData{}}},
	}}).IsContainer())
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	child := &figdoc.Node{ID: "2", Data: &figdoc.TextData{}}

	assert.Equal(t, []*figdoc.Node{child}, (&figdoc.Node{Data: &figdoc.SectionData{Children: []*figdoc.Node{child}}}).Children())
	assert.Nil(t, (&figdoc.Node{Data: &figdoc.StickyData{}}).Children())
}

func TestNode_MarshalJSON(t *testing.T) {
	t.Parallel()

	n := &figdoc.Node{
		Type:    figdoc.TypeText,
		ID:      "1:1",
		Name:    "Title",
		Visible: true,
		Data: &figdoc.TextData{
			Characters:          "Hello",
			AbsoluteBoundingBox: &figdoc.BoundingBox{X: 1, Y: 2, Width: 3, Height: 4},
		},
	}

	b, err := json.Marshal(n)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "TEXT",
		"id": "1:1",
		"name": "Title",
		"visible": true,
		"locked": false,
		"characters": "Hello",
		"absoluteBoundingBox": {"x": 1, "y": 2, "width": 3, "height": 4}
	}`, string(b))
}

func TestIsShapeType(t *testing.T) {
	t.Parallel()

	assert.True(t, figdoc.IsShapeType(figdoc.TypeEllipse))
	assert.True(t, figdoc.IsShapeType(figdoc.TypeWidget))
	assert.False(t, figdoc.IsShapeType(figdoc.TypeRectangle))
	assert.False(t, figdoc.IsShapeType("MYSTERY"))
}

func TestDocument_Pages(t *testing.T) {
	t.Parallel()

	doc := &figdoc.Document{Children: []*figdoc.Node{
		{ID: "0:1", Data: &figdoc.CanvasData{}},
		{ID: "x", Data: &figdoc.FrameData{}},
		nil,
		{ID: "0:2", Data: &figdoc.CanvasData{}},
	}}

	pages := doc.Pages()

	require.Len(t, pages, 2)
	assert.Equal(t, "0:1", pages[0].ID)
	assert.Equal(t, "0:2", pages[1].ID)
}
