package figdoc

import (
	"encoding/json"
	"strings"
)

// Node type tags as they appear in the "type" field on the wire.
const (
	TypeDocument         = "DOCUMENT"
	TypeCanvas           = "CANVAS"
	TypeSection          = "SECTION"
	TypeFrame            = "FRAME"
	TypeGroup            = "GROUP"
	TypeText             = "TEXT"
	TypeRectangle        = "RECTANGLE"
	TypeVector           = "VECTOR"
	TypeComponent        = "COMPONENT"
	TypeComponentSet     = "COMPONENT_SET"
	TypeInstance         = "INSTANCE"
	TypeSticky           = "STICKY"
	TypeBooleanOperation = "BOOLEAN_OPERATION"
	TypeTable            = "TABLE"
	TypeTableCell        = "TABLE_CELL"
	TypeEllipse          = "ELLIPSE"
	TypeLine             = "LINE"
	TypeRegularPolygon   = "REGULAR_POLYGON"
	TypeStar             = "STAR"
	TypeShapeWithText    = "SHAPE_WITH_TEXT"
	TypeConnector        = "CONNECTOR"
	TypeWidget           = "WIDGET"

	// TypeUnknown is assumed when a node carries no type tag.
	TypeUnknown = "UNKNOWN"
)

// IsShapeType reports whether tag is one of the shape-like tags that share
// the ShapeData payload.
func IsShapeType(tag string) bool {
	switch tag {
	case TypeVector, TypeEllipse, TypeLine, TypeRegularPolygon, TypeStar,
		TypeShapeWithText, TypeConnector, TypeWidget:
		return true
	}
	return false
}

// Node is a single element of the document tree. The attributes shared by
// every node kind live on Node itself; everything specific to the kind lives
// in Data.
type Node struct {
	Type    string
	ID      string
	Name    string
	Visible bool
	Locked  bool
	Data    NodeData
}

// NodeData is the variant-specific payload of a Node. The set of
// implementations is closed: every type in this file that embeds nodeData.
type NodeData interface {
	nodeData()
}

// CanvasData is a page.
type CanvasData struct {
	BackgroundColor *Color          `json:"backgroundColor,omitempty"`
	ExportSettings  []ExportSetting `json:"exportSettings"`
	Children        []*Node         `json:"children"`
}

// SectionData is a FigJam/Figma section.
type SectionData struct {
	AbsoluteBoundingBox   *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	AbsoluteRenderBounds  *BoundingBox `json:"absoluteRenderBounds,omitempty"`
	Fills                 []Paint      `json:"fills"`
	Strokes               []Paint      `json:"strokes"`
	StrokeWeight          float64      `json:"strokeWeight"`
	StrokeAlign           string       `json:"strokeAlign"`
	SectionContentsHidden bool         `json:"sectionContentsHidden"`
	Children              []*Node      `json:"children"`
}

// FrameData is a frame.
type FrameData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
	ClipsContent        bool         `json:"clipsContent"`
	Children            []*Node      `json:"children"`
}

// GroupData is a group.
type GroupData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children            []*Node      `json:"children"`
}

// TextData is a text layer.
type TextData struct {
	Characters          string       `json:"characters"`
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Style               *TypeStyle   `json:"style,omitempty"`
}

// RectangleData is a rectangle.
type RectangleData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
	CornerRadius        float64      `json:"cornerRadius"`
}

// ShapeData covers vectors, ellipses, lines, polygons, stars, FigJam shapes,
// connectors and widgets.
type ShapeData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
}

// ComponentData is a main component.
type ComponentData struct {
	ComponentKey        string       `json:"componentKey,omitempty"`
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children            []*Node      `json:"children"`
}

// ComponentSetData is a set of component variants.
type ComponentSetData struct {
	ComponentKey        string       `json:"componentKey,omitempty"`
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children            []*Node      `json:"children"`
}

// InstanceData is an instance of a component.
type InstanceData struct {
	ComponentID         string       `json:"componentId"`
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Children            []*Node      `json:"children"`
}

// StickyData is a FigJam sticky note.
type StickyData struct {
	Characters          string       `json:"characters"`
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
}

// BooleanOperationData is a boolean combination of shapes.
type BooleanOperationData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
	Children            []*Node      `json:"children"`
}

// TableData is a FigJam table.
type TableData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
	Children            []*Node      `json:"children"`
}

// TableCellData is a single table cell.
type TableCellData struct {
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Fills               []Paint      `json:"fills"`
	Children            []*Node      `json:"children"`
}

// OtherData holds any node whose type tag is not recognised. Characters and
// children are kept so that no content is silently dropped.
type OtherData struct {
	Characters *string `json:"characters,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}

func (*CanvasData) nodeData()           {}
func (*SectionData) nodeData()          {}
func (*FrameData) nodeData()            {}
func (*GroupData) nodeData()            {}
func (*TextData) nodeData()             {}
func (*RectangleData) nodeData()        {}
func (*ShapeData) nodeData()            {}
func (*ComponentData) nodeData()        {}
func (*ComponentSetData) nodeData()     {}
func (*InstanceData) nodeData()         {}
func (*StickyData) nodeData()           {}
func (*BooleanOperationData) nodeData() {}
func (*TableData) nodeData()            {}
func (*TableCellData) nodeData()        {}
func (*OtherData) nodeData()            {}

// Children returns the child list of the node, or nil for leaf variants.
func (n *Node) Children() []*Node {
	switch d := n.Data.(type) {
	case *CanvasData:
		return d.Children
	case *SectionData:
		return d.Children
	case *FrameData:
		return d.Children
	case *GroupData:
		return d.Children
	case *ComponentData:
		return d.Children
	case *ComponentSetData:
		return d.Children
	case *InstanceData:
		return d.Children
	case *BooleanOperationData:
		return d.Children
	case *TableData:
		return d.Children
	case *TableCellData:
		return d.Children
	case *OtherData:
		return d.Children
	}
	return nil
}

// IsContainer reports whether the traversal descends into the node.
// Other nodes are containers only when they actually carry children.
func (n *Node) IsContainer() bool {
	switch d := n.Data.(type) {
	case *CanvasData, *SectionData, *FrameData, *GroupData, *ComponentData,
		*ComponentSetData, *InstanceData, *BooleanOperationData, *TableData, *TableCellData:
		return true
	case *OtherData:
		return len(d.Children) > 0
	}
	return false
}

// Characters returns the text carried by the node and whether the node kind
// carries text at all. Text and Sticky always do; Other only when the source
// object had a characters field.
func (n *Node) Characters() (string, bool) {
	switch d := n.Data.(type) {
	case *TextData:
		return d.Characters, true
	case *StickyData:
		return d.Characters, true
	case *OtherData:
		if d.Characters != nil {
			return *d.Characters, true
		}
	}
	return "", false
}

// BoundingBox returns the absolute bounding box of the node, if any.
func (n *Node) BoundingBox() *BoundingBox {
	switch d := n.Data.(type) {
	case *SectionData:
		return d.AbsoluteBoundingBox
	case *FrameData:
		return d.AbsoluteBoundingBox
	case *GroupData:
		return d.AbsoluteBoundingBox
	case *TextData:
		return d.AbsoluteBoundingBox
	case *RectangleData:
		return d.AbsoluteBoundingBox
	case *ShapeData:
		return d.AbsoluteBoundingBox
	case *ComponentData:
		return d.AbsoluteBoundingBox
	case *ComponentSetData:
		return d.AbsoluteBoundingBox
	case *InstanceData:
		return d.AbsoluteBoundingBox
	case *StickyData:
		return d.AbsoluteBoundingBox
	case *BooleanOperationData:
		return d.AbsoluteBoundingBox
	case *TableData:
		return d.AbsoluteBoundingBox
	case *TableCellData:
		return d.AbsoluteBoundingBox
	}
	return nil
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MarshalJSON encodes the node in the same flat shape the Figma API uses:
// shared attributes and variant fields side by side in one object.
func (n *Node) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if n.Data != nil {
		b, err := json.Marshal(n.Data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &fields); err != nil {
			return nil, err
		}
	}

	for key, value := range map[string]any{
		"type":    n.Type,
		"id":      n.ID,
		"name":    n.Name,
		"visible": n.Visible,
		"locked":  n.Locked,
	} {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = b
	}

	return json.Marshal(fields)
}

// BoundingBox is an axis-aligned rectangle in absolute canvas coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill or stroke.
type Paint struct {
	Type      string  `json:"type"`
	Color     *Color  `json:"color,omitempty"`
	Opacity   float64 `json:"opacity"`
	BlendMode string  `json:"blendMode"`
}

// TypeStyle holds the font properties of a text node. Every field is
// optional on the wire.
type TypeStyle struct {
	FontFamily *string  `json:"fontFamily,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	FontWeight *int     `json:"fontWeight,omitempty"`
}

// ExportSetting describes an export preset attached to a node.
type ExportSetting struct {
	Suffix     string           `json:"suffix"`
	Format     string           `json:"format"`
	Constraint ExportConstraint `json:"constraint"`
}

// ExportConstraint scales an export.
type ExportConstraint struct {
	Scale float64 `json:"scale"`
}
