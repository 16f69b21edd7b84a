// Package json decodes Figma API payloads into the figdoc node model and
// encodes extraction results.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/figdoc"
)

// DecodeFile decodes a whole-file payload. Any malformed node aborts the
// decode with a *figdoc.DecodeError naming the offending JSON path.
func DecodeFile(data []byte) (*figdoc.File, error) {
	d := newDecoder(data)
	obj := newObject(nil)

	var doc *figdoc.Document
	ok, err := d.object(nil, func(name string, p *path) error {
		if name != "document" {
			return d.capture(obj, name, p)
		}
		var err error
		doc, err = d.document(p)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nullError(nil)
	}
	if err := d.end(); err != nil {
		return nil, err
	}
	r := &reader{object: obj}

	f := &figdoc.File{
		Name:          get(r, "name", ""),
		Version:       get(r, "version", ""),
		ThumbnailURL:  get(r, "thumbnailUrl", ""),
		EditorType:    figdoc.EditorType(get(r, "editorType", string(figdoc.EditorFigma))),
		Components:    get(r, "components", map[string]figdoc.Component{}),
		Styles:        get(r, "styles", map[string]figdoc.Style{}),
		ComponentSets: get(r, "componentSets", map[string]figdoc.ComponentSet{}),
		SchemaVersion: get[*int](r, "schemaVersion", nil),
		Role:          get(r, "role", ""),
		LinkAccess:    get(r, "linkAccess", ""),
	}
	if lm := get(r, "lastModified", ""); lm != "" && r.err == nil {
		t, err := time.Parse(time.RFC3339, lm)
		if err != nil {
			return nil, &figdoc.DecodeError{Path: r.at("lastModified"), Cause: err.Error()}
		}
		f.LastModified = t
	}
	if r.err != nil {
		return nil, r.err
	}

	if doc == nil {
		return nil, &figdoc.DecodeError{Path: "document", Cause: "missing field"}
	}
	f.Document = doc

	return f, nil
}

// DecodeNodes decodes a node-scoped payload. Node IDs the API could not
// resolve decode to a nil entry.
func DecodeNodes(data []byte) (*figdoc.NodesResponse, error) {
	d := newDecoder(data)
	obj := newObject(nil)
	nodes := make(map[string]*figdoc.NodeResult)

	ok, err := d.object(nil, func(name string, p *path) error {
		if name != "nodes" {
			return d.capture(obj, name, p)
		}
		_, err := d.object(p, func(id string, p *path) error {
			entry, err := d.nodeEntry(p)
			if err != nil {
				return err
			}
			nodes[id] = entry
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nullError(nil)
	}
	if err := d.end(); err != nil {
		return nil, err
	}
	r := &reader{object: obj}

	resp := &figdoc.NodesResponse{
		Name:  get(r, "name", ""),
		Nodes: nodes,
	}
	if r.err != nil {
		return nil, r.err
	}
	return resp, nil
}

// DecodeNode decodes a single node object and its subtree.
func DecodeNode(data []byte) (*figdoc.Node, error) {
	d := newDecoder(data)
	n, err := d.node(nil)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nullError(nil)
	}
	if err := d.end(); err != nil {
		return nil, err
	}
	return n, nil
}

// decoder reads a payload in a single pass. Node trees are decoded as they
// stream past; every other field is captured raw and decoded on demand, so
// nesting depth is bounded only by memory.
type decoder struct {
	dec *json.Decoder
}

func newDecoder(data []byte) *decoder {
	return &decoder{dec: json.NewDecoder(bytes.NewReader(data))}
}

// object reads an object, calling member for each field. member must consume
// the field's value. Reports false when the value is null.
func (d *decoder) object(p *path, member func(name string, p *path) error) (bool, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return false, syntaxError(p, err)
	}
	if tok == nil {
		return false, nil
	}
	if tok != json.Delim('{') {
		return false, typeError(p, tok, "object")
	}
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return false, syntaxError(p, err)
		}
		name, ok := tok.(string)
		if !ok {
			return false, &figdoc.DecodeError{Path: p.String(), Cause: "invalid object key"}
		}
		if err := member(name, p.field(name)); err != nil {
			return false, err
		}
	}
	if _, err := d.dec.Token(); err != nil {
		return false, syntaxError(p, err)
	}
	return true, nil
}

// array reads an array, calling elem for each element. Null reads as empty.
func (d *decoder) array(p *path, elem func(p *path) error) error {
	tok, err := d.dec.Token()
	if err != nil {
		return syntaxError(p, err)
	}
	if tok == nil {
		return nil
	}
	if tok != json.Delim('[') {
		return typeError(p, tok, "array")
	}
	for i := 0; d.dec.More(); i++ {
		if err := elem(p.index(i)); err != nil {
			return err
		}
	}
	if _, err := d.dec.Token(); err != nil {
		return syntaxError(p, err)
	}
	return nil
}

// capture stores the raw value of a field for later decoding.
func (d *decoder) capture(obj *object, name string, p *path) error {
	var raw json.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		return syntaxError(p, err)
	}
	obj.fields[name] = raw
	return nil
}

// skip discards the next value.
func (d *decoder) skip(p *path) error {
	depth := 0
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return syntaxError(p, err)
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			default:
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

// end fails unless the payload has been fully consumed.
func (d *decoder) end() error {
	_, err := d.dec.Token()
	if err == io.EOF {
		return nil
	}
	return &figdoc.DecodeError{Cause: "unexpected data after payload"}
}

func (d *decoder) document(p *path) (*figdoc.Document, error) {
	obj := newObject(p)
	var children []*figdoc.Node
	ok, err := d.object(p, func(name string, p *path) error {
		if name != "children" {
			return d.capture(obj, name, p)
		}
		var err error
		children, err = d.nodes(p)
		return err
	})
	if err != nil || !ok {
		return nil, err
	}
	r := &reader{object: obj}

	doc := &figdoc.Document{
		ID:             get(r, "id", ""),
		Name:           get(r, "name", ""),
		Type:           get(r, "type", figdoc.TypeDocument),
		ScrollBehavior: get(r, "scrollBehavior", ""),
		Children:       children,
	}
	if r.err != nil {
		return nil, r.err
	}
	if doc.Children == nil {
		doc.Children = []*figdoc.Node{}
	}
	return doc, nil
}

// nodeEntry reads one value of the nodes map, keeping only its document.
func (d *decoder) nodeEntry(p *path) (*figdoc.NodeResult, error) {
	var node *figdoc.Node
	ok, err := d.object(p, func(name string, p *path) error {
		if name != "document" {
			return d.skip(p)
		}
		var err error
		node, err = d.node(p)
		return err
	})
	if err != nil || !ok || node == nil {
		return nil, err
	}
	return &figdoc.NodeResult{Document: node}, nil
}

func (d *decoder) nodes(p *path) ([]*figdoc.Node, error) {
	nodes := make([]*figdoc.Node, 0)
	err := d.array(p, func(p *path) error {
		n, err := d.node(p)
		if err != nil {
			return err
		}
		if n == nil {
			return nullError(p)
		}
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// node reads a node and its subtree. Returns nil for null.
func (d *decoder) node(p *path) (*figdoc.Node, error) {
	obj := newObject(p)
	tag := figdoc.TypeUnknown
	children := make([]*figdoc.Node, 0)

	ok, err := d.object(p, func(name string, p *path) error {
		switch name {
		case "children":
			// Leaf kinds never carry children.
			if isLeafType(tag) {
				return d.skip(p)
			}
			var err error
			children, err = d.nodes(p)
			return err
		case "type":
			if err := d.capture(obj, name, p); err != nil {
				return err
			}
			tag = typeTag(obj.fields[name])
			return nil
		}
		return d.capture(obj, name, p)
	})
	if err != nil || !ok {
		return nil, err
	}
	r := &reader{object: obj}

	n := &figdoc.Node{
		Type:    tag,
		ID:      get(r, "id", ""),
		Name:    get(r, "name", ""),
		Visible: get(r, "visible", true),
		Locked:  get(r, "locked", false),
	}

	switch {
	case tag == figdoc.TypeCanvas:
		n.Data = &figdoc.CanvasData{
			BackgroundColor: get[*figdoc.Color](r, "backgroundColor", nil),
			ExportSettings:  r.exportSettings(),
			Children:        children,
		}
	case tag == figdoc.TypeSection:
		n.Data = &figdoc.SectionData{
			AbsoluteBoundingBox:   r.bbox("absoluteBoundingBox"),
			AbsoluteRenderBounds:  r.bbox("absoluteRenderBounds"),
			Fills:                 r.paints("fills"),
			Strokes:               r.paints("strokes"),
			StrokeWeight:          get(r, "strokeWeight", 0.0),
			StrokeAlign:           get(r, "strokeAlign", ""),
			SectionContentsHidden: get(r, "sectionContentsHidden", false),
			Children:              children,
		}
	case tag == figdoc.TypeFrame:
		n.Data = &figdoc.FrameData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
			ClipsContent:        get(r, "clipsContent", false),
			Children:            children,
		}
	case tag == figdoc.TypeGroup:
		n.Data = &figdoc.GroupData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Children:            children,
		}
	case tag == figdoc.TypeText:
		n.Data = &figdoc.TextData{
			Characters:          get(r, "characters", ""),
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Style:               r.style(),
		}
	case tag == figdoc.TypeRectangle:
		n.Data = &figdoc.RectangleData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
			CornerRadius:        get(r, "cornerRadius", 0.0),
		}
	case figdoc.IsShapeType(tag):
		n.Data = &figdoc.ShapeData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
		}
	case tag == figdoc.TypeComponent:
		n.Data = &figdoc.ComponentData{
			ComponentKey:        get(r, "componentKey", ""),
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Children:            children,
		}
	case tag == figdoc.TypeComponentSet:
		n.Data = &figdoc.ComponentSetData{
			ComponentKey:        get(r, "componentKey", ""),
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Children:            children,
		}
	case tag == figdoc.TypeInstance:
		n.Data = &figdoc.InstanceData{
			ComponentID:         get(r, "componentId", ""),
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Children:            children,
		}
	case tag == figdoc.TypeSticky:
		n.Data = &figdoc.StickyData{
			Characters:          get(r, "characters", ""),
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
		}
	case tag == figdoc.TypeBooleanOperation:
		n.Data = &figdoc.BooleanOperationData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
			Children:            children,
		}
	case tag == figdoc.TypeTable:
		n.Data = &figdoc.TableData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
			Children:            children,
		}
	case tag == figdoc.TypeTableCell:
		n.Data = &figdoc.TableCellData{
			AbsoluteBoundingBox: r.bbox("absoluteBoundingBox"),
			Fills:               r.paints("fills"),
			Children:            children,
		}
	default:
		n.Data = &figdoc.OtherData{
			Characters: get[*string](r, "characters", nil),
			Children:   children,
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	return n, nil
}

func typeTag(raw json.RawMessage) string {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return figdoc.TypeUnknown
	}
	return s
}

func isLeafType(tag string) bool {
	switch tag {
	case figdoc.TypeText, figdoc.TypeRectangle, figdoc.TypeSticky:
		return true
	}
	return figdoc.IsShapeType(tag)
}

// path is a location in the payload. Segments are joined only when an
// error is reported.
type path struct {
	parent *path
	name   string
	idx    int
}

func (p *path) field(name string) *path {
	return &path{parent: p, name: name, idx: -1}
}

func (p *path) index(i int) *path {
	return &path{parent: p, idx: i}
}

func (p *path) String() string {
	var segs []*path
	for s := p; s != nil; s = s.parent {
		segs = append(segs, s)
	}
	slices.Reverse(segs)

	var b strings.Builder
	for _, s := range segs {
		if s.idx >= 0 {
			b.WriteString("[" + strconv.Itoa(s.idx) + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.name)
	}
	return b.String()
}

// object is a JSON object whose fields have not been decoded yet, together
// with its location in the source document.
type object struct {
	path   *path
	fields map[string]json.RawMessage
}

func newObject(p *path) *object {
	return &object{path: p, fields: make(map[string]json.RawMessage)}
}

// lookup returns the raw value of a field. Null counts as absent.
func (o *object) lookup(name string) (json.RawMessage, bool) {
	raw, ok := o.fields[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (o *object) at(name string) string {
	return o.path.field(name).String()
}

// reader decodes fields of an object, keeping the first error and turning
// every later read into a no-op.
type reader struct {
	*object
	err error
}

// get decodes the named field into a T, returning def when the field is
// absent or an earlier read failed.
func get[T any](r *reader, name string, def T) T {
	if r.err != nil {
		return def
	}
	raw, ok := r.lookup(name)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		r.err = newDecodeError(r.at(name), err)
		return def
	}
	return v
}

func (r *reader) bbox(name string) *figdoc.BoundingBox {
	return get[*figdoc.BoundingBox](r, name, nil)
}

type paint struct {
	Type      string        `json:"type"`
	Color     *figdoc.Color `json:"color"`
	Opacity   *float64      `json:"opacity"`
	BlendMode string        `json:"blendMode"`
}

func (r *reader) paints(name string) []figdoc.Paint {
	raw := get[[]paint](r, name, nil)
	out := make([]figdoc.Paint, 0, len(raw))
	for _, p := range raw {
		opacity := 1.0
		if p.Opacity != nil {
			opacity = *p.Opacity
		}
		out = append(out, figdoc.Paint{Type: p.Type, Color: p.Color, Opacity: opacity, BlendMode: p.BlendMode})
	}
	return out
}

type exportSetting struct {
	Suffix     string `json:"suffix"`
	Format     string `json:"format"`
	Constraint *struct {
		Scale *float64 `json:"scale"`
	} `json:"constraint"`
}

func (r *reader) exportSettings() []figdoc.ExportSetting {
	raw := get[[]exportSetting](r, "exportSettings", nil)
	out := make([]figdoc.ExportSetting, 0, len(raw))
	for _, s := range raw {
		scale := 1.0
		if s.Constraint != nil && s.Constraint.Scale != nil {
			scale = *s.Constraint.Scale
		}
		out = append(out, figdoc.ExportSetting{
			Suffix:     s.Suffix,
			Format:     s.Format,
			Constraint: figdoc.ExportConstraint{Scale: scale},
		})
	}
	return out
}

type typeStyle struct {
	FontFamily *string  `json:"fontFamily"`
	FontSize   *float64 `json:"fontSize"`
	FontWeight *float64 `json:"fontWeight"`
}

func (r *reader) style() *figdoc.TypeStyle {
	s := get[*typeStyle](r, "style", nil)
	if s == nil {
		return nil
	}
	ts := &figdoc.TypeStyle{FontFamily: s.FontFamily, FontSize: s.FontSize}
	if s.FontWeight != nil {
		w := int(*s.FontWeight)
		ts.FontWeight = &w
	}
	return ts
}

func isNull(raw []byte) bool {
	return len(raw) == 4 && string(raw) == "null"
}

func newDecodeError(at string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			if at == "" {
				at = typeErr.Field
			} else {
				at = at + "." + typeErr.Field
			}
		}
		return &figdoc.DecodeError{
			Path:  at,
			Cause: fmt.Sprintf("invalid type: %s, expected %s", typeErr.Value, kindName(typeErr.Type)),
		}
	}
	return &figdoc.DecodeError{Path: at, Cause: err.Error()}
}

func syntaxError(p *path, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &figdoc.DecodeError{Path: p.String(), Cause: err.Error()}
}

func typeError(p *path, tok json.Token, want string) error {
	return &figdoc.DecodeError{Path: p.String(), Cause: fmt.Sprintf("invalid type: %s, expected %s", tokenKind(tok), want)}
}

func nullError(p *path) error {
	return typeError(p, nil, "object")
}

func tokenKind(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return "object"
	}
	return "number"
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	}
	return t.String()
}
