package extract_test

import "github.com/fwojciec/figdoc"

func doc(name string, pages ...*figdoc.Node) *figdoc.Document {
	return &figdoc.Document{ID: "0:0", Name: name, Type: figdoc.TypeDocument, Children: pages}
}

func page(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeCanvas, ID: id, Name: name, Visible: true,
		Data: &figdoc.CanvasData{Children: children}}
}

func frame(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeFrame, ID: id, Name: name, Visible: true,
		Data: &figdoc.FrameData{Children: children}}
}

func group(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeGroup, ID: id, Name: name, Visible: true,
		Data: &figdoc.GroupData{Children: children}}
}

func section(id, name string, children ...*figdoc.Node) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeSection, ID: id, Name: name, Visible: true,
		Data: &figdoc.SectionData{Children: children}}
}

func text(id, chars string) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeText, ID: id, Name: "Text", Visible: true,
		Data: &figdoc.TextData{Characters: chars}}
}

func sticky(id, chars string) *figdoc.Node {
	return &figdoc.Node{Type: figdoc.TypeSticky, ID: id, Name: "Sticky", Visible: true,
		Data: &figdoc.StickyData{Characters: chars}}
}
