package figdoc

import (
	"io"
	"time"
)

// TextNodeType classifies the node an ExtractedText came from.
type TextNodeType string

// TextNodeType constants.
const (
	TextNodeText   TextNodeType = "text"
	TextNodeSticky TextNodeType = "sticky"
)

// Style defaults applied when a text node's style omits a property.
const (
	DefaultFontFamily = "Unknown"
	DefaultFontSize   = 16.0
	DefaultFontWeight = 400
)

// ExtractedText is one piece of text found in the document.
type ExtractedText struct {
	NodeID         string        `json:"nodeId"`
	NodeType       TextNodeType  `json:"nodeType"`
	Text           string        `json:"text"`
	Path           HierarchyPath `json:"path"`
	SequenceNumber int           `json:"sequenceNumber"`
	Style          *TextStyle    `json:"style,omitempty"`
}

// TextStyle is the resolved font of a text node.
type TextStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight int     `json:"fontWeight"`
}

// NewTextStyle resolves s against the style defaults. A nil s yields nil.
func NewTextStyle(s *TypeStyle) *TextStyle {
	if s == nil {
		return nil
	}
	ts := &TextStyle{
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		FontWeight: DefaultFontWeight,
	}
	if s.FontFamily != nil {
		ts.FontFamily = *s.FontFamily
	}
	if s.FontSize != nil {
		ts.FontSize = *s.FontSize
	}
	if s.FontWeight != nil {
		ts.FontWeight = *s.FontWeight
	}
	return ts
}

// PageInfo summarises a single page.
type PageInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FrameCount    int    `json:"frameCount"`
	TextNodeCount int    `json:"textNodeCount"`
}

// DocumentStructure lists the pages retained by an extraction.
type DocumentStructure struct {
	Pages []PageInfo `json:"pages"`
}

// FileMetadata describes the file an extraction came from.
type FileMetadata struct {
	FileKey      string     `json:"fileKey"`
	FileName     string     `json:"fileName"`
	Version      string     `json:"version"`
	LastModified time.Time  `json:"lastModified"`
	ExtractedAt  time.Time  `json:"extractedAt"`
	EditorType   EditorType `json:"editorType"`
}

// ExtractionStats holds aggregate counters of an extraction.
type ExtractionStats struct {
	TotalPages       int     `json:"totalPages"`
	TotalFrames      int     `json:"totalFrames"`
	TotalTextNodes   int     `json:"totalTextNodes"`
	TotalCharacters  int     `json:"totalCharacters"`
	ExtractionTimeMS int64   `json:"extractionTimeMs"`
	MemorySizeMB     float64 `json:"memorySizeMb"`
}

// ExtractionResult is the complete output of extracting one file.
type ExtractionResult struct {
	Metadata  FileMetadata      `json:"metadata"`
	Structure DocumentStructure `json:"structure"`
	Texts     []ExtractedText   `json:"texts"`
	Stats     ExtractionStats   `json:"stats"`
}

// NewExtractionResult assembles a result and derives its counters from the
// structure and texts. Timing and memory are left for the caller.
func NewExtractionResult(meta FileMetadata, structure DocumentStructure, texts []ExtractedText) *ExtractionResult {
	if texts == nil {
		texts = []ExtractedText{}
	}
	if structure.Pages == nil {
		structure.Pages = []PageInfo{}
	}

	stats := ExtractionStats{
		TotalPages:     len(structure.Pages),
		TotalTextNodes: len(texts),
	}
	for _, p := range structure.Pages {
		stats.TotalFrames += p.FrameCount
	}
	for _, t := range texts {
		stats.TotalCharacters += len(t.Text)
	}

	return &ExtractionResult{
		Metadata:  meta,
		Structure: structure,
		Texts:     texts,
		Stats:     stats,
	}
}

// Formatter renders an extraction result.
type Formatter interface {
	Format(w io.Writer, r *ExtractionResult) error
}

// Querier evaluates a query expression against a JSON payload.
type Querier interface {
	// Query returns the value selected by expr. Returns EINVALID if expr
	// does not compile.
	Query(expr string, data []byte) (any, error)
}
