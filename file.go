package figdoc

import (
	"context"
	"time"
)

// EditorType is the product a file was created in.
type EditorType string

// EditorType constants.
const (
	EditorFigma  EditorType = "figma"
	EditorFigjam EditorType = "figjam"
)

// File is a decoded Figma file.
type File struct {
	// Key is not part of the payload; it is set by whoever fetched the file.
	Key           string                  `json:"-"`
	Name          string                  `json:"name"`
	Version       string                  `json:"version"`
	LastModified  time.Time               `json:"lastModified"`
	ThumbnailURL  string                  `json:"thumbnailUrl,omitempty"`
	EditorType    EditorType              `json:"editorType"`
	Document      *Document               `json:"document"`
	Components    map[string]Component    `json:"components"`
	Styles        map[string]Style        `json:"styles"`
	ComponentSets map[string]ComponentSet `json:"componentSets"`
	SchemaVersion *int                    `json:"schemaVersion,omitempty"`
	Role          string                  `json:"role,omitempty"`
	LinkAccess    string                  `json:"linkAccess,omitempty"`
}

// Document is the root of the node tree. Its direct children are expected
// to be canvases (pages), though this is not enforced.
type Document struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	ScrollBehavior string  `json:"scrollBehavior,omitempty"`
	Children       []*Node `json:"children"`
}

// Pages returns the canvas children of the document in document order.
func (d *Document) Pages() []*Node {
	var pages []*Node
	for _, child := range d.Children {
		if child == nil {
			continue
		}
		if _, ok := child.Data.(*CanvasData); ok {
			pages = append(pages, child)
		}
	}
	return pages
}

// Component is an entry of the file-level component map.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ComponentSet is an entry of the file-level component set map.
type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style is an entry of the file-level style map.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// NodesResponse is the decoded payload of a node-scoped request.
// A nil entry means the API could not resolve that node ID.
type NodesResponse struct {
	Name  string                 `json:"name"`
	Nodes map[string]*NodeResult `json:"nodes"`
}

// NodeResult is one resolved node of a NodesResponse.
type NodeResult struct {
	Document *Node `json:"document"`
}

// User is the account behind an access token.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Handle string `json:"handle"`
	ImgURL string `json:"img_url,omitempty"`
}

// FetchOptions bounds a file request.
type FetchOptions struct {
	// Depth limits how deep into the tree the API returns nodes.
	// Nil means the full tree.
	Depth *int
}

// FileService retrieves raw file payloads.
type FileService interface {
	// FetchFile returns the JSON payload of a whole file.
	// Returns ENOTFOUND if the file does not exist.
	FetchFile(ctx context.Context, fileKey string, opts FetchOptions) ([]byte, error)

	// FetchNodes returns the JSON payload of a node-scoped request.
	FetchNodes(ctx context.Context, fileKey string, ids []string, opts FetchOptions) ([]byte, error)
}

// UserService identifies the owner of an access token.
type UserService interface {
	// Me returns the authenticated user.
	// Returns EUNAUTHORIZED if the token is invalid.
	Me(ctx context.Context) (*User, error)
}
