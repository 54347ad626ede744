package layout

import (
	"strings"

	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/style"
)

// Tree is a built document ready for resolution.
type Tree struct {
	Meta DocumentMeta `json:"meta"`
	// Viewport is the size declared by `view`; either axis may be undefined.
	Viewport geometry.AxisSize[geometry.Number] `json:"viewport"`
	Root     *Node                              `json:"root"`
}

// DocumentMeta 对应 meta 段落中的文档信息。
type DocumentMeta struct {
	Name     string   `json:"name,omitempty"`
	Version  string   `json:"version,omitempty"`
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Creator  string   `json:"creator,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Node is one box in the layout tree. Style is filled by Build; the
// geometry fields are written by Resolve and are undefined before it runs.
type Node struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Style    style.Style `json:"-"`
	Children []*Node     `json:"children,omitempty"`

	// Rect is the border box in viewport coordinates.
	Rect    geometry.Rect                         `json:"rect"`
	Margin  geometry.EdgeOffsets[geometry.Number] `json:"margin"`
	Border  geometry.EdgeOffsets[geometry.Number] `json:"border"`
	Padding geometry.EdgeOffsets[geometry.Number] `json:"padding"`
}

// ContentRect returns the rect inside border and padding.
func (n *Node) ContentRect() geometry.Rect {
	return n.Rect.Inset(n.Border).Inset(n.Padding)
}

// Walk visits n and its descendants depth-first, parents first. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns the node whose Path equals path, or nil.
func (n *Node) Find(path string) *Node {
	if n.Path == path {
		return n
	}
	if !strings.HasPrefix(path, n.Path+"/") {
		return nil
	}
	for _, c := range n.Children {
		if found := c.Find(path); found != nil {
			return found
		}
	}
	return nil
}

// reset clears every geometry field in the subtree.
func (n *Node) reset() {
	n.Walk(func(node *Node, _ int) bool {
		node.Rect = geometry.UndefinedRect()
		node.Margin = geometry.EdgeOffsets[geometry.Number]{}
		node.Border = geometry.EdgeOffsets[geometry.Number]{}
		node.Padding = geometry.EdgeOffsets[geometry.Number]{}
		return true
	})
}
