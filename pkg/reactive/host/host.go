// Package host provides the narrow node-tree adapter the keyed reconciler
// mutates. It mirrors a DOM-like capability set (comment nodes, fragments,
// insert-before-anchor, destroy) without assuming a browser is present,
// since this runtime renders to a terminal rather than a real DOM.
package host

import (
	"fmt"
	"strings"
)

// Node is an opaque handle into a host tree. The reconciler never inspects
// a Node's contents; it only ever passes Nodes back into the Adapter.
type Node struct {
	id       uint64
	label    string
	fragment bool
	isText   bool
	text     string
	parent   *Node
	children []*Node
}

// String renders a debug label, useful in test failure output.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	kind := "node"
	if n.fragment {
		kind = "fragment"
	}
	return fmt.Sprintf("%s#%d(%s)", kind, n.id, n.label)
}

// Adapter is the host capability set required by the keyed reconciler
// (spec §4.1). It is total: every operation is synchronous and any failure
// it encounters is fatal to the caller, never recovered internally.
type Adapter interface {
	Comment(label string) *Node
	Fragment() *Node
	Insert(parent, child, anchor *Node)
	Destroy(node *Node)
	Parent(node *Node) *Node
	ClearChildren(parent *Node)
	IsConnected(node *Node) bool
}

// Extended is Adapter plus the sibling/boundary queries the keyed
// reconciler needs for its fast-path and relocation optimizations
// (spec §4.5's "cheap boundary queries"). A real DOM node exposes
// nextSibling/firstChild/lastChild natively; this headless tree folds the
// same queries into the adapter contract explicitly since its Node has no
// such native traversal.
type Extended interface {
	Adapter
	FirstChild(parent *Node) *Node
	LastChild(parent *Node) *Node
	NextSibling(node *Node) *Node
}

// Tree is a headless, in-memory implementation of Adapter: a plain
// n-ary tree of Nodes. It stands in for a browser DOM or a terminal cell
// grid — whatever concrete surface the runtime ultimately renders to only
// needs to satisfy Adapter.
type Tree struct {
	nextID uint64
}

// NewTree creates an empty host tree.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) newNode(label string, fragment bool) *Node {
	t.nextID++
	return &Node{id: t.nextID, label: label, fragment: fragment}
}

// Comment creates a detached comment node, used for markers and sentinels.
func (t *Tree) Comment(label string) *Node {
	return t.newNode(label, false)
}

// Fragment creates a detached container node whose children can be
// bulk-inserted with a single call to Insert.
func (t *Tree) Fragment() *Node {
	return t.newNode("fragment", true)
}

// Text creates a detached text node carrying visible content, the host
// counterpart of a DOM text node. Unlike Comment, its content is included
// by Render.
func (t *Tree) Text(content string) *Node {
	n := t.newNode("text", false)
	n.isText = true
	n.text = content
	return n
}

// Insert inserts child into parent immediately before anchor, or at the end
// if anchor is nil. If child is a fragment, its children are spliced into
// parent in order and the (now empty) fragment itself is not inserted.
// Moving an already-connected node detaches it from its previous parent
// first.
func (t *Tree) Insert(parent, child, anchor *Node) {
	if parent == nil || child == nil {
		panic("host: Insert requires non-nil parent and child")
	}

	if child.fragment {
		kids := child.children
		child.children = nil
		for _, k := range kids {
			t.Insert(parent, k, anchor)
		}
		return
	}

	if child.parent != nil {
		detach(child)
	}

	idx := len(parent.children)
	if anchor != nil {
		for i, c := range parent.children {
			if c == anchor {
				idx = i
				break
			}
		}
	}

	parent.children = append(parent.children, nil)
	copy(parent.children[idx+1:], parent.children[idx:])
	parent.children[idx] = child
	child.parent = parent
}

func detach(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Destroy detaches node from its parent and releases it. For a fragment,
// its children are destroyed too. Destroy is idempotent only when the node
// is already disconnected, matching the adapter contract.
func (t *Tree) Destroy(node *Node) {
	if node == nil {
		return
	}
	if node.fragment {
		kids := node.children
		node.children = nil
		for _, k := range kids {
			t.Destroy(k)
		}
		return
	}
	detach(node)
}

// Parent returns node's current parent, or nil if detached.
func (t *Tree) Parent(node *Node) *Node {
	if node == nil {
		return nil
	}
	return node.parent
}

// ClearChildren removes and destroys all of parent's children.
func (t *Tree) ClearChildren(parent *Node) {
	kids := parent.children
	parent.children = nil
	for _, k := range kids {
		k.parent = nil
	}
}

// IsConnected reports whether node currently has a parent.
func (t *Tree) IsConnected(node *Node) bool {
	return node != nil && node.parent != nil
}

// Children returns parent's current children in host order. Exposed for
// test assertions and debug tooling; the reconciler itself never calls it.
func (t *Tree) Children(parent *Node) []*Node {
	out := make([]*Node, len(parent.children))
	copy(out, parent.children)
	return out
}

// Content returns node's text content, or "" if node is nil or was not
// created by Text (including marker/fragment nodes). Exposed alongside
// Children for callers that want to read a reconciled tree node-by-node
// instead of through Render's flattened string.
func (t *Tree) Content(node *Node) string {
	if node == nil || !node.isText {
		return ""
	}
	return node.text
}

// NextSibling returns the child immediately after node in its parent, or
// nil if node is last or disconnected.
func (t *Tree) NextSibling(node *Node) *Node {
	p := node.parent
	if p == nil {
		return nil
	}
	for i, c := range p.children {
		if c == node {
			if i+1 < len(p.children) {
				return p.children[i+1]
			}
			return nil
		}
	}
	return nil
}

// FirstChild returns parent's first child, or nil if it has none.
func (t *Tree) FirstChild(parent *Node) *Node {
	if len(parent.children) == 0 {
		return nil
	}
	return parent.children[0]
}

// LastChild returns parent's last child, or nil if it has none.
func (t *Tree) LastChild(parent *Node) *Node {
	if n := len(parent.children); n > 0 {
		return parent.children[n-1]
	}
	return nil
}

// Render flattens root's subtree into a string by concatenating every text
// node's content in host order, depth-first. Comment and fragment markers
// contribute nothing; it is the read side of Text, letting a consumer (a
// directive, a demo program) turn a reconciled tree back into plain output
// without the reconciler itself ever producing or inspecting strings.
func (t *Tree) Render(root *Node) string {
	var b strings.Builder
	t.renderInto(&b, root)
	return b.String()
}

func (t *Tree) renderInto(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.isText {
		b.WriteString(n.text)
	}
	for _, c := range n.children {
		t.renderInto(b, c)
	}
}

var _ Adapter = (*Tree)(nil)
var _ Extended = (*Tree)(nil)
