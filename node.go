package reveal

// NodeKind distinguishes how renderers treat a Node.
type NodeKind uint8

const (
	KindContainer NodeKind = iota // group node with no visual output
	KindClip                      // clips its subtree to its own bounds
	KindLine                      // one visual line; carries text in line mode
	KindWord                      // one word unit in word mode
	KindText                      // static text such as the layout placeholder
)

// String returns a short name for the kind, used in debug output.
func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindClip:
		return "clip"
	case KindLine:
		return "line"
	case KindWord:
		return "word"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// nodeIDCounter is a plain counter; trees are only touched from the update loop.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the element of a reveal tree. A single flat struct is used for all
// kinds; renderers switch on Kind.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Passthrough presentational identifiers.
	ClassName string
	ElementID string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local geometry. OffsetY is a vertical slide expressed as a fraction of
	// Height: 1 places the node fully below its own box, 0 at rest.
	X, Y          float64
	Width, Height float64
	OffsetY       float64

	// Computed during updateWorld.
	worldX, worldY float64
	worldAlpha     float64
	transformDirty bool

	// Appearance
	Alpha   float64
	Visible bool
	Color   Color
	Text    string

	// Accessibility. Label is read by assistive technology in place of the
	// subtree; Presentational nodes are skipped by it.
	Label          string
	Presentational bool

	UserData any

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Visible = true
	n.Color = ColorWhite
	n.transformDirty = true
}

// NewContainer creates a group node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Kind: KindContainer}
	nodeDefaults(n)
	return n
}

// NewClip creates a node that masks its subtree to a width x height box.
func NewClip(name string, width, height float64) *Node {
	n := &Node{Name: name, Kind: KindClip, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewTextNode creates a node of the given kind displaying content.
func NewTextNode(name string, kind NodeKind, content string) *Node {
	n := &Node{Name: name, Kind: kind, Text: content}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("reveal: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("reveal: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("reveal: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in document order with the given name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens targeting a disposed node
// stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
