package reveal

// slideY returns the node's local vertical translation contributed by its
// slide offset.
func (n *Node) slideY() float64 {
	return n.OffsetY * n.Height
}

// updateWorld recomputes world positions and alpha for n and its subtree.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorld(n *Node, parentX, parentY, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldX = parentX + n.X
		n.worldY = parentY + n.Y + n.slideY()
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorld(child, n.worldX, n.worldY, n.worldAlpha, recompute)
	}
}

// refreshWorld brings the world positions of n's whole tree up to date,
// starting from its topmost ancestor.
func (n *Node) refreshWorld() {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	updateWorld(top, 0, 0, 1, false)
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetOffset sets the slide offset (fraction of Height) and marks it dirty.
func (n *Node) SetOffset(f float64) {
	n.OffsetY = f
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next update. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldPosition returns the node's top-left corner in world space as of the
// last update.
func (n *Node) WorldPosition() (x, y float64) {
	return n.worldX, n.worldY
}

// WorldBounds returns the node's box in world space as of the last update.
func (n *Node) WorldBounds() Rect {
	return Rect{X: n.worldX, Y: n.worldY, Width: n.Width, Height: n.Height}
}

// WorldAlpha returns the accumulated alpha of the node and its ancestors.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldX + lx, n.worldY + ly
}
