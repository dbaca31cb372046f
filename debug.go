package reveal

import (
	"fmt"
	"time"
)

// globalDebug enables the disposed-node and tree-depth checks in node
// operations.
var globalDebug bool

// SetDebugMode toggles debug checks for all reveal trees.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers skip this entirely outside debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("reveal debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if the tree depth exceeds debugMaxTreeDepth.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// probeStats describes one measurement pass.
type probeStats struct {
	words    int
	lines    int
	accepted bool
	elapsed  time.Duration
}

// debugLogProbe records a measurement pass at debug level.
func debugLogProbe(name string, s probeStats) {
	logger.Debug("probe pass",
		"text", name,
		"words", s.words,
		"lines", s.lines,
		"accepted", s.accepted,
		"elapsed", s.elapsed)
}
