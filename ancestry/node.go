package ancestry

import (
	"fmt"

	"github.com/zlataovce/takenaka-sub001/version"
)

// Entry is one (release, record) pair of a node.
type Entry[T any] struct {
	Version version.Version
	Record  T
}

// Node is one traced element's identity across its observed lifetime: a
// release-keyed set of records in insertion order. Nodes are created by the
// builder and immutable once the tree is frozen.
type Node[T any] struct {
	tree    *Tree[T]
	records map[version.Version]T
	order   []version.Version

	first Entry[T]
	last  Entry[T]

	// current-name cache, derived from last on first use
	names TokenSet
}

// Len returns the number of releases recorded in the node.
func (n *Node[T]) Len() int {
	return len(n.order)
}

// Versions returns the recorded releases in insertion order.
func (n *Node[T]) Versions() []version.Version {
	return n.order
}

// Record returns the element record for one release.
func (n *Node[T]) Record(v version.Version) (T, bool) {
	r, ok := n.records[v]
	return r, ok
}

// First returns the earliest-inserted entry. Insertion order follows the
// caller-supplied release order, not the identifiers' own ordering.
func (n *Node[T]) First() Entry[T] {
	return n.first
}

// Last returns the most recently inserted entry under a new release key.
func (n *Node[T]) Last() Entry[T] {
	return n.last
}

// Tree returns the tree the node is bound to.
func (n *Node[T]) Tree() *Tree[T] {
	return n.tree
}

// LastNames returns the node's current name set: the tokens of the last
// entry across its release's allowed namespaces. The set is computed once
// and cached. Fails with ErrUnmappedVersion when the last entry's release
// was never registered in the tree's namespace index.
func (n *Node[T]) LastNames() (TokenSet, error) {
	if n.names == nil {
		if len(n.order) == 0 {
			n.names = TokenSet{}
			return n.names, nil
		}
		ids, ok := n.tree.namespaces[n.last.Version]
		if !ok {
			return nil, fmt.Errorf("version %s: %w", n.last.Version, ErrUnmappedVersion)
		}
		n.names = n.tree.extract(n.last.Record, ids)
	}
	return n.names, nil
}
