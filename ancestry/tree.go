// Package ancestry traces logical program elements across a sequence of
// releases. Given per-release mapping trees it computes a forest of nodes,
// one per traced element, linking successive per-release records together
// despite renames, namespace gaps and missing data.
package ancestry

import (
	"errors"

	"github.com/zlataovce/takenaka-sub001/mapping"
	"github.com/zlataovce/takenaka-sub001/version"
)

// ErrUnmappedVersion signals that a node's version was never registered in
// the tree's namespace index. It indicates the caller processed releases out
// of order or omitted one; the engine does not self-heal ordering mistakes.
var ErrUnmappedVersion = errors.New("version has not been mapped yet")

// NamespaceIndex maps each release present in a tree to the namespace ids,
// local to that release's mapping tree, that participate in ancestry
// matching.
type NamespaceIndex map[version.Version][]int

func (x NamespaceIndex) clone() NamespaceIndex {
	out := make(NamespaceIndex, len(x))
	for v, ids := range x {
		out[v] = append([]int(nil), ids...)
	}
	return out
}

// Tree is a frozen, ordered forest of nodes, one per traced element. Trees
// are immutable once built and safe for concurrent reads only after any
// lazily cached name sets have been materialized; the engine itself is
// single-threaded.
type Tree[T any] struct {
	nodes      []*Node[T]
	namespaces NamespaceIndex
	extract    ExtractTokens[T]
}

// Convenience instantiations for the three traced element kinds.
type (
	ClassTree  = Tree[*mapping.Class]
	FieldTree  = Tree[*mapping.Field]
	MethodTree = Tree[*mapping.Method]

	ClassNode  = Node[*mapping.Class]
	FieldNode  = Node[*mapping.Field]
	MethodNode = Node[*mapping.Method]
)

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Nodes returns all nodes in creation order (oldest element first).
func (t *Tree[T]) Nodes() []*Node[T] {
	return t.nodes
}

// AllowedNamespaces returns a copy of the tree's namespace index. Consumers
// use it to re-derive per-release name sets; mutating the copy never
// affects matching.
func (t *Tree[T]) AllowedNamespaces() NamespaceIndex {
	return t.namespaces.clone()
}

// NamespacesOf returns the namespace ids registered for one release.
func (t *Tree[T]) NamespacesOf(v version.Version) ([]int, bool) {
	ids, ok := t.namespaces[v]
	return ids, ok
}

// Get returns the first node, in creation order, whose current name set
// contains every supplied key, or nil when none matches. The scan is linear;
// node counts are bounded by the element count of a single release and
// lookups are not on a hot path.
func (t *Tree[T]) Get(keys ...Token) (*Node[T], error) {
	if len(keys) == 0 {
		return nil, nil
	}
	for _, n := range t.nodes {
		names, err := n.LastNames()
		if err != nil {
			return nil, err
		}
		matched := true
		for _, k := range keys {
			if !names.Has(k) {
				matched = false
				break
			}
		}
		if matched {
			return n, nil
		}
	}
	return nil, nil
}
