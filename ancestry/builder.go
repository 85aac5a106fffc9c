package ancestry

import "github.com/zlataovce/takenaka-sub001/version"

// TreeBuilder accumulates mutable nodes release by release and freezes them
// into an immutable Tree. Releases must be fed in ascending order; matching
// only ever compares against each node's most recent state, so the builder
// never sorts on the caller's behalf.
type TreeBuilder[T any] struct {
	nodes      []*NodeBuilder[T]
	namespaces NamespaceIndex
	extract    ExtractTokens[T]
}

// NewTreeBuilder creates a builder that derives match tokens with extract.
func NewTreeBuilder[T any](extract ExtractTokens[T]) *TreeBuilder[T] {
	return &TreeBuilder[T]{
		namespaces: NamespaceIndex{},
		extract:    extract,
	}
}

// RegisterNamespaces records which namespace ids of one release's mapping
// tree participate in matching. Must happen before any of that release's
// elements are recorded.
func (b *TreeBuilder[T]) RegisterNamespaces(v version.Version, ids []int) {
	b.namespaces[v] = ids
}

// InheritNamespaces copies another tree's namespace index wholesale. Nested
// member trees inherit the enclosing class tree's per-release namespace
// selection instead of recomputing it.
func (b *TreeBuilder[T]) InheritNamespaces(parent NamespaceIndex) {
	for v, ids := range parent {
		b.namespaces[v] = ids
	}
}

// NamespacesOf returns the namespace ids registered for one release.
func (b *TreeBuilder[T]) NamespacesOf(v version.Version) ([]int, bool) {
	ids, ok := b.namespaces[v]
	return ids, ok
}

// EmptyNode appends and returns a new node with no entries.
func (b *TreeBuilder[T]) EmptyNode() *NodeBuilder[T] {
	n := &NodeBuilder[T]{records: map[version.Version]T{}}
	b.nodes = append(b.nodes, n)
	return n
}

// ResolveNode returns the first existing node satisfying the predicate, in
// creation order, or appends a new empty node when none matches. The
// first-match tie-break is deliberate: no global or optimal matching is
// attempted.
func (b *TreeBuilder[T]) ResolveNode(predicate func(*NodeBuilder[T]) bool) *NodeBuilder[T] {
	for _, n := range b.nodes {
		if predicate(n) {
			return n
		}
	}
	return b.EmptyNode()
}

// Tree freezes the builder's nodes, preserving creation order, and binds
// them to the returned tree.
func (b *TreeBuilder[T]) Tree() *Tree[T] {
	t := &Tree[T]{
		namespaces: b.namespaces.clone(),
		extract:    b.extract,
	}
	t.nodes = make([]*Node[T], 0, len(b.nodes))
	for _, nb := range b.nodes {
		n := &Node[T]{
			tree:    t,
			records: nb.records,
			order:   nb.order,
		}
		if len(nb.order) > 0 {
			firstVersion := nb.order[0]
			lastVersion := nb.order[len(nb.order)-1]
			n.first = Entry[T]{Version: firstVersion, Record: nb.records[firstVersion]}
			n.last = Entry[T]{Version: lastVersion, Record: nb.records[lastVersion]}
		}
		t.nodes = append(t.nodes, n)
	}
	return t
}

// NodeBuilder is the mutable form of a node: a release-keyed record store
// with insertion-order tracking and a cached current-name set.
type NodeBuilder[T any] struct {
	records map[version.Version]T
	order   []version.Version
	names   TokenSet
}

// Len returns the number of releases recorded so far.
func (n *NodeBuilder[T]) Len() int {
	return len(n.order)
}

// LastNames returns the token set cached by the most recent new-release
// insertion. Empty for a node with no entries.
func (n *NodeBuilder[T]) LastNames() TokenSet {
	if n.names == nil {
		return TokenSet{}
	}
	return n.names
}

// Put records one release's element. A new release key advances the node's
// current-name cache to tokens; re-recording an existing release replaces
// the record and leaves the cache untouched.
func (n *NodeBuilder[T]) Put(v version.Version, record T, tokens TokenSet) {
	if _, ok := n.records[v]; !ok {
		n.order = append(n.order, v)
		n.names = tokens
	}
	n.records[v] = record
}
