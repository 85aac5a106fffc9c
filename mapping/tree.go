package mapping

// Tree is one release's association table between an element's identifiers
// across namespaces. Namespace ids are dense indexes local to this tree;
// they are never comparable across trees of different releases — only the
// namespace name is stable.
type Tree struct {
	namespaces []string
	index      map[string]int
	Classes    []*Class
}

// NewTree creates an empty tree with the given namespace columns.
func NewTree(namespaces ...string) *Tree {
	t := &Tree{
		namespaces: append([]string(nil), namespaces...),
		index:      make(map[string]int, len(namespaces)),
	}
	for i, ns := range namespaces {
		t.index[ns] = i
	}
	return t
}

// Namespaces returns the namespace names in declaration order.
func (t *Tree) Namespaces() []string {
	return t.namespaces
}

// NamespaceCount returns the number of namespace columns.
func (t *Tree) NamespaceCount() int {
	return len(t.namespaces)
}

// NamespaceID resolves a namespace name to this tree's local id.
func (t *Tree) NamespaceID(name string) (int, bool) {
	id, ok := t.index[name]
	return id, ok
}

// AddClass appends a class to the tree and returns it.
func (t *Tree) AddClass(c *Class) *Class {
	t.Classes = append(t.Classes, c)
	return c
}

// Class finds the first class whose name in the given namespace matches.
// Returns nil when absent.
func (t *Tree) Class(name string, namespace int) *Class {
	for _, c := range t.Classes {
		if c.Name(namespace) == name {
			return c
		}
	}
	return nil
}
