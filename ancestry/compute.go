package ancestry

import (
	"fmt"
	"sort"

	"github.com/zlataovce/takenaka-sub001/mapping"
	"github.com/zlataovce/takenaka-sub001/version"
)

// VersionedTree pairs one release with its mapping tree.
type VersionedTree struct {
	Version version.Version
	Tree    *mapping.Tree
}

// SortVersionedTrees sorts trees into ascending release order, the order the
// ancestry functions require.
func SortVersionedTrees(trees []VersionedTree) {
	sort.SliceStable(trees, func(i, j int) bool {
		return version.Compare(trees[i].Version, trees[j].Version) < 0
	})
}

// ClassAncestryTreeOf computes the class ancestry forest across releases.
// Trees must already be in ascending release order. The allowed namespace
// names select which columns are trusted for identity matching; for each
// release they resolve to that tree's local ids, dropping names the tree
// does not carry. An empty list, or one where nothing resolves, falls back
// to every namespace of the tree.
func ClassAncestryTreeOf(trees []VersionedTree, allowedNamespaces ...string) *ClassTree {
	b := NewTreeBuilder(ClassTokens)
	for _, vt := range trees {
		ids := resolveNamespaces(vt.Tree, allowedNamespaces)
		b.RegisterNamespaces(vt.Version, ids)
		for _, class := range vt.Tree.Classes {
			tokens := ClassTokens(class, ids)
			node := b.ResolveNode(func(n *NodeBuilder[*mapping.Class]) bool {
				return n.LastNames().Overlaps(tokens)
			})
			node.Put(vt.Version, class, tokens)
		}
	}
	return b.Tree()
}

// FieldAncestryTreeOf computes the field ancestry forest within one class
// lineage. Namespace selection is inherited from the class tree, not
// recomputed; fields are only ever matched against fields of the same class
// node's lineage.
func FieldAncestryTreeOf(classNode *ClassNode) (*FieldTree, error) {
	b := NewTreeBuilder(FieldTokens)
	b.InheritNamespaces(classNode.Tree().AllowedNamespaces())
	for _, v := range classNode.Versions() {
		class, _ := classNode.Record(v)
		ids, ok := b.NamespacesOf(v)
		if !ok {
			return nil, fmt.Errorf("version %s: %w", v, ErrUnmappedVersion)
		}
		for _, field := range class.Fields {
			tokens := FieldTokens(field, ids)
			node := b.ResolveNode(func(n *NodeBuilder[*mapping.Field]) bool {
				return n.LastNames().Overlaps(tokens)
			})
			node.Put(v, field, tokens)
		}
	}
	return b.Tree(), nil
}

// MethodAncestryTreeOf computes the method ancestry forest within one class
// lineage. Constructors are normalized to the synthetic "<init>" name before
// matching, see MethodTokens.
func MethodAncestryTreeOf(classNode *ClassNode) (*MethodTree, error) {
	b := NewTreeBuilder(MethodTokens)
	b.InheritNamespaces(classNode.Tree().AllowedNamespaces())
	for _, v := range classNode.Versions() {
		class, _ := classNode.Record(v)
		ids, ok := b.NamespacesOf(v)
		if !ok {
			return nil, fmt.Errorf("version %s: %w", v, ErrUnmappedVersion)
		}
		for _, method := range class.Methods {
			tokens := MethodTokens(method, ids)
			node := b.ResolveNode(func(n *NodeBuilder[*mapping.Method]) bool {
				return n.LastNames().Overlaps(tokens)
			})
			node.Put(v, method, tokens)
		}
	}
	return b.Tree(), nil
}

// resolveNamespaces maps trusted namespace names to one tree's local ids,
// falling back to every namespace when none resolve.
func resolveNamespaces(tree *mapping.Tree, names []string) []int {
	var ids []int
	for _, name := range names {
		if id, ok := tree.NamespaceID(name); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = make([]int, tree.NamespaceCount())
		for i := range ids {
			ids[i] = i
		}
	}
	return ids
}
