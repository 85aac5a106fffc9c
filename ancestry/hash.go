package ancestry

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a stable 64-bit identifier for the node, derived from the
// token set of its first recorded release. Rebuilding the tree from the same
// input yields the same identifier, which lets downstream generators link a
// traced element across documents.
func (n *Node[T]) Hash() (uint64, error) {
	if len(n.order) == 0 {
		return 0, nil
	}
	ids, ok := n.tree.namespaces[n.first.Version]
	if !ok {
		return 0, fmt.Errorf("version %s: %w", n.first.Version, ErrUnmappedVersion)
	}
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	for _, token := range n.tree.extract(n.first.Record, ids).Sorted() {
		h.Write([]byte(token.Name))
		h.Write([]byte{0})
		h.Write([]byte(token.Descriptor))
		h.Write([]byte{0})
	}
	return h.Sum64(), nil
}
