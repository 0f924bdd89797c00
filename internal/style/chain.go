// Package style walks style parent-pointer chains and projects them
// into normalized, leaf-wins style records.
package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// parented is implemented by every style archive type that carries a
// parent-chain reference.
type parented interface {
	GetParent() *tsp.Reference
}

// walkChain follows ref's parent pointers to produce an ordered list
// from root to leaf. Cycles are guarded by recording visited
// identifiers and stopping at the first repeat. A dereference miss at
// any level
// truncates the chain at that point rather than failing the whole
// resolution — style projection always degrades to "absent", never to
// an error.
func walkChain[T parented](store *objectstore.Store, start *tsp.Reference) []T {
	var leafToRoot []T
	visited := make(map[uint64]bool)
	ref := start
	for ref != nil && ref.Identifier != nil {
		id := *ref.Identifier
		if visited[id] {
			break
		}
		visited[id] = true
		v, ok := objectstore.Get[T](store, id)
		if !ok {
			break
		}
		leafToRoot = append(leafToRoot, v)
		ref = v.GetParent()
	}
	for i, j := 0, len(leafToRoot)-1; i < j; i, j = i+1, j-1 {
		leafToRoot[i], leafToRoot[j] = leafToRoot[j], leafToRoot[i]
	}
	return leafToRoot
}
