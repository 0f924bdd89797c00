package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
)

// ResolvedCell is the normalized projection of a cell-style parent
// chain.
type ResolvedCell struct {
	FillColor *tsp.Color
	Alignment *int32
}

func ResolveCell(store *objectstore.Store, ref *tsp.Reference) *ResolvedCell {
	chain := walkChain[*tst.CellStyleArchive](store, ref)
	out := &ResolvedCell{}
	for _, level := range chain {
		if level.FillColor != nil {
			out.FillColor = level.FillColor
		}
		if level.Alignment != nil {
			out.Alignment = level.Alignment
		}
	}
	return out
}
