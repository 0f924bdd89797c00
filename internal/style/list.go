package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
)

// ResolvedList is the normalized projection of a list/bullet style at a
// specific nesting level.
type ResolvedList struct {
	Kind         tswp.ListKind
	BulletChar   *string
	NumberFormat *string
	TextIndent   *float32
}

// IsList reports whether this projection represents an actual list item
// (as opposed to "not a list", the zero Kind).
func (r *ResolvedList) IsList() bool {
	return r != nil && r.Kind != tswp.ListKindNone
}

// ResolveList walks ref's parent chain and projects the style at the
// given nesting level, leaf wins per field.
func ResolveList(store *objectstore.Store, ref *tsp.Reference, level int) *ResolvedList {
	chain := walkChain[*tswp.ListStyleArchive](store, ref)
	out := &ResolvedList{}
	for _, archive := range chain {
		lvl := archive.LevelAt(level)
		if lvl == nil {
			continue
		}
		if lvl.Kind != nil {
			out.Kind = lvl.GetKind()
		}
		if lvl.BulletChar != nil {
			out.BulletChar = lvl.BulletChar
		}
		if lvl.NumberFormat != nil {
			out.NumberFormat = lvl.NumberFormat
		}
		if lvl.TextIndent != nil {
			out.TextIndent = lvl.TextIndent
		}
	}
	return out
}
