package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
)

// ResolvedParagraph is the normalized projection of a paragraph-style
// parent chain. A nil field was never set at any level; the caller
// supplies a runtime default.
type ResolvedParagraph struct {
	Alignment             *int32
	LeftIndent            *float32
	RightIndent           *float32
	SpaceBefore           *float32
	SpaceAfter            *float32
	ListStyle             *tsp.Reference
	DefaultCharacterStyle *tsp.Reference
}

// ResolveParagraph walks ref's parent chain and projects it, leaf wins
// per field.
func ResolveParagraph(store *objectstore.Store, ref *tsp.Reference) *ResolvedParagraph {
	chain := walkChain[*tswp.ParagraphStyleArchive](store, ref)
	out := &ResolvedParagraph{}
	for _, level := range chain {
		if level.Alignment != nil {
			out.Alignment = level.Alignment
		}
		if level.LeftIndent != nil {
			out.LeftIndent = level.LeftIndent
		}
		if level.RightIndent != nil {
			out.RightIndent = level.RightIndent
		}
		if level.SpaceBefore != nil {
			out.SpaceBefore = level.SpaceBefore
		}
		if level.SpaceAfter != nil {
			out.SpaceAfter = level.SpaceAfter
		}
		if level.ListStyle != nil {
			out.ListStyle = level.ListStyle
		}
		if level.DefaultCharacterStyle != nil {
			out.DefaultCharacterStyle = level.DefaultCharacterStyle
		}
	}
	return out
}

// ResolveParagraphDefaultCharacter extracts the paragraph chain's
// default character properties, so inline text with no explicit
// character style still inherits font, color and decoration. The most
// specific (leaf-most) level's default character style reference wins,
// and is itself resolved through its own parent chain.
func ResolveParagraphDefaultCharacter(store *objectstore.Store, ref *tsp.Reference) *ResolvedCharacter {
	resolved := ResolveParagraph(store, ref)
	if resolved.DefaultCharacterStyle == nil {
		return &ResolvedCharacter{}
	}
	return ResolveCharacter(store, resolved.DefaultCharacterStyle)
}
