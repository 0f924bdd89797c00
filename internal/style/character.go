package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
)

// ResolvedCharacter is the normalized projection of a character-style
// parent chain.
type ResolvedCharacter struct {
	FontName      *string
	FontSize      *float32
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	FontColor     *tsp.Color
}

func ResolveCharacter(store *objectstore.Store, ref *tsp.Reference) *ResolvedCharacter {
	chain := walkChain[*tswp.CharacterStyleArchive](store, ref)
	out := &ResolvedCharacter{}
	for _, level := range chain {
		if level.FontName != nil {
			out.FontName = level.FontName
		}
		if level.FontSize != nil {
			out.FontSize = level.FontSize
		}
		if level.Bold != nil {
			out.Bold = level.Bold
		}
		if level.Italic != nil {
			out.Italic = level.Italic
		}
		if level.Underline != nil {
			out.Underline = level.Underline
		}
		if level.Strikethrough != nil {
			out.Strikethrough = level.Strikethrough
		}
		if level.FontColor != nil {
			out.FontColor = level.FontColor
		}
	}
	return out
}
