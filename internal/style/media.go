package style

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// ResolvedMedia is the normalized projection of a media-style parent
// chain (image/movie/3D-object border and shadow).
type ResolvedMedia struct {
	StrokeColor *tsp.Color
	StrokeWidth *float64
	HasShadow   *bool
}

func ResolveMedia(store *objectstore.Store, ref *tsp.Reference) *ResolvedMedia {
	chain := walkChain[*tsd.MediaStyleArchive](store, ref)
	out := &ResolvedMedia{}
	for _, level := range chain {
		if level.StrokeColor != nil {
			out.StrokeColor = level.StrokeColor
		}
		if level.StrokeWidth != nil {
			out.StrokeWidth = level.StrokeWidth
		}
		if level.HasShadow != nil {
			out.HasShadow = level.HasShadow
		}
	}
	return out
}
