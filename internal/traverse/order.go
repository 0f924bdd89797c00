package traverse

import (
	"sort"

	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// orderFloatingDrawables sorts a word-processor document's floating
// drawables back-to-front by the document's drawable-order record.
// Drawables absent from that record sort after every
// ordered one, in their original slice order.
func (e *Engine) orderFloatingDrawables(refs []*tsp.Reference, orderRef *tsp.Reference) []*tsp.Reference {
	index := map[uint64]int{}
	if order, ok := objectstore.Deref[*tsd.DrawableOrderArchive](e.store, orderRef); ok {
		for i, r := range order.Drawables {
			if r.HasIdentifier() {
				index[r.GetIdentifier()] = i
			}
		}
	}
	out := append([]*tsp.Reference(nil), refs...)
	sort.SliceStable(out, func(i, j int) bool {
		zi, oki := index[out[i].GetIdentifier()]
		zj, okj := index[out[j].GetIdentifier()]
		if !oki {
			zi = len(index)
		}
		if !okj {
			zj = len(index)
		}
		return zi < zj
	})
	return out
}

// orderBySpatialReadingOrder sorts spreadsheet and presentation
// drawables by frame-center y ascending, then x ascending. A
// drawable whose geometry cannot be resolved sorts to
// the zero point.
func (e *Engine) orderBySpatialReadingOrder(refs []*tsp.Reference) []*tsp.Reference {
	out := append([]*tsp.Reference(nil), refs...)
	centers := make([]tsd.Point, len(out))
	for i, r := range out {
		centers[i] = e.drawableCenter(r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if centers[i].Y != centers[j].Y {
			return centers[i].Y < centers[j].Y
		}
		return centers[i].X < centers[j].X
	})
	return out
}

func (e *Engine) drawableCenter(ref *tsp.Reference) tsd.Point {
	if ref == nil || !ref.HasIdentifier() {
		return tsd.Point{}
	}
	if g, ok := e.geometryOf(ref); ok {
		return g.Center()
	}
	return tsd.Point{}
}

func (e *Engine) geometryOf(ref *tsp.Reference) (*tsd.GeometryArchive, bool) {
	if v, ok := objectstore.Deref[*tsd.ShapeArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.GroupArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.ImageArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.MovieArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.Object3DArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.TableArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.ChartArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	if v, ok := objectstore.Deref[*tsd.PlaceholderArchive](e.store, ref); ok {
		return v.Geometry, v.Geometry != nil
	}
	return nil, false
}
