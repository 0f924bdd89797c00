// Package shapepath resolves a shape's path reference through the
// object store and normalizes whichever of the six archive variants is
// stored there into a single tsd.PathSource value.
package shapepath

import (
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// Resolve dereferences ref against store and normalizes whichever path
// archive variant it names into a tsd.PathSource. It reports false if ref
// is nil or names an object the store has no recognized path decoder for.
func Resolve(store *objectstore.Store, ref *tsp.Reference) (*tsd.PathSource, bool) {
	if ref == nil {
		return nil, false
	}

	if v, ok := objectstore.Deref[*tsd.PointPath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindPoint, Point: v}, true
	}
	if v, ok := objectstore.Deref[*tsd.ScalarPath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindScalar, Scalar: v}, true
	}
	if v, ok := objectstore.Deref[*tsd.BezierPath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindBezier, Bezier: v}, true
	}
	if v, ok := objectstore.Deref[*tsd.CalloutPath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindCallout, Callout: v}, true
	}
	if v, ok := objectstore.Deref[*tsd.ConnectionLinePath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindConnectionLine, ConnectionLine: v}, true
	}
	if v, ok := objectstore.Deref[*tsd.EditableBezierPath](store, ref); ok {
		return &tsd.PathSource{Kind: tsd.PathKindEditableBezier, EditableBezier: v}, true
	}
	return nil, false
}
