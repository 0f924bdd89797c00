package traverse

import (
	"context"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/internal/shapepath"
	"github.com/benedoc-inc/iworkdoc/internal/style"
	"github.com/benedoc-inc/iworkdoc/ocr"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// visitDrawable dereferences ref against every known drawable schema type
// and dispatches to the matching visit function; the first successful
// typed deref wins (internal/shapepath dispatches its path variants
// the same way).
func (e *Engine) visitDrawable(ctx context.Context, ref *tsp.Reference, v visitor.Visitor) error {
	if ref == nil || !ref.HasIdentifier() {
		return nil
	}
	if img, ok := objectstore.Deref[*tsd.ImageArchive](e.store, ref); ok {
		return e.visitImage(ctx, img, v)
	}
	if mov, ok := objectstore.Deref[*tsd.MovieArchive](e.store, ref); ok {
		return e.visitMovie(ctx, mov, v)
	}
	if o3, ok := objectstore.Deref[*tsd.Object3DArchive](e.store, ref); ok {
		return e.visitObject3D(ctx, o3, v)
	}
	if chart, ok := objectstore.Deref[*tsd.ChartArchive](e.store, ref); ok {
		return e.visitChart(ctx, chart, v)
	}
	if tbl, ok := objectstore.Deref[*tsd.TableArchive](e.store, ref); ok {
		return e.visitTable(ctx, tbl, v)
	}
	if grp, ok := objectstore.Deref[*tsd.GroupArchive](e.store, ref); ok {
		return e.visitGroup(ctx, grp, v)
	}
	if shp, ok := objectstore.Deref[*tsd.ShapeArchive](e.store, ref); ok {
		return e.visitShape(ctx, shp, v)
	}
	if _, ok := objectstore.Deref[*tsd.PlaceholderArchive](e.store, ref); ok {
		// Page-template placeholders carry no visual content of their
		// own; their presence is implicit in the section's layout.
		return nil
	}
	e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "drawable %d: no recognized schema type", ref.GetIdentifier())
	return nil
}

// visitAttachment resolves an inline attachment-table entry to its
// underlying drawable and dispatches the same way visitDrawable does,
// falling back to an Equation event for kinds this module has no schema
// type for.
func (e *Engine) visitAttachment(ctx context.Context, attachRef *tsp.Reference, v visitor.Visitor) error {
	attach, ok := objectstore.Deref[*tswp.AttachmentArchive](e.store, attachRef)
	if !ok || attach.Object == nil {
		e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "attachment %d not found", attachRef.GetIdentifier())
		return nil
	}
	ref := attach.Object
	if img, ok := objectstore.Deref[*tsd.ImageArchive](e.store, ref); ok {
		return e.visitImage(ctx, img, v)
	}
	if mov, ok := objectstore.Deref[*tsd.MovieArchive](e.store, ref); ok {
		return e.visitMovie(ctx, mov, v)
	}
	if o3, ok := objectstore.Deref[*tsd.Object3DArchive](e.store, ref); ok {
		return e.visitObject3D(ctx, o3, v)
	}
	if chart, ok := objectstore.Deref[*tsd.ChartArchive](e.store, ref); ok {
		return e.visitChart(ctx, chart, v)
	}
	if tbl, ok := objectstore.Deref[*tsd.TableArchive](e.store, ref); ok {
		return e.visitTable(ctx, tbl, v)
	}
	if shp, ok := objectstore.Deref[*tsd.ShapeArchive](e.store, ref); ok {
		return e.visitShape(ctx, shp, v)
	}
	// An equation or any other unrecognized inline kind: emit a bare
	// event rather than aborting the paragraph merge.
	return wrapVisitorErr(v.Equation(ctx, visitor.EquationEvent{}))
}

func (e *Engine) visitImage(ctx context.Context, img *tsd.ImageArchive, v visitor.Visitor) error {
	path, ok := e.resolveAssetPath(img.GetDataIdentifier())
	if !ok {
		return nil
	}
	event := visitor.ImageEvent{AssetPath: path}
	if img.Style != nil {
		resolved := style.ResolveMedia(e.store, img.Style)
		if resolved.StrokeColor != nil || resolved.StrokeWidth != nil || resolved.HasShadow != nil {
			event.Style = &visitor.MediaStyleValue{
				StrokeColor: colorValue(resolved.StrokeColor),
				StrokeWidth: resolved.StrokeWidth,
				HasShadow:   resolved.HasShadow,
			}
		}
	}
	e.attachOCR(ctx, img.Geometry, path, &event.OCR)
	return wrapVisitorErr(v.Image(ctx, event))
}

func (e *Engine) attachOCR(ctx context.Context, geom *tsd.GeometryArchive, path string, out **visitor.OCRResult) {
	if e.ocrProvider == nil || e.pkg == nil {
		return
	}
	raw, err := e.pkg.Read(path)
	if err != nil {
		return
	}
	sz := geom.SizeValue()
	result, err := e.ocrProvider.Recognize(ctx, raw, ocr.ImageInfo{AssetPath: path, Width: sz.Width, Height: sz.Height})
	if err != nil {
		e.warnings.Addf(errs.LevelInfo, errs.CodeOCRFailure, "ocr failed for %s: %v", path, err)
		return
	}
	*out = &visitor.OCRResult{Text: result.Text, Confidence: result.Confidence}
}

func (e *Engine) visitMovie(ctx context.Context, m *tsd.MovieArchive, v visitor.Visitor) error {
	event := visitor.MediaEvent{}
	if m.DataIdentifier != nil {
		if p, ok := e.resolveAssetPath(*m.DataIdentifier); ok {
			event.AssetPath = p
		}
	}
	if m.PosterDataIdentifier != nil {
		if p, ok := e.resolveAssetPath(*m.PosterDataIdentifier); ok {
			event.PosterAssetPath = p
		}
	}
	return wrapVisitorErr(v.Media(ctx, event))
}

func (e *Engine) visitObject3D(ctx context.Context, o *tsd.Object3DArchive, v visitor.Visitor) error {
	event := visitor.Object3DEvent{}
	if o.DataIdentifier != nil {
		if p, ok := e.resolveAssetPath(*o.DataIdentifier); ok {
			event.AssetPath = p
		}
	}
	if o.PosterDataIdentifier != nil {
		if p, ok := e.resolveAssetPath(*o.PosterDataIdentifier); ok {
			event.PosterAssetPath = p
		}
	}
	return wrapVisitorErr(v.Object3D(ctx, event))
}

func (e *Engine) visitChart(ctx context.Context, c *tsd.ChartArchive, v visitor.Visitor) error {
	event := visitor.ChartEvent{
		CategoryAxisLabels: append([]string(nil), c.CategoryAxisLabels...),
		LegendEntries:      append([]string(nil), c.LegendEntries...),
	}
	if c.ValueAxisTitle != nil {
		event.ValueAxisTitle = *c.ValueAxisTitle
	}
	for _, s := range c.Series {
		sv := visitor.ChartSeriesValue{Values: append([]float64(nil), s.Values...)}
		if s.Name != nil {
			sv.Name = *s.Name
		}
		event.Series = append(event.Series, sv)
	}
	return wrapVisitorErr(v.Chart(ctx, event))
}

func (e *Engine) visitGroup(ctx context.Context, g *tsd.GroupArchive, v visitor.Visitor) error {
	if err := wrapVisitorErr(v.GroupBegin(ctx, visitor.GroupInfo{Name: g.GetName()})); err != nil {
		return err
	}
	for _, child := range g.Children {
		if err := e.visitDrawable(ctx, child, v); err != nil {
			return err
		}
	}
	return wrapVisitorErr(v.GroupEnd(ctx))
}

func (e *Engine) visitShape(ctx context.Context, s *tsd.ShapeArchive, v visitor.Visitor) error {
	info := visitor.ShapeInfo{Name: s.GetName()}
	if s.Geometry != nil {
		pos := s.Geometry.Position2D()
		sz := s.Geometry.SizeValue()
		info.PositionX, info.PositionY, info.Width, info.Height = pos.X, pos.Y, sz.Width, sz.Height
	}
	if src, ok := shapepath.Resolve(e.store, s.Path); ok {
		info.Path = pathValue(src)
	}
	if err := wrapVisitorErr(v.ShapeBegin(ctx, info)); err != nil {
		return err
	}
	if s.Text != nil {
		if storage, ok := objectstore.Deref[*tswp.StorageArchive](e.store, s.Text); ok {
			if err := e.traverseStorage(ctx, storage, v); err != nil {
				return err
			}
		}
	}
	return wrapVisitorErr(v.ShapeEnd(ctx))
}
