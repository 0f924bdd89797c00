// Package traverse is the document-type-dispatched, document-order
// traversal engine that drives a visitor.Visitor across a decoded
// package. It is the single consumer of every other internal
// package — the object store, style resolver, cell decoder and
// shape-path resolver all converge here.
package traverse

import (
	"context"
	"sort"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/metadata"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/kn"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/ocr"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithOCRProvider attaches an OCR collaborator the engine calls for
// each resolved image event.
func WithOCRProvider(p ocr.Provider) Option {
	return func(e *Engine) { e.ocrProvider = p }
}

// Engine walks a decoded package and emits a visitor.Visitor event
// stream in document order.
type Engine struct {
	store       *objectstore.Store
	meta        *metadata.Metadata
	pkg         *pkgstore.Package
	ocrProvider ocr.Provider
	warnings    *errs.Collector
	footnoteSeq int
}

// New builds an Engine over an already-decoded package.
func New(store *objectstore.Store, meta *metadata.Metadata, pkg *pkgstore.Package, opts ...Option) *Engine {
	e := &Engine{store: store, meta: meta, pkg: pkg, warnings: errs.NewCollector()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Warnings returns every non-fatal condition accumulated during the most
// recent Walk call.
func (e *Engine) Warnings() []*errs.Warning {
	return e.warnings.Warnings()
}

// Walk dispatches on kind and drives v through the document. The
// returned error is non-nil only for corruption or a
// visitor failure; missing references and unresolvable subtypes are
// recorded as warnings instead.
func (e *Engine) Walk(ctx context.Context, kind objectstore.DocumentKind, v visitor.Visitor) error {
	e.warnings = errs.NewCollector()
	switch kind {
	case objectstore.WordProcessor:
		return e.walkWordProcessor(ctx, v)
	case objectstore.Spreadsheet:
		return e.walkSpreadsheet(ctx, v)
	case objectstore.Presentation:
		return e.walkPresentation(ctx, v)
	default:
		return errs.New(errs.CodeSchemaUnknown, "unsupported document kind")
	}
}

func (e *Engine) walkWordProcessor(ctx context.Context, v visitor.Visitor) error {
	_, doc, ok := objectstore.FirstOfType[*tswp.DocumentArchive](e.store)
	if !ok {
		return errs.New(errs.CodeSchemaUnknown, "no word-processor document anchor record found")
	}
	if err := wrapVisitorErr(v.DocumentBegin(ctx, visitor.DocumentInfo{Kind: visitor.WordProcessor})); err != nil {
		return err
	}

	for _, section := range doc.Sections {
		for _, ref := range section.BackgroundDrawables {
			if err := e.visitDrawable(ctx, ref, v); err != nil {
				return err
			}
		}
		for _, ref := range section.Placeholders {
			if err := e.visitDrawable(ctx, ref, v); err != nil {
				return err
			}
		}
	}

	if err := wrapVisitorErr(v.PagesBodyBegin(ctx)); err != nil {
		return err
	}
	if doc.Body != nil {
		if storage, ok := objectstore.Deref[*tswp.StorageArchive](e.store, doc.Body); ok {
			if err := e.traverseStorage(ctx, storage, v); err != nil {
				return err
			}
		} else {
			e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "word-processor body storage %d not found", doc.Body.GetIdentifier())
		}
	}
	if err := wrapVisitorErr(v.PagesBodyEnd(ctx)); err != nil {
		return err
	}

	for _, ref := range e.orderFloatingDrawables(doc.FloatingDrawables, doc.DrawableOrder) {
		if err := e.visitDrawable(ctx, ref, v); err != nil {
			return err
		}
	}

	return wrapVisitorErr(v.DocumentEnd(ctx))
}

func (e *Engine) walkSpreadsheet(ctx context.Context, v visitor.Visitor) error {
	_, doc, ok := objectstore.FirstOfType[*tst.DocumentArchive](e.store)
	if !ok {
		return errs.New(errs.CodeSchemaUnknown, "no spreadsheet document anchor record found")
	}
	if err := wrapVisitorErr(v.DocumentBegin(ctx, visitor.DocumentInfo{Kind: visitor.Spreadsheet})); err != nil {
		return err
	}

	for _, sheetRef := range doc.Sheets {
		sheet, ok := objectstore.Deref[*tst.SheetArchive](e.store, sheetRef)
		if !ok {
			e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "sheet %d not found", sheetRef.GetIdentifier())
			continue
		}
		if err := wrapVisitorErr(v.SheetBegin(ctx, visitor.SheetInfo{Name: sheet.GetName()})); err != nil {
			return err
		}
		for _, ref := range e.orderBySpatialReadingOrder(sheet.Drawables) {
			if err := e.visitDrawable(ctx, ref, v); err != nil {
				return err
			}
		}
		if err := wrapVisitorErr(v.SheetEnd(ctx)); err != nil {
			return err
		}
	}

	return wrapVisitorErr(v.DocumentEnd(ctx))
}

func (e *Engine) walkPresentation(ctx context.Context, v visitor.Visitor) error {
	if e.meta == nil {
		return errs.New(errs.CodeSchemaUnknown, "presentation package has no metadata record")
	}
	comps := e.meta.ComponentsWithLocator("Slide")
	ids := make([]uint64, 0, len(comps))
	for _, c := range comps {
		ids = append(ids, c.GetIdentifier())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if err := wrapVisitorErr(v.DocumentBegin(ctx, visitor.DocumentInfo{Kind: visitor.Presentation})); err != nil {
		return err
	}

	for idx, id := range ids {
		slide, ok := objectstore.Get[*kn.SlideArchive](e.store, id)
		if !ok {
			e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "slide %d not found", id)
			continue
		}
		info := visitor.SlideInfo{Index: idx}
		if slide.Bounds != nil {
			info.Width, info.Height = slide.Bounds.Width, slide.Bounds.Height
		}
		if err := wrapVisitorErr(v.SlideBegin(ctx, info)); err != nil {
			return err
		}
		for _, ref := range e.orderBySpatialReadingOrder(slide.Drawables) {
			if err := e.visitDrawable(ctx, ref, v); err != nil {
				return err
			}
		}
		if err := wrapVisitorErr(v.SlideEnd(ctx)); err != nil {
			return err
		}
	}

	return wrapVisitorErr(v.DocumentEnd(ctx))
}

// wrapVisitorErr normalizes a visitor callback's error into an
// *errs.Error so callers can uniformly check err != nil without caring
// whether the failure originated inside the engine or the visitor.
func wrapVisitorErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.As(err); ok {
		return err
	}
	return errs.Wrap(errs.CodeVisitorError, "visitor returned an error", err)
}

func (e *Engine) resolveAssetPath(dataID uint64) (string, bool) {
	if e.meta == nil {
		return "", false
	}
	return e.meta.ResolveAssetPath(dataID)
}

func derefU32(p *uint32) uint32 {
	if p == nil {
		return 0
	}
	return *p
}

func colorValue(c *tsp.Color) *visitor.ColorValue {
	if c == nil {
		return nil
	}
	get := func(p *float32) float64 {
		if p == nil {
			return 0
		}
		return float64(*p)
	}
	return &visitor.ColorValue{R: get(c.Red), G: get(c.Green), B: get(c.Blue), A: get(c.Alpha)}
}
