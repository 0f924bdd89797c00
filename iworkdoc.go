// Package iworkdoc reads Apple iWork document packages (Pages, Numbers,
// Keynote) and drives a push-style visitor across their content: text
// runs, lists, tables, drawables and media, in document order.
//
// # Quick Start
//
//	doc, err := iworkdoc.Open("report.pages")
//	if err != nil {
//		// ...
//	}
//	defer doc.Close()
//
//	warnings, err := doc.Walk(context.Background(), myVisitor)
//
// # Packages
//
//   - visitor: the push-style event interface documents are walked with
//   - ocr: optional image-recognition hook for embedded pictures
package iworkdoc

import (
	"context"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/metadata"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/traverse"
	"github.com/benedoc-inc/iworkdoc/ocr"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// Re-export the types callers need to implement a visitor or inspect
// errors, so most programs only need to import this package.

// Visitor is the interface a caller implements to receive a document's
// event stream.
type Visitor = visitor.Visitor

// BaseVisitor is a no-op Visitor embed; embed it to implement only the
// methods a caller cares about.
type BaseVisitor = visitor.BaseVisitor

// Error is a fatal condition that aborts opening or walking a package.
type Error = errs.Error

// Warning is a non-fatal condition recorded while walking a package;
// the document is still fully walked.
type Warning = errs.Warning

// OCRProvider recognizes text in an embedded raster image.
type OCRProvider = ocr.Provider

// Kind identifies which of the three iWork applications produced a
// package.
type Kind = objectstore.DocumentKind

const (
	WordProcessor = objectstore.WordProcessor
	Spreadsheet   = objectstore.Spreadsheet
	Presentation  = objectstore.Presentation
)

// Document is an opened iWork package, positioned to be walked once
// (or repeatedly — Walk holds no state across calls).
type Document struct {
	pkg   *pkgstore.Package
	store *objectstore.Store
	meta  *metadata.Metadata
	kind  objectstore.DocumentKind
}

// Option configures a Document's walk behavior.
type Option = traverse.Option

// WithOCRProvider attaches an OCR provider; without one, Image events
// carry no OCR result.
func WithOCRProvider(p OCRProvider) Option {
	return traverse.WithOCRProvider(p)
}

// Open reads the package at path (a ZIP file or an already-expanded
// directory) and detects its document kind. The package's IWA streams
// are fully decoded at this point; Open returns a corruption error
// rather than deferring it to Walk.
func Open(path string) (*Document, error) {
	pkg, err := pkgstore.Open(path)
	if err != nil {
		// Already a *errs.Error carrying the right code (PackageNotFound
		// for a missing path, PackageCorrupt for a malformed one).
		return nil, err
	}
	store, err := objectstore.Build(pkg)
	if err != nil {
		pkg.Close()
		return nil, err
	}
	kind, err := store.DetectDocumentKind()
	if err != nil {
		pkg.Close()
		return nil, err
	}
	meta, _ := metadata.Load(store, pkg)
	return &Document{pkg: pkg, store: store, meta: meta, kind: kind}, nil
}

// Close releases the underlying package (the ZIP reader, or nothing
// for a directory package).
func (d *Document) Close() error {
	return d.pkg.Close()
}

// Kind reports which iWork application produced this document.
func (d *Document) Kind() Kind {
	return d.kind
}

// Walk drives v across the document's full content in document order
// and returns any non-fatal warnings collected along the way. A fatal
// error aborts the walk immediately and is returned alongside whatever
// warnings were collected before it.
func (d *Document) Walk(ctx context.Context, v Visitor, opts ...Option) ([]*Warning, error) {
	engine := traverse.New(d.store, d.meta, d.pkg)
	for _, opt := range opts {
		opt(engine)
	}
	err := engine.Walk(ctx, d.kind, v)
	return engine.Warnings(), err
}
