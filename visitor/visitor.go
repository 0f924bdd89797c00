// Package visitor is the push API the traversal engine targets. Every
// method takes a context (the engine's only suspension point besides
// the OCR provider call) and returns an error that aborts the
// traversal when non-nil.
package visitor

import "context"

// Visitor receives the traversal engine's strictly document-ordered
// event stream. The engine guarantees every begin event is
// matched by exactly one properly nested end event, invokes no two
// methods concurrently for one traversal, and does not retain references
// to visitor-owned data after a call returns.
type Visitor interface {
	DocumentBegin(ctx context.Context, info DocumentInfo) error
	DocumentEnd(ctx context.Context) error

	PagesBodyBegin(ctx context.Context) error
	PagesBodyEnd(ctx context.Context) error

	SheetBegin(ctx context.Context, info SheetInfo) error
	SheetEnd(ctx context.Context) error

	SlideBegin(ctx context.Context, info SlideInfo) error
	SlideEnd(ctx context.Context) error

	ListBegin(ctx context.Context, info ListInfo) error
	ListEnd(ctx context.Context) error

	ListItemBegin(ctx context.Context, info ListItemInfo) error
	ListItemEnd(ctx context.Context) error

	ParagraphBegin(ctx context.Context, info ParagraphInfo) error
	ParagraphEnd(ctx context.Context) error

	Text(ctx context.Context, event TextEvent) error
	FootnoteMarker(ctx context.Context, event FootnoteMarkerEvent) error
	Equation(ctx context.Context, event EquationEvent) error

	Image(ctx context.Context, event ImageEvent) error
	Media(ctx context.Context, event MediaEvent) error
	Object3D(ctx context.Context, event Object3DEvent) error
	Chart(ctx context.Context, event ChartEvent) error

	TableBegin(ctx context.Context, info TableInfo) error
	TableEnd(ctx context.Context) error
	RowBegin(ctx context.Context, info RowInfo) error
	RowEnd(ctx context.Context) error
	Cell(ctx context.Context, event CellEvent) error

	ShapeBegin(ctx context.Context, info ShapeInfo) error
	ShapeEnd(ctx context.Context) error
	GroupBegin(ctx context.Context, info GroupInfo) error
	GroupEnd(ctx context.Context) error
}

// BaseVisitor implements every Visitor method as a no-op returning nil.
// Embed it in a concrete visitor and override only the events it cares
// about, the same convention generated gRPC server stubs use for
// "Unimplemented*Server" embedding (this module already depends on
// google.golang.org/protobuf's code-generation ecosystem).
type BaseVisitor struct{}

var _ Visitor = BaseVisitor{}

func (BaseVisitor) DocumentBegin(context.Context, DocumentInfo) error { return nil }
func (BaseVisitor) DocumentEnd(context.Context) error                 { return nil }

func (BaseVisitor) PagesBodyBegin(context.Context) error { return nil }
func (BaseVisitor) PagesBodyEnd(context.Context) error   { return nil }

func (BaseVisitor) SheetBegin(context.Context, SheetInfo) error { return nil }
func (BaseVisitor) SheetEnd(context.Context) error              { return nil }

func (BaseVisitor) SlideBegin(context.Context, SlideInfo) error { return nil }
func (BaseVisitor) SlideEnd(context.Context) error              { return nil }

func (BaseVisitor) ListBegin(context.Context, ListInfo) error { return nil }
func (BaseVisitor) ListEnd(context.Context) error             { return nil }

func (BaseVisitor) ListItemBegin(context.Context, ListItemInfo) error { return nil }
func (BaseVisitor) ListItemEnd(context.Context) error                 { return nil }

func (BaseVisitor) ParagraphBegin(context.Context, ParagraphInfo) error { return nil }
func (BaseVisitor) ParagraphEnd(context.Context) error                  { return nil }

func (BaseVisitor) Text(context.Context, TextEvent) error                     { return nil }
func (BaseVisitor) FootnoteMarker(context.Context, FootnoteMarkerEvent) error { return nil }
func (BaseVisitor) Equation(context.Context, EquationEvent) error             { return nil }

func (BaseVisitor) Image(context.Context, ImageEvent) error       { return nil }
func (BaseVisitor) Media(context.Context, MediaEvent) error       { return nil }
func (BaseVisitor) Object3D(context.Context, Object3DEvent) error { return nil }
func (BaseVisitor) Chart(context.Context, ChartEvent) error       { return nil }

func (BaseVisitor) TableBegin(context.Context, TableInfo) error { return nil }
func (BaseVisitor) TableEnd(context.Context) error              { return nil }
func (BaseVisitor) RowBegin(context.Context, RowInfo) error     { return nil }
func (BaseVisitor) RowEnd(context.Context) error                { return nil }
func (BaseVisitor) Cell(context.Context, CellEvent) error       { return nil }

func (BaseVisitor) ShapeBegin(context.Context, ShapeInfo) error { return nil }
func (BaseVisitor) ShapeEnd(context.Context) error              { return nil }
func (BaseVisitor) GroupBegin(context.Context, GroupInfo) error { return nil }
func (BaseVisitor) GroupEnd(context.Context) error              { return nil }
