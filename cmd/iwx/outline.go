package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/benedoc-inc/iworkdoc/visitor"
)

// outlineVisitor prints one line per event, indented by nesting depth.
// It is deliberately lossy — a debugging aid, not a converter.
type outlineVisitor struct {
	visitor.BaseVisitor
	out   io.Writer
	depth int
}

func (o *outlineVisitor) line(format string, args ...any) error {
	_, err := fmt.Fprintf(o.out, "%s%s\n", strings.Repeat("  ", o.depth), fmt.Sprintf(format, args...))
	return err
}

func (o *outlineVisitor) begin(format string, args ...any) error {
	err := o.line(format, args...)
	o.depth++
	return err
}

func (o *outlineVisitor) end() error {
	o.depth--
	return nil
}

func (o *outlineVisitor) DocumentBegin(ctx context.Context, info visitor.DocumentInfo) error {
	return o.begin("document (%s)", info.Kind)
}
func (o *outlineVisitor) DocumentEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) PagesBodyBegin(ctx context.Context) error { return o.begin("body") }
func (o *outlineVisitor) PagesBodyEnd(ctx context.Context) error   { return o.end() }

func (o *outlineVisitor) SheetBegin(ctx context.Context, info visitor.SheetInfo) error {
	return o.begin("sheet %q", info.Name)
}
func (o *outlineVisitor) SheetEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) SlideBegin(ctx context.Context, info visitor.SlideInfo) error {
	return o.begin("slide %d", info.Index+1)
}
func (o *outlineVisitor) SlideEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) ListBegin(ctx context.Context, info visitor.ListInfo) error {
	return o.begin("list (level %d)", info.Level)
}
func (o *outlineVisitor) ListEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) ListItemBegin(ctx context.Context, info visitor.ListItemInfo) error {
	if info.Number > 0 {
		return o.begin("item %d", info.Number)
	}
	return o.begin("item")
}
func (o *outlineVisitor) ListItemEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) ParagraphBegin(ctx context.Context, info visitor.ParagraphInfo) error {
	return o.begin("paragraph")
}
func (o *outlineVisitor) ParagraphEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) Text(ctx context.Context, event visitor.TextEvent) error {
	if event.Hyperlink != nil {
		return o.line("text %q -> %s", event.Text, event.Hyperlink.URL)
	}
	return o.line("text %q", event.Text)
}

func (o *outlineVisitor) FootnoteMarker(ctx context.Context, event visitor.FootnoteMarkerEvent) error {
	return o.line("footnote [%d]", event.Index)
}

func (o *outlineVisitor) Equation(ctx context.Context, event visitor.EquationEvent) error {
	return o.line("equation")
}

func (o *outlineVisitor) Image(ctx context.Context, event visitor.ImageEvent) error {
	return o.line("image %s", event.AssetPath)
}

func (o *outlineVisitor) Media(ctx context.Context, event visitor.MediaEvent) error {
	return o.line("media %s", event.AssetPath)
}

func (o *outlineVisitor) Object3D(ctx context.Context, event visitor.Object3DEvent) error {
	return o.line("3d-object %s", event.AssetPath)
}

func (o *outlineVisitor) Chart(ctx context.Context, event visitor.ChartEvent) error {
	return o.line("chart (%d series)", len(event.Series))
}

func (o *outlineVisitor) TableBegin(ctx context.Context, info visitor.TableInfo) error {
	return o.begin("table %q (%dx%d)", info.Name, info.NumRows, info.NumCols)
}
func (o *outlineVisitor) TableEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) RowBegin(ctx context.Context, info visitor.RowInfo) error {
	return o.begin("row %d", info.Index)
}
func (o *outlineVisitor) RowEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) Cell(ctx context.Context, event visitor.CellEvent) error {
	switch {
	case event.Empty:
		return o.line("cell -")
	case event.Number != nil:
		return o.line("cell %g", *event.Number)
	case event.Text != nil:
		return o.line("cell %q", *event.Text)
	case event.Boolean != nil:
		return o.line("cell %t", *event.Boolean)
	case event.Date != nil:
		return o.line("cell date(%d)", *event.Date)
	case event.Duration != nil:
		return o.line("cell duration(%g)", *event.Duration)
	case event.IsError:
		return o.line("cell #ERROR")
	}
	return o.line("cell ?")
}

func (o *outlineVisitor) ShapeBegin(ctx context.Context, info visitor.ShapeInfo) error {
	return o.begin("shape %q", info.Name)
}
func (o *outlineVisitor) ShapeEnd(ctx context.Context) error { return o.end() }

func (o *outlineVisitor) GroupBegin(ctx context.Context, info visitor.GroupInfo) error {
	return o.begin("group %q", info.Name)
}
func (o *outlineVisitor) GroupEnd(ctx context.Context) error { return o.end() }
