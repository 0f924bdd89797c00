package traverse

import (
	"context"

	"github.com/benedoc-inc/iworkdoc/internal/cellcodec"
	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/internal/style"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

const emptyCellOffset = 0xFFFF

// visitTable walks one table drawable's tiled cell storage row by row:
// a table-begin/end pair wraps row-begin/end pairs, each wrapping one
// cell event per column, with a 0xFFFF offset sentinel meaning an empty
// cell.
func (e *Engine) visitTable(ctx context.Context, t *tsd.TableArchive, v visitor.Visitor) error {
	model, ok := objectstore.Deref[*tst.TableModelArchive](e.store, t.Model)
	if !ok {
		e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "table %q: model not found", t.GetName())
		return nil
	}

	info := visitor.TableInfo{
		Name:          t.GetName(),
		NumRows:       int(model.GetNumRows()),
		NumCols:       int(model.GetNumCols()),
		NumHeaderRows: int(derefU32(model.NumHeaderRows)),
		NumHeaderCols: int(derefU32(model.NumHeaderCols)),
		NumFooterRows: int(derefU32(model.NumFooterRows)),
	}
	if t.Geometry != nil {
		pos := t.Geometry.Position2D()
		info.PositionX, info.PositionY = pos.X, pos.Y
	}
	if err := wrapVisitorErr(v.TableBegin(ctx, info)); err != nil {
		return err
	}

	tables := cellcodec.Tables{}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.StringTable); ok {
		tables.Strings = lst
	}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.RichTextTable); ok {
		tables.RichTexts = lst
	}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.NumberFormatTable); ok {
		tables.NumberFormats = lst
	}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.CurrencyFormatTable); ok {
		tables.CurrencyFormats = lst
	}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.DateFormatTable); ok {
		tables.DateFormats = lst
	}
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.DurationFormatTable); ok {
		tables.DurationFormats = lst
	}
	var cellStyles *tst.TableDataList
	if lst, ok := objectstore.Deref[*tst.TableDataList](e.store, model.CellStyleTable); ok {
		cellStyles = lst
		tables.Styles = lst
	}
	var strokes *tst.StrokeSidecar
	if s, ok := objectstore.Deref[*tst.StrokeSidecar](e.store, model.StrokeSidecar); ok {
		strokes = s
	}

	rowStride := int(model.GetRowStride())
	for _, tileRef := range model.Tiles {
		tile, ok := objectstore.Deref[*tst.TileArchive](e.store, tileRef)
		if !ok {
			e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "table %q: tile %d not found", t.GetName(), tileRef.GetIdentifier())
			continue
		}
		base := rowStride * int(tile.GetTileIndex())
		for localRow, row := range tile.Rows {
			absRow := base + localRow
			if absRow >= int(model.GetNumRows()) {
				continue
			}
			if err := wrapVisitorErr(v.RowBegin(ctx, visitor.RowInfo{Index: absRow})); err != nil {
				return err
			}
			for col := 0; col < int(model.GetNumCols()); col++ {
				offset := emptyCellOffset
				if col < len(row.Offsets) {
					offset = int(row.Offsets[col])
				}
				if offset == emptyCellOffset || offset >= len(row.Buffer) {
					if err := wrapVisitorErr(v.Cell(ctx, visitor.CellEvent{Column: col, Empty: true})); err != nil {
						return err
					}
					continue
				}
				cell := cellcodec.Decode(row.Buffer[offset:], tables)
				event := e.cellEvent(col, cell, cellStyles)
				event.Borders = cellBorders(strokes, absRow, col)
				if err := wrapVisitorErr(v.Cell(ctx, event)); err != nil {
					return err
				}
			}
			if err := wrapVisitorErr(v.RowEnd(ctx)); err != nil {
				return err
			}
		}
	}

	return wrapVisitorErr(v.TableEnd(ctx))
}

// cellBorders resolves the stroke sidecar's overlapping runs for one
// cell: the row runs give its top stroke, the column runs its left one.
// Among runs covering the same index the highest priority wins; equal
// priorities resolve to the later run.
func cellBorders(strokes *tst.StrokeSidecar, row, col int) *visitor.CellBorders {
	if strokes == nil {
		return nil
	}
	top := strokeWidthAt(strokes.RowRuns, row)
	left := strokeWidthAt(strokes.ColRuns, col)
	if top == nil && left == nil {
		return nil
	}
	return &visitor.CellBorders{Top: top, Left: left}
}

func strokeWidthAt(runs []*tst.StrokeRun, index int) *float64 {
	var best *tst.StrokeRun
	for _, r := range runs {
		start := int(derefU32(r.StartIndex))
		if index < start || index >= start+int(derefU32(r.Length)) {
			continue
		}
		if best == nil || derefU32(r.Priority) >= derefU32(best.Priority) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	return best.Width
}

func (e *Engine) cellEvent(col int, cell *cellcodec.Cell, cellStyles *tst.TableDataList) visitor.CellEvent {
	event := visitor.CellEvent{Column: col}
	if cell.Type == cellcodec.CellTypeEmpty {
		event.Empty = true
		return event
	}
	event.Number = cell.Number
	event.Text = cell.Text
	event.Boolean = cell.Boolean
	event.Duration = cell.Duration
	event.IsError = cell.IsError
	event.CurrencyCode = cell.CurrencyCode
	if cell.Date != nil {
		sec := cell.Date.Unix()
		event.Date = &sec
	}
	if cell.RichTextRef != nil {
		if storage, ok := objectstore.Deref[*tswp.StorageArchive](e.store, cell.RichTextRef); ok {
			text := stripSentinelRunes([]rune(storage.GetText()))
			event.Text = &text
		}
	}
	if cell.CellStyleID != nil && cellStyles != nil {
		if entry := cellStyles.ByKey(int32(*cell.CellStyleID)); entry != nil && entry.Reference != nil {
			resolved := style.ResolveCell(e.store, entry.Reference)
			event.FillColor = colorValue(resolved.FillColor)
		}
	}
	return event
}
