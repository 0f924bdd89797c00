package objectstore

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/kn"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
)

// decodeFunc unmarshals a record's raw payload into its schema type.
type decodeFunc func(raw []byte) (any, error)

// unmarshaler is implemented by every schema message pointer type.
type unmarshaler interface {
	Unmarshal([]byte) error
}

func decoder[T unmarshaler](newT func() T) decodeFunc {
	return func(raw []byte) (any, error) {
		v := newT()
		if err := v.Unmarshal(raw); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// registry dispatches a record's type code to its schema decoder,
// spanning the common, word-processing, spreadsheet and presentation
// message families.
var registry = map[TypeCode]decodeFunc{
	TypeMetadata: decoder(func() *tsp.MetadataArchive { return &tsp.MetadataArchive{} }),

	DocWordProcessor:   decoder(func() *tswp.DocumentArchive { return &tswp.DocumentArchive{} }),
	TypeSection:        decoder(func() *tswp.SectionArchive { return &tswp.SectionArchive{} }),
	TypeStorage:        decoder(func() *tswp.StorageArchive { return &tswp.StorageArchive{} }),
	TypeParagraphStyle: decoder(func() *tswp.ParagraphStyleArchive { return &tswp.ParagraphStyleArchive{} }),
	TypeCharacterStyle: decoder(func() *tswp.CharacterStyleArchive { return &tswp.CharacterStyleArchive{} }),
	TypeListStyle:      decoder(func() *tswp.ListStyleArchive { return &tswp.ListStyleArchive{} }),
	TypeAttachment:     decoder(func() *tswp.AttachmentArchive { return &tswp.AttachmentArchive{} }),
	TypeHyperlinkField: decoder(func() *tswp.HyperlinkFieldArchive { return &tswp.HyperlinkFieldArchive{} }),
	TypeFootnote:       decoder(func() *tswp.FootnoteArchive { return &tswp.FootnoteArchive{} }),
	TypeParagraphData:  decoder(func() *tswp.ParagraphDataArchive { return &tswp.ParagraphDataArchive{} }),

	TypeShape:         decoder(func() *tsd.ShapeArchive { return &tsd.ShapeArchive{} }),
	TypeGroup:         decoder(func() *tsd.GroupArchive { return &tsd.GroupArchive{} }),
	TypePlaceholder:   decoder(func() *tsd.PlaceholderArchive { return &tsd.PlaceholderArchive{} }),
	TypeImage:         decoder(func() *tsd.ImageArchive { return &tsd.ImageArchive{} }),
	TypeMovie:         decoder(func() *tsd.MovieArchive { return &tsd.MovieArchive{} }),
	TypeObject3D:      decoder(func() *tsd.Object3DArchive { return &tsd.Object3DArchive{} }),
	TypeTableDrawable: decoder(func() *tsd.TableArchive { return &tsd.TableArchive{} }),
	TypeChart:         decoder(func() *tsd.ChartArchive { return &tsd.ChartArchive{} }),
	TypeDrawableOrder: decoder(func() *tsd.DrawableOrderArchive { return &tsd.DrawableOrderArchive{} }),
	TypeMediaStyle:    decoder(func() *tsd.MediaStyleArchive { return &tsd.MediaStyleArchive{} }),

	TypePointPath:          decoder(func() *tsd.PointPath { return &tsd.PointPath{} }),
	TypeScalarPath:         decoder(func() *tsd.ScalarPath { return &tsd.ScalarPath{} }),
	TypeBezierPath:         decoder(func() *tsd.BezierPath { return &tsd.BezierPath{} }),
	TypeCalloutPath:        decoder(func() *tsd.CalloutPath { return &tsd.CalloutPath{} }),
	TypeConnectionLinePath: decoder(func() *tsd.ConnectionLinePath { return &tsd.ConnectionLinePath{} }),
	TypeEditableBezierPath: decoder(func() *tsd.EditableBezierPath { return &tsd.EditableBezierPath{} }),

	NumbersTableModel:       decoder(func() *tst.TableModelArchive { return &tst.TableModelArchive{} }),
	NumbersTile:             decoder(func() *tst.TileArchive { return &tst.TileArchive{} }),
	TypeSheet:               decoder(func() *tst.SheetArchive { return &tst.SheetArchive{} }),
	DocSpreadsheet:          decoder(func() *tst.DocumentArchive { return &tst.DocumentArchive{} }),
	TypeStringTable:         decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeRichTextTable:       decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeCellStyleTable:      decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeTextStyleTable:      decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeNumberFormatTable:   decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeCurrencyFormatTable: decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeDateFormatTable:     decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeDurationFormatTable: decoder(func() *tst.TableDataList { return &tst.TableDataList{} }),
	TypeStrokeSidecar:       decoder(func() *tst.StrokeSidecar { return &tst.StrokeSidecar{} }),
	TypeCellStyle:           decoder(func() *tst.CellStyleArchive { return &tst.CellStyleArchive{} }),

	KeynoteSlide: decoder(func() *kn.SlideArchive { return &kn.SlideArchive{} }),
}
