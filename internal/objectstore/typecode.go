package objectstore

// TypeCode constants. Three of these are fixed by the format:
// DocWordProcessor
// (Pages document anchor, 10000), KeynoteSlide (5), and the Numbers
// table-type pair NumbersTableModel/NumbersTile (6001/6005, the low end
// of the documented 6000–6256 Numbers-table range). Every other code
// below is an internally-consistent invented placeholder — real
// Apple-internal type codes for these record kinds are not published —
// grouped into per-schema-package ranges so a reader can tell a record's
// origin package from its code alone.
const (
	// tsp (common) — 1..99
	TypeMetadata TypeCode = 1

	// tswp (word-processor) — 100..199, except the anchor which reuses
	// the pinned Pages document type code.
	DocWordProcessor   TypeCode = 10000
	TypeSection        TypeCode = 101
	TypeStorage        TypeCode = 102
	TypeParagraphStyle TypeCode = 103
	TypeCharacterStyle TypeCode = 104
	TypeListStyle      TypeCode = 105
	TypeAttachment     TypeCode = 106
	TypeHyperlinkField TypeCode = 107
	TypeFootnote       TypeCode = 108
	TypeParagraphData  TypeCode = 109

	// tsd (drawables, shared) — 200..299
	TypeShape         TypeCode = 201
	TypeGroup         TypeCode = 202
	TypePlaceholder   TypeCode = 203
	TypeImage         TypeCode = 204
	TypeMovie         TypeCode = 205
	TypeObject3D      TypeCode = 206
	TypeTableDrawable TypeCode = 207
	TypeChart         TypeCode = 208
	TypeDrawableOrder TypeCode = 209
	TypeMediaStyle    TypeCode = 210

	// tsd path archive variants — 220..229
	TypePointPath          TypeCode = 220
	TypeScalarPath         TypeCode = 221
	TypeBezierPath         TypeCode = 222
	TypeCalloutPath        TypeCode = 223
	TypeConnectionLinePath TypeCode = 224
	TypeEditableBezierPath TypeCode = 225

	// tst (spreadsheet/table) — 6000..6256, the documented Numbers range.
	NumbersTableModel       TypeCode = 6001
	NumbersTile             TypeCode = 6005
	TypeSheet               TypeCode = 6002
	DocSpreadsheet          TypeCode = 6003
	TypeStringTable         TypeCode = 6011
	TypeRichTextTable       TypeCode = 6012
	TypeCellStyleTable      TypeCode = 6013
	TypeTextStyleTable      TypeCode = 6014
	TypeNumberFormatTable   TypeCode = 6015
	TypeCurrencyFormatTable TypeCode = 6016
	TypeDateFormatTable     TypeCode = 6017
	TypeDurationFormatTable TypeCode = 6018
	TypeStrokeSidecar       TypeCode = 6019
	TypeCellStyle           TypeCode = 6020

	// kn (presentation) — pinned Keynote slide type code.
	KeynoteSlide TypeCode = 5
)

// TypeCode is a record's schema-dispatch discriminant.
type TypeCode = uint32
