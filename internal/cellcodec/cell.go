package cellcodec

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
)

// AppleEpoch is the reference instant "seconds" fields are relative to.
var AppleEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// AutomaticDecimalPlaces is the cell-storage sentinel meaning "no fixed
// decimal-place count; compute automatically".
const AutomaticDecimalPlaces = 253

// Tables bundles the small-integer-keyed side tables a cell's ids are
// resolved against.
type Tables struct {
	Strings         *tst.TableDataList
	RichTexts       *tst.TableDataList
	Styles          *tst.TableDataList
	NumberFormats   *tst.TableDataList
	CurrencyFormats *tst.TableDataList
	DateFormats     *tst.TableDataList
	DurationFormats *tst.TableDataList
}

// Cell is the decoded, typed result of one packed cell buffer.
type Cell struct {
	Type CellType

	Number       *float64
	Text         *string
	Date         *time.Time
	Boolean      *bool
	Duration     *float64 // seconds
	IsError      bool
	CurrencyCode *string

	RichTextRef *tsp.Reference

	CellStyleID      *uint32
	TextStyleID      *uint32
	FormulaID        *uint32
	ControlID        *uint32
	SuggestID        *uint32
	NumberFormatID   *uint32
	CurrencyFormatID *uint32
	DateFormatID     *uint32
	DurationFormatID *uint32
	TextFormatID     *uint32
	BooleanFormatID  *uint32
}

type rawFields struct {
	decimal128    *float64
	double        *float64
	seconds       *float64
	stringID      *uint32
	richTextID    *uint32
	cellStyleID   *uint32
	textStyleID   *uint32
	formulaID     *uint32
	controlID     *uint32
	suggestID     *uint32
	numberFmtID   *uint32
	currencyFmtID *uint32
	dateFmtID     *uint32
	durationFmtID *uint32
	textFmtID     *uint32
	booleanFmtID  *uint32
}

// Decode parses buf as a cell's packed byte layout. A header whose
// version byte is not 5, or a buffer too short to hold a declared field,
// yields an empty cell with no error: a corrupt cell never aborts a
// table walk.
func Decode(buf []byte, tables Tables) *Cell {
	if len(buf) < 12 || buf[0] != 5 {
		return &Cell{Type: CellTypeEmpty}
	}
	cellType := CellType(buf[1])
	flags := binary.LittleEndian.Uint32(buf[8:12])

	pos := 12
	raw := rawFields{}

	take := func(n int) ([]byte, bool) {
		if pos+n > len(buf) {
			return nil, false
		}
		b := buf[pos : pos+n]
		pos += n
		return b, true
	}

	for bit := flagDecimal128; bit <= flagBooleanFormatID; bit++ {
		if !flagSet(flags, bit) {
			continue
		}
		switch bit {
		case flagDecimal128:
			b, ok := take(16)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			v := UnpackDecimal128(b)
			raw.decimal128 = &v
		case flagDouble:
			b, ok := take(8)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			v := math.Float64frombits(binary.LittleEndian.Uint64(b))
			raw.double = &v
		case flagSeconds:
			b, ok := take(8)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			v := math.Float64frombits(binary.LittleEndian.Uint64(b))
			raw.seconds = &v
		case flagStringID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.stringID = &v
		case flagRichTextID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.richTextID = &v
		case flagCellStyleID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.cellStyleID = &v
		case flagTextStyleID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.textStyleID = &v
		case flagConditionalFormatID, flagFormatID, flagCommentID:
			if _, ok := take(4); !ok {
				return &Cell{Type: CellTypeEmpty}
			}
		case flagFormulaID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.formulaID = &v
		case flagControlID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.controlID = &v
		case flagSuggestID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.suggestID = &v
		case flagNumberFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.numberFmtID = &v
		case flagCurrencyFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.currencyFmtID = &v
		case flagDateFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.dateFmtID = &v
		case flagDurationFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.durationFmtID = &v
		case flagTextFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.textFmtID = &v
		case flagBooleanFormatID:
			v, ok := take32(take)
			if !ok {
				return &Cell{Type: CellTypeEmpty}
			}
			raw.booleanFmtID = &v
		}
	}

	return project(cellType, raw, tables)
}

func take32(take func(int) ([]byte, bool)) (uint32, bool) {
	b, ok := take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

func project(cellType CellType, raw rawFields, tables Tables) *Cell {
	c := &Cell{
		Type:             cellType,
		CellStyleID:      raw.cellStyleID,
		TextStyleID:      raw.textStyleID,
		FormulaID:        raw.formulaID,
		ControlID:        raw.controlID,
		SuggestID:        raw.suggestID,
		NumberFormatID:   raw.numberFmtID,
		CurrencyFormatID: raw.currencyFmtID,
		DateFormatID:     raw.dateFmtID,
		DurationFormatID: raw.durationFmtID,
		TextFormatID:     raw.textFmtID,
		BooleanFormatID:  raw.booleanFmtID,
	}

	numericValue := func() *float64 {
		if raw.double != nil {
			return raw.double
		}
		if raw.decimal128 != nil {
			return raw.decimal128
		}
		return nil
	}

	switch {
	case cellType == CellTypeNumber, cellType == CellTypeCurrency:
		c.Number = numericValue()
		if cellType == CellTypeCurrency && raw.currencyFmtID != nil && tables.CurrencyFormats != nil {
			if entry := tables.CurrencyFormats.ByKey(int32(*raw.currencyFmtID)); entry != nil && entry.String != nil {
				c.CurrencyCode = entry.String
			}
		}
	case cellType == CellTypeText:
		if raw.stringID != nil && tables.Strings != nil {
			if entry := tables.Strings.ByKey(int32(*raw.stringID)); entry != nil {
				s := entry.GetString()
				c.Text = &s
			}
		}
	case cellType == CellTypeDate:
		// A zero seconds value is treated as absent, not as the Apple
		// epoch instant — an observed-behavior decision preserved
		// verbatim rather than reinterpreted.
		if raw.seconds != nil && *raw.seconds != 0 {
			t := AppleEpoch.Add(time.Duration(*raw.seconds * float64(time.Second)))
			c.Date = &t
		}
	case cellType == CellTypeBoolean:
		if raw.double != nil {
			b := *raw.double != 0
			c.Boolean = &b
		}
	case cellType == CellTypeDuration:
		c.Duration = numericValue()
	case cellType == CellTypeError:
		c.IsError = true
	case cellType.IsRichText():
		if raw.richTextID != nil && tables.RichTexts != nil {
			if entry := tables.RichTexts.ByKey(int32(*raw.richTextID)); entry != nil {
				c.RichTextRef = entry.Reference
			}
		}
	}

	return c
}
