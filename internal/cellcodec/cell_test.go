package cellcodec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
)

// buildHeader assembles the 12-byte fixed header.
func buildHeader(cellType byte, flags uint32) []byte {
	h := make([]byte, 12)
	h[0] = 5 // version
	h[1] = cellType
	// bytes 2..5 reserved, bytes 6..7 extras left zero
	binary.LittleEndian.PutUint32(h[8:12], flags)
	return h
}

func TestDecodeNumberCellWithDoubleOnly(t *testing.T) {
	buf := buildHeader(byte(CellTypeNumber), 1<<flagDouble)
	var doubleBytes [8]byte
	binary.LittleEndian.PutUint64(doubleBytes[:], math.Float64bits(3.14))
	buf = append(buf, doubleBytes[:]...)
	// pad to 40 bytes as the test scenario describes
	for len(buf) < 40 {
		buf = append(buf, 0)
	}

	cell := Decode(buf, Tables{})
	if cell.Type != CellTypeNumber {
		t.Fatalf("Type = %v, want Number", cell.Type)
	}
	if cell.Number == nil || *cell.Number != 3.14 {
		t.Fatalf("Number = %v, want 3.14", cell.Number)
	}
	if cell.CellStyleID != nil || cell.TextStyleID != nil {
		t.Error("expected all ids absent")
	}
}

func TestDecodeCurrencyCellResolvesCode(t *testing.T) {
	buf := buildHeader(byte(CellTypeCurrency), 1<<flagDouble|1<<flagCurrencyFormatID)
	var doubleBytes [8]byte
	binary.LittleEndian.PutUint64(doubleBytes[:], math.Float64bits(9.99))
	buf = append(buf, doubleBytes[:]...)
	var idBytes [4]byte
	binary.LittleEndian.PutUint32(idBytes[:], 7)
	buf = append(buf, idBytes[:]...)

	key := int32(7)
	code := "EUR"
	tables := Tables{CurrencyFormats: &tst.TableDataList{Entries: []*tst.TableDataEntry{
		{Key: &key, String: &code},
	}}}
	cell := Decode(buf, tables)
	if cell.Number == nil || *cell.Number != 9.99 {
		t.Fatalf("Number = %v, want 9.99", cell.Number)
	}
	if cell.CurrencyCode == nil || *cell.CurrencyCode != "EUR" {
		t.Fatalf("CurrencyCode = %v, want EUR", cell.CurrencyCode)
	}
}

func TestDecodeVersionMismatchYieldsEmpty(t *testing.T) {
	buf := buildHeader(byte(CellTypeNumber), 1<<flagDouble)
	buf[0] = 3 // unsupported version
	buf = append(buf, make([]byte, 8)...)

	cell := Decode(buf, Tables{})
	if cell.Type != CellTypeEmpty {
		t.Fatalf("Type = %v, want Empty on version mismatch", cell.Type)
	}
}

func TestDecodeTruncatedBufferYieldsEmpty(t *testing.T) {
	buf := buildHeader(byte(CellTypeNumber), 1<<flagDouble)
	// declare hasDouble but provide no payload bytes
	cell := Decode(buf, Tables{})
	if cell.Type != CellTypeEmpty {
		t.Fatalf("Type = %v, want Empty on truncated payload", cell.Type)
	}
}

func TestDecodeDateCellZeroSecondsIsAbsent(t *testing.T) {
	buf := buildHeader(byte(CellTypeDate), 1<<flagSeconds)
	buf = append(buf, make([]byte, 8)...) // seconds = 0.0

	cell := Decode(buf, Tables{})
	if cell.Date != nil {
		t.Errorf("expected nil Date for zero seconds, got %v", cell.Date)
	}
}

func TestDecodeFlagOrderIndependentOfWhichFlagsSet(t *testing.T) {
	// Set hasRichTextID and hasSuggestID (both 4-byte fields) but not
	// the fields between them, and verify the decoder still lands on
	// the right byte offsets by checking the later field's resolved id.
	flags := uint32(1<<flagRichTextID | 1<<flagSuggestID)
	buf := buildHeader(byte(CellTypeRichText), flags)
	var richTextID [4]byte
	binary.LittleEndian.PutUint32(richTextID[:], 7)
	var suggestID [4]byte
	binary.LittleEndian.PutUint32(suggestID[:], 99)
	buf = append(buf, richTextID[:]...)
	buf = append(buf, suggestID[:]...)

	cell := Decode(buf, Tables{})
	if cell.SuggestID == nil || *cell.SuggestID != 99 {
		t.Fatalf("SuggestID = %v, want 99", cell.SuggestID)
	}
}

func TestUnpackDecimal128(t *testing.T) {
	// Construct bytes for sign=0, mantissa=314159, biasedExp = 6176-10 = 6166,
	// so that value = 314159 * 10^(6166-6176) = 314159 * 10^-10 = 0.0000314159.
	const mantissa = 314159
	const biasedExp = Decimal128Bias - 10

	var b [16]byte
	// mantissa occupies bytes[0..13] (low 112 bits) plus the low bit of byte14.
	m := mantissa
	for i := 0; i < 14; i++ {
		b[i] = byte(m & 0xFF)
		m >>= 8
	}
	// byte14: low bit = mantissa's 113th bit (0 here since mantissa fits in
	// 112 bits), high 7 bits = low 7 bits of biasedExp.
	b[14] = byte((biasedExp & 0x7F) << 1)
	// byte15: high bit = sign (0), low 7 bits = high 7 bits of biasedExp.
	b[15] = byte((biasedExp >> 7) & 0x7F)

	got := UnpackDecimal128(b[:])
	want := 0.0000314159
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("UnpackDecimal128 = %v, want %v", got, want)
	}
}

func TestUnpackDecimal128NegativeSign(t *testing.T) {
	const mantissa = 1
	const biasedExp = Decimal128Bias // 10^0

	var b [16]byte
	b[0] = mantissa
	b[15] = 0x80 // sign bit set, exponent high bits 0
	b[14] = byte((biasedExp & 0x7F) << 1)
	b[15] |= byte((biasedExp >> 7) & 0x7F)

	got := UnpackDecimal128(b[:])
	if got != -1 {
		t.Errorf("UnpackDecimal128 = %v, want -1", got)
	}
}
