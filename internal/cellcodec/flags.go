package cellcodec

// flag bit indices. Each set bit consumes a fixed number of payload
// bytes, walked in bit order regardless of which bits happen to be set;
// the order is part of the format and must not be rearranged.
const (
	flagDecimal128 = iota
	flagDouble
	flagSeconds
	flagStringID
	flagRichTextID
	flagCellStyleID
	flagTextStyleID
	flagConditionalFormatID // discarded
	flagFormatID            // discarded
	flagFormulaID
	flagControlID
	flagCommentID // discarded
	flagSuggestID
	flagNumberFormatID
	flagCurrencyFormatID
	flagDateFormatID
	flagDurationFormatID
	flagTextFormatID
	flagBooleanFormatID
)

func flagSet(flags uint32, bit int) bool {
	return flags&(1<<uint(bit)) != 0
}
