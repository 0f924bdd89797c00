package objectstore

import "github.com/benedoc-inc/iworkdoc/internal/errs"

// DocumentKind is one of the three document shapes the traversal
// engine dispatches on.
type DocumentKind int

const (
	UnknownDocument DocumentKind = iota
	WordProcessor
	Spreadsheet
	Presentation
)

func (k DocumentKind) String() string {
	switch k {
	case WordProcessor:
		return "word-processor"
	case Spreadsheet:
		return "spreadsheet"
	case Presentation:
		return "presentation"
	default:
		return "unknown"
	}
}

// numbersTableRangeLo/Hi bound the Numbers-table type-code range.
const (
	numbersTableRangeLo TypeCode = 6000
	numbersTableRangeHi TypeCode = 6256
)

// DetectDocumentKind scans the store's type-code index for the first
// anchor-shaped record and reports which document kind the package
// holds: a Pages document anchor (10000), a Keynote slide (5), or any
// record in the Numbers table range (6000–6256).
func (s *Store) DetectDocumentKind() (DocumentKind, error) {
	if s.HasTypeCode(DocWordProcessor) {
		return WordProcessor, nil
	}
	if s.HasTypeCode(KeynoteSlide) {
		return Presentation, nil
	}
	if s.HasTypeCodeInRange(numbersTableRangeLo, numbersTableRangeHi) {
		return Spreadsheet, nil
	}
	return UnknownDocument, errs.New(errs.CodeSchemaUnknown, "no recognizable document-type anchor record found")
}
