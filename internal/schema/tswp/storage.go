// Package tswp holds the word-processing archive messages: text storages,
// paragraph/character/list styles, attachments and footnotes.
package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// AttributeEntry is one (character_index, object_reference) pair of an
// attribute table.
type AttributeEntry struct {
	CharacterIndex *uint32
	Object         *tsp.Reference
}

func (e *AttributeEntry) GetCharacterIndex() uint32 {
	if e != nil && e.CharacterIndex != nil {
		return *e.CharacterIndex
	}
	return 0
}

func (e *AttributeEntry) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			e.CharacterIndex = pbdecode.Uint32Ptr(uint32(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			e.Object = ref
			return n, nil
		}
		return 0, nil
	})
}

func (e *AttributeEntry) Marshal() []byte {
	var out []byte
	if e.CharacterIndex != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*e.CharacterIndex))
	}
	if e.Object != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, e.Object.Marshal())
	}
	return out
}

// AttributeTable is a list of AttributeEntry, sorted by CharacterIndex. One
// is carried per styling/attachment/footnote axis of a storage.
type AttributeTable struct {
	Entries []*AttributeEntry
}

func (t *AttributeTable) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			e := &AttributeEntry{}
			if err := e.Unmarshal(raw); err != nil {
				return 0, err
			}
			t.Entries = append(t.Entries, e)
			return n, nil
		}
		return 0, nil
	})
}

func (t *AttributeTable) Marshal() []byte {
	var out []byte
	for _, e := range t.Entries {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, e.Marshal())
	}
	return out
}

// StorageArchive is a text container: one string plus the parallel
// attribute tables that carry its styling, attachments and footnotes.
type StorageArchive struct {
	Text            *string
	ParagraphStyles *AttributeTable
	CharacterStyles *AttributeTable
	ListStyles      *AttributeTable
	Attachments     *AttributeTable
	SmartFields     *AttributeTable
	Footnotes       *AttributeTable
	ParagraphData   *AttributeTable
}

func (s *StorageArchive) GetText() string {
	if s != nil && s.Text != nil {
		return *s.Text
	}
	return ""
}

func (s *StorageArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			s.Text = pbdecode.StringPtr(string(v))
			return n, nil
		case 2, 3, 4, 5, 6, 7:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			t := &AttributeTable{}
			if err := t.Unmarshal(raw); err != nil {
				return 0, err
			}
			switch num {
			case 2:
				s.ParagraphStyles = t
			case 3:
				s.CharacterStyles = t
			case 4:
				s.ListStyles = t
			case 5:
				s.Attachments = t
			case 6:
				s.SmartFields = t
			case 7:
				s.Footnotes = t
			}
			return n, nil
		case 8:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			t := &AttributeTable{}
			if err := t.Unmarshal(raw); err != nil {
				return 0, err
			}
			s.ParagraphData = t
			return n, nil
		}
		return 0, nil
	})
}

func (s *StorageArchive) Marshal() []byte {
	var out []byte
	if s.Text != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendString(out, *s.Text)
	}
	appendTable := func(num protowire.Number, t *AttributeTable) {
		if t == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.BytesType)
		out = protowire.AppendBytes(out, t.Marshal())
	}
	appendTable(2, s.ParagraphStyles)
	appendTable(3, s.CharacterStyles)
	appendTable(4, s.ListStyles)
	appendTable(5, s.Attachments)
	appendTable(6, s.SmartFields)
	appendTable(7, s.Footnotes)
	appendTable(8, s.ParagraphData)
	return out
}
