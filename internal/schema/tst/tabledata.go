package tst

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// TableDataEntry is one small-integer-keyed entry of a side table: a
// string, a rich-text reference, a style reference, or a format spec.
type TableDataEntry struct {
	Key       *int32
	String    *string
	Reference *tsp.Reference
}

func (e *TableDataEntry) GetKey() int32 {
	if e != nil && e.Key != nil {
		return *e.Key
	}
	return 0
}

func (e *TableDataEntry) GetString() string {
	if e != nil && e.String != nil {
		return *e.String
	}
	return ""
}

func (e *TableDataEntry) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			e.Key = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			e.String = pbdecode.StringPtr(string(v))
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			e.Reference = ref
			return n, nil
		}
		return 0, nil
	})
}

func (e *TableDataEntry) Marshal() []byte {
	var out []byte
	if e.Key != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*e.Key))
	}
	if e.String != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *e.String)
	}
	if e.Reference != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, e.Reference.Marshal())
	}
	return out
}

// TableDataList is a side table: the generic container used for the
// string table, rich-text table, style table and each number-format table.
type TableDataList struct {
	Entries []*TableDataEntry
}

func (l *TableDataList) ByKey(key int32) *TableDataEntry {
	for _, e := range l.Entries {
		if e.GetKey() == key {
			return e
		}
	}
	return nil
}

func (l *TableDataList) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			e := &TableDataEntry{}
			if err := e.Unmarshal(raw); err != nil {
				return 0, err
			}
			l.Entries = append(l.Entries, e)
			return n, nil
		}
		return 0, nil
	})
}

func (l *TableDataList) Marshal() []byte {
	var out []byte
	for _, e := range l.Entries {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, e.Marshal())
	}
	return out
}
