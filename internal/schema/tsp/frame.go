package tsp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// MessageInfo describes one payload following an ArchiveInfo: its type code
// and byte length. An ArchiveInfo may list several MessageInfos when a
// record carries typed extensions alongside its primary message.
type MessageInfo struct {
	Type   *uint32
	Length *uint32
}

func (m *MessageInfo) GetType() uint32 {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return 0
}

func (m *MessageInfo) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

func (m *MessageInfo) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			m.Type = pbdecode.Uint32Ptr(uint32(v))
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			m.Length = pbdecode.Uint32Ptr(uint32(v))
			return n, nil
		}
		return 0, nil
	})
}

func (m *MessageInfo) Marshal() []byte {
	var out []byte
	if m.Type != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*m.Type))
	}
	if m.Length != nil {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*m.Length))
	}
	return out
}

// ArchiveInfo is the header that precedes every record's payload bytes in an
// IWA frame: the record's object identifier plus one MessageInfo per
// sub-payload (the primary message, then any typed extensions).
type ArchiveInfo struct {
	Identifier   *uint64
	MessageInfos []*MessageInfo
}

func (a *ArchiveInfo) GetIdentifier() uint64 {
	if a != nil && a.Identifier != nil {
		return *a.Identifier
	}
	return 0
}

func (a *ArchiveInfo) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			a.Identifier = pbdecode.Uint64Ptr(v)
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			mi := &MessageInfo{}
			if err := mi.Unmarshal(raw); err != nil {
				return 0, err
			}
			a.MessageInfos = append(a.MessageInfos, mi)
			return n, nil
		}
		return 0, nil
	})
}

func (a *ArchiveInfo) Marshal() []byte {
	var out []byte
	if a.Identifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *a.Identifier)
	}
	for _, mi := range a.MessageInfos {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, mi.Marshal())
	}
	return out
}
