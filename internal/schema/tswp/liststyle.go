package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// ListKind distinguishes "not a list" from the two list marker kinds.
type ListKind int32

const (
	ListKindNone ListKind = iota
	ListKindBullet
	ListKindNumbered
)

// ListStyleLevel is one nesting level of a list style.
type ListStyleLevel struct {
	Kind          *int32
	BulletChar    *string
	NumberFormat  *string
	TextIndent    *float32
}

func (l *ListStyleLevel) GetKind() ListKind {
	if l != nil && l.Kind != nil {
		return ListKind(*l.Kind)
	}
	return ListKindNone
}

func (l *ListStyleLevel) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			l.Kind = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			l.BulletChar = pbdecode.StringPtr(string(v))
			return n, nil
		case 3:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			l.NumberFormat = pbdecode.StringPtr(string(v))
			return n, nil
		case 4:
			v, n := pbdecode.Fixed32(b)
			f := float32FromFixed(v)
			l.TextIndent = &f
			return n, nil
		}
		return 0, nil
	})
}

func (l *ListStyleLevel) Marshal() []byte {
	var out []byte
	if l.Kind != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*l.Kind))
	}
	if l.BulletChar != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *l.BulletChar)
	}
	if l.NumberFormat != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendString(out, *l.NumberFormat)
	}
	if l.TextIndent != nil {
		out = protowire.AppendTag(out, 4, protowire.Fixed32Type)
		out = protowire.AppendFixed32(out, float32ToFixed(*l.TextIndent))
	}
	return out
}

// ListStyleArchive is a chain of per-level list styles, keyed by level
// index. A chain entirely absent of levels (or whose resolved level is
// ListKindNone) means "not a list item".
type ListStyleArchive struct {
	Parent *tsp.Reference
	Levels []*ListStyleLevel
}

func (l *ListStyleArchive) GetParent() *tsp.Reference { return l.Parent }

func (l *ListStyleArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			l.Parent = ref
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			lvl := &ListStyleLevel{}
			if err := lvl.Unmarshal(raw); err != nil {
				return 0, err
			}
			l.Levels = append(l.Levels, lvl)
			return n, nil
		}
		return 0, nil
	})
}

func (l *ListStyleArchive) Marshal() []byte {
	var out []byte
	if l.Parent != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, l.Parent.Marshal())
	}
	for _, lvl := range l.Levels {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, lvl.Marshal())
	}
	return out
}

// LevelAt returns the level's style, or nil if the chain does not reach that
// depth.
func (l *ListStyleArchive) LevelAt(level int) *ListStyleLevel {
	if level < 0 || level >= len(l.Levels) {
		return nil
	}
	return l.Levels[level]
}
