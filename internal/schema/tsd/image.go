package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// ImageArchive is a floating or inline image. DataIdentifier names the
// entry in the package's data-file registry that backs it; Style names
// the media-style chain carrying its border and shadow.
type ImageArchive struct {
	Info
	DataIdentifier *uint64
	Style          *tsp.Reference
}

func (im *ImageArchive) GetDataIdentifier() uint64 {
	if im != nil && im.DataIdentifier != nil {
		return *im.DataIdentifier
	}
	return 0
}

func (im *ImageArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := im.unmarshalField(num, typ, b); handled {
			return n, err
		}
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			im.DataIdentifier = pbdecode.Uint64Ptr(v)
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
			im.Style = ref
			return n, nil
		}
		return 0, nil
	})
}

func (im *ImageArchive) Marshal() []byte {
	out := im.Info.marshal(nil)
	if im.DataIdentifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *im.DataIdentifier)
	}
	if im.Style != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, im.Style.Marshal())
	}
	return out
}

// MovieArchive is a floating movie with a poster-frame image.
type MovieArchive struct {
	Info
	DataIdentifier       *uint64
	PosterDataIdentifier *uint64
}

func (m *MovieArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := m.unmarshalField(num, typ, b); handled {
			return n, err
		}
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			m.DataIdentifier = pbdecode.Uint64Ptr(v)
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			m.PosterDataIdentifier = pbdecode.Uint64Ptr(v)
			return n, nil
		}
		return 0, nil
	})
}

func (m *MovieArchive) Marshal() []byte {
	out := m.Info.marshal(nil)
	if m.DataIdentifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *m.DataIdentifier)
	}
	if m.PosterDataIdentifier != nil {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		out = protowire.AppendVarint(out, *m.PosterDataIdentifier)
	}
	return out
}

// Object3DArchive is a floating 3D model with its own poster-frame image.
type Object3DArchive struct {
	Info
	DataIdentifier       *uint64
	PosterDataIdentifier *uint64
}

func (o *Object3DArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := o.unmarshalField(num, typ, b); handled {
			return n, err
		}
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			o.DataIdentifier = pbdecode.Uint64Ptr(v)
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			o.PosterDataIdentifier = pbdecode.Uint64Ptr(v)
			return n, nil
		}
		return 0, nil
	})
}

func (o *Object3DArchive) Marshal() []byte {
	out := o.Info.marshal(nil)
	if o.DataIdentifier != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, *o.DataIdentifier)
	}
	if o.PosterDataIdentifier != nil {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		out = protowire.AppendVarint(out, *o.PosterDataIdentifier)
	}
	return out
}

// TableArchive is a floating or inline table drawable; Model names the
// tst.TableModelArchive record backing it.
type TableArchive struct {
	Info
	Model *tsp.Reference
}

func (t *TableArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := t.unmarshalField(num, typ, b); handled {
			return n, err
		}
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			t.Model = ref
			return n, nil
		}
		return 0, nil
	})
}

func (t *TableArchive) Marshal() []byte {
	out := t.Info.marshal(nil)
	if t.Model != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, t.Model.Marshal())
	}
	return out
}
