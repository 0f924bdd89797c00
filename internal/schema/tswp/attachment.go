package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// AttachmentArchive is an attribute-table entry's payload: a reference to
// whatever polymorphic drawable record sits at the attachment point (image,
// movie, 3D object, chart, equation, footnote marker, shape or table). The
// engine discovers the concrete kind by dereferencing Object and type
// switching.
type AttachmentArchive struct {
	Object *tsp.Reference
}

func (a *AttachmentArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			a.Object = ref
			return n, nil
		}
		return 0, nil
	})
}

func (a *AttachmentArchive) Marshal() []byte {
	var out []byte
	if a.Object != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, a.Object.Marshal())
	}
	return out
}

// HyperlinkFieldArchive is a smart-field payload carrying a URL. Its
// effective range in the storage is a single character, [p, p+1).
type HyperlinkFieldArchive struct {
	URL *string
}

func (h *HyperlinkFieldArchive) GetURL() string {
	if h != nil && h.URL != nil {
		return *h.URL
	}
	return ""
}

func (h *HyperlinkFieldArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			h.URL = pbdecode.StringPtr(string(v))
			return n, nil
		}
		return 0, nil
	})
}

func (h *HyperlinkFieldArchive) Marshal() []byte {
	var out []byte
	if h.URL != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendString(out, *h.URL)
	}
	return out
}

// FootnoteArchive names the text storage holding one footnote's body.
type FootnoteArchive struct {
	Storage *tsp.Reference
}

func (f *FootnoteArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			f.Storage = ref
			return n, nil
		}
		return 0, nil
	})
}

func (f *FootnoteArchive) Marshal() []byte {
	var out []byte
	if f.Storage != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, f.Storage.Marshal())
	}
	return out
}
