package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// DrawableOrderArchive lists drawable identifiers from back to front. It is
// the z-order source for word-processor floating drawables.
type DrawableOrderArchive struct {
	Drawables []*tsp.Reference
}

func (o *DrawableOrderArchive) Unmarshal(b []byte) error {
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
			o.Drawables = append(o.Drawables, ref)
			return n, nil
		}
		return 0, nil
	})
}

func (o *DrawableOrderArchive) Marshal() []byte {
	var out []byte
	for _, r := range o.Drawables {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	return out
}
