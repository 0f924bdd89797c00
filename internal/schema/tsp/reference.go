// Package tsp holds the handful of "common" iWork archive messages shared by
// every document type: references, the IWA frame envelope, and package
// metadata. Real iWork packages carry thousands of message types generated
// from Apple's .proto sources (TSP.*, TSWP.*, TST.*, TSD.*, KN.*); this
// package and its siblings implement only the subset the traversal engine
// exercises, by hand, against the raw protobuf wire format.
package tsp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// Reference names another record by object identifier. It is the only graph
// edge in the object store.
type Reference struct {
	Identifier *uint64
}

func (r *Reference) HasIdentifier() bool { return r != nil && r.Identifier != nil }

func (r *Reference) GetIdentifier() uint64 {
	if r.HasIdentifier() {
		return *r.Identifier
	}
	return 0
}

// Unmarshal decodes a Reference from its serialized form.
func (r *Reference) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			v, n := pbdecode.Varint(b)
			r.Identifier = pbdecode.Uint64Ptr(v)
			return n, nil
		}
		return 0, nil
	})
}

// Marshal encodes the reference. Used by tests to build synthetic archives.
func (r *Reference) Marshal() []byte {
	var out []byte
	if r.HasIdentifier() {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, r.GetIdentifier())
	}
	return out
}
