// Package pbdecode is a minimal hand-written protobuf field walker used by
// the record schema packages under internal/schema. The generated message
// bindings a full iWork schema would need (15,000+ lines per TSP/TSWP/TST/TSD/
// KN) are out of scope for this library; instead each message type in the
// schema packages implements Unmarshal itself against the raw wire format
// using this package's primitives, exposing only the fields the traversal
// engine actually consults.
package pbdecode

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// FieldFunc handles one field of a message. b is positioned at the start of
// the field's value (after the tag). It returns the number of bytes of b it
// consumed; a return of 0 means "field not recognized, skip it".
type FieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// Walk iterates every top-level field of a serialized protobuf message.
func Walk(b []byte, visit FieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("pbdecode: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		consumed, err := visit(num, typ, b)
		if err != nil {
			return err
		}
		if consumed <= 0 {
			skip := protowire.ConsumeFieldValue(num, typ, b)
			if skip < 0 {
				return fmt.Errorf("pbdecode: bad field %d: %w", num, protowire.ParseError(skip))
			}
			consumed = skip
		}
		b = b[consumed:]
	}
	return nil
}

// Varint consumes a varint-encoded field value.
func Varint(b []byte) (uint64, int) { return protowire.ConsumeVarint(b) }

// Fixed32 consumes a 4-byte fixed field value.
func Fixed32(b []byte) (uint32, int) { return protowire.ConsumeFixed32(b) }

// Fixed64 consumes an 8-byte fixed field value.
func Fixed64(b []byte) (uint64, int) { return protowire.ConsumeFixed64(b) }

// Bytes consumes a length-delimited field value (strings, sub-messages, byte
// slices). The returned slice aliases b.
func Bytes(b []byte) ([]byte, int) { return protowire.ConsumeBytes(b) }

// Uint64Ptr boxes v as a pointer, for the hasX/getX accessor convention the
// message types use to distinguish "unset" from "zero".
func Uint64Ptr(v uint64) *uint64 { return &v }

// Uint32Ptr boxes v as a pointer.
func Uint32Ptr(v uint32) *uint32 { return &v }

// Int32Ptr boxes v as a pointer.
func Int32Ptr(v int32) *int32 { return &v }

// Float64Ptr boxes v as a pointer.
func Float64Ptr(v float64) *float64 { return &v }

// Float32Ptr boxes v as a pointer.
func Float32Ptr(v float32) *float32 { return &v }

// BoolPtr boxes v as a pointer.
func BoolPtr(v bool) *bool { return &v }

// StringPtr boxes v as a pointer.
func StringPtr(v string) *string { return &v }
