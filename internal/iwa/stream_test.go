package iwa

import (
	"testing"

	"github.com/golang/snappy"

	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

func buildFrame(objectID uint64, typeCode uint32, payload []byte) []byte {
	info := &tsp.ArchiveInfo{
		Identifier: &objectID,
		MessageInfos: []*tsp.MessageInfo{
			{Type: &typeCode, Length: uintptr32(len(payload))},
		},
	}
	infoBytes := info.Marshal()
	var out []byte
	out = appendUvarint(out, uint64(len(infoBytes)))
	out = append(out, infoBytes...)
	out = append(out, payload...)
	return out
}

func uintptr32(v int) *uint32 {
	u := uint32(v)
	return &u
}

func appendUvarint(b []byte, v uint64) []byte {
	var tmp [10]byte
	i := 0
	for v >= 0x80 {
		tmp[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	tmp[i] = byte(v)
	return append(b, tmp[:i+1]...)
}

func TestDecodeBarePayload(t *testing.T) {
	raw := buildFrame(42, 10000, []byte("hello world"))
	records, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.ObjectID != 42 || r.TypeCode != 10000 || string(r.Payload) != "hello world" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestDecodeMultipleFrames(t *testing.T) {
	raw := append(buildFrame(1, 1, []byte("a")), buildFrame(2, 2, []byte("bb"))...)
	records, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ObjectID != 1 || records[1].ObjectID != 2 {
		t.Fatalf("unexpected order: %+v", records)
	}
}

func TestDecodeSnappyChunked(t *testing.T) {
	plain := buildFrame(7, 6001, []byte("a table payload goes here"))
	compressed := snappy.Encode(nil, plain)

	var chunked []byte
	chunked = append(chunked, chunkHeader(chunkCompressed, len(compressed))...)
	chunked = append(chunked, compressed...)

	records, err := Decode(chunked)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 1 || records[0].ObjectID != 7 || records[0].TypeCode != 6001 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestDecodeSnappyChunkedWithPadding(t *testing.T) {
	plain := buildFrame(9, 5, []byte("slide"))
	compressed := snappy.Encode(nil, plain)

	var chunked []byte
	chunked = append(chunked, chunkHeader(chunkStreamIdentifier, 6)...)
	chunked = append(chunked, []byte("SNAPPY")...)
	chunked = append(chunked, chunkHeader(chunkCompressed, len(compressed))...)
	chunked = append(chunked, compressed...)
	chunked = append(chunked, chunkHeader(chunkPadding, 3)...)
	chunked = append(chunked, []byte{0, 0, 0}...)

	records, err := Decode(chunked)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 1 || records[0].ObjectID != 9 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestDecodeTruncatedChunkIsCorrupt(t *testing.T) {
	raw := []byte{chunkCompressed, 0xFF, 0xFF, 0x00}
	_, err := Decode(raw)
	if err == nil {
		t.Fatal("expected corruption error on truncated chunk")
	}
	if _, ok := err.(*ErrCorrupt); !ok {
		t.Fatalf("expected *ErrCorrupt, got %T", err)
	}
}

func chunkHeader(typ byte, length int) []byte {
	return []byte{typ, byte(length), byte(length >> 8), byte(length >> 16)}
}
