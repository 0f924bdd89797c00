// Package iwa decodes the IWA framed record stream: a sequence of
// varint-length-prefixed ArchiveInfo messages, each declaring one or more
// typed payloads, optionally wrapped in Snappy chunk framing.
package iwa

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"

	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// Record is one decoded (object_id, type_code, payload) triple. The
// reader does not parse payload bytes itself.
type Record struct {
	ObjectID uint64
	TypeCode uint32
	Payload  []byte
}

// Chunk types in the Snappy framing format, per the 4-byte chunk header
// `type:u8 || length24:le`.
const (
	chunkStreamIdentifier byte = 0x00
	chunkCompressed       byte = 0x01
	chunkUncompressed     byte = 0x02
	chunkPadding          byte = 0xFE
	chunkReservedSkip     byte = 0xFF
)

// ErrCorrupt signals an unrecoverable framing error; loading aborts
// rather than skipping when this occurs.
type ErrCorrupt struct {
	Reason string
}

func (e *ErrCorrupt) Error() string { return "iwa: corrupt stream: " + e.Reason }

// Decode reads one archive file's full byte content and returns every
// record it contains, in file order.
func Decode(raw []byte) ([]Record, error) {
	plain, err := decompress(raw)
	if err != nil {
		return nil, err
	}
	return decodeFrames(plain)
}

// decompress detects the framing form: a pure uncompressed payload (no
// chunk header recognizable at the front) is returned unchanged for
// legacy documents; otherwise the buffer is walked as a sequence of
// 4-byte-headered chunks and compressed chunks are Snappy-inflated.
func decompress(raw []byte) ([]byte, error) {
	if !looksChunked(raw) {
		return raw, nil
	}
	var out bytes.Buffer
	pos := 0
	for pos < len(raw) {
		if pos+4 > len(raw) {
			return nil, &ErrCorrupt{Reason: "truncated chunk header"}
		}
		typ := raw[pos]
		length := uint32(raw[pos+1]) | uint32(raw[pos+2])<<8 | uint32(raw[pos+3])<<16
		pos += 4
		if uint64(pos)+uint64(length) > uint64(len(raw)) {
			return nil, &ErrCorrupt{Reason: "chunk length exceeds buffer"}
		}
		body := raw[pos : pos+int(length)]
		pos += int(length)
		switch typ {
		case chunkStreamIdentifier, chunkPadding, chunkReservedSkip:
			// identifier/padding/reserved chunks carry no payload content
		case chunkCompressed:
			n, err := snappy.DecodedLen(body)
			if err != nil {
				return nil, &ErrCorrupt{Reason: "bad snappy length: " + err.Error()}
			}
			dst := make([]byte, n)
			dec, err := snappy.Decode(dst, body)
			if err != nil {
				return nil, &ErrCorrupt{Reason: "snappy decode: " + err.Error()}
			}
			out.Write(dec)
		case chunkUncompressed:
			out.Write(body)
		default:
			return nil, &ErrCorrupt{Reason: fmt.Sprintf("unknown chunk type 0x%02x", typ)}
		}
	}
	return out.Bytes(), nil
}

// looksChunked applies the detection rule: the first byte must be one of
// the five known chunk types, and the declared length of that first
// chunk must not overrun the buffer. Bare ArchiveInfo streams begin with
// a varint length header whose low byte is very unlikely to collide with
// a reserved/padding/stream-id chunk type while also producing a
// plausible in-bounds chunk length, so this heuristic is sufficient for
// the two framing forms this package actually accepts.
func looksChunked(raw []byte) bool {
	if len(raw) < 4 {
		return false
	}
	switch raw[0] {
	case chunkStreamIdentifier, chunkCompressed, chunkUncompressed, chunkPadding, chunkReservedSkip:
	default:
		return false
	}
	length := uint32(raw[1]) | uint32(raw[2])<<8 | uint32(raw[3])<<16
	return uint64(4)+uint64(length) <= uint64(len(raw))
}

// decodeFrames walks the plain (decompressed) byte stream as a sequence
// of varint-length-prefixed ArchiveInfo messages, each followed by its
// declared payloads in order.
func decodeFrames(plain []byte) ([]Record, error) {
	var records []Record
	r := bytes.NewReader(plain)
	for r.Len() > 0 {
		length, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, &ErrCorrupt{Reason: "bad frame length varint: " + err.Error()}
		}
		if uint64(r.Len()) < length {
			return nil, &ErrCorrupt{Reason: "archive-info length exceeds remaining stream"}
		}
		infoBytes := make([]byte, length)
		if _, err := io.ReadFull(r, infoBytes); err != nil {
			return nil, &ErrCorrupt{Reason: "short read on archive-info: " + err.Error()}
		}
		info := &tsp.ArchiveInfo{}
		if err := info.Unmarshal(infoBytes); err != nil {
			return nil, &ErrCorrupt{Reason: "malformed archive-info: " + err.Error()}
		}
		objectID := info.GetIdentifier()
		for _, mi := range info.MessageInfos {
			payloadLen := uint64(mi.GetLength())
			if uint64(r.Len()) < payloadLen {
				return nil, &ErrCorrupt{Reason: "payload length exceeds remaining stream"}
			}
			payload := make([]byte, payloadLen)
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, &ErrCorrupt{Reason: "short read on payload: " + err.Error()}
			}
			records = append(records, Record{
				ObjectID: objectID,
				TypeCode: mi.GetType(),
				Payload:  payload,
			})
		}
	}
	return records, nil
}
