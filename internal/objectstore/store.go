// Package objectstore indexes every record from every record archive in
// a package by object identifier and provides typed, memoized
// dereference.
package objectstore

import (
	"sync"

	"github.com/benedoc-inc/iworkdoc/internal/corelog"
	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/iwa"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

type entry struct {
	typeCode TypeCode
	raw      []byte

	once    sync.Once
	decoded any
	err     error
}

// Store is a read-only, concurrency-safe index of every record in a
// package, keyed by object identifier.
type Store struct {
	entries map[uint64]*entry
}

// Build reads every *.iwa archive in pkg and indexes its records. A
// corrupt stream aborts construction — the store is built eagerly, so
// stream corruption surfaces at load time rather than mid-traversal.
func Build(pkg *pkgstore.Package) (*Store, error) {
	s := &Store{entries: make(map[uint64]*entry)}
	for _, path := range pkg.IWAEntries() {
		raw, err := pkg.Read(path)
		if err != nil {
			return nil, err
		}
		records, err := iwa.Decode(raw)
		if err != nil {
			return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "corrupt archive: %s", path)
		}
		for _, r := range records {
			if _, exists := s.entries[r.ObjectID]; exists {
				corelog.Printf("duplicate object id %d in %s, keeping first occurrence", r.ObjectID, path)
				continue
			}
			s.entries[r.ObjectID] = &entry{typeCode: r.TypeCode, raw: r.Payload}
		}
	}
	return s, nil
}

// TypeCodeOf reports the type code of the record at id, if present.
func (s *Store) TypeCodeOf(id uint64) (TypeCode, bool) {
	e, ok := s.entries[id]
	if !ok {
		return 0, false
	}
	return e.typeCode, true
}

func (s *Store) decode(id uint64) (any, TypeCode, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, 0, errs.Newf(errs.CodeDereferenceMiss, "object %d not found", id)
	}
	e.once.Do(func() {
		fn, ok := registry[e.typeCode]
		if !ok {
			e.err = errs.Newf(errs.CodeSchemaUnknown, "unknown type code %d for object %d", e.typeCode, id)
			return
		}
		e.decoded, e.err = fn(e.raw)
	})
	return e.decoded, e.typeCode, e.err
}

// Get decodes and returns the record at id as T. The second return value
// is false if the object is absent, its type is unrecognized, or it
// decodes to a different concrete type than T.
func Get[T any](s *Store, id uint64) (T, bool) {
	var zero T
	decoded, _, err := s.decode(id)
	if err != nil {
		return zero, false
	}
	v, ok := decoded.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Deref follows ref to its target record and returns it as T.
func Deref[T any](s *Store, ref *tsp.Reference) (T, bool) {
	var zero T
	if ref == nil || ref.Identifier == nil {
		return zero, false
	}
	return Get[T](s, *ref.Identifier)
}

// FirstOfType scans the store for the record with the smallest object
// id whose decoded value is a T, returning its id alongside it. Used to
// locate the package's document-type anchor record; taking the smallest
// id keeps the choice deterministic when a package carries more than
// one candidate.
func FirstOfType[T any](s *Store) (uint64, T, bool) {
	var (
		zero   T
		best   T
		bestID uint64
		found  bool
	)
	for id := range s.entries {
		if found && id >= bestID {
			continue
		}
		if v, ok := Get[T](s, id); ok {
			best, bestID, found = v, id, true
		}
	}
	if !found {
		return 0, zero, false
	}
	return bestID, best, true
}

// HasTypeCode reports whether any record in the store carries the given
// type code, without decoding it. Used by DetectDocumentKind to probe
// for the Pages and Keynote anchor type codes.
func (s *Store) HasTypeCode(code TypeCode) bool {
	for _, e := range s.entries {
		if e.typeCode == code {
			return true
		}
	}
	return false
}

// HasTypeCodeInRange reports whether any record carries a type code in
// [lo, hi], inclusive. Used by DetectDocumentKind to probe the Numbers
// table-type range without requiring every record in that range to share
// one Go type.
func (s *Store) HasTypeCodeInRange(lo, hi TypeCode) bool {
	for _, e := range s.entries {
		if e.typeCode >= lo && e.typeCode <= hi {
			return true
		}
	}
	return false
}
