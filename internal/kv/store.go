// Package kv stores BED records in a Pebble database, ordered by
// chromosome, start position and insertion order.
package kv

import (
	"encoding/binary"
	"sync"

	"github.com/chaisql/bed/internal/header"
	"github.com/chaisql/bed/internal/row"
	"github.com/chaisql/bed/internal/schema"
	"github.com/chaisql/bed/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

// Store is a collection of records sharing the same schema.
type Store struct {
	db     *pebble.DB
	schema *schema.Schema

	// guards seq
	mu  sync.Mutex
	seq uint64
}

// Open opens or creates a store at path. It takes the same options as Pebble's Open function.
// If s is nil, the schema the store was created with is used.
func Open(path string, s *schema.Schema, opts *pebble.Options) (*Store, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}

	st := Store{db: db}
	err = st.init(s)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &st, nil
}

func (s *Store) init(sc *schema.Schema) error {
	stored, err := get(s.db, schemaKey)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	switch {
	case stored == nil && sc == nil:
		return errors.Wrap(ErrKeyNotFound, "no schema stored")
	case stored == nil:
		if err := checkSchema(sc); err != nil {
			return err
		}
		err = s.db.Set(schemaKey, []byte(sc.String()), pebble.Sync)
		if err != nil {
			return err
		}
	case sc == nil:
		sc, err = schema.Parse(string(stored))
		if err != nil {
			return errors.Wrap(err, "stored schema")
		}
	case sc.String() != string(stored):
		return errors.Wrapf(ErrSchemaMismatch, "store was created with %q, got %q", stored, sc.String())
	}
	s.schema = sc

	seq, err := get(s.db, seqKey)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}
	if len(seq) == 8 {
		s.seq = binary.BigEndian.Uint64(seq)
	}

	return nil
}

func checkSchema(s *schema.Schema) error {
	if s.Len() < 2 {
		return errors.Wrap(ErrUnsupportedSchema, "expected at least 2 fields")
	}
	if tp := s.Field(0).Type; tp != types.TypeText {
		return errors.Wrapf(ErrUnsupportedSchema, "first field must be a text, got %s", tp)
	}
	if tp := s.Field(1).Type; tp != types.TypeInteger {
		return errors.Wrapf(ErrUnsupportedSchema, "second field must be an integer, got %s", tp)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Schema returns the schema of the records of the store.
func (s *Store) Schema() *schema.Schema {
	return s.schema
}

// SetHeader stores the track line of h. A zero header removes the stored one.
func (s *Store) SetHeader(h *header.Header) error {
	if h.IsZero() {
		return s.db.Delete(headerKey, pebble.Sync)
	}

	return s.db.Set(headerKey, []byte(h.String()), pebble.Sync)
}

// Header returns the stored header, or nil if there is none.
func (s *Store) Header() (*header.Header, error) {
	line, err := get(s.db, headerKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return header.Parse(string(line))
}

// Insert stores a single record.
func (s *Store) Insert(r *row.Row) error {
	return s.InsertBatch([]*row.Row{r})
}

// InsertBatch stores all the records atomically.
// Records with the same chromosome and start position are kept in insertion order.
func (s *Store) InsertBatch(rows []*row.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.db.NewBatch()
	defer func() {
		_ = b.Close()
	}()

	seq := s.seq
	var buf []byte
	for i, r := range rows {
		if r.Schema() != s.schema && r.Schema().String() != s.schema.String() {
			return errors.Wrapf(ErrSchemaMismatch, "record %d", i)
		}

		seq++
		key, err := buildRecordKey(types.AsString(r.Get(0)), types.AsInt64(r.Get(1)), seq)
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}

		buf, err = r.AppendText(buf[:0])
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}

		err = b.Set(key, buf, nil)
		if err != nil {
			return err
		}
	}

	err := b.Set(seqKey, binary.BigEndian.AppendUint64(nil, seq), nil)
	if err != nil {
		return err
	}

	err = b.Commit(pebble.Sync)
	if err != nil {
		return err
	}

	s.seq = seq
	return nil
}

// Iterate calls fn for every record of the store, ordered by chromosome,
// start position and insertion order. If fn returns an error, the iteration stops.
func (s *Store) Iterate(fn func(r *row.Row) error) error {
	return s.iterate(recordsPrefix(), recordsUpperBound(), fn)
}

// Range calls fn for every record of chrom whose start position is in [start, end).
func (s *Store) Range(chrom string, start, end int64, fn func(r *row.Row) error) error {
	if start >= end {
		return nil
	}

	prefix, err := buildChromPrefix(chrom)
	if err != nil {
		return err
	}

	lower := EncodeInt64(append([]byte{}, prefix...), start)
	upper := EncodeInt64(append([]byte{}, prefix...), end)
	return s.iterate(lower, upper, fn)
}

// Count returns the number of records of the store.
func (s *Store) Count() (int, error) {
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: recordsPrefix(),
		UpperBound: recordsUpperBound(),
	})
	defer func() {
		_ = it.Close()
	}()

	var n int
	for it.First(); it.Valid(); it.Next() {
		n++
	}

	return n, it.Error()
}

func (s *Store) iterate(lower, upper []byte, fn func(r *row.Row) error) error {
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	defer func() {
		_ = it.Close()
	}()

	for it.First(); it.Valid(); it.Next() {
		r, err := row.Decode(s.schema, string(it.Value()))
		if err != nil {
			chrom, start, _, kerr := parseRecordKey(it.Key())
			if kerr != nil {
				return errors.Wrap(err, "corrupted record")
			}
			return errors.Wrapf(err, "record %s:%d", chrom, start)
		}

		err = fn(r)
		if err != nil {
			return err
		}
	}

	return it.Error()
}

// get returns a copy of the value associated with the given key. If not found, returns ErrKeyNotFound.
func get(r pebble.Reader, k []byte) ([]byte, error) {
	value, closer, err := r.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithStack(ErrKeyNotFound)
		}

		return nil, err
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	err = closer.Close()
	if err != nil {
		return nil, err
	}

	return cp, nil
}
