package kvseq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cockroachdb/pebble"
)

// Common errors returned by store operations.
var (
	ErrClosed   = errors.New("kvseq: store already closed")
	ErrNotFound = errors.New("kvseq: key not found")
)

// Options configures the store.
type Options struct {
	// Path is the directory holding the store's files.
	Path string

	// CacheSize is the block cache size in bytes; zero means no cache.
	CacheSize int64

	// MaxOpenFiles limits the file descriptors the store may hold open;
	// zero uses Pebble's default.
	MaxOpenFiles int
}

// DB is a persistent ordered key-value store.
type DB struct {
	db     *pebble.DB
	closed bool
}

// Open opens or creates a store at opts.Path.
func Open(opts Options) (*DB, error) {
	pebbleOpts := &pebble.Options{
		MaxOpenFiles: opts.MaxOpenFiles,
	}
	if opts.CacheSize > 0 {
		pebbleOpts.Cache = pebble.NewCache(opts.CacheSize)
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("kvseq: failed to open store: %w", err)
	}

	return &DB{db: db}, nil
}

// Set stores value under key, replacing any prior value.
func (d *DB) Set(key, value []byte) error {
	if d.closed {
		return ErrClosed
	}
	if err := d.db.Set(key, value, pebble.Sync); err != nil {
		return fmt.Errorf("kvseq: failed to set key: %w", err)
	}
	return nil
}

// Get returns a copy of the value stored under key.
func (d *DB) Get(key []byte) ([]byte, error) {
	if d.closed {
		return nil, ErrClosed
	}
	value, closer, err := d.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kvseq: failed to get key: %w", err)
	}
	out := append([]byte(nil), value...)
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("kvseq: failed to release value: %w", err)
	}
	return out, nil
}

// Close closes the store. Open scans must be closed first.
func (d *DB) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return d.db.Close()
}

// Entry is one key-value pair produced by a scan. Both slices are copies
// owned by the entry.
type Entry struct {
	Key   []byte
	Value []byte
}

// Scan returns an ascending scan over keys in [lower, upper); nil bounds
// leave that side unbounded. Close the scan when done with its cursors.
func (d *DB) Scan(lower, upper []byte) (*Scan, error) {
	if d.closed {
		return nil, ErrClosed
	}
	it, err := d.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, fmt.Errorf("kvseq: failed to start scan: %w", err)
	}
	return &Scan{it: it}, nil
}

// Scan adapts a store range scan into a single-pass cursor sequence of
// entries.
type Scan struct {
	it    *pebble.Iterator
	begun bool
}

// Begin positions on the first entry in range. It may be called at most
// once per scan.
func (s *Scan) Begin() Cursor {
	if s.begun {
		panic("kvseq: Begin called twice on a single-pass scan")
	}
	s.begun = true
	if !s.it.First() {
		return Cursor{done: true}
	}
	return Cursor{scan: s, entry: s.snapshot()}
}

// End returns the exhausted sentinel every scan cursor reaches when the
// range runs out.
func (s *Scan) End() Cursor {
	return Cursor{done: true}
}

// Close releases the scan. Cursors keep their entry snapshots but must not
// be advanced afterwards.
func (s *Scan) Close() error {
	if err := s.it.Close(); err != nil {
		return fmt.Errorf("kvseq: failed to close scan: %w", err)
	}
	return nil
}

// All yields the remaining entries of a fresh scan in key order.
func (s *Scan) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		end := s.End()
		for c := s.Begin(); !c.Eq(end); c = c.Next() {
			if !yield(c.entry) {
				return
			}
		}
	}
}

// snapshot copies the iterator's current key and value; pebble reuses their
// backing memory on the next positioning call.
func (s *Scan) snapshot() Entry {
	return Entry{
		Key:   append([]byte(nil), s.it.Key()...),
		Value: append([]byte(nil), s.it.Value()...),
	}
}

// Cursor is a single-pass cursor over a scan. Advancing any copy consumes
// the shared scan and invalidates the other copies.
type Cursor struct {
	scan  *Scan
	entry Entry
	ord   int
	done  bool
}

func (c Cursor) Eq(o Cursor) bool {
	if c.done || o.done {
		return c.done == o.done
	}
	return c.scan == o.scan && c.ord == o.ord
}

// Ref returns the entry at the current position. The entry is an owned
// copy: it stays valid after the cursor advances.
func (c Cursor) Ref() *Entry {
	if c.done {
		panic("kvseq: dereference of an exhausted cursor")
	}
	return &c.entry
}

func (c Cursor) Next() Cursor {
	if c.done {
		panic("kvseq: advance past the end of a scan")
	}
	if !c.scan.it.Next() {
		return Cursor{done: true}
	}
	return Cursor{scan: c.scan, entry: c.scan.snapshot(), ord: c.ord + 1}
}
