// Package kvseq exposes a persistent key-value store as cursor sequences.
// A Scan adapts a range scan over the store into a single-pass cursor range
// of key/value entries, so persisted data participates in the same zip,
// merge and bounded-advance machinery as in-memory sequences.
//
// The store is backed by Pebble, a RocksDB-compatible LSM key-value store.
// Keys come back in ascending byte order.
//
// Basic usage:
//
//	db, err := kvseq.Open(kvseq.Options{Path: dir})
//	if err != nil { ... }
//	defer db.Close()
//
//	_ = db.Set([]byte("a"), []byte("1"))
//	_ = db.Set([]byte("b"), []byte("2"))
//
//	scan, err := db.Scan(nil, nil)
//	if err != nil { ... }
//	defer scan.Close()
//
//	for c := scan.Begin(); !c.Eq(scan.End()); c = c.Next() {
//	    e := c.Ref()
//	    fmt.Printf("%s=%s\n", e.Key, e.Value)
//	}
//
// Entries returned by cursors are copies; they stay valid after the cursor
// advances and after the scan closes.
package kvseq
