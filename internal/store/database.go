/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/store/database.go
*/
package store

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// shardCount is fixed at startup; it is a memory-locality device internal to
// the single owner task, not a concurrency mechanism — see SPEC_FULL.md §3's
// Domain Stack note on option (c) of the original Design Notes.
const shardCount = 16

// entry is option (c) from the spec's Design Notes: a single combined slot
// holding the value and its optional deadline, eliminating a separate
// expiry table while keeping persist/filterKeys at their specified
// complexity.
type entry struct {
	obj      *Object
	deadline time.Time
	hasDeadline bool
}

func (e *entry) expired(now time.Time) bool {
	return e.hasDeadline && !e.deadline.After(now)
}

type shard struct {
	m map[string]*entry
}

// Database is the typed keyspace plus expiration index described in
// SPEC_FULL.md §5. It is single-threaded with respect to its owner: every
// exported method assumes the caller is the sole goroutine touching it (the
// server's database-owner task), so there is no locking here at all.
type Database struct {
	shards []shard
	keys   map[string][]byte // original key bytes, kept for KEYS/iteration without re-deriving strings
}

// NewDatabase returns an empty, ready-to-use Database.
func NewDatabase() *Database {
	db := &Database{
		shards: make([]shard, shardCount),
		keys:   make(map[string][]byte),
	}
	for i := range db.shards {
		db.shards[i].m = make(map[string]*entry)
	}
	return db
}

func (db *Database) shardFor(key []byte) *shard {
	h := xxhash.Sum64(key)
	return &db.shards[h%uint64(shardCount)]
}

// now is the monotonic clock read used for every deadline comparison:
// deadlines are compared against a fresh time.Now() at each check, per §4.3.
func now() time.Time {
	return time.Now()
}

// Get returns the live object stored at key, lazily expiring it first.
func (db *Database) Get(key []byte) (*Object, bool) {
	e := db.lookupLive(key)
	if e == nil {
		return nil, false
	}
	return e.obj, true
}

// GetMut returns the live object for in-place mutation, lazily expiring
// first. The returned pointer is the one actually stored; mutating it
// mutates the database.
func (db *Database) GetMut(key []byte) (*Object, bool) {
	return db.Get(key)
}

// lookupLive finds key's entry, deleting and returning nil if it is
// expired. This is the single choke point invariant 3 (§4.3) runs through.
func (db *Database) lookupLive(key []byte) *entry {
	s := db.shardFor(key)
	e, ok := s.m[string(key)]
	if !ok {
		return nil
	}
	if e.expired(now()) {
		delete(s.m, string(key))
		delete(db.keys, string(key))
		return nil
	}
	return e
}

// Insert creates or overwrites key's object. It never touches any existing
// expiry; callers that must clear the expiry (SET without KEEPTTL) do so
// explicitly via Persist before or after calling Insert.
func (db *Database) Insert(key []byte, obj *Object) {
	s := db.shardFor(key)
	ks := string(key)
	if e, ok := s.m[ks]; ok {
		e.obj = obj
		return
	}
	s.m[ks] = &entry{obj: obj}
	db.keys[ks] = append([]byte(nil), key...)
}

// Remove deletes key from the database, returning its object if it existed
// and was live. Removing a key always removes any associated expiry too
// (invariant 1).
func (db *Database) Remove(key []byte) (*Object, bool) {
	e := db.lookupLive(key)
	if e == nil {
		return nil, false
	}
	s := db.shardFor(key)
	ks := string(key)
	delete(s.m, ks)
	delete(db.keys, ks)
	return e.obj, true
}

// Contains reports whether key is present and live.
func (db *Database) Contains(key []byte) bool {
	return db.lookupLive(key) != nil
}

// FilterKeys returns every live key satisfying pred, lazily expiring as it
// iterates.
func (db *Database) FilterKeys(pred func(key []byte) bool) [][]byte {
	var out [][]byte
	n := now()
	for si := range db.shards {
		s := &db.shards[si]
		for ks, e := range s.m {
			if e.expired(n) {
				delete(s.m, ks)
				delete(db.keys, ks)
				continue
			}
			key := db.keys[ks]
			if pred == nil || pred(key) {
				out = append(out, key)
			}
		}
	}
	return out
}

// Keys returns every live key, unfiltered.
func (db *Database) Keys() [][]byte {
	return db.FilterKeys(nil)
}

// SetExpire replaces key's deadline, succeeding only if key exists (and is
// live).
func (db *Database) SetExpire(key []byte, deadline time.Time) bool {
	e := db.lookupLive(key)
	if e == nil {
		return false
	}
	e.deadline = deadline
	e.hasDeadline = true
	return true
}

// GetExpire returns key's deadline, if any.
func (db *Database) GetExpire(key []byte) (time.Time, bool) {
	e := db.lookupLive(key)
	if e == nil || !e.hasDeadline {
		return time.Time{}, false
	}
	return e.deadline, true
}

// Persist removes key's expiry, reporting whether one existed.
func (db *Database) Persist(key []byte) bool {
	e := db.lookupLive(key)
	if e == nil || !e.hasDeadline {
		return false
	}
	e.hasDeadline = false
	e.deadline = time.Time{}
	return true
}

// Clear empties every shard and releases their backing capacity.
func (db *Database) Clear() {
	for i := range db.shards {
		db.shards[i].m = make(map[string]*entry)
	}
	db.keys = make(map[string][]byte)
}

// Size returns the number of live keys, lazily expiring as it scans. Used by
// DBSIZE.
func (db *Database) Size() int {
	return len(db.FilterKeys(nil))
}

// RandomKey returns a live key, or (nil, false) if the database is empty.
// Grounded on the teacher's sampleKeysRandom eviction helper: like that
// helper, this relies on Go's intentionally non-deterministic map iteration
// order rather than an explicit random-number source, taking the first live
// key the native iteration order happens to produce.
func (db *Database) RandomKey() ([]byte, bool) {
	n := now()
	for si := range db.shards {
		s := &db.shards[si]
		for ks, e := range s.m {
			if e.expired(n) {
				delete(s.m, ks)
				delete(db.keys, ks)
				continue
			}
			return db.keys[ks], true
		}
	}
	return nil, false
}
