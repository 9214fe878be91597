/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/store/object.go
*/

// Package store implements the typed keyspace (Database): a sharded map from
// key to RObj plus the expiration index that links to it. The Database is
// owned exclusively by one goroutine at a time (the server's owner task); it
// has no internal locking of its own, by design (see §8 of SPEC_FULL.md).
package store

import (
	"container/list"

	"github.com/akashmaji946/redis-clone/internal/bytestr"
)

// Kind tags the RObj variant currently stored under a key.
type Kind int

const (
	KindInt Kind = iota
	KindStr
	KindList
	KindHash
)

// Object is the closed tagged variant RObj of SPEC_FULL.md §5: one of Int,
// Str, List, or Hash. Handlers dispatch on Kind by inspection; no dynamic
// dispatch is required.
type Object struct {
	Kind Kind

	Int  int64
	Str  bytestr.ByteString
	List *list.List // of bytestr.ByteString, O(1) push/pop at both ends
	Hash map[string]bytestr.ByteString
}

// NewIntObj builds an Int-kind object directly, without re-parsing bytes.
// Arithmetic handlers (INCR/DECR and friends) use this so a computed result
// never has to round-trip through a decimal string.
func NewIntObj(n int64) *Object {
	return &Object{Kind: KindInt, Int: n}
}

// NewStrObj builds a Str-kind object holding the given bytes verbatim (no
// canonicalization). Used internally when the caller has already decided a
// value must not be numerically canonicalized.
func NewStrObj(s bytestr.ByteString) *Object {
	return &Object{Kind: KindStr, Str: s}
}

// NewListObj builds an empty List-kind object.
func NewListObj() *Object {
	return &Object{Kind: KindList, List: list.New()}
}

// NewHashObj builds an empty Hash-kind object.
func NewHashObj() *Object {
	return &Object{Kind: KindHash, Hash: make(map[string]bytestr.ByteString)}
}

// IngestBytes is the value-ingest path referenced by the encoding
// canonicalization invariant: if b parses as a signed 64-bit decimal
// integer, the result is Int; otherwise it is Str holding b's bytes. This is
// the single call site every string-family write command goes through to
// turn user-supplied bytes into a stored Object.
func IngestBytes(b bytestr.ByteString) *Object {
	if n, err := b.ParseInt(); err == nil {
		return NewIntObj(n)
	}
	return NewStrObj(b)
}

// AsBytes renders the object's value as bytes, the way GET/MGET and friends
// present a string-family value to the client: Int objects render as their
// decimal form, Str objects render verbatim.
func (o *Object) AsBytes() []byte {
	switch o.Kind {
	case KindInt:
		return []byte(itoa(o.Int))
	case KindStr:
		return o.Str.Bytes()
	default:
		return nil
	}
}

// TypeName reports the name TYPE returns for this object's kind.
func (o *Object) TypeName() string {
	switch o.Kind {
	case KindInt, KindStr:
		return "string"
	case KindList:
		return "list"
	case KindHash:
		return "hash"
	default:
		return "none"
	}
}

// EncodingName reports the name OBJECT ENCODING returns for this object.
func (o *Object) EncodingName() string {
	switch o.Kind {
	case KindInt:
		return "int"
	case KindStr:
		return "bytestr"
	case KindList:
		return "list"
	case KindHash:
		return "hash"
	default:
		return "none"
	}
}

func itoa(n int64) string {
	// Small, allocation-light decimal formatter; avoids pulling in
	// strconv at every call site that just wants AsBytes().
	if n == 0 {
		return "0"
	}
	neg := n < 0
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
