/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/resp/value.go
*/

// Package resp implements the wire codec: a streaming decoder for
// length-prefixed, CRLF-delimited RESP frames, and an append-only encoder
// that produces byte-exact replies. The codec has no knowledge of commands;
// it only knows about the five RESP item types.
package resp

// Kind tags a decoded RESP item with the protocol's one-byte type prefix.
type Kind byte

// The five RESP item tags, exactly as they appear on the wire.
const (
	KindSimpleString Kind = '+'
	KindError        Kind = '-'
	KindInteger      Kind = ':'
	KindBulkString   Kind = '$'
	KindArray        Kind = '*'
)

// CRLF is the two-byte line terminator every RESP line ends with.
const CRLF = "\r\n"

// Bounds enforced by the decoder, per the wire protocol contract.
const (
	MaxLineLength = 64 * 1024        // 64 KiB
	MaxBulkLength = 512 * 1024 * 1024 // 512 MiB
	MaxArrayLength = 1024 * 1024      // 1 Mi elements
	MaxDepth       = 512
)

// Value is a decoded RESP item. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind

	Str   string  // SimpleString / Error payload
	Int   int64   // Integer payload
	Bulk  []byte  // BulkString payload (nil means the null bulk string)
	Array []Value // Array payload (nil means the null array)

	BulkIsNull  bool
	ArrayIsNull bool
}
