/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/resp/decode.go
*/
package resp

import (
	"bufio"
	"errors"
	"io"

	"github.com/akashmaji946/redis-clone/internal/bytestr"
)

// ErrNotRequestFrame is returned by DecodeRequest when the top-level item
// decoded was not an array of bulk strings. Per §6, only arrays of bulk
// strings are accepted as inbound request frames; anything else is a
// protocol violation that must disconnect the client.
var ErrNotRequestFrame = errors.New("resp: top-level frame must be an array of bulk strings")

// Decoder reads RESP frames from a buffered byte stream. It holds no
// knowledge of commands: it is pure over the stream, as specified.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps r in a buffered reader ready to decode RESP frames.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads exactly one top-level RESP item, recursing into arrays up to
// MaxDepth.
func (d *Decoder) Decode() (Value, error) {
	return d.decode(0)
}

func (d *Decoder) decode(depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, newDecodeError(ExceededDepthLimit)
	}

	line, err := readLine(d.r)
	if err != nil {
		return Value{}, err
	}
	if len(line) == 0 {
		return Value{}, newUnsupportedSymbol(0)
	}

	tag := line[0]
	payload := line[1:]

	switch Kind(tag) {
	case KindSimpleString:
		return Value{Kind: KindSimpleString, Str: string(payload)}, nil
	case KindError:
		return Value{Kind: KindError, Str: string(payload)}, nil
	case KindInteger:
		n, err := bytestr.ParseInt(payload)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInteger, Int: n}, nil
	case KindBulkString:
		return d.decodeBulk(payload)
	case KindArray:
		return d.decodeArray(payload, depth)
	default:
		return Value{}, newUnsupportedSymbol(tag)
	}
}

func (d *Decoder) decodeBulk(lenPayload []byte) (Value, error) {
	n, err := bytestr.ParseInt(lenPayload)
	if err != nil {
		return Value{}, newDecodeError(InvalidBulkStringSize)
	}
	if n == -1 {
		return Value{Kind: KindBulkString, BulkIsNull: true}, nil
	}
	if n < 0 || n > MaxBulkLength {
		return Value{}, newDecodeError(InvalidBulkStringSize)
	}

	buf := make([]byte, n+2)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return Value{}, err
	}

	return Value{Kind: KindBulkString, Bulk: buf[:n:n]}, nil
}

func (d *Decoder) decodeArray(lenPayload []byte, depth int) (Value, error) {
	n, err := bytestr.ParseInt(lenPayload)
	if err != nil {
		return Value{}, newDecodeError(InvalidArraySize)
	}
	if n == -1 {
		return Value{Kind: KindArray, ArrayIsNull: true}, nil
	}
	if n < 0 || n > MaxArrayLength {
		return Value{}, newDecodeError(InvalidArraySize)
	}

	items := make([]Value, 0, n)
	for i := int64(0); i < n; i++ {
		item, err := d.decode(depth + 1)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}

	return Value{Kind: KindArray, Array: items}, nil
}

// readLine reads one CRLF-terminated line (tag + payload, CRLF stripped),
// enforcing MaxLineLength. A zero-byte read at the start of a frame is
// reported as ConnectionClosed rather than a generic I/O error, since it is
// the expected way a client disconnects between requests.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(line) == 0 {
				return nil, newDecodeError(ConnectionClosed)
			}
			return nil, err
		}
		line = append(line, b)
		if len(line) > MaxLineLength {
			return nil, newDecodeError(ExceededMaxLineLength)
		}
		if b == '\n' {
			break
		}
	}

	if len(line) < 2 || line[len(line)-2] != '\r' {
		return nil, newDecodeError(InvalidTerminator)
	}

	return line[:len(line)-2], nil
}

// DecodeRequest reads exactly one top-level frame and requires it to be an
// array of bulk strings, decoding it into a Request whose arguments are
// those bulk strings byte-for-byte. Because only one level of array-of-bulk
// is accepted, depth is naturally bounded without consulting MaxDepth.
//
// An array length of 0 or -1 both yield EmptyRequest, which callers should
// treat as a silent continue rather than a protocol error.
func (d *Decoder) DecodeRequest() (*Request, error) {
	line, err := readLine(d.r)
	if err != nil {
		return nil, err
	}
	if len(line) == 0 {
		return nil, newUnsupportedSymbol(0)
	}
	if Kind(line[0]) != KindArray {
		return nil, ErrNotRequestFrame
	}

	n, err := bytestr.ParseInt(line[1:])
	if err != nil {
		return nil, newDecodeError(InvalidArraySize)
	}
	if n == 0 || n == -1 {
		return nil, newDecodeError(EmptyRequest)
	}
	if n < 0 || n > MaxArrayLength {
		return nil, newDecodeError(InvalidArraySize)
	}

	args := make([]bytestr.ByteString, 0, n)
	for i := int64(0); i < n; i++ {
		bulkLine, err := readLine(d.r)
		if err != nil {
			return nil, err
		}
		if len(bulkLine) == 0 || Kind(bulkLine[0]) != KindBulkString {
			return nil, ErrNotRequestFrame
		}

		blen, err := bytestr.ParseInt(bulkLine[1:])
		if err != nil {
			return nil, newDecodeError(InvalidBulkStringSize)
		}
		if blen < 0 || blen > MaxBulkLength {
			return nil, newDecodeError(InvalidBulkStringSize)
		}

		buf := make([]byte, blen+2)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, err
		}
		args = append(args, bytestr.New(buf[:blen]))
	}

	return NewRequest(args), nil
}
