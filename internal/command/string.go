/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/string.go
*/
package command

import (
	"time"

	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// Ping answers PING with +PONG, or echoes back a single provided argument
// as a bulk string (the usual Redis PING convention).
func Ping(db *store.Database, req *resp.Request, out *resp.Response) error {
	if req.Arity() == 1 {
		out.SimpleString("PONG")
		return nil
	}
	out.BulkString(req.Arg(0).Bytes())
	return nil
}

// Set implements SET k v [NX|XX] [EX sec | PX ms], per SPEC_FULL.md §6.4
// (spec.md §4.5).
func Set(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	val := req.Arg(1)

	var nx, xx bool
	var hasExpire bool
	var expireAt time.Time

	args := req.Arguments()[2:]
	for i := 0; i < len(args); i++ {
		opt := args[i].CaseFold().String()
		switch opt {
		case "nx":
			if xx {
				out.Error(msgSyntaxError)
				return nil
			}
			nx = true
		case "xx":
			if nx {
				out.Error(msgSyntaxError)
				return nil
			}
			xx = true
		case "ex", "px":
			if hasExpire || i+1 >= len(args) {
				out.Error(msgSyntaxError)
				return nil
			}
			n, ok := parseIntArg(args[i+1])
			if !ok {
				return replyNotANumber(out)
			}
			if n <= 0 {
				out.Error(msgInvalidExpire)
				return nil
			}
			if opt == "ex" {
				expireAt = time.Now().Add(time.Duration(n) * time.Second)
			} else {
				expireAt = time.Now().Add(time.Duration(n) * time.Millisecond)
			}
			hasExpire = true
			i++
		default:
			out.Error(msgSyntaxError)
			return nil
		}
	}

	exists := db.Contains(key)
	if nx && exists {
		out.NullString()
		return nil
	}
	if xx && !exists {
		out.NullString()
		return nil
	}

	db.Insert(key, store.IngestBytes(val))
	if hasExpire {
		db.SetExpire(key, expireAt)
	} else {
		db.Persist(key)
	}

	out.SimpleString("OK")
	return nil
}

// Get implements GET k.
func Get(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.Get(key)
	if !ok {
		out.NullString()
		return nil
	}
	switch obj.Kind {
	case store.KindInt, store.KindStr:
		out.BulkString(obj.AsBytes())
	default:
		return replyWrongType(out)
	}
	return nil
}

// Mset implements MSET k1 v1 k2 v2 ...
func Mset(db *store.Database, req *resp.Request, out *resp.Response) error {
	args := req.Arguments()
	if len(args)%2 != 0 {
		out.Error(msgMsetWrongArity)
		return nil
	}
	for i := 0; i < len(args); i += 2 {
		db.Insert(args[i].Bytes(), store.IngestBytes(args[i+1]))
		db.Persist(args[i].Bytes())
	}
	out.SimpleString("OK")
	return nil
}

// Mget implements MGET k1 k2 ...
func Mget(db *store.Database, req *resp.Request, out *resp.Response) error {
	args := req.Arguments()
	out.ArrayLen(int64(len(args)))
	for _, a := range args {
		obj, ok := db.Get(a.Bytes())
		if !ok || (obj.Kind != store.KindInt && obj.Kind != store.KindStr) {
			out.NullString()
			continue
		}
		out.BulkString(obj.AsBytes())
	}
	return nil
}

// Strlen implements STRLEN k.
func Strlen(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.Get(key)
	if !ok {
		out.Integer(0)
		return nil
	}
	if obj.Kind != store.KindInt && obj.Kind != store.KindStr {
		return replyWrongType(out)
	}
	out.Integer(int64(len(obj.AsBytes())))
	return nil
}

// Append implements APPEND k v: appends v to the string stored at k
// (creating it if absent), re-canonicalizing the result.
func Append(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	suffix := req.Arg(1)

	obj, ok := db.Get(key)
	if !ok {
		db.Insert(key, store.IngestBytes(suffix))
		out.Integer(int64(suffix.Len()))
		return nil
	}
	if obj.Kind != store.KindInt && obj.Kind != store.KindStr {
		return replyWrongType(out)
	}

	combined := append(append([]byte(nil), obj.AsBytes()...), suffix.Bytes()...)
	newObj := store.IngestBytes(bytestr.New(combined))
	db.Insert(key, newObj)
	out.Integer(int64(len(combined)))
	return nil
}

// incrDecr implements the shared body of INCR/DECR/INCRBY/DECRBY: apply a
// signed delta to the Int stored at key (initializing absent keys to the
// delta itself), replying with the new value or the appropriate error.
func incrDecr(db *store.Database, key []byte, delta int64, out *resp.Response) error {
	obj, ok := db.Get(key)
	if !ok {
		db.Insert(key, store.NewIntObj(delta))
		out.Integer(delta)
		return nil
	}

	switch obj.Kind {
	case store.KindInt:
		result, overflowed := addOverflows(obj.Int, delta)
		if overflowed {
			out.Error(msgOverflow)
			return nil
		}
		db.Insert(key, store.NewIntObj(result))
		out.Integer(result)
		return nil
	case store.KindStr:
		n, err := obj.Str.ParseInt()
		if err != nil {
			return replyNotANumber(out)
		}
		result, overflowed := addOverflows(n, delta)
		if overflowed {
			out.Error(msgOverflow)
			return nil
		}
		db.Insert(key, store.NewIntObj(result))
		out.Integer(result)
		return nil
	default:
		return replyWrongType(out)
	}
}

func addOverflows(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}

// Incr implements INCR k.
func Incr(db *store.Database, req *resp.Request, out *resp.Response) error {
	return incrDecr(db, req.Arg(0).Bytes(), 1, out)
}

// Decr implements DECR k.
func Decr(db *store.Database, req *resp.Request, out *resp.Response) error {
	return incrDecr(db, req.Arg(0).Bytes(), -1, out)
}

// IncrBy implements INCRBY k by.
func IncrBy(db *store.Database, req *resp.Request, out *resp.Response) error {
	n, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	return incrDecr(db, req.Arg(0).Bytes(), n, out)
}

// DecrBy implements DECRBY k by.
func DecrBy(db *store.Database, req *resp.Request, out *resp.Response) error {
	n, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	if n == -9223372036854775808 {
		// Negating i64::MIN overflows; treat consistently with the
		// increment/decrement overflow error rather than panicking.
		out.Error(msgOverflow)
		return nil
	}
	return incrDecr(db, req.Arg(0).Bytes(), -n, out)
}
