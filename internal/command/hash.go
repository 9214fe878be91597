/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/hash.go
*/
package command

import (
	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

func getOrCreateHash(db *store.Database, key []byte) (obj *store.Object, wrongType bool) {
	o, ok := db.GetMut(key)
	if !ok {
		o = store.NewHashObj()
		db.Insert(key, o)
		return o, false
	}
	if o.Kind != store.KindHash {
		return nil, true
	}
	return o, false
}

// Hset implements HSET k f v [f v...], returning the count of fields newly
// created (fields that already existed are overwritten but not counted).
func Hset(db *store.Database, req *resp.Request, out *resp.Response) error {
	fieldsAndValues := req.Arguments()[1:]
	if len(fieldsAndValues)%2 != 0 {
		out.Error(msgSyntaxError)
		return nil
	}
	key := req.Arg(0).Bytes()
	obj, wrongType := getOrCreateHash(db, key)
	if wrongType {
		return replyWrongType(out)
	}

	created := int64(0)
	for i := 0; i < len(fieldsAndValues); i += 2 {
		field := fieldsAndValues[i].String()
		if _, exists := obj.Hash[field]; !exists {
			created++
		}
		obj.Hash[field] = bytestr.New(fieldsAndValues[i+1].Bytes())
	}
	out.Integer(created)
	return nil
}

// Hmset implements HMSET k f v [f v...], replying +OK instead of a count.
func Hmset(db *store.Database, req *resp.Request, out *resp.Response) error {
	fieldsAndValues := req.Arguments()[1:]
	if len(fieldsAndValues)%2 != 0 {
		out.Error(msgHmsetWrongArity)
		return nil
	}
	key := req.Arg(0).Bytes()
	obj, wrongType := getOrCreateHash(db, key)
	if wrongType {
		return replyWrongType(out)
	}
	for i := 0; i < len(fieldsAndValues); i += 2 {
		field := fieldsAndValues[i].String()
		obj.Hash[field] = bytestr.New(fieldsAndValues[i+1].Bytes())
	}
	out.SimpleString("OK")
	return nil
}

// Hget implements HGET k f.
func Hget(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	field := req.Arg(1).String()

	obj, ok := db.Get(key)
	if !ok {
		out.NullString()
		return nil
	}
	if obj.Kind != store.KindHash {
		return replyWrongType(out)
	}
	v, ok := obj.Hash[field]
	if !ok {
		out.NullString()
		return nil
	}
	out.BulkString(v.Bytes())
	return nil
}

// Hmget implements HMGET k f [f...].
func Hmget(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	fields := req.Arguments()[1:]

	obj, ok := db.Get(key)
	if ok && obj.Kind != store.KindHash {
		return replyWrongType(out)
	}

	out.ArrayLen(int64(len(fields)))
	for _, f := range fields {
		if !ok {
			out.NullString()
			continue
		}
		v, exists := obj.Hash[f.String()]
		if !exists {
			out.NullString()
			continue
		}
		out.BulkString(v.Bytes())
	}
	return nil
}

// Hgetall implements HGETALL k, flattening field/value pairs into a single
// array in map-iteration order.
func Hgetall(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.Get(key)
	if !ok {
		out.ArrayLen(0)
		return nil
	}
	if obj.Kind != store.KindHash {
		return replyWrongType(out)
	}
	out.ArrayLen(int64(len(obj.Hash) * 2))
	for field, v := range obj.Hash {
		out.BulkString([]byte(field))
		out.BulkString(v.Bytes())
	}
	return nil
}
