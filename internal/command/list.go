/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/list.go
*/
package command

import (
	"container/list"

	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// getOrCreateList fetches key's List object, creating and inserting an empty
// one if the key is absent. It reports wrongType if key holds a non-List
// value.
func getOrCreateList(db *store.Database, key []byte) (obj *store.Object, wrongType bool) {
	o, ok := db.GetMut(key)
	if !ok {
		o = store.NewListObj()
		db.Insert(key, o)
		return o, false
	}
	if o.Kind != store.KindList {
		return nil, true
	}
	return o, false
}

// Rpush implements RPUSH k v [v...].
func Rpush(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, wrongType := getOrCreateList(db, key)
	if wrongType {
		return replyWrongType(out)
	}
	for _, v := range req.Arguments()[1:] {
		obj.List.PushBack(bytestr.New(v.Bytes()))
	}
	out.Integer(int64(obj.List.Len()))
	return nil
}

// Lpush implements LPUSH k v [v...]. Each v is pushed in argument order, so
// the last-listed argument ends up at the head.
func Lpush(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, wrongType := getOrCreateList(db, key)
	if wrongType {
		return replyWrongType(out)
	}
	for _, v := range req.Arguments()[1:] {
		obj.List.PushFront(bytestr.New(v.Bytes()))
	}
	out.Integer(int64(obj.List.Len()))
	return nil
}

// Rpop implements RPOP k.
func Rpop(db *store.Database, req *resp.Request, out *resp.Response) error {
	return listPop(db, req, out, false)
}

// Lpop implements LPOP k.
func Lpop(db *store.Database, req *resp.Request, out *resp.Response) error {
	return listPop(db, req, out, true)
}

func listPop(db *store.Database, req *resp.Request, out *resp.Response, fromFront bool) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.GetMut(key)
	if !ok {
		out.NullString()
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}
	var e *list.Element
	if fromFront {
		e = obj.List.Front()
	} else {
		e = obj.List.Back()
	}
	if e == nil {
		out.NullString()
		return nil
	}
	obj.List.Remove(e)
	v := e.Value.(bytestr.ByteString)
	if obj.List.Len() == 0 {
		db.Remove(key)
	}
	out.BulkString(v.Bytes())
	return nil
}

// Llen implements LLEN k.
func Llen(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.Get(key)
	if !ok {
		out.Integer(0)
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}
	out.Integer(int64(obj.List.Len()))
	return nil
}

// elementAt walks l to the zero-based logical index, returning nil if out of
// range. Lists are expected to stay short enough in practice that O(n) walks
// are acceptable, matching container/list's own access pattern.
func elementAt(l *list.List, index int64) *list.Element {
	if index < 0 || index >= int64(l.Len()) {
		return nil
	}
	e := l.Front()
	for i := int64(0); i < index; i++ {
		e = e.Next()
	}
	return e
}

// Lindex implements LINDEX k i.
func Lindex(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	idxArg, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	obj, found := db.Get(key)
	if !found {
		out.NullString()
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}
	idx := clampIndex(idxArg, obj.List.Len())
	e := elementAt(obj.List, idx)
	if e == nil {
		out.NullString()
		return nil
	}
	out.BulkString(e.Value.(bytestr.ByteString).Bytes())
	return nil
}

// Lset implements LSET k i v.
func Lset(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	idxArg, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	obj, found := db.GetMut(key)
	if !found {
		out.Error(msgNoSuchKey)
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}
	idx := clampIndex(idxArg, obj.List.Len())
	e := elementAt(obj.List, idx)
	if e == nil {
		out.Error(msgIndexOutOfRange)
		return nil
	}
	e.Value = bytestr.New(req.Arg(2).Bytes())
	out.SimpleString("OK")
	return nil
}

// Lrange implements LRANGE k start stop, inclusive of both ends, clamped to
// the list's bounds.
func Lrange(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	startArg, ok1 := parseIntArg(req.Arg(1))
	stopArg, ok2 := parseIntArg(req.Arg(2))
	if !ok1 || !ok2 {
		return replyNotANumber(out)
	}
	obj, found := db.Get(key)
	if !found {
		out.ArrayLen(0)
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}

	n := int64(obj.List.Len())
	start := clampIndex(startArg, obj.List.Len())
	stop := clampIndex(stopArg, obj.List.Len())
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || n == 0 {
		out.ArrayLen(0)
		return nil
	}

	out.ArrayLen(stop - start + 1)
	e := elementAt(obj.List, start)
	for i := start; i <= stop; i++ {
		out.BulkString(e.Value.(bytestr.ByteString).Bytes())
		e = e.Next()
	}
	return nil
}

// Ltrim implements LTRIM k start stop: retains only the inclusive [start,
// stop] window, discarding the rest.
func Ltrim(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	startArg, ok1 := parseIntArg(req.Arg(1))
	stopArg, ok2 := parseIntArg(req.Arg(2))
	if !ok1 || !ok2 {
		return replyNotANumber(out)
	}
	obj, found := db.GetMut(key)
	if !found {
		out.SimpleString("OK")
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}

	n := int64(obj.List.Len())
	start := clampIndex(startArg, obj.List.Len())
	stop := clampIndex(stopArg, obj.List.Len())
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}

	newList := list.New()
	if start <= stop && n > 0 {
		e := elementAt(obj.List, start)
		for i := start; i <= stop; i++ {
			newList.PushBack(e.Value)
			e = e.Next()
		}
	}
	obj.List = newList
	if obj.List.Len() == 0 {
		db.Remove(key)
	}
	out.SimpleString("OK")
	return nil
}

// Lrem implements LREM k count v: removes occurrences of v from the list.
// count > 0 removes that many starting from the head; count < 0 from the
// tail; count == 0 removes every occurrence.
func Lrem(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	count, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	target := bytestr.New(req.Arg(2).Bytes())

	obj, found := db.GetMut(key)
	if !found {
		out.Integer(0)
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}

	removed := int64(0)
	if count >= 0 {
		limit := count
		e := obj.List.Front()
		for e != nil {
			next := e.Next()
			if (limit == 0 || removed < limit) && e.Value.(bytestr.ByteString).Equal(target) {
				obj.List.Remove(e)
				removed++
			}
			e = next
		}
	} else {
		limit := -count
		e := obj.List.Back()
		for e != nil {
			prev := e.Prev()
			if removed < limit && e.Value.(bytestr.ByteString).Equal(target) {
				obj.List.Remove(e)
				removed++
			}
			e = prev
		}
	}

	if obj.List.Len() == 0 {
		db.Remove(key)
	}
	out.Integer(removed)
	return nil
}

// Linsert implements LINSERT k BEFORE|AFTER pivot v.
func Linsert(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	where := req.Arg(1).CaseFold().String()
	if where != "before" && where != "after" {
		out.Error(msgSyntaxError)
		return nil
	}
	pivot := bytestr.New(req.Arg(2).Bytes())
	value := bytestr.New(req.Arg(3).Bytes())

	obj, found := db.GetMut(key)
	if !found {
		out.Integer(0)
		return nil
	}
	if obj.Kind != store.KindList {
		return replyWrongType(out)
	}

	for e := obj.List.Front(); e != nil; e = e.Next() {
		if e.Value.(bytestr.ByteString).Equal(pivot) {
			if where == "before" {
				obj.List.InsertBefore(value, e)
			} else {
				obj.List.InsertAfter(value, e)
			}
			out.Integer(int64(obj.List.Len()))
			return nil
		}
	}
	out.Integer(-1)
	return nil
}
