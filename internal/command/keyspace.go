/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/keyspace.go
*/
package command

import (
	"errors"
	"sort"
	"time"

	"github.com/akashmaji946/redis-clone/internal/glob"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// appendHelpReply appends the standard Help-header reply form (§6): an
// array whose first element is the header simple string, followed by one
// simple string per subcommand line.
func appendHelpReply(out *resp.Response, header string, lines []string) {
	out.ArrayLen(int64(len(lines) + 1))
	out.SimpleString(header)
	for _, l := range lines {
		out.SimpleString(l)
	}
}

// Del implements DEL k [k...], returning the number of keys actually
// removed.
func Del(db *store.Database, req *resp.Request, out *resp.Response) error {
	var n int64
	for _, a := range req.Arguments() {
		if _, ok := db.Remove(a.Bytes()); ok {
			n++
		}
	}
	out.Integer(n)
	return nil
}

// Exists implements EXISTS k [k...], counting repeats of the same key
// separately (Redis semantics: each listed occurrence is checked).
func Exists(db *store.Database, req *resp.Request, out *resp.Response) error {
	var n int64
	for _, a := range req.Arguments() {
		if db.Contains(a.Bytes()) {
			n++
		}
	}
	out.Integer(n)
	return nil
}

// Expire implements EXPIRE k seconds: a non-positive seconds value deletes
// the key immediately, matching Redis's treatment of an already-past
// deadline.
func Expire(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	seconds, ok := parseIntArg(req.Arg(1))
	if !ok {
		return replyNotANumber(out)
	}
	if !db.Contains(key) {
		out.Integer(0)
		return nil
	}
	if seconds <= 0 {
		db.Remove(key)
		out.Integer(1)
		return nil
	}
	db.SetExpire(key, time.Now().Add(time.Duration(seconds)*time.Second))
	out.Integer(1)
	return nil
}

// Persist implements PERSIST k.
func Persist(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	if db.Persist(key) {
		out.Integer(1)
	} else {
		out.Integer(0)
	}
	return nil
}

// Ttl implements TTL k: seconds remaining, -1 if the key exists with no
// expiry, or -2 if the key doesn't exist.
func Ttl(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	if !db.Contains(key) {
		out.Integer(-2)
		return nil
	}
	deadline, ok := db.GetExpire(key)
	if !ok {
		out.Integer(-1)
		return nil
	}
	remaining := time.Until(deadline)
	if remaining < 0 {
		remaining = 0
	}
	out.Integer(int64(remaining / time.Second))
	return nil
}

// Keys implements KEYS pattern, listing every live key whose bytes match the
// glob pattern.
func Keys(db *store.Database, req *resp.Request, out *resp.Response) error {
	pattern := req.Arg(0).Bytes()
	matched := db.FilterKeys(func(key []byte) bool {
		return glob.Match(pattern, key)
	})
	out.ArrayLen(int64(len(matched)))
	for _, k := range matched {
		out.BulkString(k)
	}
	return nil
}

// Type implements TYPE k.
func Type(db *store.Database, req *resp.Request, out *resp.Response) error {
	key := req.Arg(0).Bytes()
	obj, ok := db.Get(key)
	if !ok {
		out.SimpleString("none")
		return nil
	}
	out.SimpleString(obj.TypeName())
	return nil
}

// Object implements OBJECT ENCODING k and OBJECT HELP, per spec §4.5.
func Object(db *store.Database, req *resp.Request, out *resp.Response) error {
	sub := req.Arg(0).CaseFold().String()
	switch sub {
	case "help":
		appendHelpReply(out, "OBJECT <subcommand> [<arg> ...]. Subcommands are:", []string{
			"ENCODING <key>",
			"    Return the kind of internal representation used to store the value at <key>.",
			"HELP",
			"    Print this help.",
		})
	case "encoding":
		if req.Arity() != 3 {
			out.Error(unknownSubcommandMsg(sub, "OBJECT"))
			return nil
		}
		key := req.Arg(1).Bytes()
		obj, ok := db.Get(key)
		if !ok {
			out.Error(msgNoSuchKey)
			return nil
		}
		out.SimpleString(obj.EncodingName())
	default:
		out.Error(unknownSubcommandMsg(sub, "OBJECT"))
	}
	return nil
}

// Flushdb implements FLUSHDB.
func Flushdb(db *store.Database, req *resp.Request, out *resp.Response) error {
	db.Clear()
	out.SimpleString("OK")
	return nil
}

// Dbsize implements DBSIZE.
func Dbsize(db *store.Database, req *resp.Request, out *resp.Response) error {
	out.Integer(int64(db.Size()))
	return nil
}

// Rename implements RENAME k newk, overwriting newk if it already exists.
func Rename(db *store.Database, req *resp.Request, out *resp.Response) error {
	src := req.Arg(0).Bytes()
	dst := req.Arg(1).Bytes()

	deadline, hadExpire := db.GetExpire(src)
	obj, ok := db.Remove(src)
	if !ok {
		out.Error(msgNoSuchKey)
		return nil
	}
	db.Insert(dst, obj)
	if hadExpire {
		db.SetExpire(dst, deadline)
	} else {
		db.Persist(dst)
	}
	out.SimpleString("OK")
	return nil
}

// Copy implements COPY src dst [REPLACE], copying the value without
// removing the source.
func Copy(db *store.Database, req *resp.Request, out *resp.Response) error {
	src := req.Arg(0).Bytes()
	dst := req.Arg(1).Bytes()

	replace := false
	if extra, ok := req.MaybeArg(2); ok {
		if extra.CaseFold().String() != "replace" {
			out.Error(msgSyntaxError)
			return nil
		}
		replace = true
	}

	obj, ok := db.Get(src)
	if !ok {
		out.Integer(0)
		return nil
	}
	if !replace && db.Contains(dst) {
		out.Integer(0)
		return nil
	}

	db.Insert(dst, cloneObject(obj))
	if deadline, hasExpire := db.GetExpire(src); hasExpire {
		db.SetExpire(dst, deadline)
	} else {
		db.Persist(dst)
	}
	out.Integer(1)
	return nil
}

func cloneObject(obj *store.Object) *store.Object {
	switch obj.Kind {
	case store.KindInt:
		return store.NewIntObj(obj.Int)
	case store.KindStr:
		return store.NewStrObj(obj.Str)
	case store.KindList:
		clone := store.NewListObj()
		for e := obj.List.Front(); e != nil; e = e.Next() {
			clone.List.PushBack(e.Value)
		}
		return clone
	case store.KindHash:
		clone := store.NewHashObj()
		for k, v := range obj.Hash {
			clone.Hash[k] = v
		}
		return clone
	default:
		return obj
	}
}

// Randomkey implements RANDOMKEY.
func Randomkey(db *store.Database, req *resp.Request, out *resp.Response) error {
	key, ok := db.RandomKey()
	if !ok {
		out.NullString()
		return nil
	}
	out.BulkString(key)
	return nil
}

// Debug implements DEBUG PANIC and DEBUG ERROR (spec §4.5), the two
// subcommands that deliberately exercise the dispatcher's panic-recovery
// and server-error reply paths rather than any real debugging facility.
func Debug(db *store.Database, req *resp.Request, out *resp.Response) error {
	sub := req.Arg(0).CaseFold().String()
	switch sub {
	case "panic":
		panic("DEBUG PANIC")
	case "error":
		return errors.New("DEBUG ERROR")
	default:
		out.Error(unknownSubcommandMsg(sub, "DEBUG"))
	}
	return nil
}

// commandNames returns every registered command name, sorted for
// deterministic COMMAND/COMMAND INFO output.
func commandNames() []string {
	names := make([]string, 0, len(Table))
	for name := range Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// appendCommandInfo appends one [name, arity] pair, the simplified form of
// Redis's per-command introspection array this server returns.
func appendCommandInfo(out *resp.Response, name string) {
	entry, ok := Table[name]
	if !ok {
		out.NullArray()
		return
	}
	out.ArrayLen(2)
	out.BulkString([]byte(name))
	out.Integer(int64(entry.Arity))
}

// Command implements COMMAND [HELP|COUNT|INFO cmd ...], introspection over
// the command table (spec §4.5). A bare COMMAND (or COMMAND INFO with no
// names) lists every registered command.
func Command(db *store.Database, req *resp.Request, out *resp.Response) error {
	args := req.Arguments()
	if len(args) == 0 {
		names := commandNames()
		out.ArrayLen(int64(len(names)))
		for _, n := range names {
			appendCommandInfo(out, n)
		}
		return nil
	}

	sub := args[0].CaseFold().String()
	switch sub {
	case "count":
		out.Integer(int64(len(Table)))
	case "help":
		appendHelpReply(out, "COMMAND <subcommand> [<arg> ...]. Subcommands are:", []string{
			"(no subcommand)",
			"    Return details about all commands.",
			"COUNT",
			"    Return the total number of commands.",
			"INFO [<command-name> ...]",
			"    Return details about the given commands, or all commands.",
			"HELP",
			"    Print this help.",
		})
	case "info":
		requested := args[1:]
		if len(requested) == 0 {
			names := commandNames()
			out.ArrayLen(int64(len(names)))
			for _, n := range names {
				appendCommandInfo(out, n)
			}
			return nil
		}
		out.ArrayLen(int64(len(requested)))
		for _, n := range requested {
			appendCommandInfo(out, n.CaseFold().String())
		}
	default:
		out.Error(unknownSubcommandMsg(sub, "COMMAND"))
	}
	return nil
}
