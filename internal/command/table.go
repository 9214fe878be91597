/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/table.go
*/
package command

import (
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// Handler is the signature every command implementation satisfies. It
// mutates db (if the command is a write) and appends exactly one top-level
// frame to out. A non-nil error is a server-level failure (logged, replied
// to generically); application-level failures are appended to out as an
// error frame and the handler returns nil.
type Handler func(db *store.Database, req *resp.Request, out *resp.Response) error

// Entry pairs a handler with its declared arity. Positive n means exactly n
// tokens including the command name; negative n means at least |n| tokens;
// zero is never valid and is asserted against at table construction time.
type Entry struct {
	Handler Handler
	Arity   int
}

// Table is the static, read-only-after-init command registry: lowercased
// command name to {handler, arity}. It is global process-wide state, per
// SPEC_FULL.md §8's Resource Policy — the only other such state.
var Table = map[string]Entry{
	"ping": {Ping, -1},
	"command": {Command, -1},

	"set":    {Set, -3},
	"get":    {Get, 2},
	"mset":   {Mset, -3},
	"mget":   {Mget, -2},
	"incr":   {Incr, 2},
	"decr":   {Decr, 2},
	"incrby": {IncrBy, 3},
	"decrby": {DecrBy, 3},
	"strlen": {Strlen, 2},
	"append": {Append, 3},

	"rpush":   {Rpush, -3},
	"lpush":   {Lpush, -3},
	"linsert": {Linsert, 5},
	"rpop":    {Rpop, 2},
	"lpop":    {Lpop, 2},
	"llen":    {Llen, 2},
	"lindex":  {Lindex, 3},
	"lset":    {Lset, 4},
	"lrange":  {Lrange, 4},
	"ltrim":   {Ltrim, 4},
	"lrem":    {Lrem, 4},

	"hset":    {Hset, -4},
	"hmset":   {Hmset, -4},
	"hget":    {Hget, 3},
	"hmget":   {Hmget, -3},
	"hgetall": {Hgetall, 2},

	"del":       {Del, -2},
	"exists":    {Exists, -2},
	"expire":    {Expire, 3},
	"persist":   {Persist, 2},
	"ttl":       {Ttl, 2},
	"keys":      {Keys, 2},
	"type":      {Type, 2},
	"object":    {Object, -2},
	"flushdb":   {Flushdb, 1},
	"dbsize":    {Dbsize, 1},
	"rename":    {Rename, 3},
	"copy":      {Copy, -3},
	"randomkey": {Randomkey, 1},
	"debug":     {Debug, -2},
}

func init() {
	for name, e := range Table {
		if e.Arity == 0 {
			panic("command: zero arity is not a valid table entry for " + name)
		}
	}
}
