/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/string_test.go
*/
package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

func req(args ...string) *resp.Request {
	bs := make([]bytestr.ByteString, len(args))
	for i, a := range args {
		bs[i] = bytestr.FromString(a)
	}
	return resp.NewRequest(bs)
}

func dispatchAndGet(t *testing.T, db *store.Database, args ...string) string {
	t.Helper()
	out := resp.NewResponse()
	Dispatch(db, req(args...), out, noopLogger{})
	return string(out.Bytes())
}

type noopLogger struct{}

func (noopLogger) Error(format string, args ...interface{}) {}

func TestSetAndGet(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "SET", "k", "v"))
	require.Equal(t, "$1\r\nv\r\n", dispatchAndGet(t, db, "GET", "k"))
}

func TestSetCanonicalizesIntegers(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "n", "42")
	obj, ok := db.Get([]byte("n"))
	require.True(t, ok)
	require.Equal(t, store.KindInt, obj.Kind)
	require.Equal(t, int64(42), obj.Int)
}

func TestSetNXDoesNotOverwrite(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "k", "v1")
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "SET", "k", "v2", "NX"))
	require.Equal(t, "$2\r\nv1\r\n", dispatchAndGet(t, db, "GET", "k"))
}

func TestSetXXRequiresExistence(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "SET", "missing", "v", "XX"))
}

func TestGetMissingKeyIsNull(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "GET", "nope"))
}

func TestGetWrongTypeErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "lst", "a")
	require.Contains(t, dispatchAndGet(t, db, "GET", "lst"), "WRONGTYPE")
}

func TestMsetMget(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "MSET", "a", "1", "b", "2"))
	require.Equal(t, "*2\r\n$1\r\n1\r\n$1\r\n2\r\n", dispatchAndGet(t, db, "MGET", "a", "b"))
}

func TestMsetOddArityErrors(t *testing.T) {
	db := store.NewDatabase()
	require.Contains(t, dispatchAndGet(t, db, "MSET", "a", "1", "b"), "ERR")
}

func TestIncrFromAbsentKey(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "INCR", "c"))
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "INCR", "c"))
}

func TestDecrByAndIncrBy(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "c", "10")
	require.Equal(t, ":15\r\n", dispatchAndGet(t, db, "INCRBY", "c", "5"))
	require.Equal(t, ":5\r\n", dispatchAndGet(t, db, "DECRBY", "c", "10"))
}

func TestIncrOnNonNumericStringErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "s", "hello")
	require.Contains(t, dispatchAndGet(t, db, "INCR", "s"), "not an integer")
}

func TestIncrOverflowErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "big", "9223372036854775807")
	require.Contains(t, dispatchAndGet(t, db, "INCR", "big"), "overflow")
}

func TestStrlen(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "s", "hello")
	require.Equal(t, ":5\r\n", dispatchAndGet(t, db, "STRLEN", "s"))
	require.Equal(t, ":0\r\n", dispatchAndGet(t, db, "STRLEN", "missing"))
}

func TestAppendCreatesAndExtends(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":5\r\n", dispatchAndGet(t, db, "APPEND", "s", "hello"))
	require.Equal(t, ":11\r\n", dispatchAndGet(t, db, "APPEND", "s", " world"))
	require.Equal(t, "$11\r\nhello world\r\n", dispatchAndGet(t, db, "GET", "s"))
}

func TestWrongArityRepliesError(t *testing.T) {
	db := store.NewDatabase()
	require.Contains(t, dispatchAndGet(t, db, "GET"), "wrong number of arguments")
}

func TestUnknownCommandRepliesError(t *testing.T) {
	db := store.NewDatabase()
	require.Contains(t, dispatchAndGet(t, db, "NOTACOMMAND", "x"), "unknown command")
}
