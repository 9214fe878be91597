/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/list_test.go
*/
package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/redis-clone/internal/store"
)

func TestRpushLpushOrder(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "RPUSH", "l", "a", "b"))
	require.Equal(t, ":3\r\n", dispatchAndGet(t, db, "LPUSH", "l", "z"))
	require.Equal(t, "*3\r\n$1\r\nz\r\n$1\r\na\r\n$1\r\nb\r\n", dispatchAndGet(t, db, "LRANGE", "l", "0", "-1"))
}

func TestLpopRpopEmptiesAndRemovesKey(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "only")
	require.Equal(t, "$4\r\nonly\r\n", dispatchAndGet(t, db, "LPOP", "l"))
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "LPOP", "l"))
	require.False(t, db.Contains([]byte("l")))
}

func TestLlenAndLindex(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a", "b", "c")
	require.Equal(t, ":3\r\n", dispatchAndGet(t, db, "LLEN", "l"))
	require.Equal(t, "$1\r\nc\r\n", dispatchAndGet(t, db, "LINDEX", "l", "-1"))
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "LINDEX", "l", "99"))
}

func TestLsetOutOfRangeErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a")
	require.Contains(t, dispatchAndGet(t, db, "LSET", "l", "5", "x"), "index out of range")
}

func TestLtrimKeepsWindow(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a", "b", "c", "d")
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "LTRIM", "l", "1", "2"))
	require.Equal(t, "*2\r\n$1\r\nb\r\n$1\r\nc\r\n", dispatchAndGet(t, db, "LRANGE", "l", "0", "-1"))
}

func TestLremPositiveCountFromHead(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a", "b", "a", "c", "a")
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "LREM", "l", "2", "a"))
	require.Equal(t, "*3\r\n$1\r\nb\r\n$1\r\nc\r\n$1\r\na\r\n", dispatchAndGet(t, db, "LRANGE", "l", "0", "-1"))
}

func TestLremNegativeCountFromTail(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a", "b", "a", "c", "a")
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "LREM", "l", "-2", "a"))
	require.Equal(t, "*3\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n", dispatchAndGet(t, db, "LRANGE", "l", "0", "-1"))
}

func TestLinsertBeforeAfter(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "RPUSH", "l", "a", "c")
	require.Equal(t, ":3\r\n", dispatchAndGet(t, db, "LINSERT", "l", "BEFORE", "c", "b"))
	require.Equal(t, "*3\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n", dispatchAndGet(t, db, "LRANGE", "l", "0", "-1"))
	require.Equal(t, ":-1\r\n", dispatchAndGet(t, db, "LINSERT", "l", "BEFORE", "missing", "x"))
}

func TestListWrongTypeErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "s", "v")
	require.Contains(t, dispatchAndGet(t, db, "RPUSH", "s", "x"), "WRONGTYPE")
	require.Contains(t, dispatchAndGet(t, db, "LLEN", "s"), "WRONGTYPE")
}
