/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/hash_test.go
*/
package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/redis-clone/internal/store"
)

func TestHsetCountsNewFieldsOnly(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "HSET", "h", "f1", "v1", "f2", "v2"))
	require.Equal(t, ":0\r\n", dispatchAndGet(t, db, "HSET", "h", "f1", "v1b"))
	require.Equal(t, "$3\r\nv1b\r\n", dispatchAndGet(t, db, "HGET", "h", "f1"))
}

func TestHmsetRepliesOK(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "HMSET", "h", "f1", "v1", "f2", "v2"))
}

func TestHgetMissingFieldIsNull(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "HSET", "h", "f1", "v1")
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "HGET", "h", "missing"))
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "HGET", "nokey", "f1"))
}

func TestHmget(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "HSET", "h", "f1", "v1", "f2", "v2")
	require.Equal(t, "*3\r\n$2\r\nv1\r\n$-1\r\n$2\r\nv2\r\n", dispatchAndGet(t, db, "HMGET", "h", "f1", "missing", "f2"))
}

func TestHgetallEmptyForMissingKey(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "*0\r\n", dispatchAndGet(t, db, "HGETALL", "nokey"))
}

func TestHashWrongTypeErrors(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "s", "v")
	require.Contains(t, dispatchAndGet(t, db, "HSET", "s", "f", "v"), "WRONGTYPE")
	require.Contains(t, dispatchAndGet(t, db, "HGET", "s", "f"), "WRONGTYPE")
}
