/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/keyspace_test.go
*/
package command

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/redis-clone/internal/store"
)

func TestDelCountsOnlyExisting(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "DEL", "a", "missing"))
}

func TestExistsCountsRepeats(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "EXISTS", "a", "a", "missing"))
}

func TestExpireNegativeDeletesImmediately(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "EXPIRE", "a", "-1"))
	require.False(t, db.Contains([]byte("a")))
}

func TestExpireAndTtlAndPersist(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":-1\r\n", dispatchAndGet(t, db, "TTL", "a"))
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "EXPIRE", "a", "100"))
	require.NotEqual(t, ":-1\r\n", dispatchAndGet(t, db, "TTL", "a"))
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "PERSIST", "a"))
	require.Equal(t, ":-1\r\n", dispatchAndGet(t, db, "TTL", "a"))
}

func TestTtlMissingKeyIsMinusTwo(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":-2\r\n", dispatchAndGet(t, db, "TTL", "missing"))
}

func TestKeysGlobMatches(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "foo", "1")
	dispatchAndGet(t, db, "SET", "foobar", "1")
	dispatchAndGet(t, db, "SET", "baz", "1")
	reply := dispatchAndGet(t, db, "KEYS", "foo*")
	require.True(t, strings.HasPrefix(reply, "*2\r\n"))
	require.Contains(t, reply, "foo\r\n")
	require.Contains(t, reply, "foobar\r\n")
	require.NotContains(t, reply, "baz")
}

func TestTypeReportsKind(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "s", "v")
	dispatchAndGet(t, db, "RPUSH", "l", "v")
	dispatchAndGet(t, db, "HSET", "h", "f", "v")
	require.Equal(t, "+string\r\n", dispatchAndGet(t, db, "TYPE", "s"))
	require.Equal(t, "+list\r\n", dispatchAndGet(t, db, "TYPE", "l"))
	require.Equal(t, "+hash\r\n", dispatchAndGet(t, db, "TYPE", "h"))
	require.Equal(t, "+none\r\n", dispatchAndGet(t, db, "TYPE", "missing"))
}

func TestObjectEncoding(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "n", "42")
	dispatchAndGet(t, db, "SET", "s", "hello")
	require.Equal(t, "+int\r\n", dispatchAndGet(t, db, "OBJECT", "ENCODING", "n"))
	require.Equal(t, "+bytestr\r\n", dispatchAndGet(t, db, "OBJECT", "ENCODING", "s"))
}

func TestFlushdbAndDbsize(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	dispatchAndGet(t, db, "SET", "b", "2")
	require.Equal(t, ":2\r\n", dispatchAndGet(t, db, "DBSIZE"))
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "FLUSHDB"))
	require.Equal(t, ":0\r\n", dispatchAndGet(t, db, "DBSIZE"))
}

func TestRenameMovesValueAndExpiry(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "EXPIRE", "a", "100"))
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "RENAME", "a", "b"))
	require.False(t, db.Contains([]byte("a")))
	require.Equal(t, "$1\r\n1\r\n", dispatchAndGet(t, db, "GET", "b"))
	require.NotEqual(t, ":-1\r\n", dispatchAndGet(t, db, "TTL", "b"))
}

func TestRenameMissingSourceErrors(t *testing.T) {
	db := store.NewDatabase()
	require.Contains(t, dispatchAndGet(t, db, "RENAME", "missing", "b"), "no such key")
}

func TestCopyDoesNotRemoveSource(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "COPY", "a", "b"))
	require.True(t, db.Contains([]byte("a")))
	require.True(t, db.Contains([]byte("b")))
}

func TestCopyWithoutReplaceRefusesExistingDst(t *testing.T) {
	db := store.NewDatabase()
	dispatchAndGet(t, db, "SET", "a", "1")
	dispatchAndGet(t, db, "SET", "b", "2")
	require.Equal(t, ":0\r\n", dispatchAndGet(t, db, "COPY", "a", "b"))
	require.Equal(t, ":1\r\n", dispatchAndGet(t, db, "COPY", "a", "b", "REPLACE"))
}

func TestRandomkeyEmptyDatabase(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "$-1\r\n", dispatchAndGet(t, db, "RANDOMKEY"))
}

func TestDebugPanicIsCaughtByDispatcher(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "-ERR server error\r\n", dispatchAndGet(t, db, "DEBUG", "PANIC"))
	// the server survives: ordinary commands still work afterwards.
	require.Equal(t, "+OK\r\n", dispatchAndGet(t, db, "SET", "k", "v"))
}

func TestDebugErrorIsCaughtByDispatcher(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, "-ERR server error\r\n", dispatchAndGet(t, db, "DEBUG", "ERROR"))
}

func TestDebugUnknownSubcommandErrors(t *testing.T) {
	db := store.NewDatabase()
	require.Contains(t, dispatchAndGet(t, db, "DEBUG", "sleep"), "Unknown subcommand")
}

func TestObjectHelp(t *testing.T) {
	db := store.NewDatabase()
	reply := dispatchAndGet(t, db, "OBJECT", "HELP")
	require.True(t, strings.HasPrefix(reply, "*"))
	require.Contains(t, reply, "Subcommands are:")
}

func TestCommandCount(t *testing.T) {
	db := store.NewDatabase()
	require.Equal(t, ":"+strconv.Itoa(len(Table))+"\r\n", dispatchAndGet(t, db, "COMMAND", "COUNT"))
}

func TestCommandInfoKnownAndUnknown(t *testing.T) {
	db := store.NewDatabase()
	reply := dispatchAndGet(t, db, "COMMAND", "INFO", "get", "notacommand")
	require.True(t, strings.HasPrefix(reply, "*2\r\n"))
	require.Contains(t, reply, "$3\r\nget\r\n")
	require.Contains(t, reply, "*-1\r\n")
}

func TestCommandBareListsEveryCommand(t *testing.T) {
	db := store.NewDatabase()
	reply := dispatchAndGet(t, db, "COMMAND")
	require.True(t, strings.HasPrefix(reply, "*"+strconv.Itoa(len(Table))+"\r\n"))
}

func TestCommandHelp(t *testing.T) {
	db := store.NewDatabase()
	reply := dispatchAndGet(t, db, "COMMAND", "HELP")
	require.Contains(t, reply, "Subcommands are:")
}
