/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/errors.go
*/

// Package command implements the static command table, the dispatcher, and
// every command handler's business logic. Handlers never perform I/O; they
// read and mutate a store.Database and append RESP frames to a
// resp.Response, exactly as SPEC_FULL.md §6 describes.
package command

import (
	"fmt"
	"strings"
)

// Canonical error message bodies, byte-exact per the reply conventions
// SPEC_FULL.md §9 carries over. Every handler that needs one of these calls the
// matching helper rather than formatting its own copy, so the wire bytes
// never drift from this single source of truth.
const (
	msgWrongType        = "WRONGTYPE Operation against a key holding the wrong kind of value"
	msgNotANumber       = "ERR value is not an integer or out of range"
	msgSyntaxError      = "ERR syntax error"
	msgInvalidExpire    = "ERR invalid expire time in set"
	msgIndexOutOfRange  = "ERR index out of range"
	msgNoSuchKey        = "ERR no such key"
	msgOverflow         = "ERR increment or decrement would overflow"
	msgServerError      = "ERR server error"
	msgMsetWrongArity   = "ERR wrong number of arguments for MSET"
	msgHmsetWrongArity  = "ERR wrong number of arguments for HMSET"
)

func wrongArityMsg(cmd string) string {
	return fmt.Sprintf("ERR wrong number of arguments for '%s' command", cmd)
}

func unknownCommandMsg(cmd string, args []string) string {
	var sb strings.Builder
	sb.WriteString("ERR unknown command `")
	sb.WriteString(cmd)
	sb.WriteString("`, with args beginning with: ")
	for _, a := range args {
		sb.WriteString("`")
		sb.WriteString(a)
		sb.WriteString("`, ")
	}
	return sb.String()
}

func unknownSubcommandMsg(sub, topCmd string) string {
	return fmt.Sprintf("ERR Unknown subcommand or wrong number of arguments for '%s'. Try %s HELP.", sub, topCmd)
}
