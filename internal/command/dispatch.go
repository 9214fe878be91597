/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/dispatch.go
*/
package command

import (
	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
	"github.com/akashmaji946/redis-clone/internal/store"
)

// Logger is the minimal surface Dispatch needs to report server errors and
// recovered panics. internal/logging.Logger satisfies it.
type Logger interface {
	Error(format string, args ...interface{})
}

// Dispatch looks up req's command (case-insensitive), validates arity, and
// invokes the matching handler, appending exactly one frame to out.
//
// A command miss appends the unknown-command error. An arity mismatch
// appends the wrong-arguments error. A handler panic is recovered here and
// reported generically; a handler that returns a non-nil error is logged
// and reported generically too. Neither ever escapes to the caller: no
// error class escapes the connection task, per the error-handling policy
// SPEC_FULL.md §9 carries over.
func Dispatch(db *store.Database, req *resp.Request, out *resp.Response, log Logger) {
	cmdBytes := req.Command().CaseFold()
	name := cmdBytes.String()

	entry, ok := Table[name]
	if !ok {
		out.Error(unknownCommandMsg(req.Command().String(), argStrings(req.Arguments())))
		return
	}

	if !arityOK(entry.Arity, req.Arity()) {
		out.Error(wrongArityMsg(name))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("command %q panicked: %v", name, r)
			out.Error(msgServerError)
		}
	}()

	if err := entry.Handler(db, req, out); err != nil {
		log.Error("command %q failed: %v", name, err)
		out.Error(msgServerError)
	}
}

func arityOK(arity, got int) bool {
	if arity >= 0 {
		return got == arity
	}
	return got >= -arity
}

func argStrings(args []bytestr.ByteString) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.String()
	}
	return out
}
