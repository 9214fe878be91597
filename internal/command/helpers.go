/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/command/helpers.go
*/
package command

import (
	"github.com/akashmaji946/redis-clone/internal/bytestr"
	"github.com/akashmaji946/redis-clone/internal/resp"
)

// parseIntArg is the shared "parse argument as integer or fail cleanly"
// helper: a single call site
// converts a user-supplied argument into an int64, or reports false so the
// caller can emit the canonical NaN error and return.
func parseIntArg(b bytestr.ByteString) (int64, bool) {
	n, err := b.ParseInt()
	if err != nil {
		return 0, false
	}
	return n, true
}

func replyWrongType(out *resp.Response) error {
	out.Error(msgWrongType)
	return nil
}

func replyNotANumber(out *resp.Response) error {
	out.Error(msgNotANumber)
	return nil
}

// clampIndex resolves a possibly-negative Redis-style index against length,
// per LINDEX/LRANGE/LSET/LTRIM's "negative indices anchor to the end".
func clampIndex(i int64, length int) int64 {
	if i < 0 {
		i += int64(length)
	}
	return i
}
