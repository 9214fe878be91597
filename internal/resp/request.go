/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/resp/request.go
*/
package resp

import "github.com/akashmaji946/redis-clone/internal/bytestr"

// Request is a non-empty ordered sequence of argument byte-strings.
// Argument 0 is always the command name.
type Request struct {
	args []bytestr.ByteString
}

// NewRequest wraps an already-decoded, non-empty slice of arguments.
// Callers (the decoder) guarantee non-emptiness; dispatch never sees an
// empty Request.
func NewRequest(args []bytestr.ByteString) *Request {
	return &Request{args: args}
}

// Command returns argument 0, the command name.
func (r *Request) Command() bytestr.ByteString {
	return r.args[0]
}

// Arg returns argument i+1 (the i-th argument after the command name). It
// panics if i is out of range; callers must check Arity/len(Arguments())
// first, exactly as arity validation in the dispatcher guarantees.
func (r *Request) Arg(i int) bytestr.ByteString {
	return r.args[i+1]
}

// MaybeArg returns argument i+1 and true if it exists, or the zero value and
// false otherwise.
func (r *Request) MaybeArg(i int) (bytestr.ByteString, bool) {
	idx := i + 1
	if idx < 0 || idx >= len(r.args) {
		return bytestr.ByteString{}, false
	}
	return r.args[idx], true
}

// Arguments returns every argument after the command name.
func (r *Request) Arguments() []bytestr.ByteString {
	return r.args[1:]
}

// Arity returns the total token count, including the command name.
func (r *Request) Arity() int {
	return len(r.args)
}
