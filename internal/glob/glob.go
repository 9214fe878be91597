/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/glob/glob.go
*/

// Package glob implements the stringmatchlen-style glob matcher used by KEYS.
// It is a direct port of Redis's byte-oriented matcher: patterns and inputs
// are arbitrary byte slices, not strings, so binary keys match correctly.
package glob

// Match reports whether pattern matches the whole of input. Supported
// metacharacters: '*' (zero or more bytes), '?' (exactly one byte), '[...]'
// (character class, '^' negates, 'a-b' is an inclusive range, reversed
// ranges are swapped), and '\x' (forces the next byte to match literally).
//
// A handful of quirks are preserved deliberately for Redis compatibility: an
// unterminated '[' class still matches on its accumulated members, and a
// trailing '*' matches the rest of the input, including zero bytes once the
// earlier pattern bytes have consumed it. A pattern of only '*' does not
// match empty input.
func Match(pattern, input []byte) bool {
	for len(pattern) > 0 && len(input) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse repeated asterisks into one.
			for len(pattern) > 1 && pattern[1] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 1 {
				// Last char of the pattern: matches anything remaining.
				return true
			}
			// Try every suffix of input against the rest of the pattern.
			for len(input) > 0 {
				if Match(pattern[1:], input) {
					return true
				}
				input = input[1:]
			}
			// Falls through to the shared epilogue below with input now
			// empty; the epilogue's trailing-star skip decides the result.
		case '?':
			input = input[1:]
		case '[':
			pattern = pattern[1:]
			if len(pattern) == 0 {
				// Opening bracket was the final, unescaped character.
				return false
			}

			found := false
			negate := pattern[0] == '^'
			if negate {
				pattern = pattern[1:]
			}

			for len(pattern) > 0 {
				if pattern[0] == '\\' {
					pattern = pattern[1:]
					if len(pattern) > 0 && len(input) > 0 && pattern[0] == input[0] {
						found = true
					}
				} else if pattern[0] == ']' {
					break
				} else if len(pattern) >= 3 && pattern[1] == '-' {
					start, end := pattern[0], pattern[2]
					if start > end {
						start, end = end, start
					}
					if len(input) > 0 && input[0] >= start && input[0] <= end {
						found = true
					}
					pattern = pattern[2:]
				} else if len(input) > 0 && pattern[0] == input[0] {
					found = true
				}
				pattern = pattern[1:]
			}

			if negate {
				found = !found
			}
			if !found {
				return false
			}
			input = input[1:]
		default:
			if pattern[0] == '\\' && len(pattern) > 1 {
				// Escape: treat the following byte as a forced literal.
				pattern = pattern[1:]
			}
			if pattern[0] != input[0] {
				return false
			}
			input = input[1:]
		}

		if len(pattern) == 0 {
			break
		}
		pattern = pattern[1:]

		if len(input) == 0 {
			// Any remaining asterisks can still match a zero-length tail.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			break
		}
	}

	return len(pattern) == 0 && len(input) == 0
}
