/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/bytestr/parseint.go
*/
package bytestr

import "errors"

// ErrParseInt is returned whenever a byte slice does not represent a valid
// signed 64-bit decimal integer: empty input, a non-digit byte, or overflow.
var ErrParseInt = errors.New("bytestr: error parsing int from byte string")

// ParseInt parses an optional leading '+' or '-' followed by one or more
// ASCII decimal digits directly from bytes, without an intermediate UTF-8
// string conversion. Each digit is folded in using checked (overflow
// detecting) multiply-then-add arithmetic, matching the byte_string crate
// this package is ported from. An empty slice is always an error.
func ParseInt(src []byte) (int64, error) {
	if len(src) == 0 {
		return 0, ErrParseInt
	}

	digits := src
	sign := int64(1)
	switch src[0] {
	case '+':
		digits = src[1:]
	case '-':
		digits = src[1:]
		sign = -1
	}

	if len(digits) == 0 {
		return 0, ErrParseInt
	}

	var result int64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, ErrParseInt
		}
		digit := int64(c - '0')

		signedDigit, ok := checkedMul(digit, sign)
		if !ok {
			return 0, ErrParseInt
		}

		result, ok = checkedMul(result, 10)
		if !ok {
			return 0, ErrParseInt
		}
		result, ok = checkedAdd(result, signedDigit)
		if !ok {
			return 0, ErrParseInt
		}
	}

	return result, nil
}

func checkedAdd(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	result := a * b
	if result/b != a {
		return 0, false
	}
	return result, true
}
