package glenums

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ValueSyntax defines how the value token of a `#define` is parsed.
type ValueSyntax int

//go:generate go tool enumer -type=ValueSyntax -trimprefix=ValueSyntax -transform=snake valuesyntax.go

const (
	// ValueSyntaxCLiteral parses tokens as C integer literals: "0x" prefix for hexadecimal, a leading "0" for
	// octal and decimal otherwise. Tokens that are not valid literals are skipped.
	ValueSyntaxCLiteral ValueSyntax = iota

	// ValueSyntaxLegacyHex parses every token as hexadecimal, with or without the "0x" prefix, stopping
	// at the first non-hexadecimal digit. So "100" is 256.
	//
	// This is what the original Ruby script did, and it's kept to reproduce its output bit for bit.
	ValueSyntaxLegacyHex
)

// ParseValue parses the value token of a definition according to syntax.
// It returns false if the token is not a valid value.
//
// Hexadecimal values that don't fit 64 bits saturate to math.MaxUint64.
func ParseValue(token string, syntax ValueSyntax) (uint64, bool) {
	switch syntax {
	case ValueSyntaxLegacyHex:
		return parseLegacyHex(token), true
	case ValueSyntaxCLiteral:
		return parseCLiteral(token)
	default:
		return 0, false
	}
}

func hasHexPrefix(token string) bool {
	return len(token) >= 2 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X')
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// parseLegacyHex mimics Ruby's String#to_i(16): optional "0x", then as many hex digits as available.
func parseLegacyHex(token string) uint64 {
	if hasHexPrefix(token) {
		token = token[2:]
	}
	end := 0
	for end < len(token) && isHexDigit(token[end]) {
		end++
	}
	return parseDigits(token[:end], 16)
}

func parseCLiteral(token string) (uint64, bool) {
	if token == "" {
		return 0, false
	}
	digits, base := token, 10
	switch {
	case hasHexPrefix(token):
		digits, base = token[2:], 16
	case len(token) > 1 && token[0] == '0':
		digits, base = token[1:], 8
	}
	if digits == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		value = math.MaxUint64
	}
	return value, true
}

// parseDigits assumes digits are valid for base, and saturates on overflow.
func parseDigits(digits string, base int) uint64 {
	if digits == "" {
		return 0
	}
	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return math.MaxUint64
	}
	return value
}
