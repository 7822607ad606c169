package glenums

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		token       string
		cValue      uint64
		cOk         bool
		legacyValue uint64
	}{
		{"0x84C0", 0x84C0, true, 0x84C0},
		{"0x0000", 0, true, 0},
		{"0", 0, true, 0},
		{"1", 1, true, 1},
		{"256", 256, true, 0x256},
		{"100", 100, true, 0x100},
		{"017", 15, true, 0x17},
		{"09", 0, false, 0x9},
		{"0x", 0, false, 0},
		{"x", 0, false, 0},
		{"0x1x2", 0, false, 1},
		{"abc", 0, false, 0xABC},
		{"0x10000000000000000", math.MaxUint64, true, math.MaxUint64},
	}
	for _, tc := range testCases {
		value, ok := ParseValue(tc.token, ValueSyntaxCLiteral)
		require.Equalf(t, tc.cOk, ok, "ParseValue(%q, c_literal)", tc.token)
		if ok {
			require.Equalf(t, tc.cValue, value, "ParseValue(%q, c_literal)", tc.token)
		}

		value, ok = ParseValue(tc.token, ValueSyntaxLegacyHex)
		require.Truef(t, ok, "ParseValue(%q, legacy_hex)", tc.token)
		require.Equalf(t, tc.legacyValue, value, "ParseValue(%q, legacy_hex)", tc.token)
	}

	_, ok := ParseValue("0x100", ValueSyntax(7))
	require.False(t, ok)
}

func TestValueSyntaxString(t *testing.T) {
	require.Equal(t, "c_literal", ValueSyntaxCLiteral.String())
	require.Equal(t, "legacy_hex", ValueSyntaxLegacyHex.String())

	syntax, err := ValueSyntaxString("legacy_hex")
	require.NoError(t, err)
	require.Equal(t, ValueSyntaxLegacyHex, syntax)
	syntax, err = ValueSyntaxString("C_LITERAL")
	require.NoError(t, err)
	require.Equal(t, ValueSyntaxCLiteral, syntax)
	_, err = ValueSyntaxString("octal")
	require.Error(t, err)
}
