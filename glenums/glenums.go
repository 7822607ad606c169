// Package glenums extracts OpenGL enum definitions (`#define GL_... 0x...`) from a header like glad.h
// and generates a C++ source file that maps the numeric values back to their names.
//
// The extracted Table can also be turned into a Registry, to resolve names from Go.
package glenums

const (
	// DefaultPrefix is the prefix of the symbolic names extracted from the header.
	DefaultPrefix = "GL_"

	// DefaultMinValue is the smallest value included in the table. Smaller values are mostly booleans
	// (GL_FALSE, GL_TRUE) and primitive kinds that collide with everything else, and are handled by hand.
	DefaultMinValue = 256

	// DefaultHeaderPath is the header file, relative to the project root.
	DefaultHeaderPath = "deps/glad/release/glad.h"
)

// Definition is one `#define NAME VALUE` line of the header.
type Definition struct {
	// Name of the constant, e.g.: "GL_TEXTURE0".
	Name string

	// Value parsed from Literal.
	Value uint64

	// Literal is the value token exactly as it appears in the header, e.g.: "0x84C0".
	Literal string

	// Line number (1-based) in the header.
	Line int
}

// Table of definitions, in the order they were first found in the header.
//
// Names and values may repeat: when two names share a value, the one inserted last wins in the lookup.
type Table []Definition

// Values returns the values of the table, in order.
func (t Table) Values() []uint64 {
	values := make([]uint64, len(t))
	for ii, def := range t {
		values[ii] = def.Value
	}
	return values
}

// Names returns the names of the table, in order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for ii, def := range t {
		names[ii] = def.Name
	}
	return names
}
