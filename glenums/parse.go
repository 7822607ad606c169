package glenums

import (
	"bufio"
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ParseOptions configures Parse. The zero value is not valid, start from DefaultParseOptions.
type ParseOptions struct {
	// Prefix of the names to extract, e.g.: "GL_".
	Prefix string

	// MinValue is the smallest value kept in the table.
	MinValue uint64

	// Syntax used to parse the value tokens.
	Syntax ValueSyntax
}

// DefaultParseOptions returns the options used for glad.h.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Prefix:   DefaultPrefix,
		MinValue: DefaultMinValue,
		Syntax:   ValueSyntaxCLiteral,
	}
}

// maxLineSize for the scanner: glad.h lines are short, but some generated headers have very long prototypes.
const maxLineSize = 1024 * 1024

func definitionRegexp(prefix string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(
		`#define\s+(` + regexp.QuoteMeta(prefix) + `[_A-Z0-9]+)` + // Name
			`\s+([0-9a-fA-Fx]+)`) // Value
	if err != nil {
		return nil, errors.Wrapf(err, "invalid prefix %q", prefix)
	}
	return re, nil
}

// Parse reads the header from r and returns the definitions with a value >= opts.MinValue, in the order
// they appear.
//
// Lines that don't define a constant, or whose value can't be parsed, are ignored.
func Parse(r io.Reader, opts ParseOptions) (Table, error) {
	reDefine, err := definitionRegexp(opts.Prefix)
	if err != nil {
		return nil, err
	}

	var table Table
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		matches := reDefine.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}
		name, literal := matches[1], matches[2]
		value, ok := ParseValue(literal, opts.Syntax)
		if !ok {
			klog.V(2).Infof("line %d: skipping %s, %q is not a valid %s value", lineNum, name, literal, opts.Syntax)
			continue
		}
		if value < opts.MinValue {
			klog.V(2).Infof("line %d: skipping %s=%d, smaller than %d", lineNum, name, value, opts.MinValue)
			continue
		}
		table = append(table, Definition{Name: name, Value: value, Literal: literal, Line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read header at line %d", lineNum+1)
	}
	return table, nil
}

// ParseFile opens the header file in path and parses it with Parse.
//
// If the file doesn't exist, the returned error satisfies errors.Is(err, fs.ErrNotExist).
func ParseFile(path string, opts ParseOptions) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open header %q", path)
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f, opts)
	if err != nil {
		return nil, errors.WithMessagef(err, "while parsing %q", path)
	}
	klog.V(1).Infof("%q: %d definitions with value >= %d", path, len(table), opts.MinValue)
	return table, nil
}
