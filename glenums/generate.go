package glenums

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const (
	// DefaultFuncName is the name of the generated C++ lookup function.
	DefaultFuncName = "nameForValue"

	// DefaultInclude is the project header included by the generated file.
	DefaultInclude = "debug/glad.h"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Source is the header the table was extracted from, mentioned in the banner of the generated file.
	Source string

	// FuncName of the generated function. Defaults to DefaultFuncName.
	FuncName string

	// Include is the project header to include. Defaults to DefaultInclude.
	Include string
}

var (
	reCIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	tmplNameForValue = template.Must(template.New("nameForValue").Parse(
		`// Generated by extract_gl_enums from {{.Source}}. DO NOT EDIT.

#include "{{.Include}}"
#include <cstdio>
#include <map>
#include <string>

std::string {{.FuncName}}(unsigned value)
{
    // Built once, on first use.
    static const std::map<unsigned, const char*> names = [] {
        std::map<unsigned, const char*> m;
{{range .Table}}        m[{{.Literal}}] = "{{.Name}}";
{{end}}
        // ensure true and false
        // m[0] = "GL_FALSE";
        // m[1] = "GL_TRUE";
        return m;
    }();

    auto it = names.find(value);
    if (it == names.end()) {
        char buff[32];
        std::snprintf(buff, sizeof(buff), "0x%X", value);
        return buff;
    }
    return it->second;
}
`))
)

// Generate writes to w the C++ source of the lookup function for the given table.
//
// The source is fully rendered before anything is written, so w only receives complete output.
func Generate(w io.Writer, table Table, opts GenerateOptions) error {
	if opts.FuncName == "" {
		opts.FuncName = DefaultFuncName
	}
	if opts.Include == "" {
		opts.Include = DefaultInclude
	}
	if !reCIdentifier.MatchString(opts.FuncName) {
		return errors.Errorf("invalid C++ function name %q", opts.FuncName)
	}
	if strings.ContainsAny(opts.Include, "\"<>\r\n") {
		return errors.Errorf("invalid include path %q: it can't have quotes, angle brackets or line breaks", opts.Include)
	}
	if strings.ContainsAny(opts.Source, "\r\n") {
		return errors.Errorf("invalid source name %q: it can't have line breaks", opts.Source)
	}

	var buf bytes.Buffer
	err := tmplNameForValue.Execute(&buf, struct {
		GenerateOptions
		Table Table
	}{opts, table})
	if err != nil {
		return errors.Wrap(err, "failed to execute template for generated source")
	}
	if _, err = w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write generated source")
	}
	return nil
}

// GenerateString is like Generate, but returns the source as a string.
func GenerateString(table Table, opts GenerateOptions) (string, error) {
	var buf bytes.Buffer
	if err := Generate(&buf, table, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatValue formats a value the way the generated function does for values not in the table:
// "0x" followed by the uppercase hexadecimal digits, with no padding.
func FormatValue(value uint64) string {
	return fmt.Sprintf("0x%X", value)
}
