// extract_gl_enums parses the `#define GL_...` constants of glad.h and generates the C++ source of a function that
// maps GL enum values back to their names, for debugging messages.
//
// By default it reads deps/glad/release/glad.h under the project root and prints the source to the standard output:
//
//	$ extract_gl_enums > src/debug/GLEnums.cpp
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glfk/glfktools/glenums"
	"github.com/janpfeifer/gonb/common"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const projectRootEnvVar = "GLFK_ROOT"

var (
	flagProject = flag.String("project", "",
		"Root directory of the GLFK project. If empty, it uses the "+projectRootEnvVar+" environment variable, "+
			"or the current directory.")
	flagHeader = flag.String("header", glenums.DefaultHeaderPath,
		"Header with the GL definitions, relative to the project root (or an absolute path).")
	flagOutput = flag.String("output", "",
		"File where to write the generated source. If empty it is printed to the standard output.")
	flagPrefix   = flag.String("prefix", glenums.DefaultPrefix, "Prefix of the constant names to extract.")
	flagMinValue = flag.Uint64("min_value", glenums.DefaultMinValue,
		"Smallest value included in the table: smaller values are mostly booleans and are left out.")
	flagValues = flag.String("values", glenums.ValueSyntaxCLiteral.String(),
		fmt.Sprintf("How to parse the values of the definitions, one of %s. "+
			"\"legacy_hex\" parses every value as hexadecimal, like the original extract_gl_enums.rb.",
			strings.Join(glenums.ValueSyntaxStrings(), ", ")))
	flagFuncName = flag.String("func", glenums.DefaultFuncName, "Name of the generated C++ function.")
	flagInclude  = flag.String("include", glenums.DefaultInclude, "Project header included by the generated source.")
	flagLookup   = flag.String("lookup", "",
		"Comma-separated list of values (C literals, e.g. 0x84C0,3553) to resolve to their names, "+
			"instead of generating the source.")
)

// config of one run, taken from the flags.
type config struct {
	HeaderPath string
	OutputPath string
	Parse      glenums.ParseOptions
	Generate   glenums.GenerateOptions
	Lookup     []uint64
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `extract_gl_enums parses the GL constants defined in glad.h and generates
the C++ source of a function that returns the name of a GL enum value.

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := configFromFlags()
	if err != nil {
		klog.Fatalf("Invalid flags: %+v", err)
	}
	if len(cfg.Lookup) > 0 {
		if err = lookup(cfg, os.Stdout); err != nil {
			klog.Fatalf("Failed to look up GL enum names: %+v", err)
		}
		return
	}
	if err = run(cfg, os.Stdout); err != nil {
		klog.Fatalf("Failed to generate GL enums source: %+v", err)
	}
}

func projectRoot() string {
	root := *flagProject
	if root == "" {
		root = os.Getenv(projectRootEnvVar)
	}
	if root == "" {
		root = "."
	}
	return common.ReplaceTildeInDir(root)
}

func configFromFlags() (cfg config, err error) {
	root := projectRoot()
	cfg.HeaderPath = common.ReplaceTildeInDir(*flagHeader)
	if !filepath.IsAbs(cfg.HeaderPath) {
		cfg.HeaderPath = filepath.Join(root, cfg.HeaderPath)
	}
	cfg.OutputPath = common.ReplaceTildeInDir(*flagOutput)

	cfg.Parse = glenums.DefaultParseOptions()
	cfg.Parse.Prefix = *flagPrefix
	cfg.Parse.MinValue = *flagMinValue
	cfg.Parse.Syntax, err = glenums.ValueSyntaxString(*flagValues)
	if err != nil {
		return cfg, errors.Wrapf(err, "invalid --values=%q", *flagValues)
	}

	cfg.Generate = glenums.GenerateOptions{
		Source:   filepath.ToSlash(*flagHeader),
		FuncName: *flagFuncName,
		Include:  *flagInclude,
	}
	cfg.Lookup, err = parseLookupValues(*flagLookup)
	return cfg, err
}

// parseLookupValues parses a comma-separated list of C integer literals.
func parseLookupValues(list string) ([]uint64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	values := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		value, err := strconv.ParseUint(part, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --lookup value %q", part)
		}
		values = append(values, value)
	}
	return values, nil
}

// run parses the header and writes the generated source to cfg.OutputPath, or to stdout if it is empty.
// Nothing is written if anything fails.
func run(cfg config, stdout io.Writer) error {
	table, err := glenums.ParseFile(cfg.HeaderPath, cfg.Parse)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = glenums.Generate(&buf, table, cfg.Generate); err != nil {
		return err
	}
	if cfg.OutputPath == "" {
		_, err = stdout.Write(buf.Bytes())
		return errors.Wrap(err, "failed to write generated source to the standard output")
	}
	if err = writeFileAtomically(cfg.OutputPath, buf.Bytes()); err != nil {
		return err
	}
	klog.Infof("Generated %q with %d GL enums from %q", cfg.OutputPath, len(table), cfg.HeaderPath)
	return nil
}

// writeFileAtomically writes contents to a temporary file in the same directory as path, and then renames it
// to path: either path gets the complete contents, or it's left untouched.
func writeFileAtomically(path string, contents []byte) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %q", path)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		// If an error was returned, remove the temporary file.
		if err != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err = tmpFile.Write(contents); err != nil {
		return errors.Wrapf(err, "failed to write generated source to %q", tmpPath)
	}
	if err = tmpFile.Chmod(0644); err != nil {
		return errors.Wrapf(err, "failed to set permissions of %q", tmpPath)
	}
	if err = tmpFile.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", tmpPath)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move generated source to %q", path)
	}
	return nil
}

// lookup resolves cfg.Lookup values with a Registry built from the header, and prints one per line.
func lookup(cfg config, stdout io.Writer) error {
	table, err := glenums.ParseFile(cfg.HeaderPath, cfg.Parse)
	if err != nil {
		return err
	}
	registry := glenums.NewRegistry(table)
	for _, value := range cfg.Lookup {
		if _, err = fmt.Fprintf(stdout, "%s = %s\n", glenums.FormatValue(value), registry.Name(value)); err != nil {
			return errors.Wrap(err, "failed to write to the standard output")
		}
	}
	return nil
}
