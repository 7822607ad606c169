package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/glfk/glfktools/glenums"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testHeader = `#define GL_POINTS 0x0000
#define GL_TRIANGLES 0x0004
#define GL_TEXTURE_2D 0x0DE1
#define GL_TEXTURE0 0x84C0
`

func testConfig(t *testing.T) config {
	root := t.TempDir()
	headerPath := filepath.Join(root, "deps", "glad", "release", "glad.h")
	require.NoError(t, os.MkdirAll(filepath.Dir(headerPath), 0755))
	require.NoError(t, os.WriteFile(headerPath, []byte(testHeader), 0644))
	return config{
		HeaderPath: headerPath,
		Parse:      glenums.DefaultParseOptions(),
		Generate:   glenums.GenerateOptions{Source: glenums.DefaultHeaderPath},
	}
}

func TestRunToStdout(t *testing.T) {
	cfg := testConfig(t)
	var stdout bytes.Buffer
	require.NoError(t, run(cfg, &stdout))
	require.Contains(t, stdout.String(), `        m[0x0DE1] = "GL_TEXTURE_2D";`+"\n"+`        m[0x84C0] = "GL_TEXTURE0";`+"\n")
	require.NotContains(t, stdout.String(), "GL_POINTS")

	// Same input, same output.
	var again bytes.Buffer
	require.NoError(t, run(cfg, &again))
	require.Equal(t, stdout.String(), again.String())
}

func TestRunToFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "GLEnums.cpp")
	var stdout bytes.Buffer
	require.NoError(t, run(cfg, &stdout))
	require.Zero(t, stdout.Len())

	contents, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), `m[0x84C0] = "GL_TEXTURE0";`)
}

func TestRunToFileReplacesAtomically(t *testing.T) {
	cfg := testConfig(t)
	outputDir := t.TempDir()
	cfg.OutputPath = filepath.Join(outputDir, "GLEnums.cpp")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("// previous version\n"), 0600))
	require.NoError(t, run(cfg, &bytes.Buffer{}))

	contents, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Contains(t, string(contents), `m[0x84C0] = "GL_TEXTURE0";`)
	fi, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), fi.Mode().Perm())

	// No temporary files are left behind.
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Output directory missing: error, and nothing is created.
	cfg.OutputPath = filepath.Join(outputDir, "missing", "GLEnums.cpp")
	require.Error(t, run(cfg, &bytes.Buffer{}))
	entries, err = os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRunInvalidOptionsKeepsOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "GLEnums.cpp")
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("// previous version\n"), 0644))
	cfg.Generate.Include = "debug/\"glad.h"
	require.ErrorContains(t, run(cfg, &bytes.Buffer{}), "invalid include path")
	contents, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, "// previous version\n", string(contents))
}

func TestLookupMissingHeader(t *testing.T) {
	cfg := testConfig(t)
	cfg.HeaderPath = filepath.Join(t.TempDir(), "glad.h")
	cfg.Lookup = []uint64{0x84C0}
	var stdout bytes.Buffer
	err := lookup(cfg, &stdout)
	require.True(t, errors.Is(err, fs.ErrNotExist), "expected not-exist error, got %+v", err)
	require.Zero(t, stdout.Len())
}

func TestRunMissingHeader(t *testing.T) {
	cfg := testConfig(t)
	cfg.HeaderPath = filepath.Join(t.TempDir(), "glad.h")
	cfg.OutputPath = filepath.Join(t.TempDir(), "GLEnums.cpp")
	var stdout bytes.Buffer
	err := run(cfg, &stdout)
	require.True(t, errors.Is(err, fs.ErrNotExist), "expected not-exist error, got %+v", err)
	require.Zero(t, stdout.Len())
	_, err = os.Stat(cfg.OutputPath)
	require.True(t, os.IsNotExist(err), "no output file should be created")
}

func TestLookup(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lookup = []uint64{0x84C0, 0x0004, 0x10}
	var stdout bytes.Buffer
	require.NoError(t, lookup(cfg, &stdout))
	require.Equal(t, "0x84C0 = GL_TEXTURE0\n0x4 = 0x4\n0x10 = 0x10\n", stdout.String())
}

func TestParseLookupValues(t *testing.T) {
	values, err := parseLookupValues("0x84C0, 3553,0777")
	require.NoError(t, err)
	require.Equal(t, []uint64{0x84C0, 3553, 0777}, values)

	values, err = parseLookupValues(" ")
	require.NoError(t, err)
	require.Nil(t, values)

	_, err = parseLookupValues("0x84C0,GL_TEXTURE0")
	require.ErrorContains(t, err, "GL_TEXTURE0")
}
