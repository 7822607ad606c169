package glenums

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	table, err := Parse(strings.NewReader(gladExcerpt), DefaultParseOptions())
	require.NoError(t, err)
	registry := NewRegistry(table)
	require.Equal(t, 7, registry.Len()) // GL_MAX_VARYING_FLOATS and GL_MAX_VARYING_COMPONENTS share a value.

	require.Equal(t, "GL_TEXTURE0", registry.Name(33984))
	name, found := registry.Lookup(0x84C0)
	require.True(t, found)
	require.Equal(t, "GL_TEXTURE0", name)

	// Values excluded from the table, or never defined, fall back to hexadecimal.
	_, found = registry.Lookup(0x0004)
	require.False(t, found)
	require.Equal(t, "0x4", registry.Name(0x0004))
	require.Equal(t, "0x10", registry.Name(0x10))
	require.Equal(t, "0xABCD", registry.Name(0xABCD))
}

func TestRegistryLastInsertionWins(t *testing.T) {
	table, err := Parse(strings.NewReader(gladExcerpt), DefaultParseOptions())
	require.NoError(t, err)
	registry := NewRegistry(table)
	require.Equal(t, "GL_MAX_VARYING_COMPONENTS", registry.Name(0x8B4B))

	registry = NewRegistry(Table{
		{Name: "GL_B", Value: 0x1000},
		{Name: "GL_A", Value: 0x1000},
	})
	require.Equal(t, 1, registry.Len())
	require.Equal(t, "GL_A", registry.Name(0x1000))
}

func TestRegistryConcurrentLookups(t *testing.T) {
	registry := NewRegistry(Table{{Name: "GL_TEXTURE0", Value: 0x84C0}})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "GL_TEXTURE0", registry.Name(0x84C0))
			}
		}()
	}
	wg.Wait()
}
