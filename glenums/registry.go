package glenums

// Registry resolves enum values to their names. It's the Go counterpart of the generated C++ function.
//
// It is built once with NewRegistry and is read-only afterwards, so it's safe for concurrent use.
type Registry struct {
	names map[uint64]string
}

// NewRegistry creates a Registry with the definitions of table, inserted in order: if two definitions
// share a value, the last one wins.
func NewRegistry(table Table) *Registry {
	r := &Registry{names: make(map[uint64]string, len(table))}
	for _, def := range table {
		r.names[def.Value] = def.Name
	}
	return r
}

// Len returns the number of distinct values in the registry.
func (r *Registry) Len() int {
	return len(r.names)
}

// Lookup returns the name registered for value, if any.
func (r *Registry) Lookup(value uint64) (name string, found bool) {
	name, found = r.names[value]
	return
}

// Name returns the name registered for value, or the value formatted with FormatValue if there is none.
func (r *Registry) Name(value uint64) string {
	if name, found := r.names[value]; found {
		return name
	}
	return FormatValue(value)
}
