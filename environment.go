package vidar

import (
	"maps"
	"slices"
)

// Environment is the result of Load: the loaded kind and its merged
// properties. It is never modified after Load returns it.
type Environment struct {
	current Kind
	props   map[string]string
}

// Current returns the kind that was loaded.
func (e *Environment) Current() Kind {
	return e.current
}

// Props returns a copy of the merged properties.
func (e *Environment) Props() map[string]string {
	return maps.Clone(e.props)
}

// Get returns the value of key and whether it is set.
func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.props[key]
	return v, ok
}

// Keys returns the property keys in lexical order.
func (e *Environment) Keys() []string {
	return slices.Sorted(maps.Keys(e.props))
}

// Len returns the number of properties.
func (e *Environment) Len() int {
	return len(e.props)
}

// Equal reports whether e and other hold the same kind and properties.
func (e *Environment) Equal(other *Environment) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.current == other.current && maps.Equal(e.props, other.props)
}
