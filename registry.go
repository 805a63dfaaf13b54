package moxie

import "sort"

// Controller is the type-erased view of a State held by the registry. It
// carries the operations a test harness needs without knowing the
// generated hook types.
type Controller interface {
	Name() string
	Active() bool
	Scope() string
	Enable()
	Reset()
}

// The registry maps function identity to its interception state. It is
// populated by NewState calls in generated package variables, so all
// registration happens before any test runs; no locking is supplied.
var registry = map[string]Controller{}

func register(c Controller) {
	if _, ok := registry[c.Name()]; ok {
		panic("moxie: duplicate mock registration: " + c.Name())
	}

	registry[c.Name()] = c
}

// Lookup returns the state registered under name.
func Lookup(name string) (Controller, bool) {
	c, ok := registry[name]
	return c, ok
}

// States returns all registered states, sorted by name.
func States() []Controller {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	states := make([]Controller, 0, len(names))
	for _, name := range names {
		states = append(states, registry[name])
	}

	return states
}

// ResetAll resets every registered state. Intended for test teardown.
func ResetAll() {
	for _, c := range registry {
		c.Reset()
	}
}
