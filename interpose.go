package moxie

// InterposeEntry pairs a generated wrapper with the original
// implementation so a load-time substitution mechanism can swap them.
type InterposeEntry struct {
	Name     string
	Wrapper  any
	Original any
}

var interposeTable []InterposeEntry

// Interpose records a wrapper/original pair for load-time substitution.
// Called from init functions in generated interpose glue; the table is
// complete before main runs.
func Interpose(name string, wrapper, original any) {
	interposeTable = append(interposeTable, InterposeEntry{
		Name:     name,
		Wrapper:  wrapper,
		Original: original,
	})
}

// InterposeEntries returns a snapshot of the interposition table in
// registration order.
func InterposeEntries() []InterposeEntry {
	entries := make([]InterposeEntry, len(interposeTable))
	copy(entries, interposeTable)

	return entries
}
