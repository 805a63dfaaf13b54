package moxie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterposeTable(t *testing.T) {
	a := assert.New(t)

	wrapper := func() {}
	original := func() {}

	before := len(InterposeEntries())
	Interpose("interpose-test", wrapper, original)

	entries := InterposeEntries()
	a.Len(entries, before+1)

	entry := entries[len(entries)-1]
	a.Equal("interpose-test", entry.Name)
	a.NotNil(entry.Wrapper)
	a.NotNil(entry.Original)
}

func TestInterposeEntriesReturnsSnapshot(t *testing.T) {
	a := assert.New(t)

	Interpose("interpose-snapshot", func() {}, func() {})

	entries := InterposeEntries()
	entries[0] = InterposeEntry{Name: "mutated"}

	a.NotEqual("mutated", InterposeEntries()[0].Name)
}
