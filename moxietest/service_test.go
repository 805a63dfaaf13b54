package moxietest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderPartitions(t *testing.T) {
	a := assert.New(t)

	p := NewProvider()

	a.Same(p.DefaultService(), p.Default())
	a.Same(p.ScopeService("A"), p.Scope("A"))
	a.NotSame(p.Default(), p.Scope("A"))

	// Repeated lookups hand out the same partition.
	a.Same(p.Scope("A"), p.Scope("A"))
}

func TestServiceRecordsSubmissionsVerbatim(t *testing.T) {
	a := assert.New(t)

	s := NewService()
	c := s.ActualCall("F")
	c.WithIntParameter("n", 3).
		WithStringParameter("s", "x").
		WithParameterOfType("pkg.T", "t", 7)

	calls := s.Calls()
	a.Len(calls, 1)
	a.Equal("F", calls[0].Name())
	a.Equal([]Submission{
		{Verb: VerbInt, Name: "n", Value: 3},
		{Verb: VerbString, Name: "s", Value: "x"},
		{Verb: VerbTypedPtr, Type: "pkg.T", Name: "t", Value: 7},
	}, calls[0].Submissions())
}

func TestServiceReturnQueue(t *testing.T) {
	a := assert.New(t)

	s := NewService()
	s.ExpectReturn("F", 1)
	s.ExpectReturn("F", 2)

	c := s.ActualCall("F")
	a.True(c.HasReturnValue())
	a.Equal(1, c.IntReturnValue())

	c = s.ActualCall("F")
	a.True(c.HasReturnValue())
	a.Equal(2, c.IntReturnValue())

	// The queue is exhausted; further calls have no configured value.
	a.False(s.ActualCall("F").HasReturnValue())

	// Queues are keyed by call name.
	a.False(s.ActualCall("G").HasReturnValue())
}

func TestServiceWritesConfiguredOutputs(t *testing.T) {
	a := assert.New(t)

	s := NewService()
	s.ExpectOutput("F", "dst", 7)

	var v int
	s.ActualCall("F").WithOutputParameter("dst", &v)

	a.Equal(7, v)
}

func TestServiceSkipsUnconfiguredOutputs(t *testing.T) {
	a := assert.New(t)

	s := NewService()

	v := 3
	s.ActualCall("F").WithOutputParameter("dst", &v)

	a.Equal(3, v)
}

func TestServiceIgnoresNonPointerOutputs(t *testing.T) {
	s := NewService()
	s.ExpectOutput("F", "dst", 7)

	// A non-pointer or nil submission is recorded but never written through.
	s.ActualCall("F").WithOutputParameter("dst", 3)
	s.ActualCall("F").WithOutputParameter("dst", (*int)(nil))

	assert.Len(t, s.Calls(), 2)
}
