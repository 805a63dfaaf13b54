// Package moxietest provides an in-memory expectation service for testing
// moxie-generated mocks without an external expectation engine. It records
// submissions verbatim, hands out configured return values, and writes
// configured output-parameter values through submitted pointers. It does
// no expectation matching of its own.
package moxietest

import (
	"reflect"

	"github.com/moxielabs/moxie"
)

// Provider hands out in-memory services by scope name. Install it with
// moxie.SetProvider.
type Provider struct {
	def    *Service
	scopes map[string]*Service
}

// NewProvider creates a provider with an empty default partition.
func NewProvider() *Provider {
	return &Provider{
		def:    NewService(),
		scopes: map[string]*Service{},
	}
}

// Default returns the default partition.
func (p *Provider) Default() moxie.Service {
	return p.def
}

// Scope returns the named partition, creating it on first use.
func (p *Provider) Scope(name string) moxie.Service {
	return p.ScopeService(name)
}

// DefaultService returns the default partition with its concrete type, for
// configuring expectations and asserting on recorded calls.
func (p *Provider) DefaultService() *Service {
	return p.def
}

// ScopeService returns the named partition with its concrete type.
func (p *Provider) ScopeService(name string) *Service {
	if s, ok := p.scopes[name]; ok {
		return s
	}

	s := NewService()
	p.scopes[name] = s

	return s
}

// Service is one expectation partition: the observed calls plus queued
// return values and output-parameter values keyed by call name.
type Service struct {
	calls   []*Call
	returns map[string][]any
	outputs map[string]map[string]any
}

// NewService creates an empty partition.
func NewService() *Service {
	return &Service{
		returns: map[string][]any{},
		outputs: map[string]map[string]any{},
	}
}

// ExpectReturn queues a configured return value for the named call. Each
// queued value satisfies one invocation, in order.
func (s *Service) ExpectReturn(name string, value any) {
	s.returns[name] = append(s.returns[name], value)
}

// ExpectOutput configures a value to write through the named output
// parameter of the named call.
func (s *Service) ExpectOutput(call, param string, value any) {
	if s.outputs[call] == nil {
		s.outputs[call] = map[string]any{}
	}

	s.outputs[call][param] = value
}

// ActualCall opens the record of one observed invocation.
func (s *Service) ActualCall(name string) moxie.Call {
	c := &Call{name: name, svc: s}
	if vals := s.returns[name]; len(vals) > 0 {
		c.ret, c.hasRet = vals[0], true
		s.returns[name] = vals[1:]
	}

	s.calls = append(s.calls, c)

	return c
}

// Calls returns the recorded calls in arrival order.
func (s *Service) Calls() []*Call {
	return s.calls
}

// Submission is one recorded argument submission.
type Submission struct {
	Verb  string
	Type  string
	Name  string
	Value any
}

// Submission verbs, one per expectation-service parameter kind.
const (
	VerbBool     = "bool"
	VerbInt      = "int"
	VerbUint     = "uint"
	VerbLong     = "long"
	VerbULong    = "ulong"
	VerbDouble   = "double"
	VerbString   = "string"
	VerbPointer  = "pointer"
	VerbTypedPtr = "typed-pointer"
	VerbOutput   = "output"
	VerbTypedOut = "typed-output"
)

// Call is the record of one observed invocation.
type Call struct {
	name   string
	svc    *Service
	subs   []Submission
	hasRet bool
	ret    any
}

// Name returns the call name the record was opened under.
func (c *Call) Name() string {
	return c.name
}

// Submissions returns the recorded submissions in order.
func (c *Call) Submissions() []Submission {
	return c.subs
}

func (c *Call) record(verb, typ, name string, value any) {
	c.subs = append(c.subs, Submission{Verb: verb, Type: typ, Name: name, Value: value})
}

func (c *Call) WithBoolParameter(name string, value bool) moxie.Call {
	c.record(VerbBool, "", name, value)
	return c
}

func (c *Call) WithIntParameter(name string, value int) moxie.Call {
	c.record(VerbInt, "", name, value)
	return c
}

func (c *Call) WithUintParameter(name string, value uint) moxie.Call {
	c.record(VerbUint, "", name, value)
	return c
}

func (c *Call) WithLongParameter(name string, value int64) moxie.Call {
	c.record(VerbLong, "", name, value)
	return c
}

func (c *Call) WithULongParameter(name string, value uint64) moxie.Call {
	c.record(VerbULong, "", name, value)
	return c
}

func (c *Call) WithDoubleParameter(name string, value float64) moxie.Call {
	c.record(VerbDouble, "", name, value)
	return c
}

func (c *Call) WithStringParameter(name string, value string) moxie.Call {
	c.record(VerbString, "", name, value)
	return c
}

func (c *Call) WithPointerParameter(name string, value any) moxie.Call {
	c.record(VerbPointer, "", name, value)
	return c
}

func (c *Call) WithParameterOfType(typ, name string, value any) moxie.Call {
	c.record(VerbTypedPtr, typ, name, value)
	return c
}

func (c *Call) WithOutputParameter(name string, value any) moxie.Call {
	c.record(VerbOutput, "", name, value)
	c.writeOutput(name, value)
	return c
}

func (c *Call) WithOutputParameterOfType(typ, name string, value any) moxie.Call {
	c.record(VerbTypedOut, typ, name, value)
	c.writeOutput(name, value)
	return c
}

// writeOutput writes the configured value, if any, through the submitted
// pointer.
func (c *Call) writeOutput(name string, ptr any) {
	value, ok := c.svc.outputs[c.name][name]
	if !ok {
		return
	}

	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}

	rv.Elem().Set(reflect.ValueOf(value))
}

func (c *Call) HasReturnValue() bool {
	return c.hasRet
}

func (c *Call) BoolReturnValue() bool {
	return c.ret.(bool)
}

func (c *Call) IntReturnValue() int {
	return c.ret.(int)
}

func (c *Call) UintReturnValue() uint {
	return c.ret.(uint)
}

func (c *Call) LongReturnValue() int64 {
	return c.ret.(int64)
}

func (c *Call) ULongReturnValue() uint64 {
	return c.ret.(uint64)
}

func (c *Call) DoubleReturnValue() float64 {
	return c.ret.(float64)
}

func (c *Call) StringReturnValue() string {
	return c.ret.(string)
}

func (c *Call) PointerReturnValue() any {
	return c.ret
}
