package moxie

// Service is the expectation-tracking engine an enabled mock feeds. It is
// external to this package: moxie only submits arguments to it and decodes
// its answers, performing no validation of its own.
type Service interface {
	// ActualCall opens the record of one observed invocation.
	ActualCall(name string) Call
}

// Call is the expectation service's record of one observed invocation:
// the submitted arguments plus an optional configured return value.
type Call interface {
	WithBoolParameter(name string, value bool) Call
	WithIntParameter(name string, value int) Call
	WithUintParameter(name string, value uint) Call
	WithLongParameter(name string, value int64) Call
	WithULongParameter(name string, value uint64) Call
	WithDoubleParameter(name string, value float64) Call
	WithStringParameter(name string, value string) Call
	WithPointerParameter(name string, value any) Call
	WithParameterOfType(typ, name string, value any) Call
	WithOutputParameter(name string, value any) Call
	WithOutputParameterOfType(typ, name string, value any) Call

	HasReturnValue() bool
	BoolReturnValue() bool
	IntReturnValue() int
	UintReturnValue() uint
	LongReturnValue() int64
	ULongReturnValue() uint64
	DoubleReturnValue() float64
	StringReturnValue() string
	PointerReturnValue() any
}

// Provider resolves expectation-service partitions by scope name.
type Provider interface {
	Default() Service
	Scope(name string) Service
}

var provider Provider

// SetProvider installs the expectation service used by enabled mocks.
func SetProvider(p Provider) {
	provider = p
}

// ServiceFor resolves the partition for scope; "" selects the default
// partition. Dispatching an enabled mock with no provider installed is a
// harness misconfiguration and panics.
func ServiceFor(scope string) Service {
	if provider == nil {
		panic("moxie: no expectation service provider installed")
	}

	if scope == "" {
		return provider.Default()
	}

	return provider.Scope(scope)
}

// VoidExit is a reserved return value for void functions. Configuring it
// as an expectation's return value makes the generated resolve hook exit
// the slow path immediately instead of falling through to the real
// implementation, whose own writes could otherwise overwrite an expected
// output parameter. A custom resolve hook replaces the default procedure
// entirely, so VoidExit has no effect under one.
const VoidExit = false
