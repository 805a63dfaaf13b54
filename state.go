package moxie

// State is the interception record of one mockable function. R and S are
// the generated record-hook and resolve-hook function types of that
// function.
//
// A State starts disabled and lives for the whole process. It is shared
// mutable state without locking: the controlling test goroutine must
// finish configuration before the exercised code runs and call Reset after
// it completes.
type State[R, S any] struct {
	name    string
	active  bool
	scope   string
	record  R
	resolve S

	defaultRecord  R
	defaultResolve S
}

// NewState creates the state for the named mockable function and registers
// it process-wide. The given hooks become the defaults Reset restores.
func NewState[R, S any](name string, record R, resolve S) *State[R, S] {
	s := &State[R, S]{
		name:           name,
		record:         record,
		resolve:        resolve,
		defaultRecord:  record,
		defaultResolve: resolve,
	}

	register(s)

	return s
}

// Name returns the registered name of the mockable function.
func (s *State[R, S]) Name() string { return s.name }

// Active reports whether calls are routed through the expectation service.
func (s *State[R, S]) Active() bool { return s.active }

// Scope returns the expectation-service partition name; "" selects the
// default partition.
func (s *State[R, S]) Scope() string { return s.scope }

// RecordHook returns the current call-recording hook.
func (s *State[R, S]) RecordHook() R { return s.record }

// ResolveHook returns the current return-resolution hook.
func (s *State[R, S]) ResolveHook() S { return s.resolve }

// Reset restores the initial configuration: disabled, default scope,
// default hooks. It may be called in any state and is idempotent.
func (s *State[R, S]) Reset() {
	s.active = false
	s.scope = ""
	s.record = s.defaultRecord
	s.resolve = s.defaultResolve
}

// Enable activates interception. Scope and hooks are left untouched.
func (s *State[R, S]) Enable() {
	s.active = true
}

// SetScope routes subsequent calls to the named expectation-service
// partition. Valid only while enabled; while disabled the assertion
// handler is notified and the state is left unchanged.
func (s *State[R, S]) SetScope(scope string) {
	if !s.active {
		assertFail("moxie: SetScope on disabled mock " + s.name)
		return
	}

	s.scope = scope
}

// SetRecordHook overrides the call-recording hook. A nil hook skips
// recording entirely. Valid only while enabled.
func (s *State[R, S]) SetRecordHook(record R) {
	if !s.active {
		assertFail("moxie: SetRecordHook on disabled mock " + s.name)
		return
	}

	s.record = record
}

// SetResolveHook overrides the return-resolution hook. A nil hook makes
// every enabled call fall through to the pass-through. Valid only while
// enabled.
func (s *State[R, S]) SetResolveHook(resolve S) {
	if !s.active {
		assertFail("moxie: SetResolveHook on disabled mock " + s.name)
		return
	}

	s.resolve = resolve
}
