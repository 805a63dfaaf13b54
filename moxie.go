// Package moxie replaces the behavior of package-level functions at call
// time: an enabled mock records the arguments it received with an
// expectation service and returns a test-configured value, while a
// disabled mock passes straight through to the real implementation.
//
// Mocks are described declaratively in files guarded by the moxie build
// tag, one descriptor function per mock:
//
//	//go:build moxie
//
//	func Pow() {
//		moxie.Mock(math.Pow,
//			moxie.ReturnDouble("float64"),
//			moxie.ParamDouble("float64", "x"),
//			moxie.ParamDouble("float64", "y"),
//		)
//	}
//
// Running the moxie command expands each descriptor into a dispatch entry
// point, a pass-through, an interception state, and a pair of default
// hooks. The marker functions below only exist for the generator to parse;
// calling them does nothing.
package moxie

// ParamDesc describes one parameter of a mockable function.
type ParamDesc struct{}

// ReturnDesc describes the return of a mockable function.
type ReturnDesc struct{}

// Mock declares target as a mockable function with the given return and
// parameter descriptors. Target must be a package-level function whose
// parameter count matches the descriptors. Declared type strings are
// emitted verbatim into the generated file.
func Mock(target any, ret ReturnDesc, params ...ParamDesc) {}

// SetDestination sets the generated file of the surrounding package.
func SetDestination(string) {}

// ReturnVoid declares that the function returns nothing.
func ReturnVoid() ReturnDesc { return ReturnDesc{} }

// ReturnBool declares a bool-kind return of the given type.
func ReturnBool(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnInt declares an int-kind return of the given type.
func ReturnInt(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnUint declares a uint-kind return of the given type.
func ReturnUint(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnLong declares an int64-kind return of the given type.
func ReturnLong(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnULong declares a uint64-kind return of the given type.
func ReturnULong(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnDouble declares a float64-kind return of the given type.
func ReturnDouble(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnString declares a string-kind return of the given type.
func ReturnString(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnPtr declares a pointer-kind return of the given type.
func ReturnPtr(typ string) ReturnDesc { return ReturnDesc{} }

// ReturnCustom splices code verbatim in place of the default
// return-resolution procedure.
func ReturnCustom(typ string, code string) ReturnDesc { return ReturnDesc{} }

// ParamBool declares a bool-kind parameter.
func ParamBool(typ, name string) ParamDesc { return ParamDesc{} }

// ParamInt declares an int-kind parameter.
func ParamInt(typ, name string) ParamDesc { return ParamDesc{} }

// ParamUint declares a uint-kind parameter.
func ParamUint(typ, name string) ParamDesc { return ParamDesc{} }

// ParamLong declares an int64-kind parameter.
func ParamLong(typ, name string) ParamDesc { return ParamDesc{} }

// ParamULong declares a uint64-kind parameter.
func ParamULong(typ, name string) ParamDesc { return ParamDesc{} }

// ParamDouble declares a float64-kind parameter.
func ParamDouble(typ, name string) ParamDesc { return ParamDesc{} }

// ParamString declares a string-kind parameter.
func ParamString(typ, name string) ParamDesc { return ParamDesc{} }

// ParamInPtr declares an input pointer parameter, submitted by address.
func ParamInPtr(typ, name string) ParamDesc { return ParamDesc{} }

// ParamOutPtr declares an output parameter the expectation service may
// write through.
func ParamOutPtr(typ, name string) ParamDesc { return ParamDesc{} }

// ParamInTypedPtr declares an input pointer parameter submitted with the
// declared type as a type tag.
func ParamInTypedPtr(typ, name string) ParamDesc { return ParamDesc{} }

// ParamOutTypedPtr declares an output parameter submitted with the
// declared type as a type tag.
func ParamOutTypedPtr(typ, name string) ParamDesc { return ParamDesc{} }

// ParamIgnore declares a parameter that is never submitted.
func ParamIgnore(typ, name string) ParamDesc { return ParamDesc{} }

// ParamCustom splices code verbatim at the parameter's position in the
// default call-recording hook.
func ParamCustom(typ, name, code string) ParamDesc { return ParamDesc{} }
