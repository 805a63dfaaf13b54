package moxie

// AssertionHandler receives reports of configuration misuse, such as
// overriding a hook while the mock is disabled. Misuse is a programming
// error, not a runtime error: it is reported here and the offending call
// leaves the state unchanged.
type AssertionHandler func(msg string)

// The default handler discards reports, mirroring release builds.
var assertionHandler AssertionHandler

// SetAssertionHandler installs h as the assertion collaborator. A nil
// handler restores the discarding default.
func SetAssertionHandler(h AssertionHandler) {
	assertionHandler = h
}

func assertFail(msg string) {
	if assertionHandler != nil {
		assertionHandler(msg)
	}
}
