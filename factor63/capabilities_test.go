package factor63

import "testing"

func TestCapabilitiesDoesNotPanic(t *testing.T) {
	// Capabilities is a diagnostic only; its result is host-dependent, so
	// this just confirms it can be queried without special privileges.
	_ = Capabilities()
}
