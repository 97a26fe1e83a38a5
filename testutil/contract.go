package testutil

import "github.com/kleinwareio/liketype/collections"

// TestingT is the subset of *testing.T and *rapid.T used by the checks.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// CheckEqualityContract verifies that a and b agree with each other on
// equality in both directions, and that equal values hash alike.
func CheckEqualityContract(t TestingT, a, b collections.Hashable) {
	t.Helper()
	if !a.Equal(a) {
		t.Fatalf("equality is not reflexive for %v", a)
	}
	ab, ba := a.Equal(b), b.Equal(a)
	if ab != ba {
		t.Fatalf("equality is not symmetric: a.Equal(b)=%v, b.Equal(a)=%v", ab, ba)
	}
	if ab && a.Hash() != b.Hash() {
		t.Fatalf("equal values hash differently: %d != %d", a.Hash(), b.Hash())
	}
}

// CheckTransitive verifies transitivity of equality over three values.
func CheckTransitive(t TestingT, a, b, c collections.Hashable) {
	t.Helper()
	if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
		t.Fatalf("equality is not transitive")
	}
}
