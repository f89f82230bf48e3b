package pathops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if p0.Distance(p1) > epsilon {
		t.Errorf("%v != %v", p0, p1)
	}
}

func mustParse(t *testing.T, data string) *Path {
	t.Helper()
	p, err := ParsePath(data)
	if err != nil {
		t.Fatalf("parsing %q: %v", data, err)
	}
	return p
}
