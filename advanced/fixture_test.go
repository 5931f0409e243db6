package advanced

import (
	"embed"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Fixtures are endpoint sequences in YAML, available by name in the fixtures/
// directory, sans extension. If anything goes wrong loading one, the test
// binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) EndpointList {
	fixture, err := fixtures.Open("fixtures/" + name + ".yaml")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := DecodeEndpointsYAML(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(list) == 0 {
		log.Fatalf("Fixture %q is empty", name)
	}
	return list
}

// Helpers

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// Arcs with a mix of sizes and winding, shared by the property tests.
var sampleArcs = []Arc{
	NewArc(Pt(0, 0), Pt(2, 0), 0.5),
	NewArc(Pt(1, 2), Pt(4, -2), 0.1),
	NewArc(Pt(1, 2), Pt(4, -2), -0.5),
	NewArc(Pt(1, 2), Pt(4, -2), 0.99),
	NewArc(Pt(-3, 1), Pt(5, 5), 1),
	NewArc(Pt(-3, 1), Pt(5, 5), -1),
	NewArc(Pt(0, 0), Pt(2, 0), 3),
	NewArc(Pt(7, -1), Pt(2, 8), -2),
	NewArc(Pt(10, 10), Pt(10, 20), 0.41421356237309503),
}
