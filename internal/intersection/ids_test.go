package intersection

import "testing"

func TestIDGenerator_FormatsAndIncrements(t *testing.T) {
	g := NewIDGenerator()
	first := g.Next(North, Straight)
	second := g.Next(North, Straight)

	if first != "NST-0001" {
		t.Fatalf("first id = %q, want NST-0001", first)
	}
	if second != "NST-0002" {
		t.Fatalf("second id = %q, want NST-0002", second)
	}
}

func TestIDGenerator_AllDirectionRouteCodesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, dir := range []Direction{North, South, East, West} {
		for _, route := range []Route{Left, Straight, Right} {
			code := ddrCodes[dir][route]
			if code == "" {
				t.Fatalf("missing code for %v/%v", dir, route)
			}
			if seen[code] {
				t.Fatalf("duplicate code %q", code)
			}
			seen[code] = true
		}
	}
}

func TestIDGenerator_CapsAtMaxRatherThanFailing(t *testing.T) {
	g := NewIDGenerator()
	g.current = g.max
	id := g.Next(South, Right)
	if id != "SRT-9999" {
		t.Fatalf("id at cap = %q, want SRT-9999", id)
	}
	if g.current != g.max {
		t.Fatalf("current advanced past cap: %d", g.current)
	}
}
