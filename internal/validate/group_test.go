package validate

import "testing"

type groupRecorder struct {
	allValid   int
	anyInvalid []string
}

func (g *groupRecorder) AllBecameValid([]*Input) { g.allValid++ }

func (g *groupRecorder) AnyBecameInvalid(in *Input) {
	g.anyInvalid = append(g.anyInvalid, in.Key())
}

func newThreeFieldGroup(t *testing.T) (*Group, *Input, *Input, *Input, *groupRecorder) {
	t.Helper()
	lower := mustInput(t, "lower", "[a-z]+", DefaultStyle())
	digits := mustInput(t, "digits", "[1-9]+", DefaultStyle())
	upper := mustInput(t, "upper", "[A-Z]+", DefaultStyle())

	g := NewGroup()
	g.Attach(lower, digits, upper)
	rec := &groupRecorder{}
	g.SetGroupListener(rec)
	return g, lower, digits, upper, rec
}

func TestGroupAllValidFiresOnce(t *testing.T) {
	g, lower, digits, upper, rec := newThreeFieldGroup(t)

	lower.SetText("abc")
	digits.SetText("12")
	if rec.allValid != 0 {
		t.Fatalf("allValid fired with one child still invalid: %d", rec.allValid)
	}
	upper.SetText("XY")
	if rec.allValid != 1 {
		t.Fatalf("allValid = %d after all three valid, want 1", rec.allValid)
	}
	if !g.AllValid() {
		t.Fatal("aggregate should report true")
	}

	// Further valid->valid churn on a child must not re-fire.
	lower.SetText("def")
	if rec.allValid != 1 {
		t.Fatalf("allValid = %d after valid->valid churn, want 1", rec.allValid)
	}
}

func TestGroupInvalidPropagatesEveryTime(t *testing.T) {
	g, lower, digits, upper, rec := newThreeFieldGroup(t)

	lower.SetText("abc")
	digits.SetText("12")
	upper.SetText("XY")

	lower.SetText("abc1") // falling edge
	digits.SetText("12x") // another falling edge
	if len(rec.anyInvalid) != 2 {
		t.Fatalf("anyInvalid = %v, want two entries", rec.anyInvalid)
	}
	if rec.anyInvalid[0] != "lower" || rec.anyInvalid[1] != "digits" {
		t.Fatalf("anyInvalid order = %v, want [lower digits]", rec.anyInvalid)
	}
	if g.AllValid() {
		t.Fatal("aggregate should report false")
	}
}

func TestGroupRefiresAfterInvalidThenAllValidCycle(t *testing.T) {
	_, lower, digits, upper, rec := newThreeFieldGroup(t)

	lower.SetText("abc")
	digits.SetText("12")
	upper.SetText("XY")
	lower.SetText("abc1") // break the episode
	lower.SetText("abcd") // restore

	if rec.allValid != 2 {
		t.Fatalf("allValid = %d after invalid-then-all-valid cycle, want 2", rec.allValid)
	}
	if len(rec.anyInvalid) != 1 {
		t.Fatalf("anyInvalid = %v, want exactly one entry", rec.anyInvalid)
	}
}

func TestGroupPatternlessChildNeverBlocks(t *testing.T) {
	free := mustInput(t, "free", "", DefaultStyle())
	digits := mustInput(t, "digits", "[1-9]+", DefaultStyle())

	g := NewGroup()
	g.Attach(free, digits)
	rec := &groupRecorder{}
	g.SetGroupListener(rec)

	digits.SetText("5")
	if rec.allValid != 1 {
		t.Fatalf("allValid = %d, want 1; patternless child must not block", rec.allValid)
	}
}

func TestGroupAttachNilIsIgnored(t *testing.T) {
	g := NewGroup()
	g.Attach(nil)
	if len(g.Inputs()) != 0 {
		t.Fatalf("nil attach should be ignored, got %d inputs", len(g.Inputs()))
	}
}

func TestGroupWithoutListenerTracksState(t *testing.T) {
	digits := mustInput(t, "digits", "[1-9]+", DefaultStyle())
	g := NewGroup()
	g.Attach(digits)

	digits.SetText("5") // no listener set; must not panic
	if !g.AllValid() {
		t.Fatal("aggregate should be true")
	}
}

func TestGroupAttachInvalidInputEndsEpisode(t *testing.T) {
	digits := mustInput(t, "digits", "[1-9]+", DefaultStyle())
	g := NewGroup()
	g.Attach(digits)
	rec := &groupRecorder{}
	g.SetGroupListener(rec)

	digits.SetText("5")
	if rec.allValid != 1 {
		t.Fatalf("allValid = %d, want 1", rec.allValid)
	}

	upper := mustInput(t, "upper", "[A-Z]+", DefaultStyle())
	g.Attach(upper) // attached invalid; aggregate drops
	if g.AllValid() {
		t.Fatal("aggregate should be false after attaching an invalid input")
	}
	upper.SetText("OK")
	if rec.allValid != 2 {
		t.Fatalf("allValid = %d after new child became valid, want 2", rec.allValid)
	}
}
