package reveal

import (
	"errors"
	"testing"
)

func TestProbeMeasure(t *testing.T) {
	s := NewFlowSurface(monoFont{}, 100)
	p := NewProbe(s, nil)

	got, err := p.Measure(Tokenize("Hello world"))
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	want := []MeasuredWord{
		{Word: Word{Text: "Hello", Index: 0}, Top: 0},
		{Word: Word{Text: "world", Index: 1}, Top: 20},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if p.Surface() != Surface(s) {
		t.Error("Surface() should return the probe's surface")
	}
}

func TestProbeGating(t *testing.T) {
	sig := NewSignal()
	gate := NewGate(sig, 0)
	s := NewFlowSurface(monoFont{}, 100)
	p := NewProbe(s, gate)

	measured, err := p.Measure(Tokenize("Hello world"))
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
	if len(measured) != 0 {
		t.Errorf("measured %d words while not ready", len(measured))
	}
	if tops := s.UnitTops(); len(tops) != 0 {
		t.Error("surface must not be written while not ready")
	}

	sig.Resolve()
	if !gate.Poll(0) {
		t.Fatal("gate should open once the signal resolves")
	}
	measured, err = p.Measure(Tokenize("Hello world"))
	if err != nil || len(measured) != 2 {
		t.Errorf("after ready: %d words, err %v", len(measured), err)
	}
}

func TestProbeNoSurface(t *testing.T) {
	p := NewProbe(nil, nil)
	if _, err := p.Measure(Tokenize("a")); !errors.Is(err, ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
}

func TestProbeIdempotent(t *testing.T) {
	s := NewFlowSurface(monoFont{}, 70)
	p := NewProbe(s, nil)
	words := Tokenize("one two three four five")

	first, err := p.Measure(words)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Measure(words)
	if err != nil {
		t.Fatal(err)
	}
	a, b := InferLines(first, 0), InferLines(second, 0)
	if !a.Equal(b) {
		t.Errorf("re-measurement changed lines: %v vs %v", a, b)
	}

	var d ChangeDetector
	if !d.Offer(a) {
		t.Fatal("first offer must be accepted")
	}
	if d.Offer(b) {
		t.Error("identical re-measurement must be discarded")
	}
}
