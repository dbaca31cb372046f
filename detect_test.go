package reveal

import "testing"

func TestChangeDetector(t *testing.T) {
	var d ChangeDetector
	if d.Current() != nil {
		t.Fatal("Current should be nil before any offer")
	}

	one := LineSet{{"Hello", "world"}}
	two := LineSet{{"Hello"}, {"world"}}

	if !d.Offer(one) {
		t.Error("first offer must be accepted")
	}
	if d.Offer(LineSet{{"Hello", "world"}}) {
		t.Error("structurally equal offer must be discarded")
	}
	if !d.Offer(two) {
		t.Error("different offer must be accepted")
	}
	if !d.Current().Equal(two) {
		t.Errorf("Current = %v, want %v", d.Current(), two)
	}

	d.Reset()
	if !d.Offer(two) {
		t.Error("offer after Reset must be accepted")
	}
}

func TestChangeDetectorAcceptsEmptyFirst(t *testing.T) {
	var d ChangeDetector
	if !d.Offer(nil) {
		t.Error("an empty first offer is still a first offer")
	}
	if d.Offer(LineSet{}) {
		t.Error("empty after empty must be discarded")
	}
}
