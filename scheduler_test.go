package reveal

import (
	"math"
	"testing"
)

func linearOptions() Options {
	opts := DefaultOptions()
	opts.Ease = Ease{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3}
	opts.Duration = 1
	opts.StaggerDuration = 0.5
	opts.Delay = 0.25
	return opts
}

func runScheduler(s *Scheduler, seconds float32) {
	const step = 0.125
	for t := float32(0); t < seconds; t += step {
		s.Update(step)
	}
}

func TestSchedulerStartTime(t *testing.T) {
	s := NewScheduler(linearOptions())
	for i, want := range []float64{0.25, 0.75, 1.25} {
		if got := s.StartTime(i); math.Abs(got-want) > epsilon {
			t.Errorf("StartTime(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestSchedulerPlayStaggers(t *testing.T) {
	opts := linearOptions()
	p := RenderPartition(LineSet{{"a"}, {"b"}}, monoFont{}, opts)
	s := NewScheduler(opts)

	s.Play(p.Units)
	if s.Fired() != 1 || !s.Running() {
		t.Fatalf("fired=%d running=%v", s.Fired(), s.Running())
	}

	// At t=0.75 the first unit is halfway, the second just starting.
	runScheduler(s, 0.75)
	if got := p.Units[0].Node.OffsetY; math.Abs(got-0.5) > 0.01 {
		t.Errorf("unit 0 offset = %v, want ~0.5", got)
	}
	if got := p.Units[1].Node.OffsetY; math.Abs(got-1) > 0.01 {
		t.Errorf("unit 1 offset = %v, want ~1", got)
	}

	runScheduler(s, 1.5)
	for i, u := range p.Units {
		if math.Abs(u.Node.OffsetY) > 0.001 {
			t.Errorf("unit %d offset = %v, want 0", i, u.Node.OffsetY)
		}
	}
	if s.Running() {
		t.Error("scheduler should be idle after the timeline")
	}
}

func TestSchedulerResetReplaysFromHidden(t *testing.T) {
	opts := linearOptions()
	p := RenderPartition(LineSet{{"a"}}, monoFont{}, opts)
	s := NewScheduler(opts)

	s.Play(p.Units)
	runScheduler(s, 2)
	if math.Abs(p.Units[0].Node.OffsetY) > 0.001 {
		t.Fatalf("offset after reveal = %v", p.Units[0].Node.OffsetY)
	}

	s.Reset(p.Units)
	if p.Units[0].Node.OffsetY != opts.HiddenOffset {
		t.Errorf("offset after Reset = %v, want %v", p.Units[0].Node.OffsetY, opts.HiddenOffset)
	}
	s.Play(p.Units)
	runScheduler(s, 0.75)
	if got := p.Units[0].Node.OffsetY; math.Abs(got-0.5) > 0.01 {
		t.Errorf("replay midpoint = %v, want ~0.5", got)
	}
	if s.Fired() != 2 {
		t.Errorf("Fired = %d, want 2", s.Fired())
	}
}

func TestSchedulerPlaySupersedes(t *testing.T) {
	opts := linearOptions()
	p := RenderPartition(LineSet{{"a"}, {"b"}, {"c"}}, monoFont{}, opts)
	s := NewScheduler(opts)

	s.Play(p.Units)
	s.Play(p.Units[:1])
	if len(s.tweens) != 1 {
		t.Errorf("tweens = %d, want 1 after superseding Play", len(s.tweens))
	}
}

func TestSchedulerHide(t *testing.T) {
	opts := linearOptions()
	p := RenderPartition(LineSet{{"a"}, {"b"}}, monoFont{}, opts)
	s := NewScheduler(opts)
	s.Play(p.Units)
	runScheduler(s, 3)

	t.Run("immediate", func(t *testing.T) {
		s.Hide(p.Units, false)
		for i, u := range p.Units {
			if u.Node.OffsetY != opts.HiddenOffset {
				t.Errorf("unit %d offset = %v", i, u.Node.OffsetY)
			}
		}
		if s.Running() {
			t.Error("immediate hide should not leave tweens")
		}
	})

	t.Run("animated", func(t *testing.T) {
		for _, u := range p.Units {
			u.Node.SetOffset(0)
		}
		s.Hide(p.Units, true)
		if !s.Running() {
			t.Fatal("animated hide should run tweens")
		}
		// Units use their own transition: unit duration plus line cascade.
		runScheduler(s, float32(opts.Delay+opts.LineCascade+opts.UnitDuration)+0.25)
		for i, u := range p.Units {
			if math.Abs(u.Node.OffsetY-opts.HiddenOffset) > 0.001 {
				t.Errorf("unit %d offset = %v", i, u.Node.OffsetY)
			}
		}
	})
}

func TestSchedulerSkipsDisposedUnits(t *testing.T) {
	opts := linearOptions()
	p := RenderPartition(LineSet{{"a"}, {"b"}}, monoFont{}, opts)
	s := NewScheduler(opts)
	p.Units[1].Node.Dispose()

	s.Play(p.Units)
	if len(s.tweens) != 1 {
		t.Errorf("tweens = %d, want 1", len(s.tweens))
	}
}

func TestSchedulerUpdateAllocs(t *testing.T) {
	opts := linearOptions()
	opts.Duration = 1000
	p := RenderPartition(LineSet{{"a"}, {"b"}, {"c"}}, monoFont{}, opts)
	s := NewScheduler(opts)
	s.Play(p.Units)

	allocs := testing.AllocsPerRun(100, func() {
		s.Update(0.001)
	})
	if allocs > 0 {
		t.Errorf("Update allocated %v times per run, want 0", allocs)
	}
}
