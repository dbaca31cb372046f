package reveal

import "github.com/tanema/gween/ease"

// Scheduler plays the staggered reveal timeline over a partition's units.
// Unit n starts at Delay + n*StaggerDuration and slides from its current
// offset to rest over Duration with the configured ease.
type Scheduler struct {
	delay    float64
	stagger  float64
	duration float64
	hidden   float64
	easeFn   ease.TweenFunc

	tweens []*SlideTween
	fired  int
}

// NewScheduler creates a scheduler using the timing fields of opts.
func NewScheduler(opts Options) *Scheduler {
	return &Scheduler{
		delay:    opts.Delay,
		stagger:  opts.StaggerDuration,
		duration: opts.Duration,
		hidden:   opts.HiddenOffset,
		easeFn:   opts.Ease.Func(),
	}
}

// StartTime returns the start delay of the unit at ordinal in document order.
func (s *Scheduler) StartTime(ordinal int) float64 {
	return s.delay + float64(ordinal)*s.stagger
}

// Play starts a reveal over units, superseding any in-flight timeline.
func (s *Scheduler) Play(units []*Unit) {
	s.Stop()
	for i, u := range units {
		if u.Node.IsDisposed() {
			continue
		}
		s.tweens = append(s.tweens,
			NewSlideTween(u.Node, 0, float32(s.StartTime(i)), float32(s.duration), s.easeFn))
	}
	s.fired++
}

// Reset stops the timeline and returns every unit to the hidden offset, so a
// following Play is visually identical to the first.
func (s *Scheduler) Reset(units []*Unit) {
	s.Stop()
	for _, u := range units {
		u.Node.SetOffset(s.hidden)
	}
}

// Hide returns units to the hidden offset. With animate set each unit slides
// out using its own transition; otherwise the offset is applied at once.
func (s *Scheduler) Hide(units []*Unit, animate bool) {
	if !animate {
		s.Reset(units)
		return
	}
	s.Stop()
	for _, u := range units {
		if u.Node.IsDisposed() {
			continue
		}
		s.tweens = append(s.tweens,
			NewSlideTween(u.Node, s.hidden, float32(u.Delay), float32(u.Duration), u.Ease.Func()))
	}
}

// Stop abandons all in-flight tweens, leaving units where they are.
func (s *Scheduler) Stop() {
	clear(s.tweens)
	s.tweens = s.tweens[:0]
}

// Update advances every tween by dt seconds and drops finished ones.
func (s *Scheduler) Update(dt float32) {
	live := s.tweens[:0]
	for _, tw := range s.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live
}

// Running reports whether any tween is still in flight.
func (s *Scheduler) Running() bool {
	return len(s.tweens) > 0
}

// Fired returns how many times Play has been called.
func (s *Scheduler) Fired() int {
	return s.fired
}
