package reveal

import (
	"context"
	"errors"
	"sync"
)

// ReadySignal reports when the resources text layout depends on (fonts) are
// available. Ready is closed once the signal settles; Err is non-nil after it
// settles if loading failed. Err must not be read before Ready is closed.
type ReadySignal interface {
	Ready() <-chan struct{}
	Err() error
}

// Signal is a ReadySignal settled by hand.
type Signal struct {
	ch   chan struct{}
	once sync.Once
	err  error
}

// NewSignal returns a pending signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Resolved returns a signal that is already resolved.
func Resolved() *Signal {
	s := NewSignal()
	s.Resolve()
	return s
}

// Ready implements ReadySignal.
func (s *Signal) Ready() <-chan struct{} { return s.ch }

// Err implements ReadySignal.
func (s *Signal) Err() error { return s.err }

// Resolve settles the signal successfully. Only the first settle counts.
func (s *Signal) Resolve() {
	s.once.Do(func() { close(s.ch) })
}

// Reject settles the signal with err. Only the first settle counts.
func (s *Signal) Reject(err error) {
	if err == nil {
		err = errors.New("reveal: readiness rejected")
	}
	s.once.Do(func() {
		s.err = err
		close(s.ch)
	})
}

// FontLoader loads a font on its own goroutine and settles its signal when
// done. The font is only handed out after the signal resolves.
type FontLoader struct {
	Signal
	font Font
}

// LoadFontAsync starts load on a new goroutine. Cancelling ctx before load
// returns rejects the signal with the context's error.
func LoadFontAsync(ctx context.Context, load func(context.Context) (Font, error)) *FontLoader {
	fl := &FontLoader{Signal: Signal{ch: make(chan struct{})}}
	go func() {
		f, err := load(ctx)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			fl.Reject(err)
			return
		}
		fl.font = f
		fl.Resolve()
	}()
	return fl
}

// Font returns the loaded font, or nil while loading or after a failure.
func (fl *FontLoader) Font() Font {
	select {
	case <-fl.ch:
		if fl.err != nil {
			return nil
		}
		return fl.font
	default:
		return nil
	}
}

type gateState uint8

const (
	gatePending gateState = iota
	gateOpen
	gateFailed
)

// Gate turns a ReadySignal into a poll-driven latch. Measurement is only
// allowed once the gate is open. A rejected signal keeps the gate closed
// unless a timeout is configured, in which case the gate opens best-effort
// once the timeout elapses.
type Gate struct {
	signal   ReadySignal
	timeout  float64
	waited   float64
	state    gateState
	err      error
	timedOut bool
}

// NewGate creates a gate over signal. A nil signal counts as resolved.
// timeout is in seconds; zero waits forever.
func NewGate(signal ReadySignal, timeout float64) *Gate {
	g := &Gate{signal: signal, timeout: timeout}
	if signal == nil {
		g.state = gateOpen
	}
	return g
}

// Poll checks the signal without blocking and advances the timeout clock by
// dt seconds. It reports true only on the call that opens the gate.
func (g *Gate) Poll(dt float64) bool {
	if g.state == gateOpen {
		return false
	}
	if g.state == gatePending {
		select {
		case <-g.signal.Ready():
			if err := g.signal.Err(); err != nil {
				g.state = gateFailed
				g.err = err
				logger.Error("readiness rejected; text stays unanimated", "err", err)
			} else {
				g.state = gateOpen
				return true
			}
		default:
		}
	}

	g.waited += dt
	if g.timeout > 0 && g.waited >= g.timeout {
		g.state = gateOpen
		g.timedOut = true
		logger.Warn("readiness timed out; measuring with current metrics", "timeout", g.timeout)
		return true
	}
	return false
}

// Open reports whether measurement may proceed.
func (g *Gate) Open() bool {
	return g.state == gateOpen
}

// Failed reports whether the signal was rejected and the gate has not opened.
func (g *Gate) Failed() bool {
	return g.state == gateFailed
}

// TimedOut reports whether the gate opened because the timeout elapsed.
func (g *Gate) TimedOut() bool {
	return g.timedOut
}

// Err returns the rejection error, if any.
func (g *Gate) Err() error {
	return g.err
}
