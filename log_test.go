package reveal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func captureLogger(t *testing.T, level log.Level) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: level}))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

func TestSetLoggerNilDiscards(t *testing.T) {
	prev := Logger()
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(prev) })
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	Logger().Error("dropped")
}

func TestDebugLogProbe(t *testing.T) {
	buf := captureLogger(t, log.DebugLevel)
	debugLogProbe("Hello world", probeStats{words: 2, lines: 1, accepted: true, elapsed: time.Millisecond})

	out := buf.String()
	for _, want := range []string{"probe pass", "words=2", "lines=1", "accepted=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestDebugLogProbeFilteredAtWarn(t *testing.T) {
	buf := captureLogger(t, log.WarnLevel)
	debugLogProbe("Hello", probeStats{words: 1, lines: 1})
	if buf.Len() != 0 {
		t.Errorf("debug record should be filtered at warn level, got %q", buf.String())
	}
}

func TestDebugCheckTreeDepthWarns(t *testing.T) {
	buf := captureLogger(t, log.WarnLevel)
	root := NewContainer("n0")
	n := root
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewContainer("deep")
		n.AddChild(c)
		n = c
	}
	debugCheckTreeDepth(n)
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}
}
