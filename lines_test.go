package reveal

import (
	"reflect"
	"strings"
	"testing"
)

func measured(tops ...float64) func(texts ...string) []MeasuredWord {
	return func(texts ...string) []MeasuredWord {
		out := make([]MeasuredWord, len(texts))
		for i, s := range texts {
			out[i] = MeasuredWord{Word: Word{Text: s, Index: i}, Top: tops[i]}
		}
		return out
	}
}

func TestInferLines(t *testing.T) {
	tests := []struct {
		name      string
		in        []MeasuredWord
		tolerance float64
		want      LineSet
	}{
		{"empty", nil, 0, nil},
		{"single line", measured(0, 0)("Hello", "world"), 0, LineSet{{"Hello", "world"}}},
		{"two lines", measured(0, 20)("Hello", "world"), 0, LineSet{{"Hello"}, {"world"}}},
		{"three lines", measured(0, 0, 20, 40, 40)("a", "b", "c", "d", "e"), 0,
			LineSet{{"a", "b"}, {"c"}, {"d", "e"}}},
		{"trims", measured(0, 0)(" a ", "b "), 0, LineSet{{"a", "b"}}},
		{"subpixel split without tolerance", measured(0, 0.4)("a", "b"), 0, LineSet{{"a"}, {"b"}}},
		{"subpixel merged with tolerance", measured(0, 0.4)("a", "b"), 0.5, LineSet{{"a", "b"}}},
		{"tolerance keeps real breaks", measured(0, 20)("a", "b"), 0.5, LineSet{{"a"}, {"b"}}},
		{"empty word kept", measured(0, 0, 0)("a", "", "b"), 0, LineSet{{"a", "", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferLines(tt.in, tt.tolerance)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InferLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferLinesCoverage(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog and keeps running"
	for _, wrap := range []float64{0, 60, 90, 130, 200, 1000} {
		s := NewFlowSurface(monoFont{}, wrap)
		m, err := NewProbe(s, nil).Measure(Tokenize(text))
		if err != nil {
			t.Fatal(err)
		}
		lines := InferLines(m, 0)
		if got := strings.Join(lines.Words(), " "); got != text {
			t.Errorf("wrap %v: words = %q, want %q", wrap, got, text)
		}
		if lines.NumWords() != len(Tokenize(text)) {
			t.Errorf("wrap %v: NumWords = %d", wrap, lines.NumWords())
		}
		for i, l := range lines {
			if len(l) == 0 {
				t.Errorf("wrap %v: line %d is empty", wrap, i)
			}
		}
	}
}

func TestLineSetEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b LineSet
		want bool
	}{
		{"both empty", nil, LineSet{}, true},
		{"same", LineSet{{"a", "b"}, {"c"}}, LineSet{{"a", "b"}, {"c"}}, true},
		{"different break", LineSet{{"a", "b"}, {"c"}}, LineSet{{"a"}, {"b", "c"}}, false},
		{"different count", LineSet{{"a"}}, LineSet{{"a"}, {"b"}}, false},
		{"different word", LineSet{{"a"}}, LineSet{{"b"}}, false},
		// Comparison is by joined text per line.
		{"same join", LineSet{{"a b"}}, LineSet{{"a", "b"}}, true},
		{"nil line", LineSet{nil}, LineSet{nil}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineSetStrings(t *testing.T) {
	ls := LineSet{{"Hello", "big"}, {"world"}}
	if got := ls.Strings(); !reflect.DeepEqual(got, []string{"Hello big", "world"}) {
		t.Errorf("Strings = %q", got)
	}
}
