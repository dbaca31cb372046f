package reveal

import "strings"

// Word is one whitespace-delimited token of the source text.
type Word struct {
	Text  string
	Index int
}

// Tokenize splits text on single spaces. Consecutive spaces produce empty
// words, exactly like a plain split; empty text produces no words.
func Tokenize(text string) []Word {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, " ")
	words := make([]Word, len(parts))
	for i, p := range parts {
		words[i] = Word{Text: p, Index: i}
	}
	return words
}

// JoinWords joins word texts with single spaces.
func JoinWords(words []Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}
