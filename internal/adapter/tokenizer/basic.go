package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// BasicTokenizer cleans text and splits it into whitespace-free chunks
// with every punctuation character as its own token. It follows BERT's
// basic tokenizer: control characters are dropped, non-breaking space
// becomes a plain space, and lowercasing/accent stripping are optional.
type BasicTokenizer struct {
	lowercase    bool
	stripAccents bool
}

// NewBasicTokenizer creates a BasicTokenizer.
func NewBasicTokenizer(lowercase, stripAccents bool) *BasicTokenizer {
	return &BasicTokenizer{lowercase: lowercase, stripAccents: stripAccents}
}

// Tokenize splits text into basic tokens.
func (b *BasicTokenizer) Tokenize(text string) []string {
	cleaned := cleanText(text)

	var tokens []string
	for _, chunk := range strings.Fields(cleaned) {
		if b.lowercase {
			chunk = strings.ToLower(chunk)
		}
		if b.stripAccents {
			chunk = stripAccents(chunk)
		}
		tokens = append(tokens, splitOnPunctuation(chunk)...)
	}
	return tokens
}

// cleanText drops NUL and control characters (tab, newline and
// carriage return count as whitespace) and maps U+00A0 to a space.
func cleanText(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case r == 0:
			continue
		case isControl(r):
			continue
		case r == ' ':
			out.WriteRune(' ')
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r) || r == ' '
}

// isPunctuation covers ASCII punctuation plus the Unicode general and
// supplemental punctuation blocks.
func isPunctuation(r rune) bool {
	if (r >= '!' && r <= '/') || (r >= ':' && r <= '@') || (r >= '[' && r <= '`') || (r >= '{' && r <= '~') {
		return true
	}
	return (r >= 0x2000 && r <= 0x206f) || (r >= 0x2e00 && r <= 0x2e7f)
}

// stripAccents removes accents via canonical decomposition followed by
// combining-mark removal.
func stripAccents(text string) string {
	decomposed := norm.NFD.String(text)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.M, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// splitOnPunctuation breaks a chunk so that each punctuation character
// becomes its own token, preserving surrounding sub-words.
func splitOnPunctuation(chunk string) []string {
	var tokens []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}
	for _, r := range chunk {
		switch {
		case isPunctuation(r):
			flush()
			tokens = append(tokens, string(r))
		case isWhitespace(r):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return tokens
}
