package tokenizer

// continuationPrefix marks a non-initial sub-word piece.
const continuationPrefix = "##"

// WordPiece splits basic tokens into sub-word pieces by greedy longest
// match against the vocabulary.
type WordPiece struct {
	vocab        *Vocab
	unknownToken string
	maxWordChars int
}

// NewWordPiece creates a WordPiece splitter. maxWordChars guards
// pathological inputs: any token longer than that many runes maps
// straight to the unknown token.
func NewWordPiece(vocab *Vocab, unknownToken string, maxWordChars int) *WordPiece {
	return &WordPiece{
		vocab:        vocab,
		unknownToken: unknownToken,
		maxWordChars: maxWordChars,
	}
}

// Tokenize splits each basic token into sub-word pieces.
func (w *WordPiece) Tokenize(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, w.split(tok)...)
	}
	return out
}

// split applies greedy longest-match-first sub-word splitting to one
// token. If any starting position has no vocabulary match, the whole
// token collapses to the unknown token rather than a partial split.
func (w *WordPiece) split(token string) []string {
	chars := []rune(token)
	if len(chars) > w.maxWordChars {
		return []string{w.unknownToken}
	}

	var pieces []string
	start := 0
	for start < len(chars) {
		end := len(chars)
		match := ""
		for start < end {
			candidate := string(chars[start:end])
			if start > 0 {
				candidate = continuationPrefix + candidate
			}
			if w.vocab.Has(candidate) {
				match = candidate
				break
			}
			end--
		}
		if match == "" {
			return []string{w.unknownToken}
		}
		pieces = append(pieces, match)
		start = end
	}
	return pieces
}
