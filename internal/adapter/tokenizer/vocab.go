package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Vocab is an immutable mapping between token strings and their ids.
// Ids are assigned by position: in a vocab.txt file, the token on line
// N has id N.
type Vocab struct {
	ids    map[string]int64
	tokens []string
}

// NewVocab builds a vocabulary from an ordered token list.
func NewVocab(tokens []string) (*Vocab, error) {
	ids := make(map[string]int64, len(tokens))
	for i, tok := range tokens {
		if _, dup := ids[tok]; dup {
			return nil, fmt.Errorf("duplicate vocabulary token %q at id %d", tok, i)
		}
		ids[tok] = int64(i)
	}
	return &Vocab{ids: ids, tokens: tokens}, nil
}

// ParseVocab reads a vocab.txt stream: one token per line, id = line
// index. Blank lines are skipped.
func ParseVocab(r io.Reader) (*Vocab, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return NewVocab(tokens)
}

// ID returns the id for a token and whether the token exists.
func (v *Vocab) ID(token string) (int64, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Token returns the token for an id and whether the id is in range.
func (v *Vocab) Token(id int64) (string, bool) {
	if id < 0 || id >= int64(len(v.tokens)) {
		return "", false
	}
	return v.tokens[id], true
}

// Has reports whether the token exists in the vocabulary.
func (v *Vocab) Has(token string) bool {
	_, ok := v.ids[token]
	return ok
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocab) Size() int {
	return len(v.tokens)
}
