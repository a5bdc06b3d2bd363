// Package tokenizer implements a BERT-style WordPiece tokenizer: basic
// cleaning and punctuation splitting followed by greedy longest-match
// sub-word splitting against a fixed vocabulary.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
)

// Options configures a Tokenizer. Zero-value special token fields fall
// back to the BERT defaults.
type Options struct {
	Lowercase    bool
	StripAccents bool
	UnknownToken string
	ClassToken   string
	SepToken     string
	PadToken     string
	MaskToken    string
	MaxWordChars int
}

// DefaultOptions returns options matching an uncased BERT model.
func DefaultOptions() Options {
	return Options{
		Lowercase:    true,
		StripAccents: true,
		UnknownToken: "[UNK]",
		ClassToken:   "[CLS]",
		SepToken:     "[SEP]",
		PadToken:     "[PAD]",
		MaskToken:    "[MASK]",
		MaxWordChars: 100,
	}
}

// Encoding is the model input produced from one text: token ids, an
// equal-length attention mask (1 = real token, 0 = padding) and the
// token strings for diagnostics.
type Encoding struct {
	IDs           []int64
	AttentionMask []int64
	Tokens        []string
}

// Tokenizer maps raw text to model input tensors and back. It is pure
// and safe for concurrent use.
type Tokenizer struct {
	basic     *BasicTokenizer
	wordpiece *WordPiece
	vocab     *Vocab
	opts      Options
	unknownID int64
	padID     int64
}

// New creates a Tokenizer over the given vocabulary. Construction
// fails if the unknown, class, separator or pad token is missing from
// the vocabulary.
func New(vocab *Vocab, opts Options) (*Tokenizer, error) {
	if opts.UnknownToken == "" {
		opts.UnknownToken = "[UNK]"
	}
	if opts.ClassToken == "" {
		opts.ClassToken = "[CLS]"
	}
	if opts.SepToken == "" {
		opts.SepToken = "[SEP]"
	}
	if opts.PadToken == "" {
		opts.PadToken = "[PAD]"
	}
	if opts.MaskToken == "" {
		opts.MaskToken = "[MASK]"
	}
	if opts.MaxWordChars <= 0 {
		opts.MaxWordChars = 100
	}

	for _, tok := range []string{opts.UnknownToken, opts.ClassToken, opts.SepToken, opts.PadToken} {
		if !vocab.Has(tok) {
			return nil, fmt.Errorf("required special token %q missing from vocabulary", tok)
		}
	}

	unknownID, _ := vocab.ID(opts.UnknownToken)
	padID, _ := vocab.ID(opts.PadToken)

	return &Tokenizer{
		basic:     NewBasicTokenizer(opts.Lowercase, opts.StripAccents),
		wordpiece: NewWordPiece(vocab, opts.UnknownToken, opts.MaxWordChars),
		vocab:     vocab,
		opts:      opts,
		unknownID: unknownID,
		padID:     padID,
	}, nil
}

// Tokenize runs the full pipeline without special tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.wordpiece.Tokenize(t.basic.Tokenize(text))
}

// Encode tokenizes text and maps it to ids. With addSpecial the
// sequence is wrapped in [CLS] ... [SEP]. The attention mask is all 1s;
// padding is a separate step (Pad).
func (t *Tokenizer) Encode(text string, addSpecial bool) Encoding {
	pieces := t.Tokenize(text)

	tokens := pieces
	if addSpecial {
		tokens = make([]string, 0, len(pieces)+2)
		tokens = append(tokens, t.opts.ClassToken)
		tokens = append(tokens, pieces...)
		tokens = append(tokens, t.opts.SepToken)
	}

	ids := make([]int64, len(tokens))
	mask := make([]int64, len(tokens))
	for i, tok := range tokens {
		// WordPiece only emits vocabulary tokens, so the fallback
		// should never trigger.
		id, ok := t.vocab.ID(tok)
		if !ok {
			id = t.unknownID
		}
		ids[i] = id
		mask[i] = 1
	}

	return Encoding{IDs: ids, AttentionMask: mask, Tokens: tokens}
}

// Pad right-pads the encoding with the pad token (mask 0) up to maxLen,
// or truncates both arrays from the right if the sequence is longer.
func (t *Tokenizer) Pad(enc Encoding, maxLen int) Encoding {
	if len(enc.IDs) >= maxLen {
		return Encoding{
			IDs:           enc.IDs[:maxLen],
			AttentionMask: enc.AttentionMask[:maxLen],
			Tokens:        enc.Tokens[:min(len(enc.Tokens), maxLen)],
		}
	}

	ids := make([]int64, maxLen)
	mask := make([]int64, maxLen)
	copy(ids, enc.IDs)
	copy(mask, enc.AttentionMask)
	for i := len(enc.IDs); i < maxLen; i++ {
		ids[i] = t.padID
	}
	return Encoding{IDs: ids, AttentionMask: mask, Tokens: enc.Tokens}
}

var sentencePunctSpacing = regexp.MustCompile(`\s+([?.!,;:])`)

// Decode maps ids back to text for diagnostics. Continuation pieces
// are merged into the preceding word and spacing before sentence
// punctuation is tightened. Lossy by contract: it does not reconstruct
// the original text.
func (t *Tokenizer) Decode(ids []int64, skipSpecial bool) string {
	var words []string
	for _, id := range ids {
		tok, ok := t.vocab.Token(id)
		if !ok {
			tok = t.opts.UnknownToken
		}
		if skipSpecial && t.isSpecial(tok) {
			continue
		}
		if rest, found := strings.CutPrefix(tok, continuationPrefix); found && len(words) > 0 {
			words[len(words)-1] += rest
			continue
		}
		words = append(words, tok)
	}
	return sentencePunctSpacing.ReplaceAllString(strings.Join(words, " "), "$1")
}

func (t *Tokenizer) isSpecial(token string) bool {
	switch token {
	case t.opts.UnknownToken, t.opts.ClassToken, t.opts.SepToken, t.opts.PadToken, t.opts.MaskToken:
		return true
	}
	return false
}
