package tokenizer

import (
	"reflect"
	"testing"
)

func TestBasicTokenizer_SplitsPunctuation(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	got := b.Tokenize("hello, world!")
	want := []string{"hello", ",", "world", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_Lowercase(t *testing.T) {
	b := NewBasicTokenizer(true, false)

	got := b.Tokenize("Hello World")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_CaseSensitive(t *testing.T) {
	b := NewBasicTokenizer(false, false)

	got := b.Tokenize("Hello World")
	want := []string{"Hello", "World"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_StripAccents(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	got := b.Tokenize("café naïve")
	want := []string{"cafe", "naive"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_KeepsAccentsWhenDisabled(t *testing.T) {
	b := NewBasicTokenizer(false, false)

	got := b.Tokenize("café")
	want := []string{"café"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_DropsControlChars(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	got := b.Tokenize("he\x00llo\x01 world")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_TabNewlineAreWhitespace(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	got := b.Tokenize("a\tb\nc\rd")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_NonBreakingSpace(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	got := b.Tokenize("a b")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_UnicodePunctuation(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	// U+2014 em dash sits in the general punctuation block.
	got := b.Tokenize("yes—no")
	want := []string{"yes", "—", "no"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBasicTokenizer_EmptyInput(t *testing.T) {
	b := NewBasicTokenizer(true, true)

	if got := b.Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if got := b.Tokenize("   \t\n  "); len(got) != 0 {
		t.Errorf("expected no tokens for whitespace, got %v", got)
	}
}
