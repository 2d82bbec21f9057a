// Package normalizer turns raw chapter text into the ordered sequence of
// normalized tokens that drives indexing. The same input text always yields
// the same token sequence, which is what makes re-indexing idempotent.
package normalizer

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/lexread/lexread-backend/internal/domain"
)

// Token is one normalized unit emitted by the normalizer, in document order.
type Token struct {
	Surface string
	Kind    domain.TokenKind
}

// Config holds the per-language phrase lists. Multi-word expressions found
// in a chapter are emitted as single PHRASE tokens instead of their
// constituent WORD tokens.
type Config struct {
	Phrases map[string][]string
}

// Normalizer produces normalized token streams for chapter text.
// Safe for concurrent use.
type Normalizer struct {
	phrases map[string]*phraseMatcher
	ja      *japaneseSegmenter
}

// New creates a Normalizer. Phrase lists are folded with the same casing
// rules applied to chapter text, so matching is exact after normalization.
func New(cfg Config) (*Normalizer, error) {
	n := &Normalizer{
		phrases: make(map[string]*phraseMatcher, len(cfg.Phrases)),
		ja:      newJapaneseSegmenter(),
	}

	for lang, list := range cfg.Phrases {
		m, err := newPhraseMatcher(list, fold)
		if err != nil {
			return nil, fmt.Errorf("normalizer: phrases for %q: %w", lang, err)
		}
		n.phrases[lang] = m
	}

	return n, nil
}

// Normalize converts raw chapter text into the ordered token sequence for
// the given language. Returns ErrValidation for malformed input.
func (n *Normalizer) Normalize(langCode, text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, domain.NewValidationError("content", "text is not valid UTF-8")
	}

	var words []string
	var err error
	if langCode == "ja" {
		words, err = n.ja.segment(fold(text))
	} else {
		words = segmentWords(fold(text))
	}
	if err != nil {
		return nil, fmt.Errorf("segment %s text: %w", langCode, err)
	}

	if m, ok := n.phrases[langCode]; ok {
		return m.apply(words), nil
	}

	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Surface: w, Kind: domain.TokenKindWord})
	}
	return tokens, nil
}

// WordCount returns the number of WORD-kind tokens in the sequence.
// Phrases are counted as phrases, never as their component words.
func WordCount(tokens []Token) int {
	count := 0
	for _, t := range tokens {
		if t.Kind == domain.TokenKindWord {
			count++
		}
	}
	return count
}

// fold lowercases and compatibility-normalizes text (NFKC), so that
// full-width forms, ligatures and case variants share one norm.
// A cases.Caser is stateful, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}
