package normalizer

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// segmentWords splits folded text into word surfaces for alphabetic
// languages. A word is a run of letters or digits; apostrophes and hyphens
// are kept when they join two such runs ("don't", "well-known"), all other
// punctuation separates tokens.
func segmentWords(text string) []string {
	var words []string
	var b strings.Builder

	runes := []rune(text)
	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case (r == '\'' || r == '’' || r == '-') && b.Len() > 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			if r == '’' {
				r = '\''
			}
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return words
}

// japaneseSegmenter wraps a kagome morphological analyzer. Building the IPA
// dictionary is expensive, so it happens once on first use.
type japaneseSegmenter struct {
	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

func newJapaneseSegmenter() *japaneseSegmenter {
	return &japaneseSegmenter{}
}

func (s *japaneseSegmenter) segment(text string) ([]string, error) {
	s.once.Do(func() {
		s.tok, s.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if s.err != nil {
		return nil, fmt.Errorf("init kagome tokenizer: %w", s.err)
	}

	var words []string
	for _, tok := range s.tok.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		surface := strings.TrimSpace(tok.Surface)
		if surface == "" {
			continue
		}
		// Skip punctuation and symbols (kagome POS class 記号).
		if pos := tok.POS(); len(pos) > 0 && pos[0] == "記号" {
			continue
		}
		words = append(words, surface)
	}
	return words, nil
}
