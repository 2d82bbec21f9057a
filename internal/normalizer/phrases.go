package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexread/lexread-backend/internal/domain"
)

// phraseMatcher replaces known multi-word expressions in a word sequence
// with single PHRASE tokens, longest match first.
type phraseMatcher struct {
	// byFirst maps the first word of each phrase to the candidate word
	// sequences starting with it, longest first.
	byFirst map[string][][]string
}

func newPhraseMatcher(phrases []string, fold func(string) string) (*phraseMatcher, error) {
	m := &phraseMatcher{byFirst: make(map[string][][]string)}

	for _, p := range phrases {
		words := strings.Fields(fold(p))
		if len(words) < 2 {
			return nil, fmt.Errorf("phrase %q must contain at least two words", p)
		}
		m.byFirst[words[0]] = append(m.byFirst[words[0]], words)
	}

	for first := range m.byFirst {
		sort.SliceStable(m.byFirst[first], func(i, j int) bool {
			return len(m.byFirst[first][i]) > len(m.byFirst[first][j])
		})
	}

	return m, nil
}

// apply scans the word sequence left to right. At each position the longest
// matching phrase wins and its constituent words are consumed; unmatched
// words pass through as WORD tokens.
func (m *phraseMatcher) apply(words []string) []Token {
	tokens := make([]Token, 0, len(words))

	for i := 0; i < len(words); {
		matched := false
		for _, candidate := range m.byFirst[words[i]] {
			if matchesAt(words, i, candidate) {
				tokens = append(tokens, Token{
					Surface: strings.Join(candidate, " "),
					Kind:    domain.TokenKindPhrase,
				})
				i += len(candidate)
				matched = true
				break
			}
		}
		if !matched {
			tokens = append(tokens, Token{Surface: words[i], Kind: domain.TokenKindWord})
			i++
		}
	}

	return tokens
}

func matchesAt(words []string, start int, candidate []string) bool {
	if start+len(candidate) > len(words) {
		return false
	}
	for j, w := range candidate {
		if words[start+j] != w {
			return false
		}
	}
	return true
}
