package domain

// TokenKind is the integer-coded kind of a vocabulary token.
// The wire values (1, 2) are part of the persisted schema.
type TokenKind int16

const (
	TokenKindWord   TokenKind = 1
	TokenKindPhrase TokenKind = 2
)

func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindWord, TokenKindPhrase:
		return true
	}
	return false
}

func (k TokenKind) String() string {
	switch k {
	case TokenKindWord:
		return "WORD"
	case TokenKindPhrase:
		return "PHRASE"
	}
	return "UNKNOWN"
}

// ParseTokenKind validates a raw integer code read from storage or input.
func ParseTokenKind(v int16) (TokenKind, error) {
	k := TokenKind(v)
	if !k.IsValid() {
		return 0, NewValidationError("kind", "must be 1 (WORD) or 2 (PHRASE)")
	}
	return k, nil
}

// Token is a normalized vocabulary unit, unique per (language, norm).
// Tokens are shared by every book in a language and are never deleted.
type Token struct {
	ID         int64
	LanguageID int64
	Norm       string
	Kind       TokenKind
}
