package datefmt

// TokenKind distinguishes fields from structural delimiters
type TokenKind int

const (
	TokenField TokenKind = iota
	TokenDelim
)

// Token is one element of a scanned date expression
type Token struct {
	Kind TokenKind
	Text string
}

// IsDelim reports whether the token is the structural delimiter d
func (t Token) IsDelim(d byte) bool {
	return t.Kind == TokenDelim && t.Text[0] == d
}

func isDelimiter(c byte) bool {
	switch c {
	case '-', '/', ',', ' ':
		return true
	}
	return false
}

// Tokenize splits input in one pass on '-', '/', ',' and space.
// Maximal runs of other bytes become fields. Every '-', '/' and ',' becomes a
// delimiter token; spaces only separate and are dropped.
func Tokenize(input string) []Token {
	var tokens []Token

	start := -1
	for i := 0; i < len(input); i++ {
		c := input[i]
		if !isDelimiter(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Kind: TokenField, Text: input[start:i]})
			start = -1
		}
		if c != ' ' {
			tokens = append(tokens, Token{Kind: TokenDelim, Text: input[i : i+1]})
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Kind: TokenField, Text: input[start:]})
	}

	return tokens
}
