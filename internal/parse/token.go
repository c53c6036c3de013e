package parse

// TokenKind distinguishes the spans the tokenizer emits. KindNone is the
// internal "no current token" sentinel and never appears in Tokenize output.
type TokenKind int

const (
	KindNone TokenKind = iota
	KindString
	KindEndStatement
)

// Token is a half-open [Begin, End) byte span into the source line.
type Token struct {
	Kind  TokenKind
	Begin int
	End   int
}

// Text returns the raw span of the token within line.
func (t Token) Text(line string) string {
	return line[t.Begin:t.End]
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
