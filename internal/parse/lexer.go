package parse

import "fmt"

// TokenizeError reports a line that cannot be tokenized, currently always an
// unterminated quote. Pos is the byte offset of the opening quote.
type TokenizeError struct {
	Pos int
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("parse error at %d: unterminated quote", e.Pos)
}

// Tokenize splits line into STRING and END_STATEMENT tokens in one
// left-to-right pass. Statement separators are ';', '\r' and '\n'; spaces
// separate tokens without producing any; double and single quotes open quoted
// regions that are scanned to their closing quote in one jump, quotes included
// in the span (unescaping happens later, in Expand). A backslash makes the
// following character ordinary. The returned sequence always ends with a
// synthetic END_STATEMENT so every statement is terminated.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	current := Token{Kind: KindNone}
	escaped := false

	push := func(end int) {
		if current.Kind != KindNone {
			current.End = end
			tokens = append(tokens, current)
			current = Token{Kind: KindNone}
		}
	}

	for i := 0; i < len(line); i++ {
		if escaped {
			escaped = false
			if current.Kind != KindString {
				current = Token{Kind: KindString, Begin: i}
			}
			continue
		}

		switch c := line[i]; c {
		case ';', '\r', '\n':
			push(i)
			tokens = append(tokens, Token{Kind: KindEndStatement, Begin: i, End: i + 1})

		case '"', '\'':
			if current.Kind != KindString {
				current = Token{Kind: KindString, Begin: i}
			}
			end, err := scanQuoted(line, i)
			if err != nil {
				return nil, err
			}
			i = end

		case ' ':
			push(i)

		case '\\':
			escaped = true

		default:
			if current.Kind != KindString {
				current = Token{Kind: KindString, Begin: i}
			}
		}
	}

	push(len(line))
	tokens = append(tokens, Token{Kind: KindEndStatement, Begin: len(line), End: len(line)})
	return tokens, nil
}

// scanQuoted scans forward from the opening quote at pos and returns the
// offset of the matching closing quote, honoring backslash escapes of the
// quote character.
func scanQuoted(line string, pos int) (int, error) {
	quote := line[pos]
	escaped := false
	for i := pos + 1; i < len(line); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch line[i] {
		case '\\':
			escaped = true
		case quote:
			return i, nil
		}
	}
	return 0, &TokenizeError{Pos: pos}
}
