package parse

import "fmt"

// BadSubstitutionError reports a malformed ${...} form: a disallowed
// character inside the braces, or a brace form still open at end of input.
type BadSubstitutionError struct {
	Raw string
	Pos int
}

func (e *BadSubstitutionError) Error() string {
	return fmt.Sprintf("bad substitution at %d in %q", e.Pos, e.Raw)
}

// varState is the variable-expansion phase of the expander FSM.
type varState int

const (
	varNone  varState = iota // no expansion in progress
	varMaybe                 // just saw '$'
	varPlain                 // accumulating a bare $name
	varBrace                 // accumulating a ${name}
)

// escapeChar maps the letters recognized inside double quotes to control
// characters; anything else maps to itself.
func escapeChar(c byte) byte {
	switch c {
	case '0':
		return 0x00
	case 'a':
		return 0x07
	case 'e':
		return 0x1b
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'v':
		return 0x0b
	}
	return c
}

// Expand resolves escape sequences and $name / ${name} references in the raw
// text of one statement, looking names up through lookup (which returns the
// empty string for undefined names).
//
// Quote handling is a character-by-character state machine, and its two
// quirks are part of the contract: a double quote toggles a region in which
// backslash escapes are decoded, while a single quote suppresses
// interpretation of the run that follows, clearing on the first character
// that is not itself a single quote.
func Expand(raw string, lookup func(string) string) (string, error) {
	var out []byte
	var name []byte
	var (
		doubleQuote   bool
		singleQuote   bool
		escapePending bool
	)
	state := varNone

	for i := 0; i < len(raw); {
		c := raw[i]

		if singleQuote {
			out = append(out, c)
			if c != '\'' {
				singleQuote = false
			}
			i++
			continue
		}

		if escapePending {
			escapePending = false
			if doubleQuote {
				out = append(out, escapeChar(c))
			} else {
				out = append(out, c)
			}
			i++
			continue
		}

		switch state {
		case varMaybe:
			if c == '{' {
				state = varBrace
				i++
				continue
			}
			if isNameStart(c) {
				state = varPlain
				name = append(name, c)
				i++
				continue
			}
			// Not a substitution: a literal '$', then the current
			// character is reprocessed under normal rules.
			out = append(out, '$')
			state = varNone
			continue

		case varPlain:
			if isNameChar(c) {
				name = append(name, c)
				i++
				continue
			}
			out = append(out, lookup(string(name))...)
			name = name[:0]
			state = varNone
			continue

		case varBrace:
			if c == '}' {
				out = append(out, lookup(string(name))...)
				name = name[:0]
				state = varNone
				i++
				continue
			}
			valid := isNameChar(c)
			if len(name) == 0 {
				valid = isNameStart(c)
			}
			if !valid {
				return "", &BadSubstitutionError{Raw: raw, Pos: i}
			}
			name = append(name, c)
			i++
			continue
		}

		switch c {
		case '"':
			doubleQuote = !doubleQuote
		case '\'':
			singleQuote = true
		case '\\':
			escapePending = true
		case '$':
			state = varMaybe
		default:
			out = append(out, c)
		}
		i++
	}

	switch state {
	case varMaybe:
		out = append(out, '$')
	case varPlain:
		out = append(out, lookup(string(name))...)
	case varBrace:
		return "", &BadSubstitutionError{Raw: raw, Pos: len(raw)}
	}
	return string(out), nil
}
