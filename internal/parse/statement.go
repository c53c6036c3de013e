package parse

// StatementKind tags the two statement variants. There is deliberately no
// third: a line is made of assignments and commands only.
type StatementKind int

const (
	StmtAssign StatementKind = iota
	StmtCommand
)

// Statement is one parsed statement, either an assignment or a command.
// Exactly one of Assign and Command is non-nil, matching Kind.
type Statement struct {
	Kind    StatementKind
	Assign  *Assignment
	Command *Command
}

// Assignment holds the name and the unexpanded text right of '='.
type Assignment struct {
	Name     string
	RawValue string
}

// Command holds the unexpanded argument tokens in order; RawArgs[0] is the
// command name.
type Command struct {
	RawArgs []string
}

// IsAssignment reports whether the STRING token tok spans a NAME=VALUE
// pattern: the first unescaped '=' must be preceded by an identifier
// ([A-Za-z_][A-Za-z0-9_]*) occupying the whole prefix.
func IsAssignment(line string, tok Token) bool {
	_, _, ok := SplitAssignment(line, tok)
	return ok
}

// SplitAssignment returns the name and raw value of an assignment token, or
// ok=false when the token is not an assignment.
func SplitAssignment(line string, tok Token) (name, rawValue string, ok bool) {
	eq := -1
	escaped := false
	for i := tok.Begin; i < tok.End; i++ {
		if escaped {
			escaped = false
			continue
		}
		switch line[i] {
		case '\\':
			escaped = true
		case '=':
			eq = i
		}
		if eq >= 0 {
			break
		}
	}
	if eq < 0 {
		return "", "", false
	}

	if !isNameStart(line[tok.Begin]) {
		return "", "", false
	}
	for i := tok.Begin + 1; i < eq; i++ {
		if !isNameChar(line[i]) {
			return "", "", false
		}
	}
	return line[tok.Begin:eq], line[eq+1 : tok.End], true
}

// Parse tokenizes line and groups the tokens into an ordered statement
// sequence. A STRING token matching the assignment pattern becomes one
// Assignment statement; any other STRING token starts a Command that greedily
// consumes the following STRING tokens up to the next statement separator.
func Parse(line string) ([]Statement, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return build(line, tokens), nil
}

func build(line string, tokens []Token) []Statement {
	var stmts []Statement
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind == KindEndStatement {
			continue
		}

		if name, rawValue, ok := SplitAssignment(line, tokens[i]); ok {
			stmts = append(stmts, Statement{
				Kind:   StmtAssign,
				Assign: &Assignment{Name: name, RawValue: rawValue},
			})
			continue
		}

		cmd := &Command{}
		for ; i < len(tokens) && tokens[i].Kind == KindString; i++ {
			cmd.RawArgs = append(cmd.RawArgs, tokens[i].Text(line))
		}
		stmts = append(stmts, Statement{Kind: StmtCommand, Command: cmd})
	}
	return stmts
}
