package parse

import (
	"errors"
	"testing"
)

func expandWith(t *testing.T, raw string, env map[string]string) string {
	t.Helper()
	got, err := Expand(raw, func(name string) string { return env[name] })
	if err != nil {
		t.Fatalf("Expand(%q) failed: %v", raw, err)
	}
	return got
}

func TestExpandSubstitution(t *testing.T) {
	env := map[string]string{"FOO": "bar", "X": "1", "A_1": "ok"}
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"$FOO", "bar"},
		{"${FOO}", "bar"},
		{"$FOO$FOO", "barbar"},
		{"a$FOO!", "abar!"},
		{"${FOO}x", "barx"},
		{"$A_1", "ok"},
		{"$UNDEF", ""},
		{"pre${UNDEF}post", "prepost"},
		{"$", "$"},
		{"$1", "$1"},
		{"$ FOO", "$ FOO"},
		{"${}", ""},
		{`"$FOO"`, "bar"},
		{`\$FOO`, "$FOO"},
		{`"\$FOO"`, "$FOO"},
	}
	for _, tt := range tests {
		if got := expandWith(t, tt.raw, env); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExpandEscapes(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		// Backslash escapes decode inside double quotes only.
		{`"\n"`, "\n"},
		{`"a\tb"`, "a\tb"},
		{`"\a\e\v\0"`, "\x07\x1b\x0b\x00"},
		{`"\q"`, "q"},
		{`"\\"`, `\`},
		{`"\""`, `"`},
		// Outside quotes the escaped character is copied verbatim.
		{`\n`, "n"},
		{`\ `, " "},
		{`\\`, `\`},
		{`a\`, "a"},
	}
	for _, tt := range tests {
		if got := expandWith(t, tt.raw, nil); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExpandSingleQuoteSuppression(t *testing.T) {
	env := map[string]string{"FOO": "bar", "B": "beta"}
	tests := []struct {
		raw  string
		want string
	}{
		{`'$FOO'`, "$FOO"},
		// Suppression clears on the first non-quote character, so later
		// references in the same run still expand.
		{`'a$B'`, "abeta"},
		{`''`, "'"},
		{`'x'`, "x"},
	}
	for _, tt := range tests {
		if got := expandWith(t, tt.raw, env); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestExpandBadSubstitution(t *testing.T) {
	for _, raw := range []string{"${FOO", "${1}", "${A-B}", "${"} {
		_, err := Expand(raw, func(string) string { return "" })
		var berr *BadSubstitutionError
		if !errors.As(err, &berr) {
			t.Errorf("Expand(%q) error = %v, want BadSubstitutionError", raw, err)
		}
	}
}
