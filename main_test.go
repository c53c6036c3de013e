package main

import "testing"

func TestLongOption(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{}, ""},
		{[]string{"--help"}, "--help"},
		{[]string{"--version"}, "--version"},
		{[]string{"-h", "--version"}, "--version"},
		// The scan stops at the first non-option or at "--".
		{[]string{"file.bin", "--version"}, ""},
		{[]string{"--", "--help"}, ""},
		{[]string{"-v", "file.bin", "--help"}, ""},
	}
	for _, tt := range tests {
		if got := longOption(tt.args); got != tt.want {
			t.Errorf("longOption(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
