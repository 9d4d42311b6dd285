package utils

import "testing"

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := Ellipsize(tt.in, tt.width); got != tt.want {
			t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := TruncateString("hello", 3); got != "hel" {
		t.Errorf("expected %q, got %q", "hel", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("one\ntwo"); got != "one" {
		t.Errorf("expected %q, got %q", "one", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("expected %q, got %q", "single", got)
	}
}
