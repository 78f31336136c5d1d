package encoding

import (
	"io"
	"strings"
	"testing"
)

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unix", "a\nb\n", "a\nb\n"},
		{"windows", "a\r\nb\r\n", "a\nb\n"},
		{"classic mac", "a\rb\r", "a\nb\n"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNewlines(tt.in); got != tt.want {
				t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCharsetReaderLatin1(t *testing.T) {
	// "café" in windows-1252
	r, err := CharsetReader("windows-1252", strings.NewReader("caf\xe9"))
	if err != nil {
		t.Fatalf("CharsetReader: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "café" {
		t.Errorf("got %q, want %q", data, "café")
	}
}

func TestCharsetReaderUnknown(t *testing.T) {
	if _, err := CharsetReader("no-such-charset", strings.NewReader("x")); err == nil {
		t.Error("expected error for unknown charset, got nil")
	}
}
