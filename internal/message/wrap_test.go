package message

import (
	"strings"
	"testing"
)

func TestWrapText_ShortLineUnchanged(t *testing.T) {
	got := WrapText("Short fix.", DefaultWidth)
	if got != "Short fix." {
		t.Errorf("expected line to pass through, got %q", got)
	}
}

func TestWrapText_LongLineWrapped(t *testing.T) {
	text := strings.Repeat("word ", 40)
	got := WrapText(text, DefaultWidth)

	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected long line to wrap onto multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) > DefaultWidth {
			t.Errorf("line %d exceeds width %d: %q", i, DefaultWidth, line)
		}
	}
}

func TestWrapText_RoundTrip(t *testing.T) {
	text := "The quick   brown fox jumps over the lazy dog, then keeps going until the line is definitely longer than seventy-two columns wide."

	wrapped := WrapText(text, DefaultWidth)
	joined := strings.ReplaceAll(wrapped, "\n", " ")

	want := strings.Join(strings.Fields(text), " ")
	if joined != want {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", joined, want)
	}
}

func TestWrapText_NeverBreaksMidWord(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := WrapText("start "+long+" end", DefaultWidth)

	if !strings.Contains(got, long) {
		t.Errorf("expected over-width word to stay intact, got %q", got)
	}
}

func TestWrapText_CodeBlockPreserved(t *testing.T) {
	code := "    indented := " + strings.Repeat("verylongtoken ", 10)
	text := "Intro paragraph.\n```go\n" + code + "\n```\nOutro."

	got := WrapText(text, DefaultWidth)

	if !strings.Contains(got, code) {
		t.Errorf("expected fenced content byte-identical, got %q", got)
	}
	if !strings.Contains(got, "```go") {
		t.Errorf("expected fence line preserved, got %q", got)
	}
}

func TestWrapText_UnterminatedFence(t *testing.T) {
	long := strings.Repeat("word ", 40)
	text := "```\n" + long

	got := WrapText(text, DefaultWidth)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected lone fence to disable wrapping, got %d lines: %q", len(lines), got)
	}
	if lines[1] != long {
		t.Errorf("expected line after unterminated fence unmodified, got %q", lines[1])
	}
}

func TestWrapText_IndentedFenceToggles(t *testing.T) {
	text := "  ```\ncode line\n  ```"
	got := WrapText(text, DefaultWidth)
	if got != text {
		t.Errorf("expected indented fences to toggle and pass through, got %q", got)
	}
}
