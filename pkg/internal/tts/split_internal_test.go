package tts

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	chunks := splitText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(chunks, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, chunks)
	}

	chunks = splitText("[pause] abcdefghijkl", 5)
	want = []string{"[paus", "e]", "abcde", "fghij", "kl"}
	if strings.Join(chunks, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, chunks)
	}

	if got := splitText(" \n\t ", 10); len(got) != 0 {
		t.Fatalf("expected no chunks, got %v", got)
	}
}
