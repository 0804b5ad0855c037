package chunker

import (
	"strings"
	"testing"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	text := "Revenue was $100M.\nEarnings were $20M."
	chunks := Split(text, 3000)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected chunk to equal input, got %q", chunks[0])
	}
}

func TestSplit_EmptyInputYieldsOneEmptyChunk(t *testing.T) {
	chunks := Split("", 3000)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for empty input, got %d", len(chunks))
	}
	if chunks[0] != "" {
		t.Errorf("expected empty chunk, got %q", chunks[0])
	}
}

func TestSplit_LineCoverage(t *testing.T) {
	// 40 lines of ~60 chars against a 500-char bound forces several chunks.
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, strings.Repeat("x", 50)+" line")
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, 500)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Rejoining every chunk's lines must reproduce the original line sequence.
	var got []string
	for _, c := range chunks {
		got = append(got, strings.Split(c, "\n")...)
	}
	if len(got) != len(lines) {
		t.Fatalf("expected %d lines after rejoin, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Errorf("line %d: expected %q, got %q", i, lines[i], got[i])
		}
	}
}

func TestSplit_SizeBound(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, strings.Repeat("a", 37))
	}
	text := strings.Join(lines, "\n")

	max := 200
	for i, c := range Split(text, max) {
		// The bound counts line characters, not the rejoining newlines.
		sum := 0
		for _, l := range strings.Split(c, "\n") {
			sum += len(l)
		}
		if sum > max {
			t.Errorf("chunk %d: %d chars exceeds bound %d", i, sum, max)
		}
	}
}

func TestSplit_OversizedLineFormsOwnChunk(t *testing.T) {
	long := strings.Repeat("z", 5000)
	text := "short\n" + long + "\nshort again"

	chunks := Split(text, 1000)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0] != "short" {
		t.Errorf("chunk 0: expected %q, got %q", "short", chunks[0])
	}
	if chunks[1] != long {
		t.Errorf("chunk 1: expected the oversized line intact, got %d chars", len(chunks[1]))
	}
	if chunks[2] != "short again" {
		t.Errorf("chunk 2: expected %q, got %q", "short again", chunks[2])
	}
}

func TestSplit_SingleOversizedLine(t *testing.T) {
	long := strings.Repeat("z", 5000)
	chunks := Split(long, 1000)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != long {
		t.Errorf("expected the whole line in one chunk, got %d chars", len(chunks[0]))
	}
}

func TestSplit_Deterministic(t *testing.T) {
	text := strings.Repeat("quarterly revenue grew 12% year over year\n", 200)

	a := Split(text, 700)
	b := Split(text, 700)

	if len(a) != len(b) {
		t.Fatalf("chunk counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplit_ZeroMaxUsesDefault(t *testing.T) {
	text := "one line"
	chunks := Split(text, 0)
	if len(chunks) != 1 || chunks[0] != text {
		t.Fatalf("expected single chunk %q, got %v", text, chunks)
	}
}
