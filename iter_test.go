package arena

import (
	"bytes"
	"testing"
)

func TestIterAllocatedChunksSingleChunk(t *testing.T) {
	a := New()
	a.AllocBytes(10)
	a.AllocBytes(20)

	var total int
	for b := range a.IterAllocatedChunks() {
		total += len(b)
	}
	if total != a.AllocatedBytes() {
		t.Errorf("iteration total = %d, want %d (AllocatedBytes)", total, a.AllocatedBytes())
	}
}

func TestIterAllocatedChunksNewestFirst(t *testing.T) {
	a := New()

	first := a.AllocBytes(8)
	copy(first, []byte("FIRST!!!"))

	// Force a new chunk so there are at least two to iterate.
	a.AllocBytes(DefaultChunkSize * 2)
	second := a.AllocBytes(8)
	copy(second, []byte("SECOND!!"))

	var chunks [][]byte
	for b := range a.IterAllocatedChunks() {
		cp := make([]byte, len(b))
		copy(cp, b)
		chunks = append(chunks, cp)
	}

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if !bytes.Contains(chunks[0], []byte("SECOND!!")) {
		t.Errorf("first iterated chunk should be the newest chunk (containing the most recent allocation); got %q", chunks[0])
	}
	found := false
	for _, c := range chunks {
		if bytes.Contains(c, []byte("FIRST!!!")) {
			found = true
		}
	}
	if !found {
		t.Error("the oldest chunk's allocation was not covered by iteration")
	}
}

func TestIterAllocatedChunksCoversEveryLiveByte(t *testing.T) {
	a := New()
	for i := 0; i < 200; i++ {
		b := a.AllocBytes(3)
		b[0], b[1], b[2] = byte(i), byte(i+1), byte(i+2)
	}

	var seen int
	for b := range a.IterAllocatedChunks() {
		seen += len(b)
	}
	if seen != a.AllocatedBytes() {
		t.Errorf("iteration covered %d bytes, want %d", seen, a.AllocatedBytes())
	}
}

func TestIterAllocatedChunksStopsEarly(t *testing.T) {
	a := New()
	a.AllocBytes(DefaultChunkSize * 2)
	a.AllocBytes(8)

	count := 0
	for range a.IterAllocatedChunks() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected iteration to stop after the first yield, got %d", count)
	}
}

func TestIterAllocatedChunksEmptyArena(t *testing.T) {
	a := New()
	n := 0
	for b := range a.IterAllocatedChunks() {
		if len(b) != 0 {
			t.Errorf("empty arena yielded non-empty chunk of length %d", len(b))
		}
		n++
	}
	if n != 1 {
		t.Errorf("expected exactly one (empty) chunk from a fresh arena, got %d", n)
	}
}
