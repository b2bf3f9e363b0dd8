package arena

import "testing"

// TestTryAllocAlignmentSweep checks that for every (size, align) pair where
// align is a power of two, the pointer the bump primitive returns is
// align-aligned.
func TestTryAllocAlignmentSweep(t *testing.T) {
	aligns := []uintptr{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096}
	sizes := []uintptr{0, 1, 3, 7, 15, 100}

	for _, align := range aligns {
		for _, size := range sizes {
			a := WithCapacity(1 << 16)
			ptr, err := a.TryAllocLayout(size, align)
			if err != nil {
				t.Fatalf("TryAllocLayout(size=%d, align=%d) returned error: %v", size, align, err)
			}
			addr := uintptr(ptr)
			if addr%align != 0 {
				t.Errorf("TryAllocLayout(size=%d, align=%d) returned unaligned pointer %#x", size, align, addr)
			}
			a.Release()
		}
	}
}

// TestTryAllocRepeatedZeroSizedDoesNotConsumeCapacity checks that
// repeating a zero-sized request never moves the cursor.
func TestTryAllocRepeatedZeroSizedDoesNotConsumeCapacity(t *testing.T) {
	a := New()
	defer a.Release()

	before := a.current.cursor
	for i := 0; i < 100; i++ {
		ptr, err := a.TryAllocLayout(0, 8)
		if err != nil {
			t.Fatalf("zero-sized TryAllocLayout failed: %v", err)
		}
		if ptr == nil {
			t.Fatal("zero-sized TryAllocLayout returned a nil pointer")
		}
		if uintptr(ptr)%8 != 0 {
			t.Errorf("zero-sized allocation %d not 8-aligned: %#x", i, uintptr(ptr))
		}
	}
	if a.current.cursor != before {
		t.Errorf("cursor moved from %#x to %#x after only zero-sized requests", before, a.current.cursor)
	}
}

// TestTryAllocFailsNonDestructively confirms that an allocation request
// the current chunk cannot satisfy leaves the cursor untouched.
func TestTryAllocFailsNonDestructively(t *testing.T) {
	a := WithCapacity(64)
	defer a.Release()

	before := a.current.cursor
	if _, ok := a.current.tryAlloc(1<<20, 8); ok {
		t.Fatal("expected tryAlloc to fail for a request far larger than the chunk")
	}
	if a.current.cursor != before {
		t.Errorf("cursor moved from %#x to %#x on a failed allocation", before, a.current.cursor)
	}
}
