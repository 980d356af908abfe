package voice

import "testing"

func TestNewPoolSeedsFreeListAndOperatorOffsets(t *testing.T) {
	p := NewPool(9, DriverDoom1v9)
	if p.AllocatedCount() != 0 {
		t.Fatalf("got %d allocated, want 0", p.AllocatedCount())
	}
	if !p.HasFree() {
		t.Fatalf("expected a freshly built pool to have free voices")
	}
	v := p.Voice(3)
	if v.Index != 3 || v.Op1 != 0x08 || v.Op2 != 0x0b {
		t.Fatalf("got voice 3 = %+v, want Index=3 Op1=0x08 Op2=0x0b", v)
	}
}

func TestOPL3PoolSplitsIntoTwoBanks(t *testing.T) {
	p := NewPool(18, DriverDoom1v9)
	if p.Voice(0).Bank != 0 || p.Voice(9).Bank != 1 {
		t.Fatalf("got banks %d/%d, want 0/1", p.Voice(0).Bank, p.Voice(9).Bank)
	}
	if p.Voice(9).Index != 0 {
		t.Fatalf("got Index %d for first voice of bank 1, want 0", p.Voice(9).Index)
	}
}

func TestGetFreeDrainsFreeListInFIFOOrder(t *testing.T) {
	p := NewPool(9, DriverDoom1v9)
	first, ok := p.GetFree()
	if !ok || first != 0 {
		t.Fatalf("got (%d,%v), want (0,true)", first, ok)
	}
	second, ok := p.GetFree()
	if !ok || second != 1 {
		t.Fatalf("got (%d,%v), want (1,true)", second, ok)
	}
	if p.AllocatedCount() != 2 {
		t.Fatalf("got %d allocated, want 2", p.AllocatedCount())
	}
}

func TestGetFreeFailsWhenExhausted(t *testing.T) {
	p := NewPool(2, DriverDoom1v9)
	p.GetFree()
	p.GetFree()
	if _, ok := p.GetFree(); ok {
		t.Fatalf("expected GetFree to fail once the pool is exhausted")
	}
}

func TestReleaseAppendsToFreeTailForFIFOReuse(t *testing.T) {
	p := NewPool(3, DriverDoom1v9)
	a, _ := p.GetFree()
	b, _ := p.GetFree()
	p.GetFree()

	p.Release(a, func(int) {})
	p.Release(b, func(int) {})

	// Free list now holds `a` then `b`; because Release appends to the
	// tail, the next GetFree returns `a` before the later-released `b`,
	// preserving FIFO reuse order.
	c, _ := p.GetFree()
	if c != a {
		t.Fatalf("got %d, want released voice %d reused first", c, a)
	}
}

func TestReleaseCascadesToSiblingUnderPre19Driver(t *testing.T) {
	p := NewPool(3, DriverBeta)
	first, _ := p.GetFree()
	second, _ := p.GetFree()
	p.Voice(first).InstrumentVoice = 1 // plays a double voice's second layer

	var keyedOff []int
	p.Release(first, func(idx int) { keyedOff = append(keyedOff, idx) })

	if p.AllocatedCount() != 0 {
		t.Fatalf("got %d allocated after cascading release, want 0", p.AllocatedCount())
	}
	if len(keyedOff) != 1 || keyedOff[0] != second {
		t.Fatalf("got keyedOff=%v, want sibling %d to be key-off'd", keyedOff, second)
	}
}

func TestReleaseDoesNotCascadeUnderDoom19(t *testing.T) {
	p := NewPool(3, DriverDoom1v9)
	first, _ := p.GetFree()
	_, _ = p.GetFree()
	p.Voice(first).InstrumentVoice = 1

	p.Release(first, func(int) {})

	if p.AllocatedCount() != 1 {
		t.Fatalf("got %d allocated, want 1 (sibling must not cascade under doom_1.9)", p.AllocatedCount())
	}
}

func TestReleaseMatchingRestartsSafelyAfterCascade(t *testing.T) {
	p := NewPool(4, DriverBeta)
	a, _ := p.GetFree()
	_, _ = p.GetFree()
	c, _ := p.GetFree()
	p.Voice(a).Channel = 1
	p.Voice(a).InstrumentVoice = 1 // a's release cascades into b
	p.Voice(c).Channel = 1

	var released []int
	p.ReleaseMatching(
		func(idx int) bool { return p.Voice(idx).Channel == 1 },
		func(idx int) { released = append(released, idx) },
	)

	if p.AllocatedCount() != 0 {
		t.Fatalf("got %d allocated, want 0", p.AllocatedCount())
	}
	if len(released) != 3 {
		t.Fatalf("got released=%v, want all three of a,sibling-b,c key-off'd exactly once", released)
	}
}

