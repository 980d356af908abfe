package clock

import "testing"

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := New()
	var order []string

	s.SetCallback(300, func() { order = append(order, "c") })
	s.SetCallback(100, func() { order = append(order, "a") })
	s.SetCallback(200, func() { order = append(order, "b") })

	s.Advance(1000)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestSchedulerTiesBreakOnScheduleOrder(t *testing.T) {
	s := New()
	var order []int

	for i := 0; i < 5; i++ {
		i := i
		s.SetCallback(50, func() { order = append(order, i) })
	}
	s.Advance(50)

	for i := 0; i < 5; i++ {
		if order[i] != i {
			t.Fatalf("got %v, want schedule order 0..4", order)
		}
	}
}

func TestSchedulerChainedZeroDelayFiresSameAdvance(t *testing.T) {
	s := New()
	fired := 0
	var chain func()
	chain = func() {
		fired++
		if fired < 3 {
			s.SetCallback(0, chain)
		}
	}
	s.SetCallback(10, chain)
	s.Advance(10)

	if fired != 3 {
		t.Fatalf("got %d chained fires, want 3", fired)
	}
}

func TestSchedulerDoesNotFireBeyondTarget(t *testing.T) {
	s := New()
	fired := false
	s.SetCallback(500, func() { fired = true })
	s.Advance(100)

	if fired {
		t.Fatalf("callback fired before its due time")
	}
	if s.Now() != 100 {
		t.Fatalf("got now=%d, want 100", s.Now())
	}

	s.Advance(400)
	if !fired {
		t.Fatalf("callback did not fire once due time passed")
	}
}

func TestClearCallbacksDiscardsPending(t *testing.T) {
	s := New()
	fired := false
	s.SetCallback(10, func() { fired = true })
	s.ClearCallbacks()
	s.Advance(1000)

	if fired {
		t.Fatalf("callback fired after ClearCallbacks")
	}
	if s.Pending() != 0 {
		t.Fatalf("got %d pending, want 0", s.Pending())
	}
}

func TestAdjustCallbacksRescalesRemainingDelay(t *testing.T) {
	s := New()
	s.SetCallback(200, func() {})
	s.AdjustCallbacks(2.0) // tempo doubled: remaining delay halves

	if s.pq[0].due != 100 {
		t.Fatalf("got due=%d, want 100 after halving remaining delay", s.pq[0].due)
	}

	s.Advance(50)
	s.AdjustCallbacks(0.5) // tempo halved: remaining delay doubles
	if s.pq[0].due != 150 {
		t.Fatalf("got due=%d, want 150 after doubling remaining delay", s.pq[0].due)
	}
}
