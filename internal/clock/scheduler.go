// Package clock schedules the track timer callbacks the player dispatches
// events from. It replaces the teacher's cycle-counted MasterClock
// (internal/clock.MasterClock, which steps CPU/PPU/APU on next-due cycle
// numbers) with a microsecond-deadline priority queue: the same "advance to
// the next due thing, fire it, repeat" shape, generalized from a fixed
// instruction cadence to the arbitrary delta-times a MIDI track produces.
package clock

import "container/heap"

// CallbackID identifies a scheduled callback so it can be reasoned about
// in logs; it has no public cancellation API because the original driver
// never cancels individual callbacks, only clears all of them at once.
type CallbackID uint64

type pending struct {
	id   CallbackID
	due  uint64 // absolute microseconds since the scheduler started
	seq  uint64 // tie-breaker preserving schedule order
	fn   func()
	slot int
}

type pendingHeap []*pending

func (h pendingHeap) Len() int { return len(h) }
func (h pendingHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h pendingHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].slot, h[j].slot = i, j
}
func (h *pendingHeap) Push(x any) {
	p := x.(*pending)
	p.slot = len(*h)
	*h = append(*h, p)
}
func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return p
}

// Scheduler is a logical microsecond clock driving a priority queue of
// due callbacks. It is not itself goroutine-safe; callers that need
// concurrent access (player.Player) serialize through their own lock,
// matching how the teacher's MasterClock is only ever stepped from the
// single emulator loop.
type Scheduler struct {
	now     uint64
	nextSeq uint64
	nextID  CallbackID
	pq      pendingHeap
}

// New returns a Scheduler with its logical clock at zero.
func New() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.pq)
	return s
}

// Now returns the scheduler's current logical time in microseconds.
func (s *Scheduler) Now() uint64 { return s.now }

// SetCallback schedules fn to run after us microseconds of logical time
// have elapsed, mirroring OPL_SetCallback in the original driver. Even a
// zero-microsecond delay is only run from the next Advance call, never
// synchronously from within SetCallback itself: Player's facade methods
// call Start (and therefore SetCallback) while already holding the
// driver lock, and firing a callback inline would re-enter that same
// non-reentrant lock through lockingDispatcher.Dispatch.
func (s *Scheduler) SetCallback(us uint64, fn func()) CallbackID {
	s.nextID++
	s.nextSeq++
	heap.Push(&s.pq, &pending{
		id:  s.nextID,
		due: s.now + us,
		seq: s.nextSeq,
		fn:  fn,
	})
	return s.nextID
}

// ClearCallbacks discards every pending callback without running them,
// mirroring OPL_ClearCallbacks (used on song stop).
func (s *Scheduler) ClearCallbacks() {
	s.pq = s.pq[:0]
	heap.Init(&s.pq)
}

// Pending reports how many callbacks are currently queued.
func (s *Scheduler) Pending() int { return len(s.pq) }

// AdjustCallbacks divides every pending callback's remaining delay by
// ratio, mirroring OPL_AdjustCallbacks: a tempo change passes the
// old/new tempo ratio, so doubling the tempo (ratio 2) halves every
// outstanding wait instead of leaving stale deadlines computed under
// the old tempo.
func (s *Scheduler) AdjustCallbacks(ratio float64) {
	if ratio <= 0 {
		return
	}
	for _, p := range s.pq {
		remaining := float64(p.due-s.now) / ratio
		if remaining < 0 {
			remaining = 0
		}
		p.due = s.now + uint64(remaining)
	}
	heap.Init(&s.pq)
}

// Advance moves the logical clock forward by deltaUs, firing every
// callback whose deadline falls at or before the new time, in due-time
// order (ties broken by schedule order). Callbacks that schedule new
// callbacks with a zero or already-elapsed delay fire within the same
// Advance call, matching how the original driver's timer ISR can chain
// directly into the next event with no wall-clock gap.
func (s *Scheduler) Advance(deltaUs uint64) {
	target := s.now + deltaUs
	for len(s.pq) > 0 && s.pq[0].due <= target {
		p := heap.Pop(&s.pq).(*pending)
		if p.due > s.now {
			s.now = p.due
		}
		p.fn()
	}
	if target > s.now {
		s.now = target
	}
}
