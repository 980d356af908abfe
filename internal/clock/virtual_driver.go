package clock

import (
	"sync"

	"oplmidi/internal/opldriver"
)

// VirtualDriver is a deterministic opldriver.Driver backed by a Scheduler
// instead of a real chip and wall clock. It exists so track and player
// tests can drive a song through exact, repeatable microsecond steps
// (Advance) and inspect every register write, the same role a null sound
// driver plays in the original engine's automated test builds.
type VirtualDriver struct {
	mu   sync.Mutex
	sched *Scheduler

	kind   opldriver.ChipKind
	paused bool

	// Writes records every register write in order, for test assertions.
	Writes []RegisterWrite
}

// RegisterWrite is one recorded WriteRegister call.
type RegisterWrite struct {
	Reg uint16
	Val uint8
}

// NewVirtualDriver returns a VirtualDriver that will report kind from
// Init (ChipOPL3 by default is the natural choice for exercising stereo
// pan in tests; callers needing OPL2 behavior pass opldriver.ChipOPL2).
func NewVirtualDriver(kind opldriver.ChipKind) *VirtualDriver {
	return &VirtualDriver{sched: New(), kind: kind}
}

func (d *VirtualDriver) Init(ioPort int) (opldriver.ChipKind, error) {
	return d.kind, nil
}

func (d *VirtualDriver) Shutdown() {
	d.sched.ClearCallbacks()
}

func (d *VirtualDriver) SetSampleRate(hz uint32) {}

func (d *VirtualDriver) WriteRegister(reg uint16, val uint8) {
	d.Writes = append(d.Writes, RegisterWrite{Reg: reg, Val: val})
}

func (d *VirtualDriver) SetCallback(us uint64, fn func()) opldriver.CallbackHandle {
	id := d.sched.SetCallback(us, fn)
	return opldriver.CallbackHandle(id)
}

func (d *VirtualDriver) ClearCallbacks() { d.sched.ClearCallbacks() }

func (d *VirtualDriver) AdjustCallbacks(ratio float64) { d.sched.AdjustCallbacks(ratio) }

func (d *VirtualDriver) SetPaused(paused bool) { d.paused = paused }

// Paused reports whether SetPaused(true) is in effect, for test assertions.
func (d *VirtualDriver) Paused() bool { return d.paused }

func (d *VirtualDriver) Lock()   { d.mu.Lock() }
func (d *VirtualDriver) Unlock() { d.mu.Unlock() }

// Advance steps the underlying Scheduler forward by deltaUs, firing every
// due callback. Tests call this instead of sleeping real time.
func (d *VirtualDriver) Advance(deltaUs uint64) { d.sched.Advance(deltaUs) }

// Pending reports how many callbacks are still outstanding.
func (d *VirtualDriver) Pending() int { return d.sched.Pending() }

// Now returns the underlying Scheduler's logical time in microseconds.
func (d *VirtualDriver) Now() uint64 { return d.sched.Now() }
