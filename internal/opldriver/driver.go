// Package opldriver defines the boundary between the MIDI/OPL core and a
// real (or simulated) OPL chip plus its timing source — register I/O,
// chip detection, sample rate, and scheduled callbacks are all external
// collaborators the core only ever reaches through this interface, never
// implements directly.
package opldriver

// ChipKind identifies what Init detected, mirroring the original driver's
// distinction between a plain OPL2 and an OPL3 (enabling stereo panning
// and the second voice bank).
type ChipKind int

const (
	ChipNone ChipKind = iota
	ChipOPL2
	ChipOPL3
)

// Driver is the host-side collaborator the player drives: register
// writes, a microsecond callback scheduler, pause/resume, and the
// process-wide lock the original driver takes around every mutation.
type Driver interface {
	// Init opens the chip at ioPort and reports what was found, or
	// oplerr.ErrChipAbsent if no chip answered.
	Init(ioPort int) (ChipKind, error)
	Shutdown()

	SetSampleRate(hz uint32)

	WriteRegister(reg uint16, val uint8)

	// SetCallback schedules fn to run after us microseconds, returning a
	// handle for diagnostic purposes (the original driver never cancels
	// an individual callback, only clears all of them at once).
	SetCallback(us uint64, fn func()) CallbackHandle
	ClearCallbacks()
	// AdjustCallbacks divides every outstanding callback's remaining
	// delay by ratio (the old/new tempo ratio), used when a Set Tempo
	// meta event changes the track's microseconds-per-beat.
	AdjustCallbacks(ratio float64)

	SetPaused(paused bool)

	Lock()
	Unlock()
}

// CallbackHandle identifies a scheduled callback.
type CallbackHandle uint64
