// Package oplerr collects the sentinel errors the player surfaces to
// callers. Per the driver's error-handling policy, most failure modes
// inside a running song (a missing voice, an out-of-range percussion key)
// are logged and silently dropped rather than returned; only the errors
// below ever cross a public API boundary.
package oplerr

import "errors"

var (
	// ErrNotInitialized is returned when a Player method that requires an
	// initialized driver is called before Init succeeds.
	ErrNotInitialized = errors.New("oplmidi: player not initialized")

	// ErrNoFreeVoice names a failed voice allocation. No code path
	// returns it: when no voice is free the allocator logs a warning and
	// the MIDI note silently fails to sound, matching the original driver.
	ErrNoFreeVoice = errors.New("oplmidi: no free voice available")

	// ErrBadInstrumentBank is returned when a GENMIDI lump fails its
	// header check or is truncated.
	ErrBadInstrumentBank = errors.New("oplmidi: malformed GENMIDI instrument bank")

	// ErrChipAbsent is returned when Driver.Init reports no OPL chip
	// could be detected or opened.
	ErrChipAbsent = errors.New("oplmidi: no OPL chip detected")

	// ErrPercussionOutOfRange is returned internally when a percussion
	// note-on arrives for a MIDI key outside the supported GM drum range
	// (35-81); callers never see it, it is only logged.
	ErrPercussionOutOfRange = errors.New("oplmidi: percussion key out of range")
)
