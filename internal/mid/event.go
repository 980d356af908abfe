// Package mid models the small slice of MIDI event semantics the OPL
// driver cares about: note on/off, controller changes, program change,
// pitch bend, and the two meta events (set tempo, end of track) that
// drive the track scheduler. It does not parse MIDI or MUS files — file
// parsing, WAD lump loading, and MUS-to-MID conversion are external
// collaborators per the driver's scope, kept behind the TrackIterator
// interface below. The event field layout is adapted from the pack's
// winlinvip-audio MIDI event model (Event/EventType with per-type payload
// fields), trimmed to the fields the OPL driver consumes.
package mid

// EventType identifies which channel or meta event an Event carries.
type EventType uint8

const (
	EventNoteOff EventType = iota
	EventNoteOn
	EventController
	EventProgramChange
	EventPitchBend
	EventMetaSetTempo
	EventMetaEndOfTrack
	EventOther // SysEx and meta events the driver ignores
)

// Controller numbers the driver recognizes (the rest are accepted and
// ignored, matching the original's ControllerEvent switch).
const (
	ControllerMainVolume  = 7
	ControllerPan         = 10
	ControllerAllNotesOff = 123
)

// Event is one MIDI channel or meta event, already split into the fields
// the dispatcher needs; a real parser fills these in from raw bytes.
type Event struct {
	Type EventType

	// Channel is the MIDI channel 0-15 for channel events.
	Channel uint8

	// Param1/Param2 hold the event's raw data bytes: note+velocity for
	// Note On/Off, controller number+value for Controller, program number
	// for Program Change (Param1 only), and the two pitch-bend bytes for
	// Pitch Bend.
	Param1 uint8
	Param2 uint8

	// TempoUsPerBeat carries the new tempo for EventMetaSetTempo.
	TempoUsPerBeat uint32
}

// TimedEvent pairs an Event with the number of MIDI ticks to wait after
// the previous event before it fires, mirroring a track's delta-time
// encoding.
type TimedEvent struct {
	DeltaTicks uint32
	Event      Event
}

// TrackIterator yields a track's events one at a time. Real
// implementations wrap a parsed MIDI or MUS track; SliceIterator below
// wraps a pre-built slice for tests and demos.
type TrackIterator interface {
	// NextEvent returns the delta time (in ticks) and event for the next
	// position in the track. ok is false once the track is exhausted.
	NextEvent() (delta uint32, ev Event, ok bool)

	// Restart rewinds the iterator to the first event, used when a song
	// loops.
	Restart()
}
