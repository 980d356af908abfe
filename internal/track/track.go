// Package track drives one or more MIDI tracks forward in time, firing
// each track's next due event through an EventDispatcher and
// rescheduling itself for the one after, grounded on
// original_source/src/i_oplmusic.c's ScheduleTrack, TrackTimerCallback
// and RestartSong.
package track

import "oplmidi/internal/mid"

// EventDispatcher applies one decoded mid.Event to whatever channel/voice
// state it targets. *dispatch.Dispatcher satisfies this; it is expressed
// as a small interface here (rather than importing package dispatch
// directly) so track has no dependency on dispatch, alloc, midichan,
// oplreg or voice — only on mid and opldriver.
type EventDispatcher interface {
	Dispatch(ev mid.Event)
}

// Track pairs a track's event stream with the dispatcher that applies it.
type Track struct {
	Iterator   mid.TrackIterator
	Dispatcher EventDispatcher

	finished bool
}
