package track

import (
	"oplmidi/internal/mid"
	"oplmidi/internal/opldriver"
)

// defaultUsPerBeat is the MIDI-spec default tempo (120 BPM) in effect
// until the first Set Tempo meta event, matching the original driver's
// assumed default when a song omits one.
const defaultUsPerBeat = 500000

// restartDelayUs is the pause RestartSong schedules itself after once
// every track has reached end-of-track, rather than restarting
// immediately, to avoid a tight CPU-spinning loop on a degenerate
// empty/instant MIDI file.
const restartDelayUs = 5000

// Scheduler advances every registered Track through its event stream,
// converting MIDI delta-times to microsecond callbacks on a Driver. It
// depends on opldriver.Driver rather than internal/clock.Scheduler
// directly, so the same Scheduler drives both a real chip (through the
// SDL2 demo driver) and a deterministic clock.VirtualDriver in tests —
// internal/clock's priority queue is only ever reached indirectly,
// through whichever Driver implementation is wired in.
type Scheduler struct {
	Driver   opldriver.Driver
	Division uint16 // ticks per quarter note, from the song's header

	tracks    []*Track
	loop      bool
	usPerBeat uint32

	// OnSongEnd is called once every track has reached end-of-track and
	// looping is disabled.
	OnSongEnd func()

	// OnRestart, if set, is called immediately before every track is
	// rewound and rescheduled for a looping song's restart, so a Player
	// can reinitialize its channels exactly as RestartSong does before
	// rescheduling each track.
	OnRestart func()

	runningTracks int
}

// NewScheduler returns a Scheduler that will convert tick delays using
// division ticks per quarter note.
func NewScheduler(driver opldriver.Driver, division uint16) *Scheduler {
	return &Scheduler{Driver: driver, Division: division, usPerBeat: defaultUsPerBeat}
}

// AddTrack registers a track to be driven once Start is called.
func (s *Scheduler) AddTrack(dispatcher EventDispatcher, iter mid.TrackIterator) *Track {
	tr := &Track{Iterator: iter, Dispatcher: dispatcher}
	s.tracks = append(s.tracks, tr)
	return tr
}

// Start rewinds every track to its first event and begins scheduling
// callbacks. loop selects whether the whole song restarts from the
// beginning once every track has reached end-of-track, mirroring RestartSong's behavior for a
// song registered with looping enabled.
func (s *Scheduler) Start(loop bool) {
	s.loop = loop
	s.runningTracks = len(s.tracks)
	for _, tr := range s.tracks {
		tr.finished = false
		tr.Iterator.Restart()
		s.scheduleNext(tr)
	}
}

// Stop discards every outstanding callback, halting playback until Start
// is called again, mirroring OPL_ClearCallbacks on song stop.
func (s *Scheduler) Stop() {
	s.Driver.ClearCallbacks()
}

// SetTempo installs a new microseconds-per-quarter-note tempo from a Set
// Tempo meta event and rescales every outstanding callback's remaining
// delay to match, mirroring MetaSetTempo's call into OPL_AdjustCallbacks:
// a tempo change must not leave callbacks scheduled under the old speed.
func (s *Scheduler) SetTempo(usPerBeat uint32) {
	if usPerBeat == 0 {
		return
	}
	if s.usPerBeat != 0 {
		s.Driver.AdjustCallbacks(float64(s.usPerBeat) / float64(usPerBeat))
	}
	s.usPerBeat = usPerBeat
}

// ticksToUs converts a MIDI delta-time to microseconds at the scheduler's
// current tempo and division.
func (s *Scheduler) ticksToUs(deltaTicks uint32) uint64 {
	if s.Division == 0 {
		return 0
	}
	return uint64(deltaTicks) * uint64(s.usPerBeat) / uint64(s.Division)
}

// scheduleNext pulls tr's next event and schedules a callback to dispatch
// it after the event's delta-time has elapsed, or ends the track if its
// iterator is exhausted.
func (s *Scheduler) scheduleNext(tr *Track) {
	delta, ev, ok := tr.Iterator.NextEvent()
	if !ok {
		s.endTrack(tr)
		return
	}

	us := s.ticksToUs(delta)
	s.Driver.SetCallback(us, func() {
		tr.Dispatcher.Dispatch(ev)
		if ev.Type == mid.EventMetaEndOfTrack {
			s.endTrack(tr)
			return
		}
		s.scheduleNext(tr)
	})
}

// endTrack marks tr finished and decrements the running-track count,
// mirroring TrackTimerCallback's running_tracks-- on END_OF_TRACK. Once
// every track has finished, a looping song schedules restartAll after
// restartDelayUs; a non-looping song fires OnSongEnd immediately.
func (s *Scheduler) endTrack(tr *Track) {
	if tr.finished {
		return
	}
	tr.finished = true
	s.runningTracks--
	if s.runningTracks > 0 {
		return
	}

	if s.loop {
		s.Driver.SetCallback(restartDelayUs, s.restartAll)
		return
	}
	if s.OnSongEnd != nil {
		s.OnSongEnd()
	}
}

// restartAll is RestartSong: reinitialize every channel (via OnRestart,
// since channel state belongs to the Player, not the scheduler), then
// rewind and reschedule every track together, exactly as the original
// restarts the whole song rather than each track independently.
func (s *Scheduler) restartAll() {
	if s.OnRestart != nil {
		s.OnRestart()
	}
	s.runningTracks = len(s.tracks)
	for _, tr := range s.tracks {
		tr.finished = false
		tr.Iterator.Restart()
		s.scheduleNext(tr)
	}
}
