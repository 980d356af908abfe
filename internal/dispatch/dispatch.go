// Package dispatch turns a single decoded mid.Event into the channel and
// voice-pool operations that realize it, grounded on
// original_source/src/i_oplmusic.c's ProcessEvent, ControllerEvent,
// PitchBendEvent, ProgramChangeEvent and MetaEvent.
package dispatch

import (
	"oplmidi/internal/alloc"
	"oplmidi/internal/genmidi"
	"oplmidi/internal/mid"
	"oplmidi/internal/midichan"
	"oplmidi/internal/oplreg"
	"oplmidi/internal/voice"
)

// swapChannelIndex maps a raw MIDI channel number to its index into a
// track's Channels array, swapping 9 and 15. DMX's percussion channel is
// MIDI channel 9, but channel.c's array historically reserved index 9 for
// the (unused) 16th channel and stored percussion at index 15 instead;
// every array lookup goes through this swap, while the percussion check
// itself (== 9) always tests the raw, unswapped channel number — callers
// needing that check use the raw channel directly, not this function's
// result.
func swapChannelIndex(raw uint8) int {
	switch raw {
	case 9:
		return 15
	case 15:
		return 9
	default:
		return int(raw)
	}
}

// Dispatcher applies one track's events against its own 16 Channels,
// sharing the song-wide Allocator, voice Pool and OPL Programmer with
// every other track's Dispatcher.
type Dispatcher struct {
	Alloc *alloc.Allocator
	Pool  *voice.Pool
	Prog  *oplreg.Programmer
	Bank  *genmidi.Bank

	Channels *[16]midichan.Channel

	// BaseChannelID is trackIdx*16: added to a swapped channel index to
	// form the monotonic channelID used as the voice pool's ordering
	// key, matching the contiguous tracks[i].channels[j] memory layout
	// the original driver's pointer-based comparisons rely on.
	BaseChannelID int

	OPL3Mode      bool
	StereoCorrect bool

	// MusicVolume, FaderVolume and StartVolume read the song-wide volume
	// scalars a Player owns; they are called fresh on every Main Volume
	// controller event instead of cached, since any of the three can
	// change between events.
	MusicVolume func() int
	FaderVolume func() int
	StartVolume func() int

	// SetTempo is called on a Set Tempo meta event with the new
	// microseconds-per-quarter-note value; a Player wires this to its
	// track scheduler's SetTempo method.
	SetTempo func(usPerBeat uint32)
}

// Dispatch applies ev to the channel it targets.
func (d *Dispatcher) Dispatch(ev mid.Event) {
	switch ev.Type {
	case mid.EventNoteOn:
		d.noteOn(ev)
	case mid.EventNoteOff:
		d.noteOff(ev)
	case mid.EventController:
		d.controller(ev)
	case mid.EventProgramChange:
		d.programChange(ev)
	case mid.EventPitchBend:
		d.pitchBend(ev)
	case mid.EventMetaSetTempo:
		if d.SetTempo != nil {
			d.SetTempo(ev.TempoUsPerBeat)
		}
	}
}

func (d *Dispatcher) channelID(idx int) int { return d.BaseChannelID + idx }

func (d *Dispatcher) noteOn(ev mid.Event) {
	idx := swapChannelIndex(ev.Channel)
	// A Note On with velocity 0 is a Note Off, the universal MIDI
	// convention the original driver honors via its param2 == 0 check
	// in ProcessEvent.
	if ev.Param2 == 0 {
		d.Alloc.NoteOff(d.channelID(idx), ev.Param1)
		return
	}
	d.Alloc.NoteOn(d.channelID(idx), ev.Channel, &d.Channels[idx], ev.Param1, ev.Param2)
}

func (d *Dispatcher) noteOff(ev mid.Event) {
	idx := swapChannelIndex(ev.Channel)
	d.Alloc.NoteOff(d.channelID(idx), ev.Param1)
}

func (d *Dispatcher) programChange(ev mid.Event) {
	idx := swapChannelIndex(ev.Channel)
	program := int(ev.Param1 & 0x7f)
	d.Channels[idx].Instrument = d.Bank.Melodic(program)
	d.Channels[idx].Program = program
}

func (d *Dispatcher) controller(ev mid.Event) {
	idx := swapChannelIndex(ev.Channel)
	channelID := d.channelID(idx)
	ch := &d.Channels[idx]

	switch int(ev.Param1) {
	case mid.ControllerMainVolume:
		musicVol, faderVol, startVol := 0, 0, 0
		if d.MusicVolume != nil {
			musicVol = d.MusicVolume()
		}
		if d.FaderVolume != nil {
			faderVol = d.FaderVolume()
		}
		if d.StartVolume != nil {
			startVol = d.StartVolume()
		}
		ch.SetVolume(channelID, int(ev.Param2), musicVol, faderVol, startVol, true, d.Pool, d.Prog)

	case mid.ControllerPan:
		ch.SetPan(channelID, int(ev.Param2), d.OPL3Mode, d.StereoCorrect, d.Pool, d.Prog)

	case mid.ControllerAllNotesOff:
		d.Alloc.AllNotesOff(channelID)
	}
}

// pitchBend applies a Pitch Bend event to the targeted channel and
// reprograms the frequency of every voice currently bound to it. Param1
// is the message's LSB, Param2 its MSB. The beta driver derives its
// bend from both bytes (with the same off-by-three
// quirk as its fine-tuning math); every other driver version uses only
// the MSB, mirroring PitchBendEvent.
func (d *Dispatcher) pitchBend(ev mid.Event) {
	idx := swapChannelIndex(ev.Channel)
	channelID := d.channelID(idx)
	ch := &d.Channels[idx]

	if d.Alloc.DriverVersion == voice.DriverBeta {
		full := (int(ev.Param2) << 1) | ((int(ev.Param1) >> 6) & 1)
		if full >= 128 {
			full += 3
		}
		ch.Bend = full/4 - 30
	} else {
		ch.Bend = int(ev.Param2) - 64
	}

	d.Pool.Allocated(func(vidx int) bool {
		v := d.Pool.Voice(vidx)
		if v.Channel == channelID {
			d.Prog.UpdateVoiceFrequency(v, ch.Bend, d.Alloc.DriverVersion)
		}
		return true
	})
}
