package dispatch

import (
	"testing"

	"oplmidi/internal/alloc"
	"oplmidi/internal/clock"
	"oplmidi/internal/genmidi"
	"oplmidi/internal/mid"
	"oplmidi/internal/midichan"
	"oplmidi/internal/opldriver"
	"oplmidi/internal/oplreg"
	"oplmidi/internal/voice"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *clock.VirtualDriver, *[16]midichan.Channel) {
	t.Helper()
	drv := clock.NewVirtualDriver(opldriver.ChipOPL3)
	pool := voice.NewPool(18, voice.DriverDoom1v9)
	prog := oplreg.NewProgrammer(drv)
	bank := &genmidi.Bank{}
	a := &alloc.Allocator{Pool: pool, Prog: prog, Bank: bank, DriverVersion: voice.DriverDoom1v9}

	var channels [16]midichan.Channel
	for i := range channels {
		channels[i].Init(bank, 127, 127)
	}

	d := &Dispatcher{
		Alloc:         a,
		Pool:          pool,
		Prog:          prog,
		Bank:          bank,
		Channels:      &channels,
		OPL3Mode:      true,
		StereoCorrect: false,
		MusicVolume:   func() int { return 127 },
		FaderVolume:   func() int { return 127 },
		StartVolume:   func() int { return 127 },
	}
	return d, drv, &channels
}

func TestDispatchNoteOnAndOffBindAndReleaseAVoice(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 0, Param1: 60, Param2: 100})
	if d.Pool.AllocatedCount() != 1 {
		t.Fatalf("got %d allocated after NoteOn, want 1", d.Pool.AllocatedCount())
	}

	d.Dispatch(mid.Event{Type: mid.EventNoteOff, Channel: 0, Param1: 60})
	if d.Pool.AllocatedCount() != 0 {
		t.Fatalf("got %d allocated after NoteOff, want 0", d.Pool.AllocatedCount())
	}
}

func TestDispatchNoteOnWithZeroVelocityIsATreatedAsNoteOff(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 0, Param1: 60, Param2: 100})
	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 0, Param1: 60, Param2: 0})

	if d.Pool.AllocatedCount() != 0 {
		t.Fatalf("got %d allocated, want 0 (velocity 0 must release the note)", d.Pool.AllocatedCount())
	}
}

func TestDispatchPercussionChannelUsesRawChannelNineForTheDrumCheck(t *testing.T) {
	d, _, channels := newTestDispatcher(t)

	// Raw MIDI channel 9 swaps to array index 15, but the percussion
	// check in Allocator.NoteOn still sees the raw channel number.
	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 9, Param1: 40, Param2: 100})

	if d.Pool.AllocatedCount() != 1 {
		t.Fatalf("got %d allocated, want 1", d.Pool.AllocatedCount())
	}
	events := d.Alloc.RecentPercussion()
	if len(events) != 1 || !events[0].Sounded {
		t.Fatalf("got percussion log %+v, want a sounded percussion event", events)
	}
	_ = channels
}

func TestDispatchProgramChangeUpdatesTheChannelInstrument(t *testing.T) {
	d, _, channels := newTestDispatcher(t)
	want := d.Bank.Melodic(5)

	d.Dispatch(mid.Event{Type: mid.EventProgramChange, Channel: 2, Param1: 5})

	if channels[2].Instrument != want {
		t.Fatalf("program change did not update channel 2's instrument")
	}
}

func TestDispatchMainVolumeControllerUpdatesChannelVolume(t *testing.T) {
	d, _, channels := newTestDispatcher(t)

	d.Dispatch(mid.Event{Type: mid.EventController, Channel: 3, Param1: mid.ControllerMainVolume, Param2: 50})

	if channels[3].VolumeBase != 50 {
		t.Fatalf("got VolumeBase %d, want 50", channels[3].VolumeBase)
	}
}

func TestDispatchAllNotesOffControllerReleasesOnlyThatChannel(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 0, Param1: 60, Param2: 100})
	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 1, Param1: 61, Param2: 100})

	d.Dispatch(mid.Event{Type: mid.EventController, Channel: 0, Param1: mid.ControllerAllNotesOff, Param2: 0})

	if d.Pool.AllocatedCount() != 1 {
		t.Fatalf("got %d allocated, want 1 (only channel 1's voice should remain)", d.Pool.AllocatedCount())
	}
}

func TestDispatchPitchBendReprogramsBoundVoices(t *testing.T) {
	d, drv, channels := newTestDispatcher(t)

	d.Dispatch(mid.Event{Type: mid.EventNoteOn, Channel: 0, Param1: 60, Param2: 100})
	before := len(drv.Writes)

	d.Dispatch(mid.Event{Type: mid.EventPitchBend, Channel: 0, Param1: 0, Param2: 96})

	if channels[0].Bend == 0 {
		t.Fatalf("expected pitch bend to update channel bend away from 0")
	}
	if len(drv.Writes) <= before {
		t.Fatalf("expected pitch bend to reprogram the bound voice's frequency")
	}
}

func TestDispatchSetTempoInvokesCallback(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	var got uint32
	d.SetTempo = func(us uint32) { got = us }

	d.Dispatch(mid.Event{Type: mid.EventMetaSetTempo, TempoUsPerBeat: 500000})

	if got != 500000 {
		t.Fatalf("got tempo %d, want 500000", got)
	}
}
