// Package midichan holds per-MIDI-channel state (instrument, volume,
// pan, pitch bend) and the channel-level operations that update every
// OPL voice currently bound to a channel when one of those fields
// changes, grounded on original_source/src/i_oplmusic.c's
// SetChannelVolume/SetChannelPan/InitChannel/AllNotesOff.
package midichan

import (
	"oplmidi/internal/genmidi"
	"oplmidi/internal/oplreg"
	"oplmidi/internal/voice"
)

// Channel is one of a track's 16 MIDI channels.
type Channel struct {
	Instrument *genmidi.Instrument
	Program    int // melodic program number last selected (0 after Init)
	Volume     int // effective, post-clamping volume (0-127)
	VolumeBase int // last volume requested by a Main Volume controller
	Pan        uint8
	Bend       int
}

// Init resets a channel to its post-song-start defaults: instrument 0,
// volume clamped to the current music/fader volume, center pan, no bend.
func (c *Channel) Init(bank *genmidi.Bank, musicVolume, faderVolume int) {
	c.Instrument = bank.Melodic(0)
	c.Program = 0
	c.VolumeBase = 100
	c.Volume = musicVolume
	if c.Volume > c.VolumeBase {
		c.Volume = c.VolumeBase
	}
	if c.Volume > faderVolume {
		c.Volume = faderVolume
	}
	c.Pan = oplreg.PanBoth
	c.Bend = 0
}

// SetVolume applies a new volume to the channel (clamped by the current
// music volume, fader volume, and — when clipStart is set, as it is for
// a live Main Volume controller event — the song's start volume), then
// pushes the resulting level to every voice this channel currently owns.
func (c *Channel) SetVolume(
	chanIdx int, volume, musicVolume, faderVolume, startVolume int, clipStart bool,
	pool *voice.Pool, prog *oplreg.Programmer,
) {
	c.VolumeBase = volume

	if volume > musicVolume {
		volume = musicVolume
	}
	if volume > faderVolume {
		volume = faderVolume
	}
	if clipStart && volume > startVolume {
		volume = startVolume
	}
	c.Volume = volume

	pool.Allocated(func(idx int) bool {
		v := pool.Voice(idx)
		if v.Channel == chanIdx {
			prog.SetVoiceVolume(v, c.Volume, v.NoteVolume)
		}
		return true
	})
}

// SetPan maps a raw MIDI pan value (0-127) to one of the OPL3 pan field
// values and, if it changed, pushes it to every voice bound to this
// channel. On an OPL2 chip (opl3Mode false) panning is a no-op, matching
// the original driver leaving channel->pan untouched when stereo isn't
// available.
func (c *Channel) SetPan(
	chanIdx int, pan int, opl3Mode, stereoCorrect bool,
	pool *voice.Pool, prog *oplreg.Programmer,
) {
	if stereoCorrect {
		pan = 144 - pan
	}
	if !opl3Mode {
		return
	}

	var regPan uint8
	switch {
	case pan >= 96:
		regPan = oplreg.PanLeft
	case pan <= 48:
		regPan = oplreg.PanRight
	default:
		regPan = oplreg.PanBoth
	}

	if regPan == c.Pan {
		return
	}
	c.Pan = regPan

	pool.Allocated(func(idx int) bool {
		v := pool.Voice(idx)
		if v.Channel == chanIdx {
			prog.SetVoicePan(v, regPan)
		}
		return true
	})
}
