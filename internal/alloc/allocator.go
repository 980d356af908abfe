// Package alloc implements voice allocation: turning a Note On/Off event
// into a bound OPL voice, stealing one from another channel when the
// pool is exhausted, and driving the pool's key-off path for Note Off
// and All Notes Off. It is grounded on
// original_source/src/i_oplmusic.c's KeyOnEvent, KeyOffEvent, and the
// four ReplaceExistingVoice* variants selected by opl_driver_ver.
package alloc

import (
	"oplmidi/internal/debug"
	"oplmidi/internal/genmidi"
	"oplmidi/internal/midichan"
	"oplmidi/internal/oplreg"
	"oplmidi/internal/voice"
)

const (
	percussionLow  = 35
	percussionHigh = 81
)

// percussionLogSize is the length of the ring buffer Allocator keeps of
// recent percussion note-on attempts, surfaced through RecentPercussion
// for a dev-message/monitor UI the same way I_OPL_DevMessages surfaces
// channel-in-use counts.
const percussionLogSize = 16

// PercussionEvent records one percussion note-on attempt for diagnostics.
type PercussionEvent struct {
	Key     uint8
	Sounded bool // false if Key was outside [35,81] or the bank had no patch
}

// Allocator binds Note On/Off events to OPL voices. One Allocator serves
// an entire song: every track's channels share the same voice pool, so
// stealing a voice from a busy track to satisfy a new note on a quiet
// one is possible, exactly as it is in the original driver.
type Allocator struct {
	Pool          *voice.Pool
	Prog          *oplreg.Programmer
	Bank          *genmidi.Bank
	DriverVersion voice.DriverVersion

	// Logger is optional; a nil Logger disables all diagnostic logging.
	Logger *debug.Logger

	percLog     [percussionLogSize]PercussionEvent
	percLogNext int
	percLogLen  int
}

// NoteOn allocates a voice (stealing one if the pool is full) and
// programs it to play key at velocity on behalf of channelID, using ch's
// current instrument, volume, pan and bend. midiChannel is the event's
// raw, unswapped MIDI channel number: channel 9 always means percussion,
// regardless of the 9/15 channel-index swap applied by the caller when
// computing channelID, mirroring KeyOnEvent's use of the raw
// event->data.channel.channel for its percussion check.
func (a *Allocator) NoteOn(channelID int, midiChannel uint8, ch *midichan.Channel, key, velocity uint8) {
	var instr *genmidi.Instrument

	if midiChannel == 9 {
		if key < percussionLow || key > percussionHigh {
			a.logPercussion(key, false)
			return
		}
		var err error
		instr, err = a.Bank.Percussion(int(key))
		if err != nil {
			a.logPercussion(key, false)
			return
		}
		a.logPercussion(key, true)
	} else {
		instr = ch.Instrument
	}

	percussion := midiChannel == 9

	// note is normally the same as key, the raw MIDI key the event
	// requested, except a percussion note is always forced to 60 — a
	// single fixed sounding pitch per percussion instrument, the
	// instrument's own identity (not the key) is what selects its
	// timbre.
	note := key
	if percussion {
		note = 60
	}
	double := instr.TwoVoice()

	// Every free voice this note-on will need is secured (by stealing,
	// if necessary) before any voice is bound, exactly as the original
	// driver's per-version pre-check runs in full before its first
	// VoiceKeyOn call. Stealing voice-by-voice as each one turns out to
	// be needed would let a later steal pick the voice this same
	// note-on had itself just bound moments earlier.
	a.ensureFreeVoices(channelID, ch, double)

	// doom_1.9 programs the primary voice (instrument voice 0) first,
	// then the secondary layer if double; every other driver version
	// programs the secondary layer first, mirroring the per-version
	// VoiceKeyOn call order in KeyOnEvent's switch.
	secondaryFirst := double && a.DriverVersion != voice.DriverDoom1v9

	var secondIdx int
	haveSecond := false
	if secondaryFirst {
		secondIdx, haveSecond = a.bindVoice(channelID, instr, 1, note, key, velocity, ch, -1, percussion)
	}

	primaryIdx, havePrimary := a.bindVoice(channelID, instr, 0, note, key, velocity, ch, a.pairedBankIndex(haveSecond, secondIdx), percussion)

	if double && !secondaryFirst {
		a.bindVoice(channelID, instr, 1, note, key, velocity, ch, a.pairedBankIndex(havePrimary, primaryIdx), percussion)
	}
}

// pairedBankIndex returns the pool index sharing otherIdx's operator slot
// in the opposite OPL3 bank, so a double-voice instrument's two physical
// voices land on a genuine stereo-detuned pair rather than whatever the
// free list's FIFO order would otherwise hand out. Returns -1 (no
// preference) outside OPL3 mode or when otherIdx has no voice yet.
func (a *Allocator) pairedBankIndex(have bool, otherIdx int) int {
	if !have || a.Pool.Len() != 18 {
		return -1
	}
	v := a.Pool.Voice(otherIdx)
	if v.Bank == 0 {
		return v.Index + 9
	}
	return v.Index
}

// bindVoice allocates (assuming ensureFreeVoices has already made room)
// and programs one voice of instr for channelID, mirroring VoiceKeyOn's
// per-voice setup. preferIdx, if >= 0, is tried first via Pool.TryAlloc
// before falling back to the free list. percussion records whether instr
// came from the bank's percussion range, so Player.Pause can later tell
// which bound voices to leave decaying naturally. note is voice.note
// before the fixed-pitch override (60 for percussion, key for everything
// else); key is always the raw requested MIDI key, used for Note Off
// matching.
func (a *Allocator) bindVoice(channelID int, instr *genmidi.Instrument, instrVoice int, note, key, velocity uint8, ch *midichan.Channel, preferIdx int, percussion bool) (int, bool) {
	idx, ok := a.allocateVoice(preferIdx)
	if !ok {
		if a.Logger != nil {
			a.Logger.LogVoice(debug.LogLevelWarning, "no free voice", debug.Fields{
				Channel: debug.IntField(channelID),
				Key:     debug.IntField(int(key)),
			})
		}
		return 0, false
	}

	v := a.Pool.Voice(idx)
	v.Channel = channelID
	v.Key = key
	v.Note = note
	if instr.FixedPitch() {
		v.Note = instr.FixedNote
	}
	v.Percussion = percussion

	// The pan field is folded into SetVoiceInstrument's feedback write;
	// no separate pan register write happens on key-on.
	v.RegPan = ch.Pan

	a.Prog.SetVoiceInstrument(v, instr, instrVoice)
	a.Prog.SetVoiceVolume(v, ch.Volume, velocity)

	// Clear the cached frequency so the key-on write is never suppressed
	// as redundant when a recycled voice replays its previous note.
	v.Freq = 0
	a.Prog.UpdateVoiceFrequency(v, ch.Bend, a.DriverVersion)

	if a.Logger != nil {
		a.Logger.LogVoice(debug.LogLevelDebug, "voice bound", debug.Fields{
			Voice:    debug.IntField(idx),
			Channel:  debug.IntField(channelID),
			Key:      debug.IntField(int(key)),
			Priority: debug.IntField(v.Priority),
		})
	}
	return idx, true
}

// allocateVoice returns a free voice index, preferring preferIdx if it is
// still free. ok is false only if the pool has no free voice at all,
// which ensureFreeVoices is responsible for preventing whenever the
// original driver's own pre-check would have.
func (a *Allocator) allocateVoice(preferIdx int) (int, bool) {
	if preferIdx >= 0 && a.Pool.TryAlloc(preferIdx) {
		return preferIdx, true
	}
	return a.Pool.GetFree()
}

// ensureFreeVoices runs the driver-version-specific pre-check that steals
// exactly as many voices as this note-on will need, mirroring the fixed
// steal counts each KeyOnEvent switch case issues before its first
// VoiceKeyOn call (as opposed to reacting only once GetFreeVoice actually
// comes up empty).
func (a *Allocator) ensureFreeVoices(channelID int, ch *midichan.Channel, double bool) {
	max := a.Pool.Len()

	switch a.DriverVersion {
	case voice.DriverBeta:
		if a.Pool.AllocatedCount() == max {
			a.steal(channelID, ch)
		}
		if a.Pool.AllocatedCount() == max-1 && double {
			a.steal(channelID, ch)
		}

	case voice.DriverDoom1v1_666:
		voiceNum := 1
		if double && max == 18 {
			voiceNum = 2
		}
		for a.Pool.AllocatedCount() > max-voiceNum {
			a.steal(channelID, ch)
		}

	case voice.DriverDoom2v1_666:
		if a.Pool.AllocatedCount() == max {
			a.steal(channelID, ch)
		}
		if a.Pool.AllocatedCount() == max-1 && double {
			a.steal(channelID, ch)
		}

	default: // voice.DriverDoom1v9
		if !a.Pool.HasFree() {
			a.steal(channelID, ch)
		}
	}
}

// steal key-offs and releases whichever voice selectVictim chooses for
// channelID, a no-op if nothing is allocated (never true with a
// correctly sized pool, but defended against the same way the original's
// rover loop silently would be too).
func (a *Allocator) steal(channelID int, ch *midichan.Channel) {
	victim, ok := a.selectVictim(channelID, ch)
	if !ok {
		return
	}

	victimPriority := a.Pool.Voice(victim).Priority

	a.Prog.KeyOff(a.Pool.Voice(victim))
	a.Pool.Release(victim, func(siblingIdx int) {
		a.Prog.KeyOff(a.Pool.Voice(siblingIdx))
	})

	if a.Logger != nil {
		a.Logger.LogVoice(debug.LogLevelInfo, "stole voice", debug.Fields{
			Voice:    debug.IntField(victim),
			Channel:  debug.IntField(channelID),
			Priority: debug.IntField(victimPriority),
		})
	}
}

// selectVictim picks which allocated voice to steal, dispatching to the
// policy matching a.DriverVersion. Every policy operates on a snapshot of
// the allocated list in allocation order (oldest first), the Go stand-in
// for the original driver's traversal of its opl_voice_t pointer chain;
// ch is the channel requesting the new note, needed by the beta and
// doom2 policies.
func (a *Allocator) selectVictim(channelID int, ch *midichan.Channel) (int, bool) {
	indices := a.Pool.AllocatedIndices()
	if len(indices) == 0 {
		return 0, false
	}

	switch a.DriverVersion {
	case voice.DriverBeta:
		return a.selectBeta(channelID, ch, indices), true
	case voice.DriverDoom1v1_666:
		return a.selectDoom1(indices), true
	case voice.DriverDoom2v1_666:
		return a.selectDoom2(channelID, indices), true
	default: // voice.DriverDoom1v9
		return a.selectDoom19(indices), true
	}
}

// selectBeta is ReplaceExistingVoiceOld: the first allocated voice (in
// allocation order) that is either already bound to the requesting
// channel or still loaded with the requesting channel's current
// instrument; the oldest allocated voice if no such match exists.
func (a *Allocator) selectBeta(channelID int, ch *midichan.Channel, indices []int) int {
	result := indices[0]
	for _, idx := range indices {
		v := a.Pool.Voice(idx)
		if v.Channel == channelID || v.Instrument == ch.Instrument {
			result = idx
			break
		}
	}
	return result
}

// selectDoom19 is the default driver's ReplaceExistingVoice: a
// continuously-updated scan (not a one-shot max) that replaces the
// running result with any later voice that is itself the secondary layer
// of a double voice (InstrumentVoice != 0, making it expendable
// regardless of channel) or whose channel ordering is at or above the
// current result's — so a later, merely equal-or-higher-channel voice
// can still displace an earlier secondary-voice match.
func (a *Allocator) selectDoom19(indices []int) int {
	result := indices[0]
	for _, idx := range indices {
		v := a.Pool.Voice(idx)
		best := a.Pool.Voice(result)
		if v.InstrumentVoice != 0 || v.Channel >= best.Channel {
			result = idx
		}
	}
	return result
}

// selectDoom1 is ReplaceExistingVoiceDoom1: the voice with the strictly
// highest channel ordering, no other criterion.
func (a *Allocator) selectDoom1(indices []int) int {
	result := indices[0]
	for _, idx := range indices {
		if a.Pool.Voice(idx).Channel > a.Pool.Voice(result).Channel {
			result = idx
		}
	}
	return result
}

// selectDoom2 is ReplaceExistingVoiceDoom2: the allocated list's most
// recent three voices are never considered (roverend is advanced
// allocated_count-3 steps from the list head before the scan begins), an
// off-by-three skew present in the original 1.666 doom2 driver and
// preserved here rather than corrected. When three or fewer voices are
// allocated the advance never starts the scan at all, so the result
// defaults to the oldest allocated voice with no priority comparison.
// Among the voices the scan does cover, the lowest Priority value wins,
// but only among those whose channel ordering is at or above the
// requesting channel's.
func (a *Allocator) selectDoom2(channelID int, indices []int) int {
	result := indices[0]
	skip := len(indices) - 3
	if skip <= 0 {
		return result
	}

	const sentinelPriority = 0x8000
	bestPriority := sentinelPriority
	for _, idx := range indices[:skip] {
		v := a.Pool.Voice(idx)
		if v.Priority < bestPriority && v.Channel >= channelID {
			bestPriority = v.Priority
			result = idx
		}
	}
	return result
}

// NoteOff releases every voice bound to channelID playing key, key-offing
// each one first. Releasing a double-voice instrument's secondary voice
// also releases and key-offs its sibling under a pre-1.9 driver (see
// voice.Pool.Release), which ReleaseMatching's restart-after-release scan
// accounts for.
func (a *Allocator) NoteOff(channelID int, key uint8) {
	a.Pool.ReleaseMatching(
		func(idx int) bool {
			v := a.Pool.Voice(idx)
			return v.Channel == channelID && v.Key == key
		},
		func(idx int) { a.Prog.KeyOff(a.Pool.Voice(idx)) },
	)
}

// AllNotesOff releases every voice bound to channelID, regardless of key,
// mirroring the All Notes Off (controller 123) handler.
func (a *Allocator) AllNotesOff(channelID int) {
	a.Pool.ReleaseMatching(
		func(idx int) bool { return a.Pool.Voice(idx).Channel == channelID },
		func(idx int) { a.Prog.KeyOff(a.Pool.Voice(idx)) },
	)
}

// logPercussion appends to the percussion diagnostics ring buffer and, if
// a Logger is attached, logs out-of-range or unpatched percussion keys.
func (a *Allocator) logPercussion(key uint8, sounded bool) {
	a.percLog[a.percLogNext] = PercussionEvent{Key: key, Sounded: sounded}
	a.percLogNext = (a.percLogNext + 1) % percussionLogSize
	if a.percLogLen < percussionLogSize {
		a.percLogLen++
	}
	if !sounded && a.Logger != nil {
		a.Logger.LogVoice(debug.LogLevelWarning, "percussion key out of range or unpatched", debug.Fields{
			Key: debug.IntField(int(key)),
		})
	}
}

// RecentPercussion returns up to the last percussionLogSize percussion
// note-on attempts, oldest first, for a dev-message or monitor UI.
func (a *Allocator) RecentPercussion() []PercussionEvent {
	out := make([]PercussionEvent, a.percLogLen)
	start := (a.percLogNext - a.percLogLen + percussionLogSize) % percussionLogSize
	for i := 0; i < a.percLogLen; i++ {
		out[i] = a.percLog[(start+i)%percussionLogSize]
	}
	return out
}
