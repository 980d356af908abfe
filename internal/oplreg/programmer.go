// Programmer turns voice/channel/instrument state into the sequence of
// OPL register writes a real DMX driver issues, grounded on
// original_source/src/i_oplmusic.c's LoadOperatorData, SetVoiceInstrument,
// SetVoiceVolume, SetVoicePan, VoiceKeyOff and UpdateVoiceFrequency.
package oplreg

import (
	"oplmidi/internal/freq"
	"oplmidi/internal/genmidi"
	"oplmidi/internal/opldriver"
	"oplmidi/internal/voice"
)

// Programmer writes OPL register state through a Driver. It holds no
// voice or channel state of its own; every method takes the voice being
// programmed as an explicit argument, the same statelessness the
// original driver's free Load/Set functions have (they operate purely on
// the opl_voice_t passed to them plus the registers they write).
type Programmer struct {
	Driver opldriver.Driver
}

// NewProgrammer returns a Programmer writing through d.
func NewProgrammer(d opldriver.Driver) *Programmer {
	return &Programmer{Driver: d}
}

// InitRegisters zeroes every operator register bank and, in OPL3 mode,
// enables the second bank via RegOPL3Enable, mirroring the sequence
// OPL_InitRegisters issues once at driver init before any instrument is
// loaded.
func (p *Programmer) InitRegisters(opl3Mode bool) {
	banks := 1
	if opl3Mode {
		banks = 2
	}
	for bank := 0; bank < banks; bank++ {
		offset := uint16(bank << 8)
		for reg := uint16(0); reg < 0xf6; reg++ {
			p.Driver.WriteRegister(offset|reg, 0)
		}
	}
	if opl3Mode {
		p.Driver.WriteRegister(RegOPL3Enable, 0x01)
	}
}

// loadOperator writes one operator's full register set. maxLevel forces
// the level register to minimum volume (0x3f attenuation), used when an
// instrument is first loaded and its real volume hasn't been set yet.
func (p *Programmer) loadOperator(opRegOffset int, data genmidi.Operator, maxLevel bool) {
	level := (data.Scale & 0xc0) | (data.Level & 0x3f)
	if maxLevel {
		level |= 0x3f
	}
	reg := uint16(opRegOffset)
	p.Driver.WriteRegister(RegLevel+reg, level)
	p.Driver.WriteRegister(RegTremoloVibrato+reg, data.Tremolo)
	p.Driver.WriteRegister(RegAttack+reg, data.Attack)
	p.Driver.WriteRegister(RegSustain+reg, data.Sustain)
	p.Driver.WriteRegister(RegWaveform+reg, data.Waveform)
}

// SetVoiceInstrument loads voiceIdx (0 or 1) of instr onto v, writing the
// carrier first at maximum volume, then the modulator (at maximum volume
// only in additive/non-modulated feedback mode), then the feedback/pan
// register. It is a no-op if v is already programmed with this exact
// instrument and voice index. v.RegVolume is forced to 999 so the next
// SetVoiceVolume call is never suppressed as a no-op, and v.Priority is
// recomputed from the carrier's attack/sustain fields.
func (p *Programmer) SetVoiceInstrument(v *voice.Voice, instr *genmidi.Instrument, voiceIdx int) {
	if v.Instrument == instr && v.InstrumentVoice == voiceIdx {
		return
	}
	v.Instrument = instr
	v.InstrumentVoice = voiceIdx

	data := &instr.Voices[voiceIdx]
	modulating := data.Feedback&0x01 == 0

	p.loadOperator(v.Op2|v.Bank<<8, data.Carrier, true)
	p.loadOperator(v.Op1|v.Bank<<8, data.Modulator, !modulating)

	p.Driver.WriteRegister(uint16(RegFeedback+v.Index)|uint16(v.Bank<<8), data.Feedback|v.RegPan)

	v.RegVolume = 999
	v.Priority = int(0x0f-(data.Carrier.Attack>>4)) + int(0x0f-(data.Carrier.Sustain&0x0f))
}

// SetVoiceVolume programs v's carrier (and, for a non-modulated/additive
// instrument, its modulator) attenuation from the combination of
// channelVolume (the owning channel's effective 0-127 volume) and
// noteVolume (the note's velocity), via the same logarithmic
// VolumeMapping table and >>9 scaling the original driver uses. The
// carrier write is skipped when the new attenuation equals v.RegVolume;
// because RegVolume is stored with the carrier's key-scale bits ORed in,
// a carrier with non-zero key-scale bits is rewritten on every call.
func (p *Programmer) SetVoiceVolume(v *voice.Voice, channelVolume int, noteVolume uint8) {
	v.NoteVolume = noteVolume

	opVoice := &v.Instrument.Voices[v.InstrumentVoice]

	midiVolume := 2 * (freq.VolumeMapping[channelVolume] + 1)
	fullVolume := (freq.VolumeMapping[v.NoteVolume] * midiVolume) >> 9
	carVolume := 0x3f - fullVolume

	if int(carVolume) == v.RegVolume {
		return
	}

	v.RegVolume = int(carVolume) | int(opVoice.Carrier.Scale&0xc0)
	p.Driver.WriteRegister(uint16(RegLevel+v.Op2)|uint16(v.Bank<<8), uint8(v.RegVolume))

	if opVoice.Feedback&0x01 != 0 && opVoice.Modulator.Level != 0x3f {
		modVolume := uint32(0x3f - opVoice.Modulator.Level)
		if modVolume >= carVolume {
			modVolume = carVolume
		}
		p.Driver.WriteRegister(uint16(RegLevel+v.Op1)|uint16(v.Bank<<8),
			uint8(modVolume)|(opVoice.Modulator.Scale&0xc0))
	}
}

// SetVoicePan reprograms v's feedback register with a new pan field,
// leaving the feedback/connection bits untouched.
func (p *Programmer) SetVoicePan(v *voice.Voice, pan uint8) {
	v.RegPan = pan
	opVoice := &v.Instrument.Voices[v.InstrumentVoice]
	p.Driver.WriteRegister(uint16(RegFeedback+v.Index)|uint16(v.Bank<<8), opVoice.Feedback|pan)
}

// KeyOff rewrites v's F-Num high byte without the key-on bit, silencing
// the note while leaving the block/F-Num bits (and hence v.Freq's cached
// value) untouched, mirroring VoiceKeyOff.
func (p *Programmer) KeyOff(v *voice.Voice) {
	p.Driver.WriteRegister(uint16(RegFreq2+v.Index)|uint16(v.Bank<<8), uint8(v.Freq>>8))
}

// UpdateVoiceFrequency recomputes v's F-Number/block from its note, bend,
// and instrument fine tuning via internal/freq, and — only if the value
// changed from the last write — writes the F-Num low byte followed by
// the high byte ORed with the key-on bit, mirroring UpdateVoiceFrequency.
func (p *Programmer) UpdateVoiceFrequency(v *voice.Voice, bend int, driverVersion voice.DriverVersion) {
	note := int(v.Note)
	if !v.Instrument.FixedPitch() {
		note += int(v.Instrument.Voices[v.InstrumentVoice].BaseNoteOffset)
	}
	normalized := freq.Normalize(note)

	secondVoice := v.InstrumentVoice != 0
	var newFreq uint16
	if driverVersion == voice.DriverBeta {
		newFreq = freq.ForNoteBeta(normalized, bend, secondVoice, v.Instrument.FineTuning)
	} else {
		newFreq = freq.ForNote(normalized, bend, secondVoice, v.Instrument.FineTuning)
	}

	if newFreq == v.Freq {
		return
	}

	p.Driver.WriteRegister(uint16(RegFreq1+v.Index)|uint16(v.Bank<<8), uint8(newFreq&0xff))
	p.Driver.WriteRegister(uint16(RegFreq2+v.Index)|uint16(v.Bank<<8), uint8(newFreq>>8)|KeyOnBit)

	v.Freq = newFreq
}
