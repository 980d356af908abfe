// Package oplsynth is a software OPL2/OPL3 approximation used to give the
// cmd/oplplay demo driver something to render through SDL2 without a real
// chip or a hardware emulation library. It is demonstration plumbing: the
// core packages never import it, only an opldriver.Driver implementation
// does. The phase-accumulator/sine-table synthesis technique and the
// table-lookup envelope shaping are adapted from the teacher's
// internal/apu/fm_opm.go (FMOPM.GenerateSampleFixed), restructured around
// real OPL register semantics (operator offsets, connection bit, F-Num/
// block) instead of the teacher's placeholder OPM voice layout.
package oplsynth

import (
	"math"

	"oplmidi/internal/oplreg"
)

const (
	sineTableSize  = 1024
	sineTableShift = 32 - 10
	maxChannels    = 18
	opsPerChannel  = 2
)

var sineTable = func() [sineTableSize]int16 {
	var t [sineTableSize]int16
	for i := range t {
		phase := (2.0 * math.Pi * float64(i)) / float64(sineTableSize)
		t[i] = int16(math.Round(math.Sin(phase) * 32767.0))
	}
	return t
}()

func sineLookup(phase uint32) int16 {
	idx := (phase >> sineTableShift) & (sineTableSize - 1)
	return sineTable[idx]
}

// operator holds the per-slot register state and synthesis phase for one
// OPL operator (a channel has two: modulator and carrier).
type operator struct {
	attenuation uint8 // from RegLevel, 0 (loud) .. 63 (silent)
	attackRate  uint8
	sustainRate uint8
	waveform    uint8

	phase     uint32
	phaseInc  uint32
	envelope  float64 // 0..1, simple attack/decay envelope
	keyOn     bool
	lastOut   int16
}

func (op *operator) sample() int16 {
	raw := sineLookup(op.phase)
	level := float64(63-int(op.attenuation)) / 63.0
	out := int16(float64(raw) * level * op.envelope)
	op.lastOut = out
	return out
}

func (op *operator) step() {
	op.phase += op.phaseInc
	if op.keyOn {
		if op.envelope < 1 {
			// attackRate 0 is slowest (500 samples to full level), 15 is
			// fastest (32 samples), matching OPL's "higher rate is faster".
			op.envelope += 0.002 * float64(op.attackRate+1)
			if op.envelope > 1 {
				op.envelope = 1
			}
		}
	} else if op.envelope > 0 {
		op.envelope -= 0.0015 * float64(op.sustainRate+1)
		if op.envelope < 0 {
			op.envelope = 0
		}
	}
}

type channel struct {
	modulator operator
	carrier   operator

	feedback   uint8 // bits 1-3: feedback amount, bit 0: connection (FM/additive)
	fnum       uint16
	block      uint8
	keyOn      bool
	panL, panR bool

	feedbackHist int16
}

func (c *channel) connection() bool { return c.feedback&0x01 != 0 }

// Chip is a minimal OPL2/OPL3 approximation: up to 18 two-operator FM
// channels, register-addressable the same way a real chip is.
type Chip struct {
	SampleRate uint32
	opl3Mode   bool
	channels   [maxChannels]channel
}

// NewChip returns a Chip rendering at sampleRate. OPL3 mode (18 channels)
// is enabled once RegOPL3Enable is written, matching the real chip.
func NewChip(sampleRate uint32) *Chip {
	return &Chip{SampleRate: sampleRate}
}

func (c *Chip) numChannels() int {
	if c.opl3Mode {
		return 18
	}
	return 9
}

// WriteRegister applies a single OPL register write to the chip's state,
// the same register numbering internal/oplreg and the original DMX driver
// use (bank 1 reached via oplreg.BankOffset).
func (c *Chip) WriteRegister(reg uint16, val uint8) {
	if reg == oplreg.RegOPL3Enable {
		c.opl3Mode = val&0x01 != 0
		return
	}

	bank := 0
	offset := reg
	if reg&oplreg.BankOffset != 0 {
		bank = 1
		offset = reg &^ oplreg.BankOffset
	}

	switch {
	case offset >= oplreg.RegLevel && offset < oplreg.RegLevel+0x16:
		_, op := c.operatorAt(bank, int(offset-oplreg.RegLevel))
		if op != nil {
			op.attenuation = val & 0x3f
		}
	case offset >= oplreg.RegAttack && offset < oplreg.RegAttack+0x16:
		_, op := c.operatorAt(bank, int(offset-oplreg.RegAttack))
		if op != nil {
			op.attackRate = val >> 4
		}
	case offset >= oplreg.RegSustain && offset < oplreg.RegSustain+0x16:
		_, op := c.operatorAt(bank, int(offset-oplreg.RegSustain))
		if op != nil {
			op.sustainRate = val & 0x0f
		}
	case offset >= oplreg.RegWaveform && offset < oplreg.RegWaveform+0x16:
		_, op := c.operatorAt(bank, int(offset-oplreg.RegWaveform))
		if op != nil {
			op.waveform = val & 0x07
		}
	case offset >= oplreg.RegFreq1 && offset < oplreg.RegFreq1+9:
		ch := c.channelAt(bank, int(offset-oplreg.RegFreq1))
		if ch != nil {
			ch.fnum = (ch.fnum &^ 0xff) | uint16(val)
			c.recompute(ch)
		}
	case offset >= oplreg.RegFreq2 && offset < oplreg.RegFreq2+9:
		ch := c.channelAt(bank, int(offset-oplreg.RegFreq2))
		if ch != nil {
			ch.fnum = (ch.fnum & 0xff) | (uint16(val&0x03) << 8)
			ch.block = (val >> 2) & 0x07
			ch.keyOn = val&oplreg.KeyOnBit != 0
			ch.modulator.keyOn = ch.keyOn
			ch.carrier.keyOn = ch.keyOn
			c.recompute(ch)
		}
	case offset >= oplreg.RegFeedback && offset < oplreg.RegFeedback+9:
		ch := c.channelAt(bank, int(offset-oplreg.RegFeedback))
		if ch != nil {
			ch.feedback = val & 0x0f
			ch.panL = val&oplreg.PanLeft != 0
			ch.panR = val&oplreg.PanRight != 0
		}
	}
}

// operatorAt maps a register offset within RegLevel/RegAttack/RegSustain/
// RegWaveform's 0x16-wide block to the owning channel and operator,
// using oplreg.VoiceOperators' offset table in reverse.
func (c *Chip) operatorAt(bank, slotOffset int) (*channel, *operator) {
	for chIdx := 0; chIdx < 9; chIdx++ {
		if oplreg.VoiceOperators[0][chIdx] == slotOffset {
			ch := &c.channels[bank*9+chIdx]
			return ch, &ch.modulator
		}
		if oplreg.VoiceOperators[1][chIdx] == slotOffset {
			ch := &c.channels[bank*9+chIdx]
			return ch, &ch.carrier
		}
	}
	return nil, nil
}

func (c *Chip) channelAt(bank, chIdx int) *channel {
	if chIdx < 0 || chIdx >= 9 {
		return nil
	}
	return &c.channels[bank*9+chIdx]
}

// recompute derives both operators' phase increments from F-Num/block
// using the standard OPL frequency formula (49716 Hz reference clock).
func (c *Chip) recompute(ch *channel) {
	hz := float64(ch.fnum) * math.Pow(2, float64(ch.block)-20) * 49716.0
	inc := hzToPhaseInc(hz, c.SampleRate)
	ch.modulator.phaseInc = inc
	ch.carrier.phaseInc = inc
}

func hzToPhaseInc(hz float64, sampleRate uint32) uint32 {
	if hz <= 0 || sampleRate == 0 {
		return 0
	}
	inc := (hz * 4294967296.0) / float64(sampleRate)
	if inc >= 4294967295.0 {
		return 0xFFFFFFFF
	}
	return uint32(inc)
}

// RenderStereo renders n stereo sample pairs (interleaved L,R int16) from
// the chip's current register state, advancing every active operator's
// phase and envelope by one sample each.
func (c *Chip) RenderStereo(n int) []int16 {
	out := make([]int16, n*2)
	active := c.numChannels()

	for s := 0; s < n; s++ {
		var left, right int32
		for i := 0; i < active; i++ {
			ch := &c.channels[i]

			modOut := ch.modulator.sample()
			ch.modulator.step()

			var voiceOut int16
			if ch.connection() {
				carOut := ch.carrier.sample()
				ch.carrier.step()
				voiceOut = int16((int32(modOut) + int32(carOut)) / 2)
			} else {
				depth := int32(ch.feedback>>1) * 256
				fbTerm := int32(ch.feedbackHist) * depth / 32768
				ch.carrier.phase += uint32((int32(modOut)+fbTerm)<<4) & 0x7fffffff
				carOut := ch.carrier.sample()
				ch.carrier.step()
				ch.feedbackHist = modOut
				voiceOut = carOut
			}

			pan := ch.panL || ch.panR
			gainL, gainR := int32(1), int32(1)
			if pan && !ch.panL {
				gainL = 0
			}
			if pan && !ch.panR {
				gainR = 0
			}
			left += int32(voiceOut) * gainL
			right += int32(voiceOut) * gainR
		}

		out[2*s] = clampInt16(left)
		out[2*s+1] = clampInt16(right)
	}
	return out
}

func clampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
