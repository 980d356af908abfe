package oplsynth

import (
	"testing"

	"oplmidi/internal/oplreg"
)

func TestWriteRegisterRoutesLevelToCarrier(t *testing.T) {
	c := NewChip(44100)
	// Channel 0's carrier operator is at offset 0x03 (oplreg.VoiceOperators[1][0]).
	c.WriteRegister(oplreg.RegLevel+0x03, 0x2a)

	if c.channels[0].carrier.attenuation != 0x2a {
		t.Fatalf("got attenuation 0x%02x, want 0x2a", c.channels[0].carrier.attenuation)
	}
}

func TestWriteRegisterKeyOnSetsBothOperators(t *testing.T) {
	c := NewChip(44100)
	c.WriteRegister(oplreg.RegFreq1+0, 0x50)
	c.WriteRegister(oplreg.RegFreq2+0, oplreg.KeyOnBit|0x04)

	if !c.channels[0].keyOn || !c.channels[0].modulator.keyOn || !c.channels[0].carrier.keyOn {
		t.Fatalf("key-on did not propagate to both operators")
	}
	if c.channels[0].modulator.phaseInc == 0 {
		t.Fatalf("phase increment was not derived from F-Num/block")
	}
}

func TestOPL3EnableSwitchesChannelCount(t *testing.T) {
	c := NewChip(44100)
	if c.numChannels() != 9 {
		t.Fatalf("got %d channels, want 9 before OPL3 enable", c.numChannels())
	}
	c.WriteRegister(oplreg.RegOPL3Enable, 0x01)
	if c.numChannels() != 18 {
		t.Fatalf("got %d channels, want 18 after OPL3 enable", c.numChannels())
	}
}

func TestRenderStereoProducesSamplesWithoutPanic(t *testing.T) {
	c := NewChip(44100)
	c.WriteRegister(oplreg.RegLevel+0x00, 0x00)
	c.WriteRegister(oplreg.RegLevel+0x03, 0x00)
	c.WriteRegister(oplreg.RegFeedback+0, 0x01) // additive connection
	c.WriteRegister(oplreg.RegFreq1+0, 0x50)
	c.WriteRegister(oplreg.RegFreq2+0, oplreg.KeyOnBit|0x04)

	samples := c.RenderStereo(256)
	if len(samples) != 512 {
		t.Fatalf("got %d samples, want 512 (256 stereo pairs)", len(samples))
	}
}

func TestKeyOffDecaysEnvelopeTowardZero(t *testing.T) {
	c := NewChip(44100)
	c.WriteRegister(oplreg.RegSustain+0x03, 0x0f)
	c.WriteRegister(oplreg.RegFreq1+0, 0x50)
	c.WriteRegister(oplreg.RegFreq2+0, oplreg.KeyOnBit|0x04)
	c.RenderStereo(64)

	afterOn := c.channels[0].carrier.envelope

	c.WriteRegister(oplreg.RegFreq2+0, 0x04) // key off, same block/fnum
	c.RenderStereo(256)

	if c.channels[0].carrier.envelope >= afterOn {
		t.Fatalf("envelope did not decay after key-off: before=%v after=%v", afterOn, c.channels[0].carrier.envelope)
	}
}
