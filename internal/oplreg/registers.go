// Package oplreg knows the OPL2/OPL3 register map and how to turn voice,
// channel, and instrument state into the register writes a real chip (or
// internal/oplsynth's software model) expects. The register offsets below
// are the well-known DMX/OPL map used by the original driver this core is
// modeled on; they are not sourced from any one file in the retrieval pack.
package oplreg

// Register base addresses. Each is added to an operator or channel index
// (0-8 within a bank) to form the full register number; OPL3's second bank
// is reached by OR-ing in BankOffset.
const (
	RegWaveformEnable = 0x01
	RegTremoloVibrato = 0x20 // AM/VIB/EGT/KSR/MULT, per operator
	RegLevel          = 0x40 // KSL/TL, per operator
	RegAttack         = 0x60 // AR/DR, per operator
	RegSustain        = 0x80 // SL/RR, per operator
	RegFreq1          = 0xA0 // F-Num low byte, per channel
	RegFreq2          = 0xB0 // key-on | block | F-Num high bits, per channel
	RegFeedback       = 0xC0 // feedback | connection | stereo pan, per channel
	RegWaveform       = 0xE0 // waveform select, per operator

	RegOPL3Enable = 0x105 // bank-1 register enabling OPL3 mode

	// BankOffset is OR-ed into a register number to address the second
	// set of nine channels/eighteen operators available in OPL3 mode.
	BankOffset = 0x100

	// KeyOnBit is OR-ed into the high byte of F-Num when key is held.
	KeyOnBit = 0x20
)

// Pan field values for RegFeedback, matching the MIDI-pan-to-OPL3-stereo
// mapping the original driver uses (center pan on an OPL2 chip, which has
// no stereo pan bits, still uses PanBoth so the feedback nibble round-trips
// unchanged).
const (
	PanLeft  = 0x10
	PanRight = 0x20
	PanBoth  = 0x30
)

// VoiceOperators gives the operator register offsets for each of the nine
// channel slots within one bank: VoiceOperators[0] is the modulator offset
// per channel, VoiceOperators[1] is the carrier offset per channel. Index
// by channel-within-bank (0-8).
var VoiceOperators = [2][9]int{
	{0x00, 0x01, 0x02, 0x08, 0x09, 0x0a, 0x10, 0x11, 0x12},
	{0x03, 0x04, 0x05, 0x0b, 0x0c, 0x0d, 0x13, 0x14, 0x15},
}
