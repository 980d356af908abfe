package genmidi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"oplmidi/internal/oplerr"
)

func buildInstrumentBytes(flags uint16, fineTuning, fixedNote byte, baseOffset0 int16) []byte {
	buf := make([]byte, instrumentSize)
	binary.LittleEndian.PutUint16(buf[0:2], flags)
	buf[2] = fineTuning
	buf[3] = fixedNote

	voice := make([]byte, voiceSize)
	voice[0], voice[1], voice[2], voice[3], voice[4], voice[5] = 1, 2, 3, 4, 5, 6 // modulator
	voice[6] = 0x01                                                              // feedback
	voice[7], voice[8], voice[9], voice[10], voice[11], voice[12] = 7, 8, 9, 10, 11, 12
	binary.LittleEndian.PutUint16(voice[14:16], uint16(baseOffset0))
	copy(buf[4:4+voiceSize], voice)
	copy(buf[4+voiceSize:4+2*voiceSize], voice)
	return buf
}

func buildLump(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(header)

	for i := 0; i < numMelodic; i++ {
		buf.Write(buildInstrumentBytes(0, 0, 0, int16(i)))
	}
	for i := 0; i < numPercussion; i++ {
		flags := uint16(0)
		if i == 0 {
			flags = FlagFixedPitch
		}
		buf.Write(buildInstrumentBytes(flags, 0, 60, 0))
	}
	for i := 0; i < numMelodic; i++ {
		name := make([]byte, nameSize)
		copy(name, []byte("melodic"))
		buf.Write(name)
	}
	for i := 0; i < numPercussion; i++ {
		name := make([]byte, nameSize)
		copy(name, []byte("perc"))
		buf.Write(name)
	}
	return buf.Bytes()
}

func TestLoadRejectsMissingHeader(t *testing.T) {
	_, err := Load([]byte("not a genmidi lump"))
	if !errors.Is(err, oplerr.ErrBadInstrumentBank) {
		t.Fatalf("got err %v, want ErrBadInstrumentBank", err)
	}
}

func TestLoadRejectsTruncatedLump(t *testing.T) {
	_, err := Load([]byte(header))
	if !errors.Is(err, oplerr.ErrBadInstrumentBank) {
		t.Fatalf("got err %v, want ErrBadInstrumentBank", err)
	}
}

func TestLoadParsesInstrumentsAndNames(t *testing.T) {
	bank, err := Load(buildLump(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	instr := bank.Melodic(5)
	if instr.Voices[0].BaseNoteOffset != 5 {
		t.Fatalf("got BaseNoteOffset %d, want 5", instr.Voices[0].BaseNoteOffset)
	}
	if instr.Voices[0].Modulator.Level != 6 {
		t.Fatalf("got modulator level %d, want 6", instr.Voices[0].Modulator.Level)
	}
	if bank.MelodicName(5) != "melodic" {
		t.Fatalf("got name %q, want melodic", bank.MelodicName(5))
	}

	perc, err := bank.Percussion(35)
	if err != nil {
		t.Fatalf("Percussion(35) returned error: %v", err)
	}
	if !perc.FixedPitch() {
		t.Fatalf("expected percussion key 35 to be fixed-pitch")
	}
	if bank.PercussionName(35) != "perc" {
		t.Fatalf("got percussion name %q, want perc", bank.PercussionName(35))
	}
}

func TestPercussionOutOfRange(t *testing.T) {
	bank, err := Load(buildLump(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, err := bank.Percussion(34); !errors.Is(err, oplerr.ErrPercussionOutOfRange) {
		t.Fatalf("got err %v, want ErrPercussionOutOfRange", err)
	}
	if _, err := bank.Percussion(82); !errors.Is(err, oplerr.ErrPercussionOutOfRange) {
		t.Fatalf("got err %v, want ErrPercussionOutOfRange", err)
	}
}
