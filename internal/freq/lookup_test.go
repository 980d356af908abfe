package freq

import "testing"

func TestCurveLengthAndOverrunValue(t *testing.T) {
	if len(Curve) != 668 {
		t.Fatalf("got Curve length %d, want 668", len(Curve))
	}
	if Curve[len(Curve)-1] != 0x36c {
		t.Fatalf("got trailing Curve entry 0x%x, want the documented overrun 0x36c", Curve[len(Curve)-1])
	}
}

func TestCurveBetaLength(t *testing.T) {
	if len(CurveBeta) != 1552 {
		t.Fatalf("got CurveBeta length %d, want 1552", len(CurveBeta))
	}
}

func TestNormalizeFoldsIntoRange(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-1, 11},
		{-13, 11},
		{96, 84},
		{107, 95},
		{50, 50},
	}
	for _, c := range cases {
		if got := Normalize(c.in); int(got) != c.want {
			t.Fatalf("Normalize(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestForNoteUsesDirectTableBelowOctaveWrap(t *testing.T) {
	got := ForNote(0, 0, false, 0)
	if got != Curve[64] {
		t.Fatalf("got %#x, want Curve[64]=%#x", got, Curve[64])
	}
}

func TestForNoteWrapsOctaveBits(t *testing.T) {
	// freq_index = 64 + 32*95 = 3104, which is >= 284, so it wraps.
	got := ForNote(95, 0, false, 0)
	subIndex := (3104 - 284) % (12 * 32)
	octave := (3104 - 284) / (12 * 32)
	if octave > 7 {
		octave = 7
	}
	want := Curve[subIndex+284] | uint16(octave<<10)
	if got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func TestForNoteBetaClampsHighIndex(t *testing.T) {
	got := ForNoteBeta(95, 10000, false, 0)
	if got != CurveBeta[len(CurveBeta)-1] {
		t.Fatalf("got %#x, want clamped last entry %#x", got, CurveBeta[len(CurveBeta)-1])
	}
}

func TestForNoteBetaSecondVoiceFineTuningOffByThreeQuirk(t *testing.T) {
	base := ForNoteBeta(40, 0, false, 0)
	_ = base
	// tune=129 takes the tune+=3 branch: (129+3)/4 = 33, one index above
	// tune=128's (128+3)/4 = 32. Without the +3 both would divide to 32.
	withQuirk := ForNoteBeta(40, 0, true, 129)
	withoutQuirk := ForNoteBeta(40, 0, true, 128)
	if withQuirk == withoutQuirk {
		t.Fatalf("expected the tune>=128 adjustment to shift the frequency index")
	}
}
