// Command oplplay is a minimal host program that drives the oplmidi core
// against a real SDL2 audio queue, the same "core logic behind an
// opldriver.Driver adapter" split the teacher draws between its engine
// packages and cmd/demorom/internal/ui's SDL2 host adapter. It plays a
// short built-in demo tune through a software OPL approximation
// (internal/oplsynth) instead of real chip I/O or a parsed MIDI file —
// both are external collaborators outside the core's scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"oplmidi/internal/clock"
	"oplmidi/internal/debug"
	"oplmidi/internal/demo"
	"oplmidi/internal/mid"
	"oplmidi/internal/opldriver"
	"oplmidi/internal/oplerr"
	"oplmidi/internal/oplsynth"
	"oplmidi/internal/player"
	"oplmidi/internal/voice"
)

// pumpInterval is how often main's pump loop advances logical time and
// queues a fresh block of audio, mirroring the teacher's ui.go Run loop
// pacing its own per-frame QueueAudio calls rather than relying on an
// SDL audio callback.
const pumpInterval = 10 * time.Millisecond

// sdl2Driver adapts internal/oplsynth's software chip and an SDL2 audio
// queue to the opldriver.Driver interface the player drives, the
// demonstration counterpart to internal/clock.VirtualDriver's
// deterministic test double. It has no internal concurrency of its own:
// the whole demo is driven from main's single pump loop, the same
// "single-threaded cooperative" model the core assumes of a real timer
// thread (spec §5) — here there simply is only one thread. Lock/Unlock
// exists only to satisfy the Driver interface for Player.Stop, which
// takes it even though nothing else ever contends for it here.
type sdl2Driver struct {
	stopLock sync.Mutex

	sched *clock.Scheduler
	chip  *oplsynth.Chip

	audioDev   sdl.AudioDeviceID
	sampleRate uint32
	paused     bool
}

func newSDL2Driver() *sdl2Driver {
	return &sdl2Driver{sched: clock.New()}
}

func (d *sdl2Driver) Init(ioPort int) (opldriver.ChipKind, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return opldriver.ChipNone, fmt.Errorf("oplplay: sdl init: %w", err)
	}

	spec := sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 2,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		sdl.Quit()
		return opldriver.ChipNone, fmt.Errorf("%w: %v", oplerr.ErrChipAbsent, err)
	}
	sdl.PauseAudioDevice(dev, false)

	d.audioDev = dev
	d.chip = oplsynth.NewChip(uint32(spec.Freq))
	return opldriver.ChipOPL3, nil
}

func (d *sdl2Driver) Shutdown() {
	if d.audioDev != 0 {
		sdl.CloseAudioDevice(d.audioDev)
	}
	sdl.Quit()
}

func (d *sdl2Driver) SetSampleRate(hz uint32) {
	d.sampleRate = hz
	d.chip.SampleRate = hz
}

func (d *sdl2Driver) WriteRegister(reg uint16, val uint8) {
	d.chip.WriteRegister(reg, val)
}

func (d *sdl2Driver) SetCallback(us uint64, fn func()) opldriver.CallbackHandle {
	return opldriver.CallbackHandle(d.sched.SetCallback(us, fn))
}

func (d *sdl2Driver) ClearCallbacks() {
	d.sched.ClearCallbacks()
}

func (d *sdl2Driver) AdjustCallbacks(ratio float64) {
	d.sched.AdjustCallbacks(ratio)
}

func (d *sdl2Driver) SetPaused(paused bool) {
	d.paused = paused
	if d.audioDev != 0 {
		sdl.PauseAudioDevice(d.audioDev, paused)
	}
}

func (d *sdl2Driver) Lock()   { d.stopLock.Lock() }
func (d *sdl2Driver) Unlock() { d.stopLock.Unlock() }

// Pump advances logical time by one pumpInterval, letting any due track
// callbacks fire (which in turn write OPL registers and reschedule
// themselves), then renders and queues the audio that interval produced.
// Called in a loop from main, it plays the same role ui.go's Run loop
// plays pairing "advance emulation" with "queue this frame's samples."
func (d *sdl2Driver) Pump() {
	if d.paused || d.sampleRate == 0 {
		return
	}
	const us = uint64(pumpInterval / time.Microsecond)
	d.sched.Advance(us)

	n := int(uint64(d.sampleRate) * us / 1_000_000)
	samples := d.chip.RenderStereo(n)
	if len(samples) == 0 {
		return
	}

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		*(*int16)(unsafe.Pointer(&buf[i*2])) = s
	}
	if err := sdl.QueueAudio(d.audioDev, buf); err != nil {
		fmt.Fprintf(os.Stderr, "oplplay: queue audio: %v\n", err)
	}
}

func main() {
	opl3 := flag.Bool("opl3", true, "enable OPL3 (18 voices, stereo pan)")
	reverse := flag.Bool("reverse", false, "invert stereo pan (snd_dmxoption -reverse)")
	driverVer := flag.String("driver", "doom19", "driver version: beta, doom1, doom2, doom19")
	loop := flag.Bool("loop", false, "loop the demo tune")
	seconds := flag.Int("seconds", 12, "how long to let the demo play before exiting")
	flag.Parse()

	dv, err := parseDriverVersion(*driverVer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "oplplay:", err)
		os.Exit(1)
	}

	logger := debug.NewLogger(512)
	defer logger.Shutdown()

	drv := newSDL2Driver()
	p := player.New(player.Config{
		OPL3:          *opl3,
		StereoReverse: *reverse,
		DriverVersion: dv,
		SampleRate:    44100,
		Logger:        logger,
	}, drv)

	if err := p.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "oplplay: init:", err)
		os.Exit(1)
	}
	defer p.Shutdown()

	if err := p.LoadBank(demo.GENMIDIBank()); err != nil {
		fmt.Fprintln(os.Stderr, "oplplay: load bank:", err)
		os.Exit(1)
	}

	division, events := demo.Track()
	iter := mid.NewSliceIterator(events)
	if err := p.PlaySong([]mid.TrackIterator{iter}, division, *loop); err != nil {
		fmt.Fprintln(os.Stderr, "oplplay: play:", err)
		os.Exit(1)
	}

	fmt.Printf("playing demo tune for %ds (driver=%s opl3=%v)...\n", *seconds, *driverVer, *opl3)

	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	for time.Now().Before(deadline) {
		start := time.Now()
		drv.Pump()
		if elapsed := time.Since(start); elapsed < pumpInterval {
			time.Sleep(pumpInterval - elapsed)
		}
	}

	_ = p.Stop()
}

func parseDriverVersion(s string) (voice.DriverVersion, error) {
	switch s {
	case "beta":
		return voice.DriverBeta, nil
	case "doom1":
		return voice.DriverDoom1v1_666, nil
	case "doom2":
		return voice.DriverDoom2v1_666, nil
	case "doom19", "":
		return voice.DriverDoom1v9, nil
	default:
		return 0, fmt.Errorf("unknown -driver %q (want beta, doom1, doom2, doom19)", s)
	}
}
