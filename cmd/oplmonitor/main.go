// Command oplmonitor is a tiny Fyne window listing every OPL voice slot
// live while the demo tune from internal/demo plays: its bound channel,
// key, priority, and instrument name, adapted from the teacher's
// panel-table idiom in internal/ui/panels/tile_viewer.go and
// register_viewer.go (a (container, updateFunc) pair the caller polls
// on its own update loop rather than subscribing to change events). It
// drives the player with a silent, real-time-paced driver instead of
// cmd/oplplay's SDL2 one — this binary only ever needs to see register
// writes happen, not hear them.
package main

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"oplmidi/internal/clock"
	"oplmidi/internal/debug"
	"oplmidi/internal/demo"
	"oplmidi/internal/mid"
	"oplmidi/internal/opldriver"
	"oplmidi/internal/player"
	"oplmidi/internal/voice"
)

// pumpInterval paces the silent driver's logical clock against real wall
// time, the monitor-only counterpart of cmd/oplplay's audio-paced pump.
const pumpInterval = 10 * time.Millisecond

// silentDriver is an opldriver.Driver with no register-I/O side effects:
// the monitor only cares that writes happen (observed indirectly through
// player.VoiceSnapshot), never what they'd sound like.
type silentDriver struct {
	mu     sync.Mutex
	sched  *clock.Scheduler
	paused bool
}

func newSilentDriver() *silentDriver { return &silentDriver{sched: clock.New()} }

func (d *silentDriver) Init(ioPort int) (opldriver.ChipKind, error) { return opldriver.ChipOPL3, nil }
func (d *silentDriver) Shutdown()                                   {}
func (d *silentDriver) SetSampleRate(hz uint32)                     {}
func (d *silentDriver) WriteRegister(reg uint16, val uint8)         {}

func (d *silentDriver) SetCallback(us uint64, fn func()) opldriver.CallbackHandle {
	return opldriver.CallbackHandle(d.sched.SetCallback(us, fn))
}
func (d *silentDriver) ClearCallbacks()                  { d.sched.ClearCallbacks() }
func (d *silentDriver) AdjustCallbacks(ratio float64)    { d.sched.AdjustCallbacks(ratio) }
func (d *silentDriver) SetPaused(paused bool)            { d.paused = paused }
func (d *silentDriver) Lock()                            { d.mu.Lock() }
func (d *silentDriver) Unlock()                          { d.mu.Unlock() }

// Pump advances logical time by one pumpInterval, the silent driver's
// equivalent of cmd/oplplay's audio-rendering pump.
func (d *silentDriver) Pump() {
	if d.paused {
		return
	}
	d.sched.Advance(uint64(pumpInterval / time.Microsecond))
}

// voiceTable builds the live voice list panel: a scrollable, monospaced
// text view refreshed by the returned function, matching
// panels.RegisterViewer's widget.NewMultiLineEntry + formatting-function
// idiom exactly.
func voiceTable(p *player.Player) (*fyne.Container, func()) {
	text := widget.NewMultiLineEntry()
	text.Wrapping = fyne.TextWrapOff
	text.Disable()
	scroll := container.NewScroll(text)
	scroll.SetMinSize(fyne.NewSize(420, 360))

	update := func() {
		snap := p.VoiceSnapshot()
		out := "=== OPL Voices ===\n\n"
		for _, v := range snap {
			if !v.Bound {
				out += fmt.Sprintf("voice %2d: free\n", v.Index)
				continue
			}
			out += fmt.Sprintf("voice %2d: chan %2d key %3d pri %2d  %s\n",
				v.Index, v.Channel, v.Key, v.Priority, v.Instrument)
		}
		text.SetText(out)
	}
	return container.NewVBox(scroll), update
}

func main() {
	logger := debug.NewLogger(512)
	defer logger.Shutdown()

	drv := newSilentDriver()
	p := player.New(player.Config{
		OPL3:          true,
		DriverVersion: voice.DriverDoom1v9,
		SampleRate:    44100,
		Logger:        logger,
	}, drv)

	if err := p.Init(); err != nil {
		fmt.Println("oplmonitor: init:", err)
		return
	}
	defer p.Shutdown()

	if err := p.LoadBank(demo.GENMIDIBank()); err != nil {
		fmt.Println("oplmonitor: load bank:", err)
		return
	}

	division, events := demo.Track()
	iter := mid.NewSliceIterator(events)
	if err := p.PlaySong([]mid.TrackIterator{iter}, division, true); err != nil {
		fmt.Println("oplmonitor: play:", err)
		return
	}

	fyneApp := app.NewWithID("com.oplmidi.monitor")
	window := fyneApp.NewWindow("OPL Voice Monitor")

	panel, update := voiceTable(p)
	status := widget.NewLabel("playing demo tune (looping)")
	window.SetContent(container.NewBorder(status, nil, nil, nil, panel))
	window.Resize(fyne.NewSize(460, 420))

	running := true
	window.SetOnClosed(func() { running = false })

	go func() {
		ticker := time.NewTicker(pumpInterval)
		defer ticker.Stop()
		for running {
			<-ticker.C
			drv.Pump()
			update()
		}
	}()

	window.ShowAndRun()
}
