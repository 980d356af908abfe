// Package player implements the public facade a host program drives:
// init, load a GENMIDI bank, play/pause/resume/stop a song, and adjust
// the music volume, grounded on original_source/src/i_oplmusic.c's
// I_OPL_InitMusic, I_OPL_PlaySong, I_OPL_PauseSong, I_OPL_ResumeSong,
// I_OPL_StopSong and I_OPL_SetMusicVolume.
package player

import (
	"fmt"
	"sync"

	"oplmidi/internal/alloc"
	"oplmidi/internal/debug"
	"oplmidi/internal/dispatch"
	"oplmidi/internal/genmidi"
	"oplmidi/internal/mid"
	"oplmidi/internal/midichan"
	"oplmidi/internal/opldriver"
	"oplmidi/internal/oplerr"
	"oplmidi/internal/oplreg"
	"oplmidi/internal/track"
	"oplmidi/internal/voice"
)

// faderSteps and faderStepUs are the beta driver's linear volume fade
// parameters: 50 steps of 20ms apiece, ramping current_fader_volume from
// 0 to 127 (see StartFader/FaderCallback in the original driver).
const (
	faderSteps  = 50
	faderStepUs = 20000
)

// Config configures a Player, replacing the original driver's
// snd_dmxoption/opl_io_port/opl_driver_ver process globals with an
// explicit struct passed to New, per Design Notes §9's rejection of
// module-level mutable globals.
type Config struct {
	OPL3          bool
	StereoReverse bool
	DriverVersion voice.DriverVersion
	IOPort        int
	SampleRate    uint32

	// Logger is optional; a nil Logger disables diagnostic logging
	// everywhere it is threaded through (the player itself and alloc).
	Logger *debug.Logger
}

// trackState is the per-track state a playing song keeps: its own 16
// channels (percussion lives at swapped index 15) plus the dispatcher
// serving them, matching opl_track_data_t.
type trackState struct {
	channels   [16]midichan.Channel
	dispatcher *dispatch.Dispatcher
}

// Player is the facade a host program drives. One Player owns the driver
// lock (§5): every exported method takes p.mu before touching shared
// state, and the track scheduler's fired callbacks also take it via
// lockingDispatcher, so register I/O and allocator mutation are never
// concurrent with a facade call.
type Player struct {
	mu sync.Mutex

	cfg    Config
	driver opldriver.Driver
	chip   opldriver.ChipKind

	initialized bool

	bank  *genmidi.Bank
	pool  *voice.Pool
	prog  *oplreg.Programmer
	alloc *alloc.Allocator

	musicVolume int
	startVolume int

	faderActive         bool
	faderVolume         int
	faderStepsRemaining int

	scheduler *track.Scheduler
	tracks    []*trackState

	playing bool
	paused  bool
}

// New returns a Player that will drive driver once Init is called.
func New(cfg Config, driver opldriver.Driver) *Player {
	return &Player{cfg: cfg, driver: driver, musicVolume: 127}
}

// Init opens the driver, sizes the voice pool to what the chip reports
// (18 voices only when both OPL3 was requested and the chip answered
// opldriver.ChipOPL3), and zeroes every OPL register, mirroring
// I_OPL_InitMusic.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	kind, err := p.driver.Init(p.cfg.IOPort)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	p.chip = kind
	p.driver.SetSampleRate(p.cfg.SampleRate)

	opl3 := p.cfg.OPL3 && kind == opldriver.ChipOPL3
	numVoices := 9
	if opl3 {
		numVoices = 18
	}

	p.pool = voice.NewPool(numVoices, p.cfg.DriverVersion)
	p.prog = oplreg.NewProgrammer(p.driver)
	p.prog.InitRegisters(opl3)

	p.initialized = true
	if p.cfg.Logger != nil {
		p.cfg.Logger.LogPlayerf(debug.LogLevelInfo, "initialized with %d voices (opl3=%v)", numVoices, opl3)
	}
	return nil
}

// LoadBank parses and installs a GENMIDI instrument bank. It must be
// called after Init and before PlaySong.
func (p *Player) LoadBank(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}
	bank, err := genmidi.Load(data)
	if err != nil {
		return err
	}
	p.bank = bank
	p.alloc = &alloc.Allocator{
		Pool:          p.pool,
		Prog:          p.prog,
		Bank:          p.bank,
		DriverVersion: p.cfg.DriverVersion,
		Logger:        p.cfg.Logger,
	}
	return nil
}

// lockingDispatcher wraps a track.EventDispatcher so a fired scheduler
// callback acquires the player's driver lock before touching channel or
// voice-pool state, exactly as the original driver's TrackTimerCallback
// runs entirely under OPL_Lock/OPL_Unlock.
type lockingDispatcher struct {
	p     *Player
	inner track.EventDispatcher
}

func (d *lockingDispatcher) Dispatch(ev mid.Event) {
	d.p.mu.Lock()
	defer d.p.mu.Unlock()
	d.inner.Dispatch(ev)
}

// PlaySong registers every track in tracks (division ticks per quarter
// note) and starts scheduling their events, mirroring I_OPL_PlaySong. A
// previously playing song must be stopped first; PlaySong is a no-op
// (matching !music_initialized's early return) if Init/LoadBank have not
// both succeeded.
func (p *Player) PlaySong(tracks []mid.TrackIterator, division uint16, looping bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}
	if p.bank == nil {
		return fmt.Errorf("player: PlaySong called before LoadBank")
	}
	if p.playing {
		return fmt.Errorf("player: a song is already playing; call Stop first")
	}

	p.startVolume = p.musicVolume
	p.scheduler = track.NewScheduler(p.driver, division)
	p.tracks = make([]*trackState, len(tracks))

	for i, iter := range tracks {
		ts := &trackState{}
		for j := range ts.channels {
			ts.channels[j].Init(p.bank, p.musicVolume, p.currentFaderVolume())
		}
		ts.dispatcher = &dispatch.Dispatcher{
			Alloc:         p.alloc,
			Pool:          p.pool,
			Prog:          p.prog,
			Bank:          p.bank,
			Channels:      &ts.channels,
			BaseChannelID: i * 16,
			OPL3Mode:      p.chip == opldriver.ChipOPL3 && p.cfg.OPL3,
			StereoCorrect: p.cfg.StereoReverse,
			MusicVolume:   func() int { return p.musicVolume },
			FaderVolume:   p.currentFaderVolume,
			StartVolume:   func() int { return p.startVolume },
			SetTempo:      p.scheduler.SetTempo,
		}
		p.tracks[i] = ts
		p.scheduler.AddTrack(&lockingDispatcher{p: p, inner: ts.dispatcher}, iter)
	}

	// OnRestart fires directly off the scheduler's own restart callback,
	// not through lockingDispatcher, so it takes the driver lock itself
	// before touching channel state, matching every other path that
	// mutates shared channel/voice state.
	p.scheduler.OnRestart = func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for _, ts := range p.tracks {
			for j := range ts.channels {
				ts.channels[j].Init(p.bank, p.musicVolume, p.currentFaderVolume())
			}
		}
	}

	p.playing = true
	p.paused = false

	if p.cfg.DriverVersion == voice.DriverBeta {
		p.startFader()
	} else {
		p.faderVolume = 127
		p.faderActive = false
	}

	p.scheduler.Start(looping)
	return nil
}

// currentFaderVolume returns 127 outside of an active beta-driver fade,
// or the fade's current ramp value while one is running.
func (p *Player) currentFaderVolume() int {
	if !p.faderActive {
		return 127
	}
	return p.faderVolume
}

// startFader begins the beta driver's linear volume-fade-in, scheduling
// its own 20ms callback chain through the driver directly (mirroring
// StartFader/FaderCallback; it runs independently of the track
// scheduler's per-track callbacks).
func (p *Player) startFader() {
	p.faderActive = true
	p.faderVolume = 0
	p.faderStepsRemaining = 0
	p.driver.SetCallback(faderStepUs, p.faderCallback)
}

// faderCallback advances the fade by one step and reapplies the new
// fader volume to every channel's base volume, mirroring FaderCallback's
// re-application of SetChannelVolume(volume_base, false) across every
// track and channel on each tick.
func (p *Player) faderCallback() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.faderActive {
		return
	}

	p.faderStepsRemaining++
	p.faderVolume = (p.faderStepsRemaining * 127) / faderSteps

	if p.faderVolume >= 127 {
		p.faderVolume = 127
		p.faderActive = false
	}

	for i, ts := range p.tracks {
		for j := range ts.channels {
			ch := &ts.channels[j]
			ch.SetVolume(i*16+j, ch.VolumeBase, p.musicVolume, p.faderVolume, p.startVolume, false, p.pool, p.prog)
		}
	}

	if p.faderActive {
		p.driver.SetCallback(faderStepUs, p.faderCallback)
	}
}

// Pause pauses driver callbacks and key-offs every voice whose
// instrument came from the melodic range, leaving percussion voices to
// decay naturally — exactly I_OPL_PauseSong's "this is what Vanilla
// does" comment describes.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}

	p.driver.SetPaused(true)
	p.paused = true

	p.pool.Allocated(func(idx int) bool {
		v := p.pool.Voice(idx)
		if !v.Percussion {
			p.prog.KeyOff(v)
		}
		return true
	})
	return nil
}

// Resume unpauses driver callbacks, mirroring I_OPL_ResumeSong's sole
// responsibility.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}

	p.driver.SetPaused(false)
	p.paused = false
	return nil
}

// Stop acquires the driver lock, clears every pending callback, key-offs
// and releases every bound voice, and discards the registered tracks,
// mirroring I_OPL_StopSong.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}
	if !p.playing {
		return nil
	}

	p.driver.Lock()
	defer p.driver.Unlock()

	if p.scheduler != nil {
		p.scheduler.Stop()
	}

	p.pool.ReleaseMatching(
		func(idx int) bool { return p.pool.Voice(idx).Channel >= 0 },
		func(idx int) { p.prog.KeyOff(p.pool.Voice(idx)) },
	)

	p.tracks = nil
	p.scheduler = nil
	p.playing = false
	p.paused = false
	p.faderActive = false
	return nil
}

// channelAt returns the channel bound to channelID (a flattened i*16+j
// index into p.tracks), or nil if channelID is out of range.
func (p *Player) channelAt(channelID int) *midichan.Channel {
	i, j := channelID/16, channelID%16
	if i < 0 || i >= len(p.tracks) {
		return nil
	}
	return &p.tracks[i].channels[j]
}

// SetVolume installs a new overall music volume (0-127), reapplying it
// to every live channel through the same per-channel SetVolume path a
// Main Volume controller change uses, but without the start-volume clip,
// mirroring I_OPL_SetMusicVolume.
func (p *Player) SetVolume(volume int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return oplerr.ErrNotInitialized
	}
	if p.musicVolume == volume {
		return nil
	}
	p.musicVolume = volume

	for i, ts := range p.tracks {
		for j := range ts.channels {
			ch := &ts.channels[j]
			// The percussion channel (swapped index 15) tracks the music
			// volume directly instead of its own base volume.
			base := ch.VolumeBase
			if j == 15 {
				base = volume
			}
			ch.SetVolume(i*16+j, base, p.musicVolume, p.currentFaderVolume(), p.startVolume, false, p.pool, p.prog)
		}
	}
	return nil
}

// Shutdown tears down the driver, releasing any chip resources it holds.
func (p *Player) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.driver.Shutdown()
	p.initialized = false
}

// DevMessage formats a dev-diagnostic dump of every live channel (its
// MIDI program and whether a voice is currently bound to it) plus recent
// percussion history, matching I_OPL_DevMessages's
// "chan %i: %c i#%i (%s)" format (the '*' marker flags a channel with at
// least one voice currently sounding).
func (p *Player) DevMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bank == nil {
		return ""
	}

	inUse := make(map[int]bool)
	p.pool.Allocated(func(idx int) bool {
		inUse[p.pool.Voice(idx).Channel] = true
		return true
	})

	out := ""
	for i, ts := range p.tracks {
		for j := range ts.channels {
			channelID := i*16 + j
			marker := ' '
			if inUse[channelID] {
				marker = '*'
			}
			ch := &ts.channels[j]
			out += fmt.Sprintf("chan %d: %c i#%d (%s)\n", channelID, marker, ch.Program, p.bank.MelodicName(ch.Program))
		}
	}

	if p.alloc != nil {
		out += "percussion history:\n"
		for _, ev := range p.alloc.RecentPercussion() {
			status := "sounded"
			if !ev.Sounded {
				status = "dropped"
			}
			out += fmt.Sprintf("  key %d: %s\n", ev.Key, status)
		}
	}

	return out
}

// VoiceInfo is a read-only snapshot of one pool slot, for a host-side
// monitor UI (cmd/oplmonitor's live voice table) to render without
// reaching into internal/voice directly.
type VoiceInfo struct {
	Index      int
	Bound      bool
	Channel    int
	Key        uint8
	Priority   int
	Instrument string
}

// VoiceSnapshot returns the current state of every voice in the pool, in
// pool-slot order, for a monitor UI to poll periodically the same way
// the teacher's panels.RegisterViewer polls emulator state on each UI
// tick rather than subscribing to change events.
func (p *Player) VoiceSnapshot() []VoiceInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool == nil {
		return nil
	}

	out := make([]VoiceInfo, p.pool.Len())
	for i := range out {
		v := p.pool.Voice(i)
		out[i] = VoiceInfo{Index: i, Channel: v.Channel, Key: v.Key, Priority: v.Priority}
		if v.Channel >= 0 && p.bank != nil {
			out[i].Bound = true
			if v.Percussion {
				out[i].Instrument = p.bank.PercussionName(int(v.Key))
			} else if ch := p.channelAt(v.Channel); ch != nil {
				out[i].Instrument = p.bank.MelodicName(ch.Program)
			}
		}
	}
	return out
}
