// Package sound plays the background music and effects of a session.
// It listens to game lifecycle hooks; when the audio device is missing or
// muted every hook is a no-op.
package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager mixes the music loop with one-shot effects.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
	muted       bool
}

var _ core.Hooks = (*Manager)(nil)

// NewManager creates a manager. Call Init before expecting any sound.
func NewManager(logger *log.Logger, muted bool) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		logger: logger,
		muted:  muted,
	}
}

// Init opens the speaker. Muted managers never touch the device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
	m.music = nil
}

// Active reports whether sounds actually reach the speaker.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && !m.muted
}

func (m *Manager) play(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func (m *Manager) setMusicPaused(paused bool) {
	if m.music == nil {
		if paused {
			return
		}
		m.music = &beep.Ctrl{Streamer: NewMusic(sampleRate)}
		m.play(m.music)
		return
	}
	speaker.Lock()
	m.music.Paused = paused
	speaker.Unlock()
}

// OnStart starts the music loop.
func (m *Manager) OnStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.setMusicPaused(false)
}

// OnCoin plays the pickup chime.
func (m *Manager) OnCoin(int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.play(CoinChime(sampleRate))
}

// OnGameOver stops the music and plays the buzz.
func (m *Manager) OnGameOver(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.setMusicPaused(true)
	m.play(GameOverBuzz(sampleRate))
	m.logger.Debug("game over sound", "score", score)
}

// OnRestart resumes the music.
func (m *Manager) OnRestart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.setMusicPaused(false)
}
