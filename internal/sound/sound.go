package sound

import (
	"fmt"
	"sync"
	"time"

	"redgrid/internal/config"
	"redgrid/internal/level"
	"redgrid/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Player turns level events into short tones.
type Player interface {
	Play(kind level.EventKind)
	Close()
}

// Silent is used when audio is disabled or the device cannot be opened.
type Silent struct{}

func (Silent) Play(level.EventKind) {}
func (Silent) Close()               {}

type note struct {
	freq float64
	dur  time.Duration
}

// cue lists the notes played for each event, in order.
var cue = map[level.EventKind][]note{
	level.EventShot:     {{660, 40 * time.Millisecond}},
	level.EventHurt:     {{220, 120 * time.Millisecond}},
	level.EventCrushed:  {{140, 90 * time.Millisecond}, {110, 120 * time.Millisecond}},
	level.EventWon:      {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 200 * time.Millisecond}},
	level.EventGameOver: {{392, 150 * time.Millisecond}, {262, 300 * time.Millisecond}},
}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// New opens the audio device. Failure is not fatal: it is logged and a Silent
// player is returned.
func New(cfg config.AudioConfig) Player {
	log := logger.For("sound")
	if !cfg.Enabled {
		log.Debug("Audio disabled")
		return Silent{}
	}
	s := &Speaker{rate: beep.SampleRate(cfg.SampleRate), mixer: &beep.Mixer{}}
	if err := s.initialize(); err != nil {
		log.WithError(err).Warn("Audio unavailable, continuing without sound")
		return Silent{}
	}
	log.WithField("sample_rate", cfg.SampleRate).Info("Audio initialized")
	return s
}

func (s *Speaker) initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", s.rate)
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) Play(kind level.EventKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer, err := Cue(s.rate, kind)
	if err != nil {
		logger.For("sound").WithError(err).WithField("event", kind.String()).Debug("No cue")
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Cue builds the finite streamer for an event.
func Cue(rate beep.SampleRate, kind level.EventKind) (beep.Streamer, error) {
	notes, ok := cue[kind]
	if !ok {
		return nil, fmt.Errorf("no cue for event %s", kind)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		t, err := tone(rate, n.freq, n.dur)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Seq(parts...), nil
}

func tone(rate beep.SampleRate, freq float64, dur time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to build %vHz tone: %w", freq, err)
	}
	return &effects.Gain{Streamer: beep.Take(rate.N(dur), sine), Gain: -0.8}, nil
}
