package viewer

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const chimeRate = beep.SampleRate(48000)

// Speaker plays an arrival chime on the default audio device.
type Speaker struct {
	once  sync.Once
	err   error
	ready bool
	mu    sync.Mutex
}

// NewSpeaker returns an uninitialised Speaker; Init opens the device.
func NewSpeaker() *Speaker { return &Speaker{} }

// Init opens the audio device once. Later calls return the first result.
func (s *Speaker) Init() error {
	s.once.Do(func() {
		s.err = speaker.Init(chimeRate, chimeRate.N(time.Millisecond*100))
		s.mu.Lock()
		s.ready = s.err == nil
		s.mu.Unlock()
	})
	return s.err
}

// Play queues the chime. It does nothing before a successful Init.
func (s *Speaker) Play() {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()
	if !ready {
		return
	}
	speaker.Play(beep.Take(chimeRate.N(chimeLength), NewChimeGenerator(chimeRate)))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}

const chimeLength = 450 * time.Millisecond

// ChimeGenerator produces two rising notes with an exponential decay.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime generator.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

// Stream fills samples with the next stretch of the chime; it never ends on
// its own, so wrap it in beep.Take.
func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := float64(chimeLength) / float64(time.Second) / 2
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq, local := 880.0, t
		if t >= half {
			freq, local = 1318.5, t-half
		}
		envelope := math.Exp(-local*9) * math.Min(local/0.005, 1)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ChimeGenerator) Err() error {
	return nil
}
