// Package sound plays the short cues for tile hits and game over.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/ddesignmedia/catchthenumba/game"
)

const sampleRate = beep.SampleRate(44100)

// Player is what the frontends call on game events.
type Player interface {
	Correct()
	Wrong()
	Crash()
	Close()
}

// Nop is a silent Player, used with -mute or when no audio device exists.
type Nop struct{}

func (Nop) Correct() {}
func (Nop) Wrong()   {}
func (Nop) Crash()   {}
func (Nop) Close()   {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device. Callers fall back to Nop on error.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) add(st beep.Streamer) {
	if st == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Correct() { s.add(CorrectCue(sampleRate)) }
func (s *Speaker) Wrong()   { s.add(WrongCue(sampleRate)) }
func (s *Speaker) Crash()   { s.add(CrashCue(sampleRate)) }

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// tone is a quiet sine of the given length, nil if freq is unusable.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   -2,
	}
}

// CorrectCue is a short rising two-note chime.
func CorrectCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 660, 60*time.Millisecond),
		tone(sr, 990, 90*time.Millisecond),
	)
}

// WrongCue is a low buzz.
func WrongCue(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(150*time.Millisecond), &buzz{sr: sr, freq: 140})
}

// CrashCue is a falling sweep.
func CrashCue(sr beep.SampleRate) beep.Streamer {
	return &sweep{sr: sr, from: 440, to: 80, length: sr.N(400 * time.Millisecond)}
}

type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.3*math.Sin(2*math.Pi*g.freq*t) + 0.15*math.Sin(4*math.Pi*g.freq*t)
		v *= math.Min(t/0.02, 1) * 0.4
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

type sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		p := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*p
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		v := 0.3 * math.Sin(2*math.Pi*g.phase) * (1 - p)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// Play maps drained game events onto cues.
func Play(p Player, events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventTileHit:
			if e.Tile.Correct {
				p.Correct()
			} else {
				p.Wrong()
			}
		case game.EventGameOver:
			p.Crash()
		}
	}
}
