// Package fx holds the purely visual particle bursts. Game logic writes bursts
// in and renderers read particles out; nothing here feeds back into play.
package fx

import (
	"golang.org/x/exp/rand"
)

const MaxParticles = 2048

type RGB struct {
	R, G, B uint8
}

var (
	SnakeColor   = RGB{0x00, 0xFF, 0xF5}
	TileColor    = RGB{0xFF, 0x2E, 0x63}
	CorrectColor = RGB{0x00, 0xFF, 0xF5}
	WrongColor   = RGB{0xFF, 0x47, 0x47}
)

// Particle positions are logical canvas pixels; Life counts ticks.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Col    RGB
}

type System struct {
	Max    int
	P      []Particle
	cell   float64
	rng    *rand.Rand
	ovrIdx int // circular overwrite index when full
}

func NewSystem(cellSize int, rng *rand.Rand) *System {
	return &System{
		Max:  MaxParticles,
		P:    make([]Particle, 0, 256),
		cell: float64(cellSize),
		rng:  rng,
	}
}

func (s *System) Clear() {
	s.P = s.P[:0]
	s.ovrIdx = 0
}

func (s *System) Len() int {
	return len(s.P)
}

func (s *System) Add(p Particle) {
	if len(s.P) < s.Max {
		s.P = append(s.P, p)
		return
	}
	if s.ovrIdx >= s.Max {
		s.ovrIdx = 0
	}
	s.P[s.ovrIdx] = p
	s.ovrIdx++
}

// Burst throws count particles out of the centre (cx, cy). Bigger bursts
// also fly faster.
func (s *System) Burst(cx, cy float64, col RGB, count int, sizeMul, lifeMul float64) {
	speedMul := 1.0
	if sizeMul > 1 {
		speedMul = 1.5
	}
	for i := 0; i < count; i++ {
		s.Add(Particle{
			X:    cx,
			Y:    cy,
			VX:   (s.rng.Float64() - 0.5) * (s.rng.Float64()*6 + 3) * speedMul,
			VY:   (s.rng.Float64() - 0.5) * (s.rng.Float64()*6 + 3) * speedMul,
			Size: (s.rng.Float64()*(s.cell/4) + s.cell/8) * sizeMul,
			Life: (25 + s.rng.Float64()*25) * lifeMul,
			Col:  col,
		})
	}
}

// Update moves every particle one tick and drops the dead ones.
func (s *System) Update() {
	live := s.P[:0]
	for _, p := range s.P {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.Size *= 0.96
		if p.Life <= 0 || p.Size < 0.5 {
			continue
		}
		live = append(live, p)
	}
	s.P = live
	if s.ovrIdx > len(s.P) {
		s.ovrIdx = 0
	}
}

// Alpha is the opacity a particle is drawn with, in [0,1].
func (s *System) Alpha(p Particle) float64 {
	span := 50.0
	if p.Size > s.cell/4 {
		span *= 1.5
	}
	a := p.Life / span
	return min(1, max(0, a))
}
