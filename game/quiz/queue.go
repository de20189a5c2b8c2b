package quiz

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// IonChance is the probability an atom round asks for the electrons of the
// element's ion instead of the neutral atom.
const IonChance = 0.1

var ErrUnknownMode = errors.New("unknown game mode")

// NewQueue builds the round queue of a session: rounds tasks in the order the
// player will see them. A pool smaller than rounds is cycled.
func NewQueue(mode Mode, rounds int, rng *rand.Rand) ([]Task, error) {
	if rounds < 0 {
		rounds = 0
	}
	switch mode {
	case ModeMolar:
		return molarQueue(rounds, rng), nil
	case ModeAtom:
		return atomQueue(rounds, rng), nil
	default:
		return nil, fmt.Errorf("new queue %q: %w", mode, ErrUnknownMode)
	}
}

func molarQueue(rounds int, rng *rand.Rand) []Task {
	pool := make([]Compound, len(Compounds))
	copy(pool, Compounds)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	queue := make([]Task, 0, rounds)
	for i := 0; i < rounds; i++ {
		queue = append(queue, MolarTask{Compound: pool[i%len(pool)]})
	}
	return queue
}

func atomQueue(rounds int, rng *rand.Rand) []Task {
	pool := make([]Element, len(Elements))
	copy(pool, Elements)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	queue := make([]Task, 0, rounds)
	for i := 0; i < rounds; i++ {
		el := pool[i%len(pool)]
		if el.HasIon() && rng.Float64() < IonChance {
			queue = append(queue, AtomTask{Element: el, Particle: Electrons, Ion: true})
			continue
		}
		queue = append(queue, AtomTask{Element: el, Particle: particles[rng.Intn(len(particles))]})
	}
	return queue
}
