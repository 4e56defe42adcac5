package main

import (
	"math/rand/v2"

	"github.com/plus3/astro/input"
)

// bot holds a random direction for a while, dashes now and then and fires
// in bursts.
type bot struct {
	rng   *rand.Rand
	hold  int
	state input.State
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (b *bot) drive(s *input.State) {
	if b.hold <= 0 {
		b.hold = 10 + b.rng.IntN(50)
		b.state = input.State{
			Up:    b.rng.IntN(3) == 0,
			Down:  b.rng.IntN(3) == 0,
			Left:  b.rng.IntN(3) == 0,
			Right: b.rng.IntN(3) == 0,
		}
	}
	b.hold--

	next := b.state
	next.Dash = b.rng.IntN(90) == 0
	next.Fire = b.rng.IntN(12) == 0
	next.Captured = s.Captured
	*s = next
}
