package tetris

import "math/rand"

// Randomizer deals pieces from shuffled bags of all seven kinds and keeps a
// fixed-depth preview queue filled from them.
type Randomizer struct {
	rng   *rand.Rand
	bag   []PieceKind
	queue []PieceKind
	depth int
}

// NewRandomizer creates a randomizer with a full preview queue.
func NewRandomizer(rng *rand.Rand, depth int) *Randomizer {
	r := &Randomizer{rng: rng, depth: max(depth, 1)}
	r.fill()
	return r
}

func (r *Randomizer) newBag() []PieceKind {
	bag := make([]PieceKind, len(Pieces))
	for i := range bag {
		bag[i] = PieceKind(i)
	}
	for i := len(bag) - 1; i > 0; i-- {
		j := r.rng.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag
}

func (r *Randomizer) fill() {
	for len(r.queue) < r.depth {
		if len(r.bag) == 0 {
			r.bag = r.newBag()
		}
		last := len(r.bag) - 1
		r.queue = append(r.queue, r.bag[last])
		r.bag = r.bag[:last]
	}
}

// Next removes the head of the queue and refills it.
func (r *Randomizer) Next() PieceKind {
	r.fill()
	kind := r.queue[0]
	r.queue = r.queue[1:]
	r.fill()
	return kind
}

// Queue returns a copy of the upcoming pieces, head first.
func (r *Randomizer) Queue() []PieceKind {
	return append([]PieceKind(nil), r.queue...)
}
