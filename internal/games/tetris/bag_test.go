package tetris

import (
	"math/rand"
	"slices"
	"testing"
)

func TestRandomizerBagFairness(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := NewRandomizer(rand.New(rand.NewSource(seed)), 5)

		for bag := 0; bag < 3; bag++ {
			seen := make(map[PieceKind]int)
			for i := 0; i < len(Pieces); i++ {
				seen[r.Next()]++
			}
			for _, p := range Pieces {
				if seen[p.Kind] != 1 {
					t.Fatalf("seed %d bag %d: %s drawn %d times, expected 1", seed, bag, p.Name, seen[p.Kind])
				}
			}
		}
	}
}

func TestRandomizerQueueDepth(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(3)), 5)

	for i := 0; i < 30; i++ {
		before := r.Queue()
		next := r.Next()
		if next != before[0] {
			t.Fatalf("Next() = %v, expected queue head %v", next, before[0])
		}
		if got := len(r.Queue()); got != 5 {
			t.Fatalf("queue length = %d after draw %d, expected 5", got, i)
		}
		if !slices.Equal(r.Queue()[:4], before[1:]) {
			t.Fatalf("queue did not shift: before %v after %v", before, r.Queue())
		}
	}
}

func TestRandomizerDeterministic(t *testing.T) {
	a := NewRandomizer(rand.New(rand.NewSource(42)), 5)
	b := NewRandomizer(rand.New(rand.NewSource(42)), 5)

	for i := 0; i < 50; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d: %v != %v with the same seed", i, x, y)
		}
	}
}

func TestRandomizerQueueIsCopy(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(1)), 5)
	q := r.Queue()
	q[0] = PieceKind(99)
	if r.Queue()[0] == PieceKind(99) {
		t.Error("Queue() exposes internal storage")
	}
}
