package puzzle

import "math/rand/v2"

// KindSource yields the sequence of piece kinds a session plays.
type KindSource interface {
	Next() Kind
}

// Bag deals kinds in shuffled rounds so each kind appears exactly once per
// round of seven.
type Bag struct {
	rng *rand.Rand
	bag []Kind
}

func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng, bag: make([]Kind, 0, numKinds)}
}

// NewSeededBag returns a bag whose sequence is fully determined by seed.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (b *Bag) refill() {
	b.bag = append(b.bag[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
}

func (b *Bag) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[len(b.bag)-1]
	b.bag = b.bag[:len(b.bag)-1]
	return k
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
type Sequence struct {
	kinds []Kind
	pos   int
}

func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = Kinds[:]
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() Kind {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}
