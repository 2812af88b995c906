package puzzle

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// maxInvalidDraws bounds how many unknown kinds a source may yield in a row
// before the generator deals from its own bag instead.
const maxInvalidDraws = 2 * int(numKinds)

// Generator turns kinds into spawned, tagged and labelled pieces.
type Generator struct {
	source  KindSource
	catalog *Catalog
	labels  *LabelPool
	rng     *rand.Rand
	cols    int
	logger  *log.Logger

	fallback *Bag
	invalid  int
}

func newGenerator(source KindSource, catalog *Catalog, labels *LabelPool, rng *rand.Rand, cols int, logger *log.Logger) *Generator {
	return &Generator{
		source:   source,
		catalog:  catalog,
		labels:   labels,
		rng:      rng,
		cols:     cols,
		logger:   logger,
		fallback: NewBag(rng),
	}
}

// Invalid is the number of unknown kinds skipped so far.
func (g *Generator) Invalid() int {
	return g.invalid
}

// Spawn builds a piece of the given kind at its spawn position. It returns
// nil for a kind outside the seven.
func (g *Generator) Spawn(k Kind) *Piece {
	if !k.Valid() {
		return nil
	}
	m := k.Shape()
	row := 0
	if k == KindI {
		row = -1
	}
	info := g.catalog.GroupOf(k)
	return &Piece{
		Kind:   k,
		Matrix: m,
		Row:    row,
		Col:    g.cols/2 - (m.Size()+1)/2,
		Group:  info.ID,
		Color:  info.Color,
		Label:  g.labels.Pick(info.ID, g.rng),
	}
}

// Next spawns the next kind from the source. Unknown kinds are skipped; after
// maxInvalidDraws of them in a row the piece comes from the fallback bag.
func (g *Generator) Next() *Piece {
	for range maxInvalidDraws {
		k := g.source.Next()
		if p := g.Spawn(k); p != nil {
			return p
		}
		g.invalid++
		g.logger.Debug("skipped unknown piece kind", "kind", k, "skipped", g.invalid)
	}
	return g.Spawn(g.fallback.Next())
}
