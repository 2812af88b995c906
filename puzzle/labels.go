package puzzle

import (
	"math/rand/v2"
	"strings"

	"github.com/kamstrup/intmap"
)

// Label is a curriculum technique shown alongside a piece.
type Label struct {
	Name  string
	Kanji string
	Image string
	// Group is the display name of the catalog group the technique belongs to.
	Group string
}

// LabelPool indexes labels by catalog group.
type LabelPool struct {
	byGroup *intmap.Map[Group, []Label]
	total   int
}

// NewLabelPool groups labels by catalog group. Labels without a name or whose
// group is not in the catalog are dropped; skipped reports how many.
func NewLabelPool(labels []Label, catalog *Catalog) (pool *LabelPool, skipped int) {
	pool = &LabelPool{byGroup: intmap.New[Group, []Label](len(catalog.groups))}
	for _, l := range labels {
		l.Name = strings.TrimSpace(l.Name)
		g, ok := catalog.LookupName(strings.TrimSpace(l.Group))
		if l.Name == "" || !ok {
			skipped++
			continue
		}
		l.Group = g.Name
		list, _ := pool.byGroup.Get(g.ID)
		pool.byGroup.Put(g.ID, append(list, l))
		pool.total++
	}
	return pool, skipped
}

// Len is the number of usable labels across all groups.
func (p *LabelPool) Len() int {
	if p == nil {
		return 0
	}
	return p.total
}

// Count is the number of labels available for a group.
func (p *LabelPool) Count(g Group) int {
	if p == nil {
		return 0
	}
	list, _ := p.byGroup.Get(g)
	return len(list)
}

// Pick returns a random label of the group, or nil when it has none.
func (p *LabelPool) Pick(g Group, rng *rand.Rand) *Label {
	if p == nil {
		return nil
	}
	list, ok := p.byGroup.Get(g)
	if !ok || len(list) == 0 {
		return nil
	}
	l := list[rng.IntN(len(list))]
	return &l
}
