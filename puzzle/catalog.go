package puzzle

import (
	"errors"
	"fmt"
	"image/color"
)

// Group is a curriculum group id. Its value doubles as the cell tag written
// into the grid, so valid ids are 1 through MaxGroup.
type Group uint8

const MaxGroup Group = 9

// ErrInvalidMapping is returned when a catalog does not assign every kind to
// exactly one defined group.
var ErrInvalidMapping = errors.New("puzzle: invalid kind to group mapping")

// GroupInfo describes how a group is named and drawn.
type GroupInfo struct {
	ID    Group
	Name  string
	Color color.RGBA
}

// Catalog is the immutable kind to group table used to tag pieces.
type Catalog struct {
	groups  []GroupInfo
	byID    [MaxGroup + 1]int
	mapping [numKinds]Group
}

// NewCatalog validates and builds a catalog. Every kind must be present in
// mapping and point at one of groups.
func NewCatalog(groups []GroupInfo, mapping map[Kind]Group) (*Catalog, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no groups defined", ErrInvalidMapping)
	}

	c := &Catalog{groups: make([]GroupInfo, 0, len(groups))}
	for i := range c.byID {
		c.byID[i] = -1
	}
	for _, g := range groups {
		if g.ID == 0 || g.ID > MaxGroup {
			return nil, fmt.Errorf("%w: group id %d out of range 1..%d", ErrInvalidMapping, g.ID, MaxGroup)
		}
		if g.Name == "" {
			return nil, fmt.Errorf("%w: group %d has no name", ErrInvalidMapping, g.ID)
		}
		if c.byID[g.ID] >= 0 {
			return nil, fmt.Errorf("%w: duplicate group id %d", ErrInvalidMapping, g.ID)
		}
		c.byID[g.ID] = len(c.groups)
		c.groups = append(c.groups, g)
	}

	for k, g := range mapping {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidMapping, k)
		}
		if g > MaxGroup || c.byID[g] < 0 {
			return nil, fmt.Errorf("%w: kind %s maps to undefined group %d", ErrInvalidMapping, k, g)
		}
		c.mapping[k] = g
	}
	for _, k := range Kinds {
		if _, ok := mapping[k]; !ok {
			return nil, fmt.Errorf("%w: kind %s has no group", ErrInvalidMapping, k)
		}
	}
	return c, nil
}

// DefaultCatalog returns the five-group Gokyo catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultGroups(), DefaultMapping())
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultGroups() []GroupInfo {
	return []GroupInfo{
		{ID: 1, Name: "Dai Ikkyo", Color: color.RGBA{0xfb, 0xbf, 0x24, 0xff}},
		{ID: 2, Name: "Dai Nikyo", Color: color.RGBA{0xfb, 0x92, 0x3c, 0xff}},
		{ID: 3, Name: "Dai Sankyo", Color: color.RGBA{0x4a, 0xde, 0x80, 0xff}},
		{ID: 4, Name: "Dai Yonkyo", Color: color.RGBA{0x60, 0xa5, 0xfa, 0xff}},
		{ID: 5, Name: "Dai Gokyo", Color: color.RGBA{0x8b, 0x45, 0x13, 0xff}},
	}
}

func DefaultMapping() map[Kind]Group {
	return map[Kind]Group{
		KindO: 1, KindZ: 1,
		KindL: 2, KindS: 2,
		KindI: 3,
		KindJ: 4,
		KindT: 5,
	}
}

// GroupOf returns the group a kind is tagged with.
func (c *Catalog) GroupOf(k Kind) GroupInfo {
	if !k.Valid() {
		return GroupInfo{}
	}
	return c.groups[c.byID[c.mapping[k]]]
}

// Lookup returns a group by id.
func (c *Catalog) Lookup(id Group) (GroupInfo, bool) {
	if id == 0 || id > MaxGroup || c.byID[id] < 0 {
		return GroupInfo{}, false
	}
	return c.groups[c.byID[id]], true
}

// LookupName returns a group by its display name.
func (c *Catalog) LookupName(name string) (GroupInfo, bool) {
	for _, g := range c.groups {
		if g.Name == name {
			return g, true
		}
	}
	return GroupInfo{}, false
}

// Groups returns the groups in definition order.
func (c *Catalog) Groups() []GroupInfo {
	return append([]GroupInfo(nil), c.groups...)
}

// ColorOf returns the draw colour for a settled cell; Empty and unknown tags
// are transparent.
func (c *Catalog) ColorOf(cell Cell) color.RGBA {
	g, ok := c.Lookup(Group(cell))
	if !ok {
		return color.RGBA{}
	}
	return g.Color
}
