package puzzle

import "github.com/kamstrup/intmap"

// Stats aggregates counters across every session an engine has played.
type Stats struct {
	Sessions    int
	Pieces      int
	Locks       int
	ClearEvents int
	Lines       int
	GamesOver   int
	PerKind     map[Kind]int
	PerTier     map[Tier]int
	// SkippedKinds counts unknown kinds dropped from the kind source.
	SkippedKinds int
}

type statsInternal struct {
	sessions  int
	locks     int
	lines     int
	gamesOver int
	perKind   *intmap.Map[Kind, int]
	perTier   *intmap.Map[Tier, int]
}

func newStats() statsInternal {
	return statsInternal{
		perKind: intmap.New[Kind, int](int(numKinds)),
		perTier: intmap.New[Tier, int](4),
	}
}

func (s *statsInternal) piece(k Kind) {
	n, _ := s.perKind.Get(k)
	s.perKind.Put(k, n+1)
}

func (s *statsInternal) clear(lines int) {
	t := TierFor(lines)
	n, _ := s.perTier.Get(t)
	s.perTier.Put(t, n+1)
	s.lines += lines
}

func (s *statsInternal) snapshot() Stats {
	out := Stats{
		Sessions:  s.sessions,
		Locks:     s.locks,
		Lines:     s.lines,
		GamesOver: s.gamesOver,
		PerKind:   make(map[Kind]int, s.perKind.Len()),
		PerTier:   make(map[Tier]int, s.perTier.Len()),
	}
	for k, n := range s.perKind.All() {
		out.PerKind[k] = n
		out.Pieces += n
	}
	for t, n := range s.perTier.All() {
		out.PerTier[t] = n
		out.ClearEvents += n
	}
	return out
}
