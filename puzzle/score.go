package puzzle

// Score counts clear events per tier.
type Score struct {
	Ippon int
	Waza  int
	Yuko  int
}

// Tier is the rank awarded for a single clear event.
type Tier uint8

const (
	TierNone Tier = iota
	TierYuko
	TierWaza
	TierIppon
)

func (t Tier) String() string {
	switch t {
	case TierYuko:
		return "yuko"
	case TierWaza:
		return "waza"
	case TierIppon:
		return "ippon"
	default:
		return "none"
	}
}

// TierFor maps a number of simultaneously cleared lines to a tier.
func TierFor(lines int) Tier {
	switch {
	case lines >= 4:
		return TierIppon
	case lines >= 2:
		return TierWaza
	case lines == 1:
		return TierYuko
	default:
		return TierNone
	}
}

// Add returns s with one more clear in tier t.
func (s Score) Add(t Tier) Score {
	switch t {
	case TierIppon:
		s.Ippon++
	case TierWaza:
		s.Waza++
	case TierYuko:
		s.Yuko++
	}
	return s
}

// Rules are the gravity and level parameters of a session.
type Rules struct {
	BaseTicks  int
	MinTicks   int
	StepTicks  int
	StartLevel int
	MaxLevel   int
}

func DefaultRules() Rules {
	return Rules{BaseTicks: 35, MinTicks: 5, StepTicks: 2, StartLevel: 1, MaxLevel: 10}
}

// Validate checks that the rules describe a usable gravity curve.
func (r Rules) Validate() error {
	if r.BaseTicks < 1 || r.MinTicks < 1 || r.StepTicks < 0 || r.MinTicks > r.BaseTicks {
		return errInvalidRules(r)
	}
	if r.StartLevel < 1 || r.MaxLevel < r.StartLevel {
		return errInvalidRules(r)
	}
	return nil
}

// TicksPerDrop is the number of frames between gravity steps at a level.
func (r Rules) TicksPerDrop(level int) int {
	return max(r.MinTicks, r.BaseTicks-level*r.StepTicks)
}

// ApplyClear credits a clear of lines rows: the tier counter for the event is
// incremented and the level rises by one up to MaxLevel. Zero lines leaves
// both unchanged.
func ApplyClear(lines int, s Score, level int, r Rules) (Score, int) {
	if lines <= 0 {
		return s, level
	}
	return s.Add(TierFor(lines)), min(level+1, r.MaxLevel)
}
