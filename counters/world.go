// File: world.go
// Role: Conf, Rule, CountersWorld and CountersScWorld — the adapter
// that turns a guarded-rule counter protocol into a core.World[Conf].
package counters

import "github.com/katalvlaran/mrsc/core"

// Conf is a fixed-width vector of counters. Two Confs are only ever
// compared componentwise, by NW.IsIn or by value equality — never
// reordered or resized by this package.
type Conf = []NW

// Rule is one guarded transition: if Guard(c) holds, Apply(c) is a
// configuration the protocol can step to.
type Rule struct {
	Guard func(Conf) bool
	Apply func(Conf) Conf
}

// CountersWorld is the protocol author's interface: the starting
// configuration, the rules enabled at a configuration, and a
// diagnostic predicate for configurations the protocol considers
// unsafe. IsUnsafe plays no role inside CountersScWorld itself — wire
// it into cleaners.CleanBadConf (bad = w.IsUnsafe) to prune unsafe
// sub-trees from a result.
type CountersWorld interface {
	Start() Conf
	Rules(c Conf) []Rule
	IsUnsafe(c Conf) bool
}

// CountersScWorld adapts a CountersWorld into core.World[Conf],
// adding the whistle (MaxNW, MaxDepth) and the generalization step
// (rebuild) that widens a counter to Omega.
type CountersScWorld struct {
	domain   CountersWorld
	maxNW    int
	maxDepth int
}

// NewCountersScWorld builds the adapter. The source this protocol
// family is drawn from offers a second constructor taking raw
// start/rules/is_unsafe values instead of a CountersWorld; this
// package exposes only the object form; see DESIGN.md.
func NewCountersScWorld(w CountersWorld, maxNW, maxDepth int) *CountersScWorld {
	return &CountersScWorld{domain: w, maxNW: maxNW, maxDepth: maxDepth}
}

// Start returns the domain world's starting configuration.
func (w *CountersScWorld) Start() Conf {
	return w.domain.Start()
}

// IsUnsafe exposes the domain world's unsafety predicate for callers
// that want to compose with cleaners.CleanBadConf.
func (w *CountersScWorld) IsUnsafe(c Conf) bool {
	return w.domain.IsUnsafe(c)
}

// IsFoldableTo is componentwise NW.IsIn.
func (w *CountersScWorld) IsFoldableTo(c1, c2 Conf) bool {
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if !c1[i].IsIn(c2[i]) {
			return false
		}
	}
	return true
}

// IsDangerous fires when some configuration in history has a finite
// component at or past MaxNW (Omega never counts, see NW.finiteGE), or
// when history has reached MaxDepth.
func (w *CountersScWorld) IsDangerous(history []Conf) bool {
	if len(history) >= w.maxDepth {
		return true
	}
	for _, c := range history {
		for _, comp := range c {
			if comp.finiteGE(w.maxNW) {
				return true
			}
		}
	}
	return false
}

// Develop returns one "driving" alternative holding every successor a
// currently-enabled rule produces as siblings, followed by one
// singleton alternative per non-trivial generalization of c.
func (w *CountersScWorld) Develop(c Conf) [][]Conf {
	driven := w.drive(c)
	rebuilt := w.rebuild(c)

	alts := make([][]Conf, 0, 1+len(rebuilt))
	alts = append(alts, driven)
	for _, c2 := range rebuilt {
		alts = append(alts, []Conf{c2})
	}
	return alts
}

// drive collects Apply(c) for every rule whose Guard holds at c.
func (w *CountersScWorld) drive(c Conf) []Conf {
	var out []Conf
	for _, r := range w.domain.Rules(c) {
		if r.Guard(c) {
			out = append(out, r.Apply(c))
		}
	}
	return out
}

// rebuild1 returns the generalizations of a single component,
// including the component itself: a finite value may stay as is or
// widen to Omega; Omega has nowhere further to go.
func rebuild1(x NW) []NW {
	if x.omega {
		return []NW{Omega()}
	}
	return []NW{x, Omega()}
}

// rebuild is the cartesian product of each component's rebuild1,
// excluding the combination identical to c itself (that combination is
// not a generalization — it is c).
func (w *CountersScWorld) rebuild(c Conf) []Conf {
	options := make([][]NW, len(c))
	for i, comp := range c {
		options[i] = rebuild1(comp)
	}
	var out []Conf
	for _, combo := range core.Cartesian(options) {
		if !confEqual(combo, c) {
			out = append(out, combo)
		}
	}
	return out
}

func confEqual(a, b Conf) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
