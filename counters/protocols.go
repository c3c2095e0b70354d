// File: protocols.go
// Role: Two worked CountersWorld instances. TwoTokenWorld is the
// literal fixture a conforming implementation's test suite pins
// (start=[2,0], two symmetric transfer rules). Synapse is ported from
// original_source/smrsc/protocols.py: a 3-counter cache-coherence
// protocol exercised there by test_protocols.py/test_protocols8.py
// through the same lazy_mrsc/build_cograph/cl_min_size pipeline as
// TwoTokenWorld.
package counters

// TwoTokenWorld models two processes passing a pair of tokens back and
// forth: component 0 is process A's token count, component 1 is
// process B's. Both transfer rules are guarded only by "I have at
// least one token to give away"; IsUnsafe never fires.
type TwoTokenWorld struct{}

func (TwoTokenWorld) Start() Conf { return Conf{N(2), N(0)} }

func (TwoTokenWorld) Rules(Conf) []Rule {
	return []Rule{
		{
			Guard: func(c Conf) bool { return c[0].Ge(1) },
			Apply: func(c Conf) Conf { return Conf{c[0].Sub(N(1)), c[1].Add(N(1))} },
		},
		{
			Guard: func(c Conf) bool { return c[1].Ge(1) },
			Apply: func(c Conf) Conf { return Conf{c[0].Add(N(1)), c[1].Sub(N(1))} },
		},
	}
}

func (TwoTokenWorld) IsUnsafe(Conf) bool { return false }

// Synapse models a cache-coherence protocol's per-line state counts:
// component 0 (i) is lines Invalid, component 1 (d) is lines Dirty,
// component 2 (v) is lines Valid (shared). The three rules are the
// protocol's transitions on a read/write miss; IsUnsafe flags a state
// where a dirty line coexists with a valid (shared) copy, or more than
// one line is dirty at once.
type Synapse struct{}

func (Synapse) Start() Conf { return Conf{Omega(), N(0), N(0)} }

func (Synapse) Rules(Conf) []Rule {
	return []Rule{
		{
			Guard: func(c Conf) bool { return c[0].Ge(1) },
			Apply: func(c Conf) Conf {
				return Conf{c[0].Add(c[1]).Sub(N(1)), N(0), c[2].Add(N(1))}
			},
		},
		{
			Guard: func(c Conf) bool { return c[2].Ge(1) },
			Apply: func(c Conf) Conf {
				return Conf{c[0].Add(c[1]).Add(c[2]).Sub(N(1)), N(1), N(0)}
			},
		},
		{
			Guard: func(c Conf) bool { return c[0].Ge(1) },
			Apply: func(c Conf) Conf {
				return Conf{c[0].Add(c[1]).Add(c[2]).Sub(N(1)), N(1), N(0)}
			},
		},
	}
}

func (Synapse) IsUnsafe(c Conf) bool {
	return (c[1].Ge(1) && c[2].Ge(1)) || c[1].Ge(2)
}
