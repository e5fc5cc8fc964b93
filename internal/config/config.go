// Package config holds the saturation loop's tunables (spec.md §6):
// all have defaults safe enough to run unattended, but every knob
// spec.md calls out as configuration-weighted is exposed here rather
// than hard-coded, per the design notes' open question (b).
package config

import "github.com/pkg/errors"

// CriticalPairWeights is the configurable weight mix CP.score combines
// (design notes, open question (b)): the exact formula is left to the
// implementer, but the knobs it reads are fixed here.
type CriticalPairWeights struct {
	SizeWeight  int
	DepthWeight int
}

// JoinStrategies selects which of spec.md §6's `join.*` joinability
// tests a critical pair is checked against before falling back to
// orientation. Simple is the rewrite-to-a-common-normal-form test
// internal/critical.Split already performs; Subconnectedness and
// GroundJoinability name the two further strategies spec.md §6 lists
// but this implementation does not attempt (see DESIGN.md).
type JoinStrategies struct {
	Simple            bool
	Subconnectedness  bool
	GroundJoinability bool
}

// Config is the full set of saturation-loop options.
type Config struct {
	// MaxCriticalPairs halts the loop once this many CPs have been
	// considered, with no progress (spec.md §4.I step 1).
	MaxCriticalPairs int

	// MaxTermSize rejects a dequeued passive whose reconstructed
	// overlap would exceed this many symbols.
	MaxTermSize int

	// MaxOverlapDepth bounds how many completion rounds deep an
	// overlap's derivation may be (spec.md §4.G's "depth budget").
	MaxOverlapDepth int

	// MaxRewriteRounds is the parallel-step round limit for
	// normaliseWith (design notes, open question (c)). Validate
	// requires it to be positive; the saturation loop does not read it.
	MaxRewriteRounds int

	// RecoverableLoopDiagnostic records whether a MaxRewriteRounds
	// overrun counts as recoverable (design notes, open question (c)).
	// Nothing outside this package reads it: rewrite.NormaliseWith
	// always reports an overrun as an error and never panics.
	RecoverableLoopDiagnostic bool

	// RenormalisePercent is the fraction of the work budget between
	// scheduled queue-simplification maintenance passes.
	RenormalisePercent float64

	// InterreduceEvery is the virtual-time period between scheduled
	// interreduction passes ("every quarter-unit of virtual time").
	InterreduceEvery float64

	// Simplify enables or disables periodic interreduction outright
	// (spec.md §6's `simplify` option). When false, New never
	// registers the interreduction maintenance task at all.
	Simplify bool

	// Join selects which joinability strategies a critical pair is
	// tried against (spec.md §6's `join.*`).
	Join JoinStrategies

	Weights CriticalPairWeights
}

// DefaultConfig returns conservative defaults suitable for the
// scenarios in spec.md §8: no artificial bound on critical pairs or
// term size, a 1000-round rewrite limit, and maintenance scheduled at
// the cadence spec.md §4.I names.
func DefaultConfig() Config {
	return Config{
		MaxCriticalPairs:          1 << 30,
		MaxTermSize:               1 << 20,
		MaxOverlapDepth:           1 << 20,
		MaxRewriteRounds:          1000,
		RecoverableLoopDiagnostic: false,
		RenormalisePercent:        0.1,
		InterreduceEvery:          0.25,
		Simplify:                  true,
		Join:                      JoinStrategies{Simple: true},
		Weights:                   CriticalPairWeights{SizeWeight: 1, DepthWeight: 1},
	}
}

// Validate rejects nonsensical configuration before the loop starts.
func (c Config) Validate() error {
	if c.MaxCriticalPairs < 0 {
		return errors.New("config: MaxCriticalPairs must be non-negative")
	}
	if c.MaxTermSize <= 0 {
		return errors.New("config: MaxTermSize must be positive")
	}
	if c.MaxOverlapDepth <= 0 {
		return errors.New("config: MaxOverlapDepth must be positive")
	}
	if c.MaxRewriteRounds <= 0 {
		return errors.New("config: MaxRewriteRounds must be positive")
	}
	if c.RenormalisePercent <= 0 || c.RenormalisePercent > 1 {
		return errors.New("config: RenormalisePercent must be in (0, 1]")
	}
	if c.InterreduceEvery <= 0 {
		return errors.New("config: InterreduceEvery must be positive")
	}
	return nil
}
