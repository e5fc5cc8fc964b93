package saturate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twee/internal/config"
	"twee/internal/kbo"
	"twee/internal/loader"
	"twee/internal/rule"
	"twee/internal/term"
)

// run loads src, runs completion to a halt under cfg and returns the
// resulting State, the messages emitted, and any run error — the
// shared scaffolding every scenario test below drives.
func run(t *testing.T, src string, cfg config.Config) (*State, []Message) {
	t.Helper()
	prob, err := loader.LoadString(t.Name(), src)
	require.NoError(t, err)

	order := kbo.New(prob.Sig)
	st := New(cfg, prob.Sig, order, prob.Axioms)
	for i, g := range prob.Goals {
		st.AddGoal(g.Name, i, g.Eq)
	}

	messages, err := Run(cfg, st)
	require.NoError(t, err)
	return st, messages
}

// S1: associativity-free two-sided identity; completion should need
// no new rules beyond the two axioms, and the goal should be solved.
func TestS1IdentityRoundTrip(t *testing.T) {
	st, _ := run(t, `
symbol e/0 minimal;
symbol f/2 weight 1 precedence 1;
axiom right_id: f(X, e) = X;
axiom left_id: f(e, X) = X;
goal g1: f(f(e, X), e) = X;
`, config.DefaultConfig())

	require.Len(t, st.Goals, 1)
	assert.True(t, st.Goals[0].Solved, "goal should be solved from the two identity axioms alone")
}

// S2: a single commutativity axiom orients Permutative under a KBO
// with a > b; the ground instance f(a,b)=f(b,a) is solved by it
// directly without any new rule.
func TestS2PermutativeCommutativity(t *testing.T) {
	st, _ := run(t, `
symbol a/0;
symbol b/0;
symbol f/2 weight 1 precedence 2;
axiom comm: f(X, Y) = f(Y, X);
goal g1: f(a, b) = f(b, a);
`, config.DefaultConfig())

	require.Len(t, st.Goals, 1)
	assert.True(t, st.Goals[0].Solved)

	// exactly one active rule, and it is Permutative (spec.md §8 S2:
	// "solved via the single Permutative rule").
	var permutativeCount, otherCount int
	for _, a := range st.actives {
		switch a.Rule.Orientation.(type) {
		case rule.Permutative:
			permutativeCount++
		default:
			otherCount++
		}
	}
	assert.Equal(t, 1, permutativeCount)
	assert.Equal(t, 0, otherCount)
}

// S3: associativity alone is already confluent: completion should add
// no further rules beyond the one axiom.
func TestS3AssociativityNoNewRules(t *testing.T) {
	st, _ := run(t, `
symbol e/0 minimal;
symbol f/2 weight 1 precedence 1;
axiom assoc: f(f(X, Y), Z) = f(X, f(Y, Z));
`, config.DefaultConfig())

	assert.Len(t, st.actives, 1, "associativity alone should saturate with no new rules")
}

// S4: group theory axioms derive the right-identity and right-inverse
// consequences; the goal (right identity) should be solved.
func TestS4GroupTheoryDerivesRightIdentity(t *testing.T) {
	st, _ := run(t, `
symbol e/0 minimal;
symbol i/1 weight 1 precedence 1;
symbol f/2 weight 1 precedence 2;
axiom left_id: f(e, X) = X;
axiom left_inv: f(i(X), X) = e;
axiom assoc: f(f(X, Y), Z) = f(X, f(Y, Z));
goal right_id: f(X, e) = X;
`, config.DefaultConfig())

	require.Len(t, st.Goals, 1)
	assert.True(t, st.Goals[0].Solved, "right identity should follow from left identity + left inverse + associativity")
}

// S5: max_critical_pairs = 0 halts the loop before considering
// anything, with no progress and no solution.
func TestS5MaxCriticalPairsZeroHaltsImmediately(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxCriticalPairs = 0

	st, _ := run(t, `
symbol e/0 minimal;
symbol f/2 weight 1 precedence 1;
axiom right_id: f(X, e) = X;
goal g1: f(e, e) = e;
`, cfg)

	assert.Equal(t, 0, st.Considered)
	assert.False(t, st.Goals[0].Solved)
}

// S6: orienting x = f(x, x) is rejected: f(x,x) is strictly heavier
// than x under KBO (weight(f(x,x)) = weight(f) + 2 > weight(x) = 1),
// so rhs > lhs and orient must reject rather than produce a rule.
func TestS6NonDecreasingEquationRejectsOrientation(t *testing.T) {
	sig := term.NewSignature()
	f := sig.Declare(term.FuncInfo{Name: "f", Arity: 2, Weight: 1, Precedence: 1})
	order := kbo.New(sig)

	vb := term.NewBuilder(1)
	vb.EmitVar(0)
	x := vb.Finish()

	fb := term.NewBuilder(0)
	fb.EmitFun(f, func(b *term.Builder) {
		b.EmitTermSlice(x)
		b.EmitTermSlice(x)
	})
	fxx := fb.Finish()

	_, err := rule.Orient(order, sig, rule.Equation{LHS: x, RHS: fxx})
	assert.Error(t, err, "x = f(x,x) should be rejected: rhs is not <= lhs")
}

// Simplify=false must disable periodic interreduction outright
// (spec.md §6's `simplify` option): no InterreduceMsg should ever be
// emitted, regardless of how many critical pairs the group-theory
// scenario considers.
func TestSimplifyFalseDisablesInterreduction(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Simplify = false

	_, messages := run(t, `
symbol e/0 minimal;
symbol i/1 weight 1 precedence 1;
symbol f/2 weight 1 precedence 2;
axiom left_id: f(e, X) = X;
axiom left_inv: f(i(X), X) = e;
axiom assoc: f(f(X, Y), Z) = f(X, f(Y, Z));
goal right_id: f(X, e) = X;
`, cfg)

	for _, m := range messages {
		if _, ok := m.(InterreduceMsg); ok {
			t.Fatal("Simplify=false should prevent any InterreduceMsg from being emitted")
		}
	}
}
