package unitary_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/matrix"
	"github.com/katalvlaran/qmap/unitary"
)

const eps = 1e-9

func sim(t *testing.T) *unitary.Simulator {
	t.Helper()
	s, err := unitary.NewSimulator()
	require.NoError(t, err)
	return s
}

func eval(t *testing.T, c *core.Circuit) *matrix.Dense {
	t.Helper()
	u, err := sim(t).Unitary(c)
	require.NoError(t, err)
	return u
}

func at(t *testing.T, m *matrix.Dense, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

func assertUnitary(t *testing.T, u *matrix.Dense) {
	t.Helper()
	adj, err := matrix.Adjoint(u)
	require.NoError(t, err)
	prod, err := matrix.Mul(adj, u)
	require.NoError(t, err)
	id, err := matrix.Identity(u.Rows())
	require.NoError(t, err)
	assert.True(t, prod.EqualApprox(id, eps), "U†U must be the identity")
}

// CNOT(0,1) maps |q1 q0> = |01> (index 1) onto |11> (index 3).
func TestCNOT_LittleEndian(t *testing.T) {
	c := core.MustCircuit(2)
	c.MustAdd("CNOT", 0, 1)
	u := eval(t, c)

	assert.Equal(t, complex(1, 0), at(t, u, 0, 0))
	assert.Equal(t, complex(1, 0), at(t, u, 3, 1))
	assert.Equal(t, complex(1, 0), at(t, u, 2, 2))
	assert.Equal(t, complex(1, 0), at(t, u, 1, 3))
	assert.Equal(t, complex(0, 0), at(t, u, 1, 1))
}

func TestSwap_EqualsThreeCNOTs(t *testing.T) {
	swap := core.MustCircuit(3)
	swap.MustAdd("SWAP", 0, 2)
	cnots := core.MustCircuit(3)
	cnots.MustAdd("CNOT", 0, 2).MustAdd("CNOT", 2, 0).MustAdd("CNOT", 0, 2)

	assert.True(t, eval(t, swap).EqualApprox(eval(t, cnots), eps))
}

func TestGateIdentities(t *testing.T) {
	cases := []struct {
		name string
		lhs  func(c *core.Circuit)
		rhs  func(c *core.Circuit)
	}{
		{"HH=I", func(c *core.Circuit) { c.MustAdd("H", 0).MustAdd("H", 0) }, func(*core.Circuit) {}},
		{"HZH=X", func(c *core.Circuit) { c.MustAdd("H", 0).MustAdd("Z", 0).MustAdd("H", 0) }, func(c *core.Circuit) { c.MustAdd("X", 0) }},
		{"SS=Z", func(c *core.Circuit) { c.MustAdd("S", 1).MustAdd("S", 1) }, func(c *core.Circuit) { c.MustAdd("Z", 1) }},
		{"TT=S", func(c *core.Circuit) { c.MustAdd("T", 0).MustAdd("T", 0) }, func(c *core.Circuit) { c.MustAdd("S", 0) }},
		{"S·SDG=I", func(c *core.Circuit) { c.MustAdd("S", 0).MustAdd("SDG", 0) }, func(*core.Circuit) {}},
		{"T·TDG=I", func(c *core.Circuit) { c.MustAdd("TDG", 1).MustAdd("T", 1) }, func(*core.Circuit) {}},
		{"H·CNOT·H=CZ", func(c *core.Circuit) { c.MustAdd("H", 1).MustAdd("CNOT", 0, 1).MustAdd("H", 1) }, func(c *core.Circuit) { c.MustAdd("CZ", 0, 1) }},
		{"CZ symmetric", func(c *core.Circuit) { c.MustAdd("CZ", 0, 1) }, func(c *core.Circuit) { c.MustAdd("CZ", 1, 0) }},
		{"MEASURE=I", func(c *core.Circuit) { c.MustAdd("MEASURE", 0).MustAdd("I", 1) }, func(*core.Circuit) {}},
		{"P(pi)=Z", func(c *core.Circuit) { require.NoError(t, c.AddParam("P", []float64{math.Pi}, 0)) }, func(c *core.Circuit) { c.MustAdd("Z", 0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, r := core.MustCircuit(2), core.MustCircuit(2)
			tc.lhs(l)
			tc.rhs(r)
			assert.True(t, eval(t, l).EqualApprox(eval(t, r), eps))
		})
	}
}

func TestRotations(t *testing.T) {
	theta := 0.7
	c := core.MustCircuit(1)
	require.NoError(t, c.AddParam("RZ", []float64{theta}, 0))
	u := eval(t, c)
	assert.InDelta(t, 0, cmplx.Abs(at(t, u, 0, 0)-cmplx.Exp(complex(0, -theta/2))), eps)
	assert.InDelta(t, 0, cmplx.Abs(at(t, u, 1, 1)-cmplx.Exp(complex(0, theta/2))), eps)

	// RX(π) = -iX, RY(π) = -iY.
	rx := core.MustCircuit(1)
	require.NoError(t, rx.AddParam("RX", []float64{math.Pi}, 0))
	assert.InDelta(t, 0, cmplx.Abs(at(t, eval(t, rx), 1, 0)-(-1i)), eps)
	ry := core.MustCircuit(1)
	require.NoError(t, ry.AddParam("RY", []float64{math.Pi}, 0))
	assert.InDelta(t, 0, cmplx.Abs(at(t, eval(t, ry), 1, 0)-1), eps)
}

func TestRandomCircuitsAreUnitary(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		c, err := builder.RandomCircuit(4, 30, builder.WithSeed(seed),
			builder.WithSingleQubitGates("H", "X", "Y", "Z", "S", "T", "SDG"))
		require.NoError(t, err)
		assertUnitary(t, eval(t, c))
	}
	assertUnitary(t, eval(t, builder.ReferenceCircuitA()))
}

func TestErrors(t *testing.T) {
	s := sim(t)
	_, err := s.Unitary(nil)
	require.ErrorIs(t, err, core.ErrNilCircuit)

	c := core.MustCircuit(1)
	c.MustAdd("FOO", 0)
	_, err = s.Unitary(c)
	require.ErrorIs(t, err, unitary.ErrUnknownGate)

	c = core.MustCircuit(1)
	c.MustAdd("RZ", 0)
	_, err = s.Unitary(c)
	require.ErrorIs(t, err, unitary.ErrMissingParam)

	c = core.MustCircuit(2)
	c.MustAdd("H", 0, 1)
	_, err = s.Unitary(c)
	require.ErrorIs(t, err, unitary.ErrGateArity)

	c = core.MustCircuit(2)
	c.MustAdd("ISWAP", 0, 1)
	_, err = s.Unitary(c)
	require.ErrorIs(t, err, unitary.ErrUnknownGate)

	small, err := unitary.NewSimulator(unitary.WithMaxQubits(2))
	require.NoError(t, err)
	assert.Equal(t, 2, small.MaxQubits())
	_, err = small.Unitary(core.MustCircuit(3))
	require.ErrorIs(t, err, unitary.ErrTooManyQubits)

	_, err = unitary.NewSimulator(unitary.WithMaxQubits(0))
	require.ErrorIs(t, err, unitary.ErrOptionViolation)
}
