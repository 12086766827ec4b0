// SPDX-License-Identifier: MIT
// Package boundary_test contains unit tests for metric construction and
// tolerance evaluation.
package boundary_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvbound/algebra"
	"github.com/katalvlaran/lvbound/boundary"
)

// tolerated evaluates tol and fails the test on error.
func tolerated(t testing.TB, tol boundary.Tolerance, r r2.Vec, jac boundary.Jacobian) bool {
	t.Helper()
	ok, err := tol.IsTolerated(r, jac)
	require.NoError(t, err)

	return ok
}

// shear is a non-trivial Jacobian used across tests: c = (2x + y, y).
var shear = algebra.NewMat2(2, 1, 0, 1)

func TestJacobian_Optional(t *testing.T) {
	t.Parallel()

	var zero boundary.Jacobian
	require.False(t, zero.Present())
	require.Equal(t, boundary.NoJacobian(), zero)

	j := boundary.NewJacobian(shear)
	m, ok := j.Get()
	require.True(t, ok)
	require.True(t, j.Present())
	require.Equal(t, shear, m)

	_, ok = boundary.NoJacobian().Get()
	require.False(t, ok)
}

func TestHasMetric(t *testing.T) {
	t.Parallel()

	want := map[boundary.Kind][2]bool{ // [without, with] Jacobian
		boundary.KindNone:              {false, false},
		boundary.KindInfinite:          {false, false},
		boundary.KindAbsoluteBound:     {false, false},
		boundary.KindAbsoluteCartesian: {false, true},
		boundary.KindAbsoluteEuclidean: {true, true},
		boundary.KindChi2Bound:         {true, true},
	}
	for _, tol := range oneOfEach(t) {
		w := want[tol.Kind()]
		require.Equalf(t, w[0], tol.HasMetric(false), "%s without Jacobian", tol.Kind())
		require.Equalf(t, w[1], tol.HasMetric(true), "%s with Jacobian", tol.Kind())
	}
}

// TestMetric_AgreesWithHasMetric checks that Metric fails exactly when
// HasMetric reports false.
func TestMetric_AgreesWithHasMetric(t *testing.T) {
	t.Parallel()

	for _, tol := range oneOfEach(t) {
		for _, jac := range []boundary.Jacobian{boundary.NoJacobian(), boundary.NewJacobian(shear)} {
			_, err := tol.Metric(jac)
			if tol.HasMetric(jac.Present()) {
				require.NoErrorf(t, err, "%s jac=%v", tol.Kind(), jac.Present())
			} else {
				require.ErrorIsf(t, err, boundary.ErrTypeMismatch, "%s jac=%v", tol.Kind(), jac.Present())
			}
		}
	}
}

func TestMetric_Values(t *testing.T) {
	t.Parallel()

	var gram mat.Dense
	j := mat.NewDense(2, 2, []float64{shear[0], shear[1], shear[2], shear[3]})
	gram.Mul(j.T(), j)
	wantGram := algebra.NewMat2(gram.At(0, 0), gram.At(0, 1), gram.At(1, 0), gram.At(1, 1))

	m, err := boundary.AbsoluteEuclidean(1).Metric(boundary.NoJacobian())
	require.NoError(t, err)
	require.Equal(t, algebra.Identity(), m)

	m, err = boundary.AbsoluteEuclidean(1).Metric(boundary.NewJacobian(shear))
	require.NoError(t, err)
	require.Equal(t, wantGram, m)

	m, err = mustCartesian(t, 1, 1).Metric(boundary.NewJacobian(shear))
	require.NoError(t, err)
	require.Equal(t, wantGram, m)

	// Chi2 ignores the Jacobian.
	w := algebra.NewMat2(2, 0.5, 0.5, 1)
	for _, jac := range []boundary.Jacobian{boundary.NoJacobian(), boundary.NewJacobian(shear)} {
		m, err = boundary.Chi2Bound(w, 1).Metric(jac)
		require.NoError(t, err)
		require.Equal(t, w, m)
	}
}

func TestIsTolerated_Infinite(t *testing.T) {
	t.Parallel()

	tol := boundary.Infinite()
	huge := []r2.Vec{
		{X: 0, Y: 0},
		{X: 1e300, Y: -1e300},
		{X: math.Inf(1), Y: math.Inf(-1)},
		{X: math.NaN(), Y: 1},
	}
	for _, r := range huge {
		require.True(t, tolerated(t, tol, r, boundary.NoJacobian()))
		require.True(t, tolerated(t, tol, r, boundary.NewJacobian(shear)))
	}
}

func TestIsTolerated_Table(t *testing.T) {
	t.Parallel()

	none := boundary.NoJacobian()
	tests := []struct {
		name string
		tol  boundary.Tolerance
		r    r2.Vec
		jac  boundary.Jacobian
		want bool
	}{
		{"none at boundary", boundary.None(), r2.Vec{X: 0, Y: 0}, none, true},
		{"none inside", boundary.None(), r2.Vec{X: -1, Y: -0.5}, none, true},
		{"none just outside", boundary.None(), r2.Vec{X: 1e-9, Y: 0}, none, false},
		{"none outside second axis", boundary.None(), r2.Vec{X: -1, Y: 1e-9}, none, false},
		{"none ignores jacobian", boundary.None(), r2.Vec{X: 0, Y: 0}, boundary.NewJacobian(shear), true},

		{"bound inclusive", mustBound(t, 1, 2), r2.Vec{X: 1, Y: 2}, none, true},
		{"bound first axis out", mustBound(t, 1, 2), r2.Vec{X: 1.01, Y: 2}, none, false},
		{"bound second axis out", mustBound(t, 1, 2), r2.Vec{X: 0, Y: 2.01}, none, false},
		{"bound negative residual", mustBound(t, 1, 2), r2.Vec{X: -1, Y: -2}, none, true},
		{"bound ignores jacobian", mustBound(t, 1, 2), r2.Vec{X: 1, Y: 2}, boundary.NewJacobian(algebra.Diag(100, 100)), true},
		{"bound zero exact", mustBound(t, 0, 0), r2.Vec{X: 0, Y: 0}, none, true},
		{"bound zero rejects", mustBound(t, 0, 0), r2.Vec{X: 1e-12, Y: 0}, none, false},

		{"cartesian identity inclusive", mustCartesian(t, 1, 1), r2.Vec{X: 1, Y: -1}, boundary.NewJacobian(algebra.Identity()), true},
		{"cartesian scaled out", mustCartesian(t, 1, 1), r2.Vec{X: 0.6, Y: 0}, boundary.NewJacobian(algebra.Diag(2, 1)), false},
		{"cartesian scaled in", mustCartesian(t, 1, 1), r2.Vec{X: 0.5, Y: 0}, boundary.NewJacobian(algebra.Diag(2, 1)), true},
		{"cartesian shear in", mustCartesian(t, 3, 1), r2.Vec{X: 1, Y: 1}, boundary.NewJacobian(shear), true},
		{"cartesian shear out", mustCartesian(t, 2.9, 1), r2.Vec{X: 1, Y: 1}, boundary.NewJacobian(shear), false},

		{"euclidean inclusive", boundary.AbsoluteEuclidean(5), r2.Vec{X: 3, Y: 4}, none, true},
		{"euclidean just out", boundary.AbsoluteEuclidean(5), r2.Vec{X: 3, Y: 4.01}, none, false},
		{"euclidean jacobian scales", boundary.AbsoluteEuclidean(5), r2.Vec{X: 3, Y: 4}, boundary.NewJacobian(algebra.Diag(2, 2)), false},
		{"euclidean jacobian shrinks", boundary.AbsoluteEuclidean(5), r2.Vec{X: 6, Y: 8}, boundary.NewJacobian(algebra.Diag(0.5, 0.5)), true},
		{"euclidean negative rejects zero", boundary.AbsoluteEuclidean(-1), r2.Vec{X: 0, Y: 0}, none, false},
		{"euclidean zero accepts zero", boundary.AbsoluteEuclidean(0), r2.Vec{X: 0, Y: 0}, none, true},

		{"chi2 identity inclusive", boundary.Chi2Bound(algebra.Identity(), 25), r2.Vec{X: 3, Y: 4}, none, true},
		{"chi2 diag inclusive", boundary.Chi2Bound(algebra.Diag(4, 1), 16), r2.Vec{X: 2, Y: 0}, none, true},
		{"chi2 diag just out", boundary.Chi2Bound(algebra.Diag(4, 1), 16), r2.Vec{X: 2.01, Y: 0}, none, false},
		{"chi2 ignores jacobian", boundary.Chi2Bound(algebra.Diag(4, 1), 16), r2.Vec{X: 2, Y: 0}, boundary.NewJacobian(algebra.Diag(10, 10)), true},
		{"chi2 negative max", boundary.Chi2Bound(algebra.Identity(), -1), r2.Vec{X: 0, Y: 0}, none, false},

		{"nan rejected by bound", mustBound(t, 1, 1), r2.Vec{X: math.NaN(), Y: 0}, none, false},
		{"nan rejected by euclidean", boundary.AbsoluteEuclidean(1), r2.Vec{X: math.NaN(), Y: 0}, none, false},
		{"nan rejected by chi2", boundary.Chi2Bound(algebra.Identity(), 1), r2.Vec{X: 0, Y: math.NaN()}, none, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tolerated(t, tc.tol, tc.r, tc.jac))
		})
	}
}

func TestIsTolerated_CartesianNeedsJacobian(t *testing.T) {
	t.Parallel()

	tol := mustCartesian(t, 1, 1)
	ok, err := tol.IsTolerated(r2.Vec{X: 0, Y: 0}, boundary.NoJacobian())
	require.ErrorIs(t, err, boundary.ErrMissingTransform)
	require.False(t, ok)

	_, err = tol.Distance(r2.Vec{X: 0, Y: 0}, boundary.NoJacobian())
	require.ErrorIs(t, err, boundary.ErrMissingTransform)
}

// TestIsTolerated_OnlyCartesianFails checks that evaluation is total for every
// other kind, with or without a Jacobian.
func TestIsTolerated_OnlyCartesianFails(t *testing.T) {
	t.Parallel()

	r := r2.Vec{X: 0.5, Y: -0.5}
	for _, tol := range oneOfEach(t) {
		_, err := tol.IsTolerated(r, boundary.NoJacobian())
		if tol.HasAbsoluteCartesian() {
			require.Error(t, err)
		} else {
			require.NoErrorf(t, err, "%s", tol.Kind())
		}
		_, err = tol.IsTolerated(r, boundary.NewJacobian(shear))
		require.NoErrorf(t, err, "%s with Jacobian", tol.Kind())
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	r := r2.Vec{X: 3, Y: 4}

	d, err := boundary.AbsoluteEuclidean(5).Distance(r, boundary.NoJacobian())
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	d, err = boundary.AbsoluteEuclidean(5).Distance(r, boundary.NewJacobian(algebra.Diag(2, 2)))
	require.NoError(t, err)
	require.InDelta(t, 10.0, d, 1e-12)

	d, err = boundary.Chi2Bound(algebra.Diag(4, 1), 16).Distance(r2.Vec{X: 2, Y: 0}, boundary.NoJacobian())
	require.NoError(t, err)
	require.Equal(t, 16.0, d)

	d, err = mustCartesian(t, 1, 1).Distance(r2.Vec{X: 1, Y: 1}, boundary.NewJacobian(shear))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(10), d, 1e-12)

	for _, tol := range []boundary.Tolerance{boundary.None(), boundary.Infinite(), mustBound(t, 1, 1)} {
		_, err = tol.Distance(r, boundary.NoJacobian())
		require.ErrorIs(t, err, boundary.ErrTypeMismatch)
	}
}

// TestIsTolerated_DistanceConsistency checks that metric-based variants accept
// exactly the residuals whose Distance is within the threshold.
func TestIsTolerated_DistanceConsistency(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	tols := []boundary.Tolerance{
		boundary.AbsoluteEuclidean(1.5),
		boundary.Chi2Bound(algebra.NewMat2(2, 0.5, 0.5, 1), 3),
	}
	for i := 0; i < 500; i++ {
		r := r2.Vec{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2}
		jac := boundary.NewJacobian(algebra.NewMat2(rng.Float64()+0.5, rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()+0.5))
		for _, tol := range tols {
			d, err := tol.Distance(r, jac)
			require.NoError(t, err)
			threshold := 1.5
			if tol.HasChi2Bound() {
				threshold = 3
			}
			require.Equal(t, d <= threshold, tolerated(t, tol, r, jac))
		}
	}
}

// TestIsTolerated_Idempotent evaluates random inputs twice on each kind and
// on a copy of the instance; the answers must agree.
func TestIsTolerated_Idempotent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, tol := range oneOfEach(t) {
		cp := tol
		for i := 0; i < 1000; i++ {
			r := r2.Vec{X: rng.NormFloat64() * 3, Y: rng.NormFloat64() * 3}
			jac := boundary.NoJacobian()
			if rng.Intn(2) == 0 {
				jac = boundary.NewJacobian(algebra.NewMat2(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()))
			}
			a, errA := tol.IsTolerated(r, jac)
			b, errB := tol.IsTolerated(r, jac)
			c, errC := cp.IsTolerated(r, jac)
			require.Equal(t, a, b)
			require.Equal(t, a, c)
			require.Equal(t, errA == nil, errB == nil)
			require.Equal(t, errA == nil, errC == nil)
		}
		require.Equal(t, cp, tol, "evaluation must not mutate the instance")
	}
}

func TestIsTolerated_ConcurrentSharedInstance(t *testing.T) {
	t.Parallel()

	tol := boundary.Chi2Bound(algebra.Diag(4, 1), 16)
	const workers = 16

	var wg sync.WaitGroup
	results := make([]bool, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ok := true
			for i := 0; i < 1000; i++ {
				got, err := tol.IsTolerated(r2.Vec{X: 2, Y: 0}, boundary.NoJacobian())
				ok = ok && err == nil && got
			}
			results[w] = ok
		}(w)
	}
	wg.Wait()
	for w, ok := range results {
		require.Truef(t, ok, "worker %d", w)
	}
}

func TestIsTolerated_DoesNotAllocate(t *testing.T) {
	r := r2.Vec{X: 0.3, Y: -0.2}
	jac := boundary.NewJacobian(shear)
	for _, tol := range oneOfEach(t) {
		tol := tol
		withMetric := tol.HasMetric(true) // error paths may allocate; success paths must not
		allocs := testing.AllocsPerRun(100, func() {
			_, _ = tol.IsTolerated(r, jac)
			if withMetric {
				_, _ = tol.Metric(jac)
			}
			_ = tol.ToleranceMode()
		})
		require.Zerof(t, allocs, "%s allocated", tol.Kind())
	}
}

// TestExhaustiveConsumers drives every Kind through every switch; an
// unhandled Kind would panic.
func TestExhaustiveConsumers(t *testing.T) {
	t.Parallel()

	byKind := map[boundary.Kind]boundary.Tolerance{}
	for _, tol := range oneOfEach(t) {
		byKind[tol.Kind()] = tol
	}
	for _, k := range boundary.Kinds() {
		tol, ok := byKind[k]
		require.Truef(t, ok, "no representative for %s", k)
		require.NotPanics(t, func() {
			_ = tol.ToleranceMode()
			_ = tol.HasMetric(false)
			_, _ = tol.Metric(boundary.NoJacobian())
			_, _ = tol.IsTolerated(r2.Vec{}, boundary.NewJacobian(algebra.Identity()))
			_, _ = tol.Distance(r2.Vec{}, boundary.NewJacobian(algebra.Identity()))
			_ = tol.String()
		})
	}
}
