package polynomial_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-rings/algebra"
	"github.com/jonathanmweiss/go-rings/field"
	"github.com/jonathanmweiss/go-rings/integers"
	"github.com/jonathanmweiss/go-rings/polynomial"
)

const largePrime = 9191248642791733759

var (
	_ algebra.Ring[*polynomial.Polynomial[integers.Int]]    = (*polynomial.Ring[integers.Int])(nil)
	_ algebra.Element[*polynomial.Polynomial[integers.Int]] = (*polynomial.Polynomial[integers.Int])(nil)
	_ algebra.Reflector                                     = (*polynomial.Polynomial[integers.Int])(nil)
)

func integerPolys() *polynomial.Ring[integers.Int] {
	return polynomial.NewRing[integers.Int](integers.Ring{})
}

func primePolys(t testing.TB, p uint64) (*field.PrimeField, *polynomial.Ring[field.Elem]) {
	f, err := field.NewPrimeField(p)
	require.NoError(t, err)

	return f, polynomial.NewRing[field.Elem](f)
}

// toSlice returns the coefficient values of a polynomial over a prime field.
func toSlice(p *polynomial.Polynomial[field.Elem]) []uint64 {
	out := make([]uint64, 0, p.Degree()+1)
	for _, c := range p.Coefficients() {
		out = append(out, c.Value())
	}

	return out
}

var intsEqual = cmp.Comparer(func(x, y integers.Int) bool {
	return x.Equals(y)
})

func ints(vs ...int64) []integers.Int {
	out := make([]integers.Int, len(vs))
	for i, v := range vs {
		out[i] = integers.FromInt(v)
	}

	return out
}

func TestSquare(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	p := pr.MustNew(5, 2, 1) // x^2 + 2x + 5

	a.Equal(2, p.Degree())
	a.True(p.Add(p).Equals(pr.MustNew(10, 4, 2)))
	a.True(p.Mul(p).Equals(pr.MustNew(25, 20, 14, 4, 1)))
	a.True(cmp.Equal(ints(25, 20, 14, 4, 1), p.Mul(p).Coefficients(), intsEqual))
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	t.Run("empty", func(t *testing.T) {
		_, err := pr.New()
		a.ErrorIs(err, algebra.ErrInvalidArity)

		_, err = pr.FromCoefficients(nil)
		a.ErrorIs(err, algebra.ErrInvalidArity)
	})

	t.Run("coercion", func(t *testing.T) {
		_, err := pr.New(1, "two", 3)
		a.ErrorIs(err, algebra.ErrCoercion)

		p, err := pr.New(int8(1), "2", uint64(3))
		a.NoError(err)
		a.True(p.Equals(pr.MustNew(1, 2, 3)))

		a.Panics(func() { pr.MustNew() })
	})

	t.Run("fromCoefficientsCopies", func(t *testing.T) {
		cs := ints(1, 2, 3)
		p, err := pr.FromCoefficients(cs)
		a.NoError(err)

		cs[0] = integers.FromInt(9)
		a.True(p.Coefficient(0).Equals(integers.FromInt(1)))

		out := p.Coefficients()
		out[1] = integers.FromInt(9)
		a.True(p.Coefficient(1).Equals(integers.FromInt(2)))
	})
}

func TestZeroPolynomial(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	z := pr.MustNew(0)

	// the zero polynomial reports degree 0, like the constants.
	a.Equal(0, z.Degree())
	a.True(z.IsZero())
	a.True(z.Equals(pr.MustNew(0, 0, 0)))
	a.True(z.Equals(pr.Zero()))
	a.Equal(0, pr.MustNew(0, 0, 0).Degree())
	a.False(pr.MustNew(7).IsZero())
	a.Equal(0, pr.MustNew(7).Degree())
}

func TestNormalization(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	base := []any{3, -1, 4}
	p := pr.MustNew(base...)

	for pad := 0; pad < 5; pad++ {
		padded := append([]any{}, base...)
		for i := 0; i < pad; i++ {
			padded = append(padded, 0)
		}

		q := pr.MustNew(padded...)
		a.True(p.Equals(q), "padding %d", pad)
		a.Equal(p.Degree(), q.Degree(), "padding %d", pad)
	}

	// cancellation of leading terms shrinks the degree.
	sum := pr.MustNew(1, 2, 3).Add(pr.MustNew(0, 0, -3))
	a.Equal(1, sum.Degree())
	a.True(sum.Equals(pr.MustNew(1, 2)))

	a.True(pr.MustNew(1, 2, 3).Add(pr.MustNew(1, 2, 3).Neg()).IsZero())
}

func TestCoefficient(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	p := pr.MustNew(5, 2, 1)
	a.True(p.Coefficient(0).Equals(integers.FromInt(5)))
	a.True(p.Coefficient(2).Equals(integers.FromInt(1)))
	a.True(p.Coefficient(3).IsZero())
	a.True(p.Coefficient(-1).IsZero())
	a.True(p.LeadingCoefficient().Equals(integers.FromInt(1)))
}

func TestString(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	a.Equal("(5 + 2*x + 1*x^2)", pr.MustNew(5, 2, 1).String())
	a.Equal("(0)", pr.Zero().String())
	a.Equal("(-3 + 0*x + 0*x^2 + 4*x^3)", pr.MustNew(-3, 0, 0, 4).String())
	a.Equal("(0 + 1*x)", pr.X().String())
	a.Equal("Z[x]", pr.String())
}

func TestPolyAdd(t *testing.T) {
	a := assert.New(t)
	f, pr := primePolys(t, 157)

	t.Run("sameSize", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 0, 3)
		p2 := pr.MustNew(1, 2, 0, 3)

		a.Equal([]uint64{2, 4, 0, 6}, toSlice(p1.Add(p2)))
	})

	t.Run("differentSizes", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 0, 3)
		p2 := pr.MustNew(1, 2, 0)

		a.Equal([]uint64{2, 4, 0, 3}, toSlice(p1.Add(p2)))
		a.Equal([]uint64{2, 4, 0, 3}, toSlice(p2.Add(p1)))
	})

	t.Run("WrapAroundElems", func(t *testing.T) {
		q := f.Modulus() - 1

		p1 := pr.MustNew(q, q, q, q)
		p2 := pr.MustNew(1, 1, 1, 1)

		a.True(p1.Add(p2).IsZero())
	})
}

func TestPolySub(t *testing.T) {
	a := assert.New(t)
	_, pr := primePolys(t, 157)

	p1 := pr.MustNew(1, 2, 0, 3)
	p2 := pr.MustNew(1, 2, 0)

	a.Equal([]uint64{0}, toSlice(p1.Sub(p1)))
	a.Equal([]uint64{0, 0, 0, 3}, toSlice(p1.Sub(p2)))
	a.Equal([]uint64{0, 0, 0, 154}, toSlice(p2.Sub(p1)))
}

func TestPolyMul(t *testing.T) {
	a := assert.New(t)
	f, pr := primePolys(t, 5)

	t.Run("sameSize", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 3)

		a.Equal([]uint64{1, 4, 0, 2, 4}, toSlice(p1.Mul(p1)))
	})

	t.Run("differentSizes", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 0, 3)
		p2 := pr.MustNew(1, 2, 0)

		prod := p1.Mul(p2)
		a.Equal([]uint64{1, 4, 4, 3, 1}, toSlice(prod))
		a.True(prod.Equals(p2.Mul(p1)))
	})

	t.Run("byZero", func(t *testing.T) {
		a.True(pr.MustNew(1, 2, 3).Mul(pr.Zero()).IsZero())
	})

	t.Run("scalar", func(t *testing.T) {
		a.Equal([]uint64{2, 4, 1}, toSlice(pr.MustNew(1, 2, 3).MulScalar(f.ElemFromUint64(2))))
		a.True(pr.MustNew(1, 2, 3).MulScalar(f.Zero()).IsZero())
	})

	t.Run("degreesAdd", func(t *testing.T) {
		p := pr.MustNew(1, 4)
		q := pr.MustNew(2, 0, 3)
		a.Equal(p.Degree()+q.Degree(), p.Mul(q).Degree())
	})
}

func TestPolyLongDiv(t *testing.T) {
	a := assert.New(t)
	_, pr := primePolys(t, 5)

	t.Run("simple", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 3)
		p2 := pr.MustNew(1, 2, 3)

		quotient, remainder, err := p1.DivRem(p2)
		a.NoError(err)
		a.Equal([]uint64{1}, toSlice(quotient))
		a.Equal([]uint64{0}, toSlice(remainder))
	})

	t.Run("differentSizes", func(t *testing.T) {
		p1 := pr.MustNew(1, 2, 3)
		p2 := pr.MustNew(1, 2)

		quotient, remainder, err := p1.DivRem(p2)
		a.NoError(err)
		a.Equal([]uint64{4, 4}, toSlice(quotient))
		a.Equal([]uint64{2}, toSlice(remainder))

		q, r, err := p2.DivRem(p1)
		a.NoError(err)
		a.True(p2.Equals(r))
		a.True(q.IsZero())

		p1 = pr.MustNew(1, 2, 0, 0, 3)

		quotient, remainder, err = p1.DivRem(p2)
		a.NoError(err)
		a.Equal([]uint64{3, 1, 3, 4}, toSlice(quotient))
		a.Equal([]uint64{3}, toSlice(remainder))
	})

	t.Run("complex", func(t *testing.T) {
		p1 := pr.MustNew(1, 0, 0, 0, 2, 3)
		p2 := pr.MustNew(1, 0, 1, 0, 2)

		quotient, remainder, err := p1.DivRem(p2)
		a.NoError(err)
		a.Equal([]uint64{1, 4}, toSlice(quotient))
		a.Equal([]uint64{0, 1, 4, 1}, toSlice(remainder))
	})

	t.Run("byZero", func(t *testing.T) {
		_, _, err := pr.MustNew(1, 2).DivRem(pr.Zero())
		a.ErrorIs(err, algebra.ErrDivisionByZero)
	})
}

func TestIntegerLongDiv(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	t.Run("exact", func(t *testing.T) {
		// (x^2 + 2x + 5)(2x - 1) = 2x^3 + 3x^2 + 8x - 5
		q, r, err := pr.MustNew(-5, 8, 3, 2).DivRem(pr.MustNew(-1, 2))
		a.NoError(err)
		a.True(q.Equals(pr.MustNew(5, 2, 1)))
		a.True(r.IsZero())
	})

	t.Run("stopsAtInexactLead", func(t *testing.T) {
		p := pr.MustNew(1, 0, 1) // x^2 + 1
		d := pr.MustNew(0, 2)    // 2x

		q, r, err := p.DivRem(d)
		a.NoError(err)
		a.True(q.IsZero())
		a.True(r.Equals(p))
		a.True(q.Mul(d).Add(r).Equals(p))
	})

	t.Run("partial", func(t *testing.T) {
		p := pr.MustNew(1, 3, 2, 4) // 4x^3 + 2x^2 + 3x + 1
		d := pr.MustNew(1, 2)       // 2x + 1

		q, r, err := p.DivRem(d)
		a.NoError(err)
		a.True(q.Mul(d).Add(r).Equals(p))
	})
}

func TestPolyEvaluation(t *testing.T) {
	a := assert.New(t)
	f, pr := primePolys(t, 5)

	t.Run("simple", func(t *testing.T) {
		p := pr.MustNew(1, 2, 3)

		// pairs of {x,p(x)}
		test := [][2]uint64{{1, 1}, {2, 2}, {3, 4}, {4, 2}}
		for _, tt := range test {
			a.Equal(tt[1], p.Evaluate(f.ElemFromUint64(tt[0])).Value())
		}
	})

	t.Run("zero", func(t *testing.T) {
		p := pr.MustNew(0, 0, 0)

		for x := uint64(1); x < 5; x++ {
			a.True(p.Evaluate(f.ElemFromUint64(x)).IsZero())
		}
	})
}

func TestLocatorPolynomial(t *testing.T) {
	a := assert.New(t)
	f, pr := primePolys(t, largePrime)

	roots := make([]field.Elem, 15)
	for i := range roots {
		roots[i] = f.ElemFromUint64(uint64(i*7 + 3))
	}

	p := pr.FromRoots(roots...)

	q := pr.One()
	for _, r := range roots {
		q = q.Mul(pr.X().Sub(pr.MustNew(r)))
	}

	a.True(p.Equals(q))
	a.Equal(15, p.Degree())

	for _, r := range roots {
		a.True(p.Evaluate(r).IsZero())
	}

	a.True(pr.FromRoots().Equals(pr.One()))
}

func TestInterpolate(t *testing.T) {
	a := assert.New(t)

	t.Run("primeField", func(t *testing.T) {
		f, pr := primePolys(t, 65537)

		want := pr.MustNew(1, 2, 3, 4, 5)
		xs := make([]field.Elem, 5)
		ys := make([]field.Elem, 5)
		for i := range xs {
			xs[i] = f.ElemFromUint64(uint64(i + 1))
			ys[i] = want.Evaluate(xs[i])
		}

		got, err := pr.Interpolate(xs, ys)
		a.NoError(err)
		a.True(want.Equals(got), "expected %v, got %v", want, got)
	})

	t.Run("integersNeedUnits", func(t *testing.T) {
		pr := integerPolys()

		got, err := pr.Interpolate(ints(0, 1), ints(1, 3))
		a.NoError(err)
		a.True(got.Equals(pr.MustNew(1, 2)))

		_, err = pr.Interpolate(ints(0, 2), ints(1, 3))
		a.ErrorIs(err, algebra.ErrNotInvertible)
	})

	t.Run("invalidPoints", func(t *testing.T) {
		pr := integerPolys()

		_, err := pr.Interpolate(ints(0, 1), ints(1))
		a.Error(err)

		_, err = pr.Interpolate(ints(1, 1), ints(1, 2))
		a.Error(err)
	})
}

func TestInverse(t *testing.T) {
	a := assert.New(t)
	pr := integerPolys()

	for _, p := range []*polynomial.Polynomial[integers.Int]{pr.One(), pr.Zero(), pr.MustNew(1, 1)} {
		_, err := p.Inverse()
		a.ErrorIs(err, algebra.ErrNotInvertible)
	}
}

func TestBN254Coefficients(t *testing.T) {
	a := assert.New(t)
	r := field.BN254{}
	pr := polynomial.NewRing[field.Fr](r)

	// (x - 1)(x + 1) = x^2 - 1
	one, _ := r.Element(1)
	p := pr.FromRoots(one, one.Neg())
	a.True(p.Equals(pr.MustNew(-1, 0, 1)))

	q, rem, err := p.DivRem(pr.MustNew(1, 1))
	a.NoError(err)
	a.True(rem.IsZero())
	a.True(q.Equals(pr.MustNew(-1, 1)))
}

func FuzzDivRem(f *testing.F) {
	testcases := []uint64{1, 5, 1 << 62, (1 << 63) - 1}
	for _, tc := range testcases {
		f.Add(tc)
	}

	fld, err := field.NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	pr := polynomial.NewRing[field.Elem](fld)

	f.Fuzz(func(t *testing.T, seed uint64) {
		maxDegree := 10
		divisorSize := int(seed%uint64(maxDegree-1)) + 1

		p := randomPolynomial(fld, pr, seed, maxDegree)
		d := randomPolynomial(fld, pr, seed/3+11, divisorSize)
		if d.IsZero() {
			return
		}

		q, r, err := p.DivRem(d)
		if err != nil {
			t.Fatal(err)
		}

		if !q.Mul(d).Add(r).Equals(p) {
			t.Fatalf("%v != %v * %v + %v", p, q, d, r)
		}

		if !r.IsZero() && r.Degree() >= d.Degree() {
			t.Fatalf("remainder %v not reduced by %v", r, d)
		}
	})
}

func randomPolynomial(f *field.PrimeField, pr *polynomial.Ring[field.Elem], seed uint64, size int) *polynomial.Polynomial[field.Elem] {
	coefficients := make([]field.Elem, size)
	for i := 0; i < size; i++ {
		coefficients[i] = f.ElemFromUint64(seed + uint64(i))
	}

	p, err := pr.FromCoefficients(coefficients)
	if err != nil {
		panic(err)
	}

	return p
}

func BenchmarkPolyMul(b *testing.B) {
	f, pr := primePolys(b, largePrime)

	for _, n := range []int{16, 64, 256} {
		p1 := randomPolynomial(f, pr, largePrime/4, n)
		p2 := randomPolynomial(f, pr, largePrime/7, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p1.Mul(p2)
			}
		})
	}
}

func BenchmarkPolyDiv(b *testing.B) {
	f, pr := primePolys(b, largePrime)

	p1 := randomPolynomial(f, pr, largePrime/4, 512)
	p2 := randomPolynomial(f, pr, largePrime/4, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = p1.DivRem(p2)
	}
}
