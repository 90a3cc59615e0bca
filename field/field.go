// Package field implements prime fields GF(p) for primes below 2^63, and an
// adapter for the BN254 scalar field. Both are rings in the sense of package
// algebra and can serve as coefficients of polynomials or sources of quotient
// rings.
package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"

	"github.com/jonathanmweiss/go-rings/algebra"
	"github.com/jonathanmweiss/go-rings/integers"
)

type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var _ algebra.Ring[Elem] = (*PrimeField)(nil)

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

// NewPrimeField returns GF(prime). The prime is checked with a single
// Miller-Rabin round plus Baillie-PSW, which is exact for 64-bit inputs.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	// ring.PrimitiveRoot searches from 3 upwards and needs p-1 to have a factor.
	switch prime {
	case 2:
		return &PrimeField{prime: 2, generator: 1}, nil
	case 3:
		return &PrimeField{prime: 3, generator: 2, factors: []uint64{2}}, nil
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

var (
	errNotPowerOfTwo = errors.New("n must be a power of 2")
	errNotDivisible  = errors.New("n must divide p-1")
	errNSTooSmall    = errors.New("n must be >= 2")
)

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() Elem {
	return Elem{f: f, value: f.generator}
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	out := make([]uint64, len(f.factors))
	copy(out, f.factors)

	return out
}

func (f *PrimeField) String() string {
	return fmt.Sprintf("GF(%d)", f.prime)
}

func (f *PrimeField) Zero() Elem {
	return Elem{f: f}
}

func (f *PrimeField) One() Elem {
	return Elem{f: f, value: 1}
}

// ElemFromUint64 returns val mod p.
func (f *PrimeField) ElemFromUint64(val uint64) Elem {
	return Elem{f: f, value: val % f.prime}
}

// ElemFromInt64 returns val mod p, mapping negative values into [0, p).
func (f *PrimeField) ElemFromInt64(val int64) Elem {
	if val >= 0 {
		return f.ElemFromUint64(uint64(val))
	}

	// -val may overflow for MinInt64, so negate in uint64.
	return f.ElemFromUint64(uint64(-(val + 1)) + 1).Neg()
}

func (f *PrimeField) elemFromBig(val *big.Int) Elem {
	m := new(big.Int).SetUint64(f.prime)

	return Elem{f: f, value: new(big.Int).Mod(val, m).Uint64()}
}

// Element interprets v as an element of the field. Integers of any kind are
// reduced modulo p; elements of another field are rejected.
func (f *PrimeField) Element(v any) (Elem, error) {
	switch x := v.(type) {
	case Elem:
		if x.f == nil {
			return Elem{f: f, value: x.value % f.prime}, nil
		}
		if x.f.prime == f.prime {
			return Elem{f: f, value: x.value}, nil
		}
	case int:
		return f.ElemFromInt64(int64(x)), nil
	case int8:
		return f.ElemFromInt64(int64(x)), nil
	case int16:
		return f.ElemFromInt64(int64(x)), nil
	case int32:
		return f.ElemFromInt64(int64(x)), nil
	case int64:
		return f.ElemFromInt64(x), nil
	case uint:
		return f.ElemFromUint64(uint64(x)), nil
	case uint8:
		return f.ElemFromUint64(uint64(x)), nil
	case uint16:
		return f.ElemFromUint64(uint64(x)), nil
	case uint32:
		return f.ElemFromUint64(uint64(x)), nil
	case uint64:
		return f.ElemFromUint64(x), nil
	case *big.Int:
		if x != nil {
			return f.elemFromBig(x), nil
		}
	case integers.Int:
		return f.elemFromBig(x.Big()), nil
	}

	return Elem{}, fmt.Errorf("%w: %T(%v) is not an element of %v", algebra.ErrCoercion, v, v, f)
}

// GetRootOfUnity returns a primitive n-th root of unity, for n a power of two
// dividing p-1.
func (f *PrimeField) GetRootOfUnity(n uint64) (Elem, error) {
	if n == 0 || n == 1 {
		return Elem{}, errNSTooSmall
	}

	if !IsPowerOfTwo(n) {
		return Elem{}, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return Elem{}, errNotDivisible
	}

	// The nth root of unity is the generator raised to the power of (prime-1)/n
	// since g^(x) == 1 (mod p) iff x=p-1, then w=g^((p-1)/n) is not 1, and the following n powers of w != 1 too.
	// proof is by contradiction to g being the generator of the field.
	return f.Generator().Pow((f.prime - 1) / n), nil
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}
