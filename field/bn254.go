package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/jonathanmweiss/go-rings/algebra"
	"github.com/jonathanmweiss/go-rings/integers"
)

// BN254 is the scalar field of the BN254 curve, backed by gnark-crypto.
type BN254 struct{}

// Fr is an element of BN254.
type Fr struct {
	v fr.Element
}

var (
	_ algebra.Ring[Fr]    = BN254{}
	_ algebra.Element[Fr] = Fr{}
)

func (BN254) Zero() Fr { return Fr{} }

func (BN254) One() Fr {
	var z Fr
	z.v.SetOne()

	return z
}

func (BN254) String() string { return "GF(bn254.r)" }

// Modulus returns the field order r.
func (BN254) Modulus() *big.Int {
	return fr.Modulus()
}

func (BN254) Element(v any) (Fr, error) {
	var z Fr

	switch x := v.(type) {
	case Fr:
		return x, nil
	case int:
		z.v.SetInt64(int64(x))
		return z, nil
	case int8:
		z.v.SetInt64(int64(x))
		return z, nil
	case int16:
		z.v.SetInt64(int64(x))
		return z, nil
	case int32:
		z.v.SetInt64(int64(x))
		return z, nil
	case int64:
		z.v.SetInt64(x)
		return z, nil
	case uint:
		z.v.SetUint64(uint64(x))
		return z, nil
	case uint8:
		z.v.SetUint64(uint64(x))
		return z, nil
	case uint16:
		z.v.SetUint64(uint64(x))
		return z, nil
	case uint32:
		z.v.SetUint64(uint64(x))
		return z, nil
	case uint64:
		z.v.SetUint64(x)
		return z, nil
	case *big.Int:
		if x != nil {
			z.v.SetBigInt(x)
			return z, nil
		}
	case integers.Int:
		z.v.SetBigInt(x.Big())
		return z, nil
	}

	return Fr{}, fmt.Errorf("%w: %T(%v) is not an element of %v", algebra.ErrCoercion, v, v, BN254{})
}

func (a Fr) IsZero() bool {
	return a.v.IsZero()
}

func (a Fr) Equals(b Fr) bool {
	return a.v.Equal(&b.v)
}

func (a Fr) Add(b Fr) Fr {
	var z Fr
	z.v.Add(&a.v, &b.v)

	return z
}

func (a Fr) Neg() Fr {
	var z Fr
	z.v.Neg(&a.v)

	return z
}

func (a Fr) Mul(b Fr) Fr {
	var z Fr
	z.v.Mul(&a.v, &b.v)

	return z
}

// DivRem divides exactly: the remainder is always zero.
func (a Fr) DivRem(d Fr) (Fr, Fr, error) {
	if d.v.IsZero() {
		return Fr{}, Fr{}, algebra.ErrDivisionByZero
	}

	var inv Fr
	inv.v.Inverse(&d.v)

	return a.Mul(inv), Fr{}, nil
}

func (a Fr) String() string {
	return a.v.String()
}
