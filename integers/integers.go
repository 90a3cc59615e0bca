// Package integers implements the ring of rational integers over math/big.
package integers

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Ring is the ring Z. It carries no state; every Ring value is the same ring.
type Ring struct{}

// Int is an immutable integer. The zero value is 0.
type Int struct {
	v *big.Int
}

var (
	_ algebra.Ring[Int]    = Ring{}
	_ algebra.Element[Int] = Int{}
)

// FromInt returns the integer v.
func FromInt[T constraints.Integer](v T) Int {
	if v < 0 {
		return Int{big.NewInt(int64(v))}
	}

	return Int{new(big.Int).SetUint64(uint64(v))}
}

// FromBig returns a copy of v as an Int.
func FromBig(v *big.Int) Int {
	return Int{new(big.Int).Set(v)}
}

func (Ring) Zero() Int { return Int{big.NewInt(0)} }

func (Ring) One() Int { return Int{big.NewInt(1)} }

func (Ring) String() string { return "Z" }

// Element interprets v as an integer. Accepted are Int, *big.Int, Go integer
// kinds and decimal strings.
func (Ring) Element(v any) (Int, error) {
	switch x := v.(type) {
	case Int:
		return x, nil
	case *big.Int:
		if x == nil {
			break
		}
		return FromBig(x), nil
	case int:
		return FromInt(x), nil
	case int8:
		return FromInt(x), nil
	case int16:
		return FromInt(x), nil
	case int32:
		return FromInt(x), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(x), nil
	case uint8:
		return FromInt(x), nil
	case uint16:
		return FromInt(x), nil
	case uint32:
		return FromInt(x), nil
	case uint64:
		return FromInt(x), nil
	case string:
		b, ok := new(big.Int).SetString(x, 10)
		if ok {
			return Int{b}, nil
		}
	}

	return Int{}, fmt.Errorf("%w: %T(%v) is not an integer", algebra.ErrCoercion, v, v)
}

func (a Int) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}

	return a.v
}

// Big returns a copy of the value.
func (a Int) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

func (a Int) Sign() int {
	return a.big().Sign()
}

func (a Int) Cmp(b Int) int {
	return a.big().Cmp(b.big())
}

func (a Int) IsZero() bool {
	return a.big().Sign() == 0
}

func (a Int) Equals(b Int) bool {
	return a.big().Cmp(b.big()) == 0
}

func (a Int) Add(b Int) Int {
	return Int{new(big.Int).Add(a.big(), b.big())}
}

func (a Int) Neg() Int {
	return Int{new(big.Int).Neg(a.big())}
}

func (a Int) Mul(b Int) Int {
	return Int{new(big.Int).Mul(a.big(), b.big())}
}

// DivRem implements Euclidean division: the remainder lies in [0, |d|).
func (a Int) DivRem(d Int) (Int, Int, error) {
	if d.IsZero() {
		return Int{}, Int{}, algebra.ErrDivisionByZero
	}

	q, r := new(big.Int).DivMod(a.big(), d.big(), new(big.Int))

	return Int{q}, Int{r}, nil
}

func (a Int) String() string {
	return a.big().String()
}
