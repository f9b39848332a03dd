// Package poly builds cyclic codes from a generator polynomial g(x)
// instead of hand-typed matrices. The generator matrix rows are the
// descending shifts of g, and the parity check matrix starts from the
// shifts of the reciprocal of h(x) = (x^n - 1)/g(x) and is row reduced
// into the trap form the decoder's syndrome alignment assumes.
package poly

import (
	"context"
	"fmt"
	"math/bits"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"

	"github.com/jaredallen/cycliccode/cyclic"
	"github.com/jaredallen/cycliccode/cyclic/internal"
	"github.com/jaredallen/cycliccode/gf2"
)

// Degree returns the degree of p, or -1 for the zero polynomial.
func Degree(p gf2.Word) int {
	return bits.Len64(uint64(p)) - 1
}

// Mul multiplies two polynomials over GF(2).
func Mul(a, b gf2.Word) gf2.Word {
	var product gf2.Word
	for i := 0; i <= Degree(b); i++ {
		if b>>i&1 == 1 {
			product ^= a << i
		}
	}
	return product
}

// Div performs polynomial long division of a by b over GF(2).
func Div(a, b gf2.Word) (quotient, remainder gf2.Word) {
	if b == 0 {
		panic("division by the zero polynomial")
	}
	db := Degree(b)
	for Degree(a) >= db {
		shift := Degree(a) - db
		quotient ^= gf2.Word(1) << shift
		a ^= b << shift
	}
	return quotient, a
}

// Reciprocal reverses the coefficients of p: x^d * p(1/x) for d the
// degree of p.
func Reciprocal(p gf2.Word) gf2.Word {
	d := Degree(p)
	var r gf2.Word
	for i := 0; i <= d; i++ {
		if p>>i&1 == 1 {
			r |= gf2.Word(1) << (d - i)
		}
	}
	return r
}

// FromGenerator constructs the length codeLength cyclic code generated by
// g(x). g must divide x^codeLength - 1; the quotient h(x) supplies the
// parity check rows.
func FromGenerator(ctx context.Context, g gf2.Word, codeLength, threads int) (*cyclic.Code, error) {
	m := Degree(g)
	if m < 1 || m >= codeLength {
		return nil, fmt.Errorf("%w: generator polynomial degree %v must be in [1,%v)", cyclic.ErrInvalidDimensions, m, codeLength)
	}
	if codeLength > cyclic.MaxCodeLength {
		return nil, fmt.Errorf("%w: code length %v must be at most %v", cyclic.ErrInvalidDimensions, codeLength, cyclic.MaxCodeLength)
	}

	modulus := gf2.Word(1)<<codeLength | 1
	h, rem := Div(modulus, g)
	if rem != 0 {
		return nil, fmt.Errorf("generator polynomial %b does not divide x^%v-1", g, codeLength)
	}
	k := codeLength - m

	generator := make([]gf2.Word, k)
	for i := range generator {
		generator[i] = g << (k - 1 - i)
	}

	hrev := Reciprocal(h)
	H := mat.CSRMat(m, codeLength)
	for i := 0; i < m; i++ {
		H.SetRow(i, toSparseVec(hrev<<i, codeLength))
	}

	if rank := internal.CalculateRank(ctx, H, threads); rank != m {
		return nil, fmt.Errorf("parity check rows for %b are not linearly independent (rank %v)", g, rank)
	}
	logrus.Debugf("reducing parity check matrix for g=%b to trap form", g)
	if !internal.TrapForm(ctx, H, threads) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unable to reduce parity check matrix for %b to trap form", g)
	}

	parityCheck := make([]gf2.Word, m)
	for i := 0; i < m; i++ {
		for _, col := range H.Row(i).NonzeroArray() {
			parityCheck[i] |= gf2.Word(1) << col
		}
	}

	return cyclic.New(ctx, generator, parityCheck, codeLength, threads)
}

func toSparseVec(w gf2.Word, length int) mat.SparseVector {
	vec := mat.CSRVec(length)
	for i := 0; i < length; i++ {
		if w>>i&1 == 1 {
			vec.Set(i, 1)
		}
	}
	return vec
}
