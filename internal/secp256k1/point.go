// Package secp256k1 implements the curve y^2 = x^3 + 7 over the field
// prime internal/bigint.P, including the windowed base-point scalar
// multiplication the BIP32 derivation chain and the final public-key
// projection both need. It is a from-scratch point engine rather than a
// wrapper around an existing secp256k1 library for the same reason
// internal/bigint is: this IS the component under specification.
package secp256k1

import "github.com/not-for-prod/vanityeth/internal/bigint"

// Affine is a point in (x, y) affine coordinates. The point at infinity is
// represented, in legacy fashion, by x=y=0 — a value no real curve point
// can take since 0 is not on the curve.
type Affine struct {
	X, Y bigint.BI256
}

// IsInfinity reports whether a represents the point at infinity.
func (a Affine) IsInfinity() bool { return a.X.IsZero() && a.Y.IsZero() }

// Jacobian is a point in (X, Y, Z) Jacobian projective coordinates, where
// the affine image is (X*Z^-2, Y*Z^-3). Z=0 denotes the point at infinity
// whatever X and Y are, so the zero-value Jacobian (0, 0, 0) is also
// infinity, alongside the canonical (1, 1, 0).
type Jacobian struct {
	X, Y, Z bigint.BI256
}

// InfinityJacobian is the canonical point-at-infinity accumulator seed,
// (1, 1, 0), per the data model's stated initial state.
var InfinityJacobian = Jacobian{X: bigint.One, Y: bigint.One, Z: bigint.Zero}

// IsInfinity reports whether j represents the point at infinity.
func (j Jacobian) IsInfinity() bool { return j.Z.IsZero() }

// G is the secp256k1 base point.
var G = Affine{
	X: bigint.FromBytesBE(&[32]byte{
		0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb, 0xac, 0x55, 0xa0, 0x62, 0x95, 0xce, 0x87, 0x0b, 0x07,
		0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce, 0x28, 0xd9, 0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17, 0x98,
	}),
	Y: bigint.FromBytesBE(&[32]byte{
		0x48, 0x3a, 0xda, 0x77, 0x26, 0xa3, 0xc4, 0x65, 0x5d, 0xa4, 0xfb, 0xfc, 0x0e, 0x11, 0x08, 0xa8,
		0xfd, 0x17, 0xb4, 0x48, 0xa6, 0x85, 0x54, 0x19, 0x9c, 0x47, 0xd0, 0x8f, 0xfb, 0x10, 0xd4, 0xb8,
	}),
}

func negP(x bigint.BI256) bigint.BI256 {
	if x.IsZero() {
		return x
	}
	out, _ := bigint.Sub(bigint.P, x)
	return out
}

// AffineDouble doubles an affine point: lambda = 3x^2/(2y); x3 =
// lambda^2-2x; y3 = lambda(x-x3)-y. Costs one modular inverse; used only
// for building the precomputed base-point table at init time and by the
// reference ScalarMultGAffine, never on the hot path.
func AffineDouble(p Affine) Affine {
	if p.IsInfinity() || p.Y.IsZero() {
		return Affine{}
	}
	xx := bigint.ModMul(p.X, p.X)
	threeXX := bigint.ModAdd(bigint.ModAdd(xx, xx, bigint.P), xx, bigint.P)
	twoY := bigint.ModAdd(p.Y, p.Y, bigint.P)
	lambda := bigint.ModMul(threeXX, bigint.ModInv(twoY, bigint.P))

	x3 := bigint.ModSub(bigint.ModMul(lambda, lambda), bigint.ModAdd(p.X, p.X, bigint.P), bigint.P)
	y3 := bigint.ModSub(bigint.ModMul(lambda, bigint.ModSub(p.X, x3, bigint.P)), p.Y, bigint.P)
	return Affine{X: x3, Y: y3}
}

// AffineAdd adds two distinct affine points: lambda = (y2-y1)/(x2-x1); x3
// = lambda^2-x1-x2; y3 = lambda(x1-x3)-y1.
func AffineAdd(p, q Affine) Affine {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if bigint.Cmp(p.X, q.X) == 0 {
		if bigint.Cmp(p.Y, q.Y) == 0 {
			return AffineDouble(p)
		}
		// p + (-p) = infinity
		return Affine{}
	}

	dx := bigint.ModSub(q.X, p.X, bigint.P)
	dy := bigint.ModSub(q.Y, p.Y, bigint.P)
	lambda := bigint.ModMul(dy, bigint.ModInv(dx, bigint.P))

	x3 := bigint.ModSub(bigint.ModSub(bigint.ModMul(lambda, lambda), p.X, bigint.P), q.X, bigint.P)
	y3 := bigint.ModSub(bigint.ModMul(lambda, bigint.ModSub(p.X, x3, bigint.P)), p.Y, bigint.P)
	return Affine{X: x3, Y: y3}
}
