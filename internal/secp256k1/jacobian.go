package secp256k1

import "github.com/not-for-prod/vanityeth/internal/bigint"

// JacobianDouble doubles a Jacobian point using the a=0 simplification:
// XX=X^2; YY=Y^2; YYYY=YY^2; S=2((X+YY)^2-XX-YYYY); M=3*XX; T=M^2-2S;
// X3=T; Y3=M(S-T)-8*YYYY; Z3=2*Y*Z.
func JacobianDouble(p Jacobian) Jacobian {
	if p.IsInfinity() {
		return p
	}
	xx := bigint.ModMul(p.X, p.X)
	yy := bigint.ModMul(p.Y, p.Y)
	yyyy := bigint.ModMul(yy, yy)

	xPlusYY := bigint.ModAdd(p.X, yy, bigint.P)
	s := bigint.ModAdd(bigint.ModSub(bigint.ModSub(bigint.ModMul(xPlusYY, xPlusYY), xx, bigint.P), yyyy, bigint.P),
		bigint.ModSub(bigint.ModSub(bigint.ModMul(xPlusYY, xPlusYY), xx, bigint.P), yyyy, bigint.P), bigint.P)

	m := bigint.ModAdd(bigint.ModAdd(xx, xx, bigint.P), xx, bigint.P)
	t := bigint.ModSub(bigint.ModMul(m, m), bigint.ModAdd(s, s, bigint.P), bigint.P)

	x3 := t
	eightYYYY := bigint.ModAdd(bigint.ModAdd(yyyy, yyyy, bigint.P), bigint.ModAdd(yyyy, yyyy, bigint.P), bigint.P)
	eightYYYY = bigint.ModAdd(eightYYYY, eightYYYY, bigint.P)
	y3 := bigint.ModSub(bigint.ModMul(m, bigint.ModSub(s, t, bigint.P)), eightYYYY, bigint.P)
	z3 := bigint.ModMul(bigint.ModAdd(p.Y, p.Y, bigint.P), p.Z)

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// MixedAdd adds a Jacobian point p to an affine point q (Z2=1): Z1Z1=Z1^2;
// U2=X2*Z1Z1; S2=Y2*Z1*Z1Z1; H=U2-X1; I=(2H)^2; J=H*I; r=2(S2-Y1);
// V=X1*I; X3=r^2-J-2V; Y3=r(V-X3)-2*Y1*J; Z3=(Z1+H)^2-Z1Z1-HH. Falls back
// to doubling when H=0 and S2=Y1, and to infinity when H=0 and S2=-Y1.
func MixedAdd(p Jacobian, q Affine) Jacobian {
	if p.IsInfinity() {
		return Jacobian{X: q.X, Y: q.Y, Z: bigint.One}
	}
	if q.IsInfinity() {
		return p
	}

	z1z1 := bigint.ModMul(p.Z, p.Z)
	u2 := bigint.ModMul(q.X, z1z1)
	s2 := bigint.ModMul(q.Y, bigint.ModMul(p.Z, z1z1))
	h := bigint.ModSub(u2, p.X, bigint.P)

	if h.IsZero() {
		if bigint.Cmp(s2, p.Y) == 0 {
			return JacobianDouble(p)
		}
		return InfinityJacobian
	}

	hh := bigint.ModMul(h, h)
	i := bigint.ModAdd(hh, hh, bigint.P)
	i = bigint.ModAdd(i, i, bigint.P)
	j := bigint.ModMul(h, i)
	r := bigint.ModSub(s2, p.Y, bigint.P)
	r = bigint.ModAdd(r, r, bigint.P)
	v := bigint.ModMul(p.X, i)

	x3 := bigint.ModSub(bigint.ModSub(bigint.ModMul(r, r), j, bigint.P), bigint.ModAdd(v, v, bigint.P), bigint.P)
	twoY1J := bigint.ModAdd(bigint.ModMul(p.Y, j), bigint.ModMul(p.Y, j), bigint.P)
	y3 := bigint.ModSub(bigint.ModMul(r, bigint.ModSub(v, x3, bigint.P)), twoY1J, bigint.P)

	zPlusH := bigint.ModAdd(p.Z, h, bigint.P)
	z3 := bigint.ModSub(bigint.ModSub(bigint.ModMul(zPlusH, zPlusH), z1z1, bigint.P), hh, bigint.P)

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// ToAffine converts a Jacobian point to affine coordinates via a single
// modular inverse: (x, y) = (X*Z^-2, Y*Z^-3).
func ToAffine(p Jacobian) Affine {
	if p.IsInfinity() {
		return Affine{}
	}
	zInv := bigint.ModInv(p.Z, bigint.P)
	zInv2 := bigint.ModMul(zInv, zInv)
	zInv3 := bigint.ModMul(zInv2, zInv)
	return Affine{
		X: bigint.ModMul(p.X, zInv2),
		Y: bigint.ModMul(p.Y, zInv3),
	}
}
