package vmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a rotation quaternion, Real is the scalar part and Imag/Jmag/Kmag map to X/Y/Z
// Arithmetic is delegated to gonum's quat.Number
type Quat quat.Number

// slerpLinearThreshold is the dot product above which slerp degrades to normalized lerp
const slerpLinearThreshold = 0.9995

func QIdentity() Quat {
	return Quat{Real: 1}
}

// QAxisAngle returns the rotation of deg degrees about axis (right-handed)
// Zero axis yields identity
func QAxisAngle(axis Vec3F, deg float64) Quat {
	n := V3FNormalize(axis)
	if n == (Vec3F{}) {
		return QIdentity()
	}
	half := DegToRad(deg) / 2
	s := math.Sin(half)
	return Quat{
		Real: math.Cos(half),
		Imag: n.X * s,
		Jmag: n.Y * s,
		Kmag: n.Z * s,
	}
}

// QMul composes rotations: the result applies b first, then a
func QMul(a, b Quat) Quat {
	return Quat(quat.Mul(quat.Number(a), quat.Number(b)))
}

func QConj(q Quat) Quat {
	return Quat(quat.Conj(quat.Number(q)))
}

func QNeg(q Quat) Quat {
	return Quat(quat.Scale(-1, quat.Number(q)))
}

func QDot(a, b Quat) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func QMag(q Quat) float64 {
	return quat.Abs(quat.Number(q))
}

// QNormalize scales q to unit length, zero quaternion yields identity
func QNormalize(q Quat) Quat {
	mag := QMag(q)
	if mag == 0 {
		return QIdentity()
	}
	return Quat(quat.Scale(1/mag, quat.Number(q)))
}

// QSlerp interpolates from a to b along the shorter great arc, t in [0,1]
func QSlerp(a, b Quat, t float64) Quat {
	d := QDot(a, b)
	if d < 0 {
		b = QNeg(b)
		d = -d
	}

	qa, qb := quat.Number(a), quat.Number(b)
	if d > slerpLinearThreshold {
		mixed := quat.Add(quat.Scale(1-t, qa), quat.Scale(t, qb))
		return QNormalize(Quat(mixed))
	}

	theta0 := math.Acos(d)
	sin0 := math.Sin(theta0)
	theta := theta0 * t
	s0 := math.Cos(theta) - d*math.Sin(theta)/sin0
	s1 := math.Sin(theta) / sin0
	return Quat(quat.Add(quat.Scale(s0, qa), quat.Scale(s1, qb)))
}

// QRotate applies q to v as q·v·q*
func QRotate(q Quat, v Vec3F) Vec3F {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	n := quat.Number(q)
	r := quat.Mul(quat.Mul(n, p), quat.Conj(n))
	return Vec3F{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// QApproxEqual reports whether a and b describe the same orientation within tol per component
// q and -q are the same rotation
func QApproxEqual(a, b Quat, tol float64) bool {
	return qMaxDiff(a, b) <= tol || qMaxDiff(a, QNeg(b)) <= tol
}

// QAngleDeg returns the angle of the rotation taking a to b, in [0, 180]
func QAngleDeg(a, b Quat) float64 {
	d := math.Abs(QDot(QNormalize(a), QNormalize(b)))
	if d > 1 {
		d = 1
	}
	return RadToDeg(2 * math.Acos(d))
}

func qMaxDiff(a, b Quat) float64 {
	m := math.Abs(a.Real - b.Real)
	m = math.Max(m, math.Abs(a.Imag-b.Imag))
	m = math.Max(m, math.Abs(a.Jmag-b.Jmag))
	return math.Max(m, math.Abs(a.Kmag-b.Kmag))
}
