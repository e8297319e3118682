package dragon

// Affine describes an integer affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v). Because coefficients are
// integers, only maps that keep lattice points on the lattice can be
// expressed: quarter turns, flips, integer scales, shears and translations.
type Affine struct {
	N0, N1, N2, N3, N4, N5 int
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// RotateLeft is a quarter turn about the origin mapping (x, y) to (−y, x).
//
// This is counter-clockwise in a y-up space, and clockwise on screen, where
// y grows downwards.
var RotateLeft = Affine{0, 1, -1, 0, 0, 0}

// RotateRight is the inverse of [RotateLeft], mapping (x, y) to (y, −x).
var RotateRight = Affine{0, -1, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y int) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() int {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform. The inverse only exists on the lattice
// when the determinant is 1 or −1; otherwise Invert returns false.
func (aff Affine) Invert() (Affine, bool) {
	det := aff.Determinant()
	if det != 1 && det != -1 {
		return Affine{}, false
	}
	// 1/det == det for det ∈ {−1, 1}
	return Affine{
		+det * aff.N3,
		-det * aff.N1,
		-det * aff.N2,
		+det * aff.N0,
		+det * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+det * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}, true
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}
