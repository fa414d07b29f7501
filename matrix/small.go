// SPDX-License-Identifier: MIT

// Package matrix - named-field small vectors (lengths 2, 3 and 4).
//
// Purpose:
//   - Ergonomic x/y/z/w access without index arithmetic or heap storage.
//   - True value types: assignment copies, == compares.
//   - Homogeneous-coordinate helpers on Vec4 (Project, Project2d, Dehomogenize).
//
// Every Vec* converts to and from the generic column vector (Matrix/VecNOf), and
// the generic and named-field paths run through one shared conformance suite.

package matrix

// Vec2 is a 2-element column vector with named fields.
type Vec2[T Element[T]] struct {
	X T `yaml:"x"`
	Y T `yaml:"y"`
}

// Vec3 is a 3-element column vector with named fields.
type Vec3[T Element[T]] struct {
	X T `yaml:"x"`
	Y T `yaml:"y"`
	Z T `yaml:"z"`
}

// Vec4 is a 4-element column vector with named fields, typically homogeneous
// coordinates.
type Vec4[T Element[T]] struct {
	X T `yaml:"x"`
	Y T `yaml:"y"`
	Z T `yaml:"z"`
	W T `yaml:"w"`
}

// ---------- Constructors ----------

// V2 builds a Vec2 from components.
func V2[T Element[T]](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// V3 builds a Vec3 from components.
func V3[T Element[T]](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// V4 builds a Vec4 from components.
func V4[T Element[T]](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

// Vec3FromVec2 extends xy with z.
func Vec3FromVec2[T Element[T]](xy Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: xy.X, Y: xy.Y, Z: z}
}

// Vec4FromVec2 extends xy with z and w.
func Vec4FromVec2[T Element[T]](xy Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{X: xy.X, Y: xy.Y, Z: z, W: w}
}

// Vec4FromVec2Pair joins xy and zw.
func Vec4FromVec2Pair[T Element[T]](xy, zw Vec2[T]) Vec4[T] {
	return Vec4[T]{X: xy.X, Y: xy.Y, Z: zw.X, W: zw.Y}
}

// Vec4FromVec3 extends xyz with w.
func Vec4FromVec3[T Element[T]](xyz Vec3[T], w T) Vec4[T] {
	return Vec4[T]{X: xyz.X, Y: xyz.Y, Z: xyz.Z, W: w}
}

// Vec4FromVec3Zero extends xyz with a zero w (a direction, not a point).
func Vec4FromVec3Zero[T Element[T]](xyz Vec3[T]) Vec4[T] {
	var w T

	return Vec4FromVec3(xyz, w)
}

// ---------- Single-index access ----------

// At returns component y (0 → X, 1 → Y). Out-of-range panics with ErrOutOfRange.
func (v Vec2[T]) At(y int) T {
	switch y {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	indexPanic(opAt, 0, y, 1, 2)
	panic("unreachable")
}

// Set writes component y.
func (v *Vec2[T]) Set(y int, val T) {
	switch y {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		indexPanic(opSet, 0, y, 1, 2)
	}
}

// At returns component y (0 → X, 1 → Y, 2 → Z).
func (v Vec3[T]) At(y int) T {
	switch y {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	indexPanic(opAt, 0, y, 1, 3)
	panic("unreachable")
}

// Set writes component y.
func (v *Vec3[T]) Set(y int, val T) {
	switch y {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		indexPanic(opSet, 0, y, 1, 3)
	}
}

// At returns component y (0 → X, 1 → Y, 2 → Z, 3 → W).
func (v Vec4[T]) At(y int) T {
	switch y {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	indexPanic(opAt, 0, y, 1, 4)
	panic("unreachable")
}

// Set writes component y.
func (v *Vec4[T]) Set(y int, val T) {
	switch y {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	case 3:
		v.W = val
	default:
		indexPanic(opSet, 0, y, 1, 4)
	}
}

// XY returns the first two components.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{X: v.X, Y: v.Y} }

// XYZ returns the first three components without dividing by W.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z} }

// ---------- Additive operators ----------

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{}.Sub(v) }
func (v *Vec2[T]) AddAssign(o Vec2[T])  { *v = v.Add(o) }
func (v *Vec2[T]) SubAssign(o Vec2[T])  { *v = v.Sub(o) }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }
func (v Vec3[T]) Neg() Vec3[T]          { return Vec3[T]{}.Sub(v) }
func (v *Vec3[T]) AddAssign(o Vec3[T])  { *v = v.Add(o) }
func (v *Vec3[T]) SubAssign(o Vec3[T])  { *v = v.Sub(o) }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z), v.W.Add(o.W)}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z), v.W.Sub(o.W)}
}

func (v Vec4[T]) Neg() Vec4[T]         { return Vec4[T]{}.Sub(v) }
func (v *Vec4[T]) AddAssign(o Vec4[T]) { *v = v.Add(o) }
func (v *Vec4[T]) SubAssign(o Vec4[T]) { *v = v.Sub(o) }

// ---------- Generic-path conversions ----------

// Matrix returns v as a generic column vector.
func (v Vec2[T]) Matrix() Vector[T, D2] { return New[T, D1, D2](v.X, v.Y) }

// Matrix returns v as a generic column vector.
func (v Vec3[T]) Matrix() Vector[T, D3] { return New[T, D1, D3](v.X, v.Y, v.Z) }

// Matrix returns v as a generic column vector.
func (v Vec4[T]) Matrix() Vector[T, D4] { return New[T, D1, D4](v.X, v.Y, v.Z, v.W) }

// Transpose returns v as a row vector.
func (v Vec2[T]) Transpose() RowVector[T, D2] { return New[T, D2, D1](v.X, v.Y) }

// Transpose returns v as a row vector.
func (v Vec3[T]) Transpose() RowVector[T, D3] { return New[T, D3, D1](v.X, v.Y, v.Z) }

// Transpose returns v as a row vector.
func (v Vec4[T]) Transpose() RowVector[T, D4] { return New[T, D4, D1](v.X, v.Y, v.Z, v.W) }

// Vec2Of converts a generic column vector into a Vec2.
func Vec2Of[T Element[T]](m Vector[T, D2]) Vec2[T] {
	return Vec2[T]{m.cell(0), m.cell(1)}
}

// Vec3Of converts a generic column vector into a Vec3.
func Vec3Of[T Element[T]](m Vector[T, D3]) Vec3[T] {
	return Vec3[T]{m.cell(0), m.cell(1), m.cell(2)}
}

// Vec4Of converts a generic column vector into a Vec4.
func Vec4Of[T Element[T]](m Vector[T, D4]) Vec4[T] {
	return Vec4[T]{m.cell(0), m.cell(1), m.cell(2), m.cell(3)}
}

// ---------- Multiplicative operators ----------

// ScaleVec2 multiplies each component by s.
func ScaleVec2[P Element[P], T interface {
	Element[T]
	Multiplier[S, P]
}, S any](v Vec2[T], s S) Vec2[P] {
	return Vec2[P]{v.X.Mul(s), v.Y.Mul(s)}
}

// ScaleVec3 multiplies each component by s.
func ScaleVec3[P Element[P], T interface {
	Element[T]
	Multiplier[S, P]
}, S any](v Vec3[T], s S) Vec3[P] {
	return Vec3[P]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// ScaleVec4 multiplies each component by s.
func ScaleVec4[P Element[P], T interface {
	Element[T]
	Multiplier[S, P]
}, S any](v Vec4[T], s S) Vec4[P] {
	return Vec4[P]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s), v.W.Mul(s)}
}

// DivVec2 divides each component by s.
func DivVec2[Q Element[Q], T interface {
	Element[T]
	Divider[S, Q]
}, S any](v Vec2[T], s S) Vec2[Q] {
	return Vec2[Q]{v.X.Div(s), v.Y.Div(s)}
}

// DivVec3 divides each component by s.
func DivVec3[Q Element[Q], T interface {
	Element[T]
	Divider[S, Q]
}, S any](v Vec3[T], s S) Vec3[Q] {
	return Vec3[Q]{v.X.Div(s), v.Y.Div(s), v.Z.Div(s)}
}

// DivVec4 divides each component by s.
func DivVec4[Q Element[Q], T interface {
	Element[T]
	Divider[S, Q]
}, S any](v Vec4[T], s S) Vec4[Q] {
	return Vec4[Q]{v.X.Div(s), v.Y.Div(s), v.Z.Div(s), v.W.Div(s)}
}

// DotVec2 returns a.X·b.X + a.Y·b.Y.
func DotVec2[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vec2[L], b Vec2[R]) P {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

// DotVec3 returns Σ a·b over X, Y, Z.
func DotVec3[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vec3[L], b Vec3[R]) P {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

// DotVec4 returns Σ a·b over X, Y, Z, W.
func DotVec4[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vec4[L], b Vec4[R]) P {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z)).Add(a.W.Mul(b.W))
}

// CrossVec2 returns the scalar cross product a.X·b.Y − a.Y·b.X.
func CrossVec2[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vec2[L], b Vec2[R]) P {
	return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
}

// CrossVec3 returns the cross product a × b.
func CrossVec3[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vec3[L], b Vec3[R]) Vec3[P] {
	x, y, z := cross3[P](a.X, a.Y, a.Z, b.X, b.Y, b.Z)

	return Vec3[P]{x, y, z}
}

// lengthOf squares and sums components in D, then lifts √sum back into T.
func lengthOf[D Real[D], T interface {
	Downcaster[D]
	Lifter[T, D]
}](components ...T) T {
	var sum D
	for _, c := range components {
		d := c.Down()
		sum = sum.Add(d.Mul(d))
	}
	var out T

	return out.Lift(sum.Sqrt())
}

// LengthVec2 returns √(x² + y²), accumulated in D.
func LengthVec2[D Real[D], T interface {
	Element[T]
	Downcaster[D]
	Lifter[T, D]
}](v Vec2[T]) T {
	return lengthOf[D](v.X, v.Y)
}

// LengthVec3 returns √(x² + y² + z²), accumulated in D.
func LengthVec3[D Real[D], T interface {
	Element[T]
	Downcaster[D]
	Lifter[T, D]
}](v Vec3[T]) T {
	return lengthOf[D](v.X, v.Y, v.Z)
}

// LengthVec4 returns √(x² + y² + z² + w²), accumulated in D.
func LengthVec4[D Real[D], T interface {
	Element[T]
	Downcaster[D]
	Lifter[T, D]
}](v Vec4[T]) T {
	return lengthOf[D](v.X, v.Y, v.Z, v.W)
}

// ---------- Homogeneous coordinates ----------

// Project divides every component by W, leaving W at one.
// A zero W follows T's Div semantics (±Inf/NaN for floats).
func Project[T interface {
	Element[T]
	Divider[T, T]
}](v Vec4[T]) Vec4[T] {
	w := v.W

	return Vec4[T]{v.X.Div(w), v.Y.Div(w), v.Z.Div(w), v.W.Div(w)}
}

// Project2d projects by W and then divides by the projected Z:
// the result is (x/z, y/z, 1, 1).
func Project2d[T interface {
	Element[T]
	Divider[T, T]
}](v Vec4[T]) Vec4[T] {
	p := Project(v)
	z := p.Z

	return Vec4[T]{p.X.Div(z), p.Y.Div(z), p.Z.Div(z), p.W}
}

// Dehomogenize converts homogeneous coordinates to a Vec3: (x/w, y/w, z/w).
func Dehomogenize[T interface {
	Element[T]
	Divider[T, T]
}](v Vec4[T]) Vec3[T] {
	return Project(v).XYZ()
}
