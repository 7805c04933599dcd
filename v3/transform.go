/*
 * transform.go, part of emsym.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Transform is a 4x4 homogeneous rigid transform stored row-major.
//The last row is always [0 0 0 1]. Transform is a value: copying it
//copies the matrix.
type Transform [16]float64

const lastRowTol = 1e-6

//Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

//NewTransform builds a transform from 16 row-major values, or from 12, in which case
//the [0 0 0 1] last row is implied. A given last row must be [0 0 0 1] within lastRowTol.
func NewTransform(data []float64) (Transform, error) {
	var t Transform
	switch len(data) {
	case 16:
		for i, v := range []float64{0, 0, 0, 1} {
			if !scalar.EqualWithinAbs(data[12+i], v, lastRowTol) {
				return t, Error{fmt.Sprintf("The last row of a rigid transform must be [0 0 0 1], got %v", data[12:]), []string{"NewTransform"}, true}
			}
		}
		copy(t[:], data)
	case 12:
		copy(t[:12], data)
	default:
		return t, Error{fmt.Sprintf("A transform needs 12 or 16 values, got %d", len(data)), []string{"NewTransform"}, true}
	}
	t[12], t[13], t[14], t[15] = 0, 0, 0, 1
	return t, nil
}

//NewRotation returns a transform with the given row-major 3x3 rotation block and no translation.
func NewRotation(rot [9]float64) Transform {
	return Transform{
		rot[0], rot[1], rot[2], 0,
		rot[3], rot[4], rot[5], 0,
		rot[6], rot[7], rot[8], 0,
		0, 0, 0, 1}
}

//RotationAbout returns the transform that rotates by angle radians (counterclockwise when
//looking against the axis) around axis. The axis doesn't need to be normalized, but it
//can't be the zero vector.
func RotationAbout(axis r3.Vec, angle float64) Transform {
	n := r3.Norm(axis)
	if n <= appzero {
		panic(ErrZeroVector)
	}
	a := r3.Scale(1/n, axis)
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	return NewRotation([9]float64{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c})
}

//RotationAroundZ returns the transform rotating gamma radians around the z axis.
//For gamma=0 the result is exactly the identity.
func RotationAroundZ(gamma float64) Transform {
	s := math.Sin(gamma)
	c := math.Cos(gamma)
	return NewRotation([9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1})
}

//Reflection returns the mirror transform across the plane through the
//origin with the given normal (Householder, I-2nn^T). Its determinant is -1.
func Reflection(normal r3.Vec) Transform {
	n := r3.Norm(normal)
	if n <= appzero {
		panic(ErrZeroVector)
	}
	u := r3.Scale(1/n, normal)
	return NewRotation([9]float64{
		1 - 2*u.X*u.X, -2 * u.X * u.Y, -2 * u.X * u.Z,
		-2 * u.Y * u.X, 1 - 2*u.Y*u.Y, -2 * u.Y * u.Z,
		-2 * u.Z * u.X, -2 * u.Z * u.Y, 1 - 2*u.Z*u.Z})
}

//AxisFlip returns the 180 degree rotation about the coordinate axis keep (0 for x,
//1 for y, 2 for z). It is built as the product of the two reflections across the
//planes normal to the other two axes, so the result is a proper rotation.
func AxisFlip(keep int) Transform {
	if keep < 0 || keep > 2 {
		panic(ErrIndexOutOfRange)
	}
	var normals []r3.Vec
	for i, v := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		if i != keep {
			normals = append(normals, v)
		}
	}
	return Reflection(normals[0]).Mul(Reflection(normals[1]))
}

//mat.Matrix implementation.

//Dims always returns 4,4
func (t Transform) Dims() (int, int) { return 4, 4 }

//At returns the element at row i, column j.
func (t Transform) At(i, j int) float64 {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		panic(ErrIndexOutOfRange)
	}
	return t[4*i+j]
}

//T returns the transpose of t as a mat.Matrix (the transpose is generally not rigid).
func (t Transform) T() mat.Matrix { return mat.Transpose{Matrix: t} }

//Mul returns the product t·b. The receiver is applied last.
func (t Transform) Mul(b Transform) Transform {
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += t[4*i+k] * b[4*k+j]
			}
			r[4*i+j] = s
		}
	}
	return r
}

//RigidInverse returns the inverse of t assuming the rotation block is
//orthonormal: R^T, -R^T·t.
func (t Transform) RigidInverse() Transform {
	r := NewRotation([9]float64{
		t[0], t[4], t[8],
		t[1], t[5], t[9],
		t[2], t[6], t[10]})
	tr := r.Rotate(t.Translation())
	r[3], r[7], r[11] = -tr.X, -tr.Y, -tr.Z
	return r
}

//Rotation returns a copy of t with the translation set to zero.
func (t Transform) Rotation() Transform {
	t[3], t[7], t[11] = 0, 0, 0
	return t
}

//RotationBlock returns the 3x3 rotation block as a gonum Dense.
func (t Transform) RotationBlock() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t[0], t[1], t[2],
		t[4], t[5], t[6],
		t[8], t[9], t[10]})
}

//Translation returns the translation column of t.
func (t Transform) Translation() r3.Vec {
	return r3.Vec{X: t[3], Y: t[7], Z: t[11]}
}

//WithTranslation returns a copy of t with the translation column replaced by v.
func (t Transform) WithTranslation(v r3.Vec) Transform {
	t[3], t[7], t[11] = v.X, v.Y, v.Z
	return t
}

//Column returns the jth column of the rotation block, i.e. the image of the jth
//coordinate axis.
func (t Transform) Column(j int) r3.Vec {
	if j < 0 || j > 2 {
		panic(ErrIndexOutOfRange)
	}
	return r3.Vec{X: t[j], Y: t[4+j], Z: t[8+j]}
}

//Rotate applies only the rotation block of t to v.
func (t Transform) Rotate(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: t[0]*v.X + t[1]*v.Y + t[2]*v.Z,
		Y: t[4]*v.X + t[5]*v.Y + t[6]*v.Z,
		Z: t[8]*v.X + t[9]*v.Y + t[10]*v.Z,
	}
}

//Apply applies the full transform to the point v.
func (t Transform) Apply(v r3.Vec) r3.Vec {
	return r3.Add(t.Rotate(v), t.Translation())
}

//Det returns the determinant of the rotation block.
func (t Transform) Det() float64 {
	return mat.Det(t.RotationBlock())
}

//Trace returns the trace of the rotation block.
func (t Transform) Trace() float64 {
	return t[0] + t[5] + t[10]
}

//IsProper returns true if the rotation block is orthonormal with determinant +1,
//within tol.
func (t Transform) IsProper(tol float64) bool {
	if !scalar.EqualWithinAbs(t.Det(), 1, tol) {
		return false
	}
	var rrt mat.Dense
	rot := t.RotationBlock()
	rrt.Mul(rot, rot.T())
	return mat.EqualApprox(&rrt, mat.NewDiagDense(3, []float64{1, 1, 1}), tol)
}

//EqualWithin returns true if every element of t and b differ by at most tol.
func (t Transform) EqualWithin(b Transform, tol float64) bool {
	for i := range t {
		if !scalar.EqualWithinAbs(t[i], b[i], tol) {
			return false
		}
	}
	return true
}

//ChangeBasis returns c·t·c^-1, the transform t expressed in the coordinate system
//that c maps into. c must be rigid.
func (t Transform) ChangeBasis(c Transform) Transform {
	return c.Mul(t).Mul(c.RigidInverse())
}

//Recenter returns t acting about the point center instead of the origin:
//same rotation, translation center-R·center.
func (t Transform) Recenter(center r3.Vec) Transform {
	return t.WithTranslation(r3.Sub(center, t.Rotate(center)))
}

//String returns a gonum-formatted representation of t.
func (t Transform) String() string {
	return fmt.Sprintf("%.4v", mat.Formatted(t, mat.Prefix(" "), mat.Squeeze()))
}
