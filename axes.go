/*
 * axes.go, part of emsym.
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

package emsym

import (
	"math"

	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

//AxisTol is the absolute tolerance used to decide that two axis directions are the same.
const AxisTol = 1e-3

const (
	maxAxisOrder = 120
	orderTol     = 1e-4
)

//Axis is a symmetry axis of a group: a unit direction and the highest order of the
//rotations of the group about it.
type Axis struct {
	Dir  r3.Vec
	Fold int
}

//RotationAxis returns the unit rotation axis of the rotation block of m, the rotation
//angle in [0, pi] (counterclockwise about the returned axis), and the order of the
//rotation: the smallest k such that m^k is the identity. For the identity, the axis is
//the zero vector, the angle 0 and the order 1. Rotations whose order is larger than
//120 are reported with order 0.
func RotationAxis(m v3.Transform) (r3.Vec, float64, int) {
	c := (m.Trace() - 1) / 2
	c = math.Max(-1, math.Min(1, c))
	angle := math.Acos(c)
	if angle < closureTol {
		return r3.Vec{}, 0, 1
	}
	var axis r3.Vec
	if math.Abs(math.Sin(angle)) > AxisTol {
		axis = r3.Vec{X: m.At(2, 1) - m.At(1, 2), Y: m.At(0, 2) - m.At(2, 0), Z: m.At(1, 0) - m.At(0, 1)}
	} else {
		//close to a half turn, (R+I)/2 is nearly the projector onto the axis.
		//Its largest diagonal element gives the most reliable row.
		best := 0
		for i := 1; i < 3; i++ {
			if m.At(i, i) > m.At(best, best) {
				best = i
			}
		}
		axis = r3.Vec{X: m.At(best, 0), Y: m.At(best, 1), Z: m.At(best, 2)}
		switch best {
		case 0:
			axis.X++
		case 1:
			axis.Y++
		case 2:
			axis.Z++
		}
	}
	return r3.Unit(axis), angle, rotationOrder(angle)
}

func rotationOrder(angle float64) int {
	for k := 1; k <= maxAxisOrder; k++ {
		f := float64(k) * angle / (2 * math.Pi)
		if math.Abs(f-math.Round(f)) < orderTol {
			return k
		}
	}
	return 0
}

//SymmetryAxes returns one Axis per rotation axis (as a line, so one of the two
//directions) of the rotations in list, in the order they are first found. The fold of
//each axis is the highest order among the rotations about it.
func SymmetryAxes(list []v3.Transform) []Axis {
	var ret []Axis
	for _, m := range list {
		dir, _, order := RotationAxis(m)
		if order == 1 {
			continue
		}
		found := false
		for i, a := range ret {
			if vecClose(a.Dir, dir, AxisTol) || vecClose(a.Dir, r3.Scale(-1, dir), AxisTol) {
				if order > a.Fold {
					ret[i].Fold = order
				}
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, Axis{Dir: dir, Fold: order})
		}
	}
	return ret
}

//AxesOfFold returns both directions of every axis of exactly the given fold in the
//group list. A 2-fold that is also a 4-fold axis is only returned for fold 4.
func AxesOfFold(list []v3.Transform, fold int) []r3.Vec {
	var ret []r3.Vec
	for _, a := range SymmetryAxes(list) {
		if a.Fold == fold {
			ret = append(ret, a.Dir, r3.Scale(-1, a.Dir))
		}
	}
	return ret
}

func vecClose(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol) && scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

//lexGreater compares a and b by z, then y, then x, treating coordinates within tol as equal.
func lexGreater(a, b r3.Vec, tol float64) bool {
	for _, p := range [][2]float64{{a.Z, b.Z}, {a.Y, b.Y}, {a.X, b.X}} {
		if !scalar.EqualWithinAbs(p[0], p[1], tol) {
			return p[0] > p[1]
		}
	}
	return false
}

//lexMax returns the lexGreater-largest vector of vecs, the first one on ties.
func lexMax(vecs []r3.Vec) r3.Vec {
	best := vecs[0]
	for _, v := range vecs[1:] {
		if lexGreater(v, best, AxisTol) {
			best = v
		}
	}
	return best
}

//sameOrbit returns true if some rotation in list takes a to b.
func sameOrbit(list []v3.Transform, a, b r3.Vec) bool {
	for _, m := range list {
		if vecClose(m.Rotate(a), b, AxisTol) {
			return true
		}
	}
	return false
}

//nearest returns the vectors of cands whose dot product with ref is within AxisTol of the largest one.
func nearest(cands []r3.Vec, ref r3.Vec) []r3.Vec {
	best := math.Inf(-1)
	for _, v := range cands {
		best = math.Max(best, r3.Dot(v, ref))
	}
	var ret []r3.Vec
	for _, v := range cands {
		if r3.Dot(v, ref) > best-AxisTol {
			ret = append(ret, v)
		}
	}
	return ret
}
