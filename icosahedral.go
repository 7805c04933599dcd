/*
 * icosahedral.go, part of emsym.
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
	"gonum.org/v1/gonum/spatial/r3"
)

//Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

//closureTol is the tolerance to consider two generated rotations the same element.
const closureTol = 1e-6

//IcosahedronVertices returns the 12 vertices of the regular icosahedron with
//edge 2 in the 222 setting: the cyclic permutations of (0, ±1, ±Phi).
func IcosahedronVertices() []r3.Vec {
	ret := make([]r3.Vec, 0, 12)
	for _, s1 := range []float64{1, -1} {
		for _, s2 := range []float64{1, -1} {
			ret = append(ret,
				r3.Vec{X: 0, Y: s1, Z: s2 * Phi},
				r3.Vec{X: s1, Y: s2 * Phi, Z: 0},
				r3.Vec{X: s2 * Phi, Y: 0, Z: s1})
		}
	}
	return ret
}

//icosahedral222 builds the 60 rotations of the icosahedron in the 222 setting
//from a 5-fold about the (0,1,Phi) vertex and the 2-fold along z.
func icosahedral222() []v3.Transform {
	g5 := v3.RotationAbout(IcosahedronVertices()[0], 2*math.Pi/5)
	g2 := v3.AxisFlip(2)
	return closure(g5, g2)
}

//closure returns the group generated by gens. Starting from the identity, each
//element already found is premultiplied by every generator, in order, and the
//products not yet in the list are appended. The resulting order is deterministic.
func closure(gens ...v3.Transform) []v3.Transform {
	ret := []v3.Transform{v3.Identity()}
	for i := 0; i < len(ret); i++ {
		for _, g := range gens {
			m := g.Mul(ret[i])
			if indexOf(ret, m, closureTol) < 0 {
				ret = append(ret, m)
			}
		}
	}
	return ret
}

//indexOf returns the index of the first element of list equal to m within tol, or -1.
func indexOf(list []v3.Transform, m v3.Transform, tol float64) int {
	for i, v := range list {
		if v.EqualWithin(m, tol) {
			return i
		}
	}
	return -1
}

var (
	halfTurnX    = v3.AxisFlip(0)
	halfTurnY    = v3.AxisFlip(1)
	quarterTurnZ = v3.NewRotation([9]float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
)

//icosahedralBasis returns the rotation taking the 222 setting to the setting of s.
func icosahedralBasis(s Symmetry) v3.Transform {
	fiveToZ := v3.RotationAbout(r3.Vec{X: 1}, math.Atan(1/Phi))
	threeToZ := v3.RotationAbout(r3.Vec{X: 1}, math.Atan(Phi*Phi))
	switch s {
	case Icosahedral222:
		return v3.Identity()
	case Icosahedral222R:
		return quarterTurnZ
	case Icosahedral2N5:
		return fiveToZ
	case Icosahedral2N5R:
		return halfTurnY.Mul(fiveToZ)
	case IcosahedralN25:
		return quarterTurnZ.Mul(fiveToZ)
	case IcosahedralN25R:
		return halfTurnX.Mul(quarterTurnZ).Mul(fiveToZ)
	case Icosahedral2N3:
		return threeToZ
	case Icosahedral2N3R:
		return halfTurnY.Mul(threeToZ)
	}
	panic(ErrInvalidSymmetry)
}
