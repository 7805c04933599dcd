/*
 * tables.go, part of emsym.
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

//The rotation group of the tetrahedron with its 2-fold axes along x, y and z:
//the identity, the three 2-folds and the 120/240 degree rotations about the
//(1,1,1), (-1,-1,1), (-1,1,-1) and (1,-1,-1) diagonals, in that order.
//Row-major 3x3 rotation blocks.
var tetrahedral222Table = [12][9]float64{
	{1, 0, 0, 0, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, -1, 0, 0, 0, -1},
	{-1, 0, 0, 0, 1, 0, 0, 0, -1},
	{-1, 0, 0, 0, -1, 0, 0, 0, 1},
	{0, 0, 1, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 0, 1, 1, 0, 0},
	{0, 0, -1, 1, 0, 0, 0, -1, 0},
	{0, 1, 0, 0, 0, -1, -1, 0, 0},
	{0, 0, 1, -1, 0, 0, 0, -1, 0},
	{0, -1, 0, 0, 0, -1, 1, 0, 0},
	{0, 0, -1, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 0, 1, -1, 0, 0},
}

//The rotation group of the cube, 4-fold axes along x, y and z. Each block of
//four is one of the rotations taking a face of the cube to the top (0, 90, 180
//and 270 degrees about x, then 90 and 270 about y) composed with the 0, 90, 180
//and 270 degree rotations about z.
var octahedralTable = [24][9]float64{
	{1, 0, 0, 0, 1, 0, 0, 0, 1},
	{0, -1, 0, 1, 0, 0, 0, 0, 1},
	{-1, 0, 0, 0, -1, 0, 0, 0, 1},
	{0, 1, 0, -1, 0, 0, 0, 0, 1},

	{1, 0, 0, 0, 0, -1, 0, 1, 0},
	{0, -1, 0, 0, 0, -1, 1, 0, 0},
	{-1, 0, 0, 0, 0, -1, 0, -1, 0},
	{0, 1, 0, 0, 0, -1, -1, 0, 0},

	{1, 0, 0, 0, -1, 0, 0, 0, -1},
	{0, -1, 0, -1, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 1, 0, 0, 0, -1},
	{0, 1, 0, 1, 0, 0, 0, 0, -1},

	{1, 0, 0, 0, 0, 1, 0, -1, 0},
	{0, -1, 0, 0, 0, 1, -1, 0, 0},
	{-1, 0, 0, 0, 0, 1, 0, 1, 0},
	{0, 1, 0, 0, 0, 1, 1, 0, 0},

	{0, 0, 1, 0, 1, 0, -1, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 1, 0},
	{0, 0, 1, 0, -1, 0, 1, 0, 0},
	{0, 0, 1, -1, 0, 0, 0, -1, 0},

	{0, 0, -1, 0, 1, 0, 1, 0, 0},
	{0, 0, -1, 1, 0, 0, 0, -1, 0},
	{0, 0, -1, 0, -1, 0, -1, 0, 0},
	{0, 0, -1, -1, 0, 0, 0, 1, 0},
}

func fromTable(table [][9]float64) []v3.Transform {
	ret := make([]v3.Transform, len(table))
	for i, rot := range table {
		ret[i] = v3.NewRotation(rot)
	}
	return ret
}

//conjugate returns basis·m·basis^T for each m in list, the same group seen from
//the frame basis maps into. The order of the list is kept.
func conjugate(list []v3.Transform, basis v3.Transform) []v3.Transform {
	ret := make([]v3.Transform, len(list))
	for i, m := range list {
		ret[i] = m.ChangeBasis(basis)
	}
	//the identity survives the change of basis only up to rounding.
	if len(ret) > 0 {
		ret[0] = v3.Identity()
	}
	return ret
}

//tz3Basis takes the 222 frame to one with the (1,1,1) 3-fold along z and the
//(-1,-1,1) 3-fold in the yz plane, towards -y.
func tz3Basis() v3.Transform {
	tilt := v3.RotationAbout(r3.Vec{X: 1}, -math.Acos(1/math.Sqrt(3)))
	return v3.RotationAroundZ(-math.Pi / 4).Mul(tilt).RigidInverse()
}

//tz3rBasis is tz3Basis followed by a half turn about z.
func tz3rBasis() v3.Transform {
	return v3.AxisFlip(2).Mul(tz3Basis())
}
