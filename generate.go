/*
 * generate.go, part of emsym.
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
	"fmt"
	"math"

	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrices returns the ordered list of rotations of the group g. Element 0 is always
//the identity, and the order of the list is stable: the unit cell and the
//convention conversion rely on it. All the transforms have zero translation.
//It returns a critical Error if g is not a valid group.
func Matrices(g Group) ([]v3.Transform, error) {
	if err := g.Validate(); err != nil {
		return nil, errDecorate(err, "Matrices")
	}
	switch g.Sym {
	case Cyclic:
		return cyclicMatrices(g.N), nil
	case DihedralX:
		return dihedralMatrices(g.N, v3.AxisFlip(0)), nil
	case DihedralY:
		return dihedralMatrices(g.N, v3.AxisFlip(1)), nil
	case Tetrahedral222:
		return fromTable(tetrahedral222Table[:]), nil
	case TetrahedralZ3:
		return conjugate(fromTable(tetrahedral222Table[:]), tz3Basis()), nil
	case TetrahedralZ3R:
		return conjugate(fromTable(tetrahedral222Table[:]), tz3rBasis()), nil
	case Octahedral:
		return fromTable(octahedralTable[:]), nil
	case Icosahedral222, Icosahedral222R, IcosahedralN25, IcosahedralN25R,
		Icosahedral2N3, Icosahedral2N3R, Icosahedral2N5, Icosahedral2N5R:
		return conjugate(icosahedral222(), icosahedralBasis(g.Sym)), nil
	}
	//Validate already rejects anything else, this is only reached if a new
	//Symmetry is added without its generator.
	return nil, Error{fmt.Sprintf("%s: no generator for %s", ErrInvalidSymmetry, g), []string{"Matrices"}, true}
}

//Recenter returns a copy of list where each rotation acts about center
//instead of about the origin.
func Recenter(list []v3.Transform, center r3.Vec) []v3.Transform {
	ret := make([]v3.Transform, len(list))
	for i, m := range list {
		ret[i] = m.Recenter(center)
	}
	return ret
}

//rotations of 2*pi*k/n around z, k=0..n-1.
func cyclicMatrices(n int) []v3.Transform {
	ret := make([]v3.Transform, n)
	for k := range ret {
		ret[k] = v3.RotationAroundZ(2 * math.Pi * float64(k) / float64(n))
	}
	return ret
}

//dihedralMatrices returns the n cyclic rotations followed by the same rotations
//premultiplied by flip, a 180 degree rotation about an axis in the xy plane.
func dihedralMatrices(n int, flip v3.Transform) []v3.Transform {
	c := cyclicMatrices(n)
	ret := make([]v3.Transform, 0, 2*n)
	ret = append(ret, c...)
	for _, m := range c {
		ret = append(ret, flip.Mul(m))
	}
	return ret
}
