/*
 * convert.go, part of emsym.
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

	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//CoordinateSystemTransform returns the rotation R that takes the frame of the origin
//convention to the frame of the target one, so that R·S·R^T is in the target group for
//every S of the origin group. Both groups must belong to the same family and, for
//cyclic and dihedral groups, have the same order. Otherwise a critical Error is returned.
//
//R is found by matching two reference axes of each convention: the primary axis and the
//face axis corners of the unit cell for polyhedral groups, and the main
//axis together with the lexicographically largest 2-fold for dihedral ones.
func CoordinateSystemTransform(origin, target Group) (v3.Transform, error) {
	for _, g := range []Group{origin, target} {
		if err := g.Validate(); err != nil {
			return v3.Identity(), errDecorate(err, "CoordinateSystemTransform")
		}
	}
	if origin.Sym.Family() != target.Sym.Family() {
		return v3.Identity(), Error{fmt.Sprintf("%s: %s is %s, %s is %s", ErrFamilyMismatch, origin, origin.Sym.Family(), target, target.Sym.Family()), []string{"CoordinateSystemTransform"}, true}
	}
	if origin.NeedsN() && origin.N != target.N {
		return v3.Identity(), Error{fmt.Sprintf("%s: %s and %s have different orders", ErrFamilyMismatch, origin, target), []string{"CoordinateSystemTransform"}, true}
	}
	if origin.Sym == target.Sym || origin.Sym == Cyclic {
		return v3.Identity(), nil
	}
	fo, err := referenceFrame(origin)
	if err != nil {
		return v3.Identity(), errDecorate(err, "CoordinateSystemTransform")
	}
	ft, err := referenceFrame(target)
	if err != nil {
		return v3.Identity(), errDecorate(err, "CoordinateSystemTransform")
	}
	return ft.Mul(fo.RigidInverse()), nil
}

//referenceFrame returns the rotation whose columns are the orthonormal frame built
//from the two reference axes of g.
func referenceFrame(g Group) (v3.Transform, error) {
	list, err := Matrices(g)
	if err != nil {
		return v3.Identity(), errDecorate(err, "referenceFrame")
	}
	var a, b r3.Vec
	if g.Sym.Family() == FamilyDihedral {
		a = r3.Vec{Z: 1}
		b, err = dihedralReference(g, list)
	} else {
		a, _, b, err = polyhedralTriangle(g, list)
	}
	if err != nil {
		return v3.Identity(), errDecorate(err, "referenceFrame")
	}
	return frame(a, b), nil
}

//dihedralReference returns the lexicographically largest 2-fold direction
//perpendicular to z among the flipped half of the dihedral list.
func dihedralReference(g Group, list []v3.Transform) (r3.Vec, error) {
	var dirs []r3.Vec
	for _, m := range list[g.N:] {
		dir, _, order := RotationAxis(m)
		if order == 2 && vecClose(r3.Vec{X: dir.X, Y: dir.Y}, dir, AxisTol) {
			dirs = append(dirs, dir, r3.Scale(-1, dir))
		}
	}
	if len(dirs) == 0 {
		return r3.Vec{}, Error{fmt.Sprintf("%s: no 2-fold perpendicular to z for %s", ErrDegenerateAxes, g), []string{"dihedralReference"}, true}
	}
	return lexMax(dirs), nil
}

//frame returns the rotation with columns a, a×b and a×(a×b), all normalized.
func frame(a, b r3.Vec) v3.Transform {
	e1 := r3.Unit(a)
	e2 := r3.Unit(r3.Cross(a, b))
	e3 := r3.Cross(e1, e2)
	return v3.NewRotation([9]float64{
		e1.X, e2.X, e3.X,
		e1.Y, e2.Y, e3.Y,
		e1.Z, e2.Z, e3.Z})
}
