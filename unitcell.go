/*
 * unitcell.go, part of emsym.
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

//UnitCell is the asymmetric unit of a group on the sphere: the region of directions
//such that every direction is equivalent, under the group, to exactly one inside it.
type UnitCell struct {
	Group Group
	//Unit plane normals, pointing inwards. A direction is in the cell if its
	//dot product with all of them is non-negative. nil for C1, where every
	//direction is in the cell.
	Planes *v3.Matrix
	//The corners of the cell: each edge direction scaled by Radius and translated
	//by Center+Offset. nil for C1.
	Edges  *v3.Matrix
	Radius float64
	Center r3.Vec
	Offset r3.Vec
	dirs   []r3.Vec
}

//NewUnitCell returns the unit cell of g for a sphere of the given circumscribed radius
//around center. offset, if not nil, is added to center for the edges. It returns a
//critical Error for invalid groups and for radii that are not positive.
//
//For Cn the cell is the wedge between the planes at +-pi/n from the x axis. Dn adds the
//z>=0 plane, with the wedge around x for DihedralX and around y for DihedralY. For the
//polyhedral groups the cell is the spherical triangle between two neighbouring
//primary axes (3-fold for T, 4-fold for O, 5-fold for I) and the 3-fold axis between
//them, and the edges are given in that order.
func NewUnitCell(g Group, radius float64, center r3.Vec, offset *r3.Vec) (*UnitCell, error) {
	if !(radius > 0) {
		return nil, Error{fmt.Sprintf("%s: got %g", ErrInvalidRadius, radius), []string{"NewUnitCell"}, true}
	}
	list, err := Matrices(g)
	if err != nil {
		return nil, errDecorate(err, "NewUnitCell")
	}
	planes, dirs, err := cellGeometry(g, list)
	if err != nil {
		return nil, errDecorate(err, "NewUnitCell")
	}
	u := &UnitCell{Group: g, Radius: radius, Center: center, dirs: dirs}
	if offset != nil {
		u.Offset = *offset
	}
	if len(planes) == 0 {
		return u, nil
	}
	u.Planes = v3.FromVecs(planes...)
	u.Edges = v3.FromVecs(dirs...)
	u.Edges.Scale(radius, u.Edges.Dense)
	u.Edges.AddVec(u.Edges, v3.FromVecs(r3.Add(u.Center, u.Offset)))
	return u, nil
}

//Directions returns the unit edge directions of the cell, without scaling or translation.
func (u *UnitCell) Directions() []r3.Vec {
	ret := make([]r3.Vec, len(u.dirs))
	copy(ret, u.dirs)
	return ret
}

//Normals returns the plane normals of the cell.
func (u *UnitCell) Normals() []r3.Vec {
	if u.Planes == nil {
		return nil
	}
	return u.Planes.Vecs()
}

//Contains returns true if the direction dir (not necessarily normalized) is inside the
//cell, allowing dot products down to -tol.
func (u *UnitCell) Contains(dir r3.Vec, tol float64) bool {
	return inside(u.Normals(), dir, tol)
}

func inside(planes []r3.Vec, dir r3.Vec, tol float64) bool {
	for _, p := range planes {
		//NaN directions are never inside.
		if !(r3.Dot(p, dir) >= -tol) {
			return false
		}
	}
	return true
}

//cellGeometry returns the inward plane normals and the unit edge directions of the
//unit cell of g, whose rotations are list.
func cellGeometry(g Group, list []v3.Transform) (planes, edges []r3.Vec, err error) {
	z := r3.Vec{Z: 1}
	switch g.Sym.Family() {
	case FamilyCyclic:
		planes, edges = wedge(g.N, 0)
		return planes, edges, nil
	case FamilyDihedral:
		phi0 := 0.0
		if g.Sym == DihedralY {
			phi0 = math.Pi / 2
		}
		planes, edges = wedge(g.N, phi0)
		return append(planes, z), append(edges, z), nil
	}
	v1, v2, c, err := polyhedralTriangle(g, list)
	if err != nil {
		return nil, nil, errDecorate(err, "cellGeometry")
	}
	planes = []r3.Vec{
		inward(r3.Cross(v1, v2), c),
		inward(r3.Cross(v2, c), v1),
		inward(r3.Cross(c, v1), v2),
	}
	return planes, []r3.Vec{v1, v2, c}, nil
}

//wedge returns the two planes and edges bounding the sector of angle 2pi/n centered
//at the azimuth phi0 in the xy plane. It returns nil slices for n=1.
func wedge(n int, phi0 float64) (planes, edges []r3.Vec) {
	if n < 2 {
		return nil, nil
	}
	a := math.Pi / float64(n)
	s1, c1 := math.Sincos(phi0 + a)
	s2, c2 := math.Sincos(phi0 - a)
	planes = []r3.Vec{{X: s1, Y: -c1}, {X: -s2, Y: c2}}
	edges = []r3.Vec{{X: c1, Y: s1}, {X: c2, Y: s2}}
	return planes, edges
}

//inward returns n normalized and flipped, if needed, to point to the side of ref.
func inward(n, ref r3.Vec) r3.Vec {
	n = r3.Unit(n)
	if r3.Dot(n, ref) < 0 {
		return r3.Scale(-1, n)
	}
	return n
}

//polyhedralTriangle finds the corners of the unit cell of a polyhedral group:
//v1 is the lexicographically largest (by z, y, x) primary axis, v2 the closest
//primary axis to v1 among those equivalent to it, and c the face (3-fold) axis
//closest to the midpoint of v1 and v2, on the side that makes v1,v2,c right-handed.
func polyhedralTriangle(g Group, list []v3.Transform) (v1, v2, c r3.Vec, err error) {
	primary := 5
	switch g.Sym.Family() {
	case FamilyTetrahedral:
		primary = 3
	case FamilyOctahedral:
		primary = 4
	}
	degenerate := func(what string) error {
		return Error{fmt.Sprintf("%s: no %s for %s", ErrDegenerateAxes, what, g), []string{"polyhedralTriangle"}, true}
	}
	prim := AxesOfFold(list, primary)
	faces := AxesOfFold(list, 3)
	if len(prim) == 0 || len(faces) == 0 {
		return v1, v2, c, degenerate("primary or face axes")
	}
	v1 = lexMax(prim)
	var cands []r3.Vec
	for _, w := range prim {
		if !vecClose(w, v1, AxisTol) && sameOrbit(list, v1, w) {
			cands = append(cands, w)
		}
	}
	if len(cands) == 0 {
		return v1, v2, c, degenerate("second primary axis")
	}
	v2 = lexMax(nearest(cands, v1))
	cands = nil
	for _, w := range faces {
		if !vecClose(w, v1, AxisTol) && !vecClose(w, v2, AxisTol) {
			cands = append(cands, w)
		}
	}
	if len(cands) == 0 {
		return v1, v2, c, degenerate("face axis")
	}
	normal := r3.Cross(v1, v2)
	var sided []r3.Vec
	for _, w := range nearest(cands, r3.Unit(r3.Add(v1, v2))) {
		if r3.Dot(normal, w) > 0 {
			sided = append(sided, w)
		}
	}
	if len(sided) == 0 {
		return v1, v2, c, degenerate("face axis")
	}
	return v1, v2, lexMax(sided), nil
}
