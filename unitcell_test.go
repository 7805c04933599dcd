/*
 * unitcell_test.go, part of emsym.
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
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnitCellCyclic(Te *testing.T) {
	u, err := NewUnitCell(Group{Cyclic, 7}, 1, r3.Vec{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	want := []r3.Vec{
		{X: math.Cos(math.Pi / 7), Y: math.Sin(math.Pi / 7)},
		{X: math.Cos(-math.Pi / 7), Y: math.Sin(-math.Pi / 7)},
	}
	edges := u.Edges.Vecs()
	if len(edges) != 2 || !vecEq(edges[0], want[0], 1e-3) || !vecEq(edges[1], want[1], 1e-3) {
		Te.Errorf("C7 edges: %v", u.Edges.Vecs())
	}
	if len(u.Normals()) != 2 {
		Te.Errorf("C7 should have 2 planes: %v", u.Planes)
	}
	if !u.Contains(r3.Vec{X: 1}, 0) || u.Contains(r3.Vec{Y: 1}, 1e-3) || u.Contains(r3.Vec{X: -1}, 1e-3) {
		Te.Errorf("wrong C7 membership")
	}
	//scaled and translated
	off := r3.Vec{X: 1}
	u, err = NewUnitCell(Group{Cyclic, 7}, 2, r3.Vec{X: 1, Y: 2, Z: 3}, &off)
	if err != nil {
		Te.Fatal(err)
	}
	for i, w := range want {
		shifted := r3.Add(r3.Vec{X: 2, Y: 2, Z: 3}, r3.Scale(2, w))
		if !vecEq(u.Edges.Vec(i), shifted, 1e-9) || !vecEq(u.Directions()[i], w, 1e-9) {
			Te.Errorf("translated C7 edge %d: %v, direction %v", i, u.Edges.Vec(i), u.Directions()[i])
		}
	}
	c1, err := NewUnitCell(Group{Cyclic, 1}, 1, r3.Vec{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if c1.Planes != nil || c1.Edges != nil || !c1.Contains(r3.Vec{Z: -1}, 0) {
		Te.Errorf("C1 has no boundary, everything is inside")
	}
}

func TestUnitCellDihedral(Te *testing.T) {
	z := r3.Vec{Z: 1}
	d1, err := NewUnitCell(Group{DihedralX, 1}, 1, r3.Vec{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if n := d1.Normals(); len(n) != 1 || !vecEq(n[0], z, 1e-12) {
		Te.Errorf("D1 should only have the z plane: %v", n)
	}
	for _, s := range []Symmetry{DihedralX, DihedralY} {
		u, err := NewUnitCell(Group{s, 4}, 1, r3.Vec{}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		n := u.Normals()
		if len(n) != 3 || !vecEq(n[2], z, 1e-12) {
			Te.Errorf("%s: the last plane should be z: %v", s, n)
		}
	}
	dy, _ := NewUnitCell(Group{DihedralY, 3}, 1, r3.Vec{}, nil)
	if !dy.Contains(r3.Vec{Y: 1, Z: 0.1}, 0) || dy.Contains(r3.Vec{X: 1, Z: 0.1}, 1e-3) {
		Te.Errorf("the d3y cell should be centered on y")
	}
}

func TestUnitCellPolyhedral(Te *testing.T) {
	table := []struct {
		sym    Symmetry
		edges  []r3.Vec
		planes []r3.Vec
	}{
		{Icosahedral222,
			[]r3.Vec{{Y: 0.5257, Z: 0.8507}, {Y: -0.5257, Z: 0.8507}, {X: 0.3568, Z: 0.9342}},
			[]r3.Vec{{X: 1}, {X: -0.809, Y: 0.5, Z: 0.309}, {X: -0.809, Y: -0.5, Z: 0.309}}},
		{Octahedral,
			[]r3.Vec{{Z: 1}, {Y: 1}, {X: -0.5774, Y: 0.5774, Z: 0.5774}},
			[]r3.Vec{{X: -1}, {X: 0.7071, Z: 0.7071}, {X: 0.7071, Y: 0.7071}}},
		{Tetrahedral222,
			[]r3.Vec{{X: 0.5774, Y: 0.5774, Z: 0.5774}, {X: -0.5774, Y: -0.5774, Z: 0.5774}, {X: 0.5774, Y: -0.5774, Z: 0.5774}},
			[]r3.Vec{{X: 0.7071, Y: -0.7071}, {Y: 0.7071, Z: 0.7071}, {X: -0.7071, Z: 0.7071}}},
		{Icosahedral2N5,
			[]r3.Vec{{Z: 1}, {X: 0.5257, Y: 0.7236, Z: 0.4472}, {Y: 0.6071, Z: 0.7947}},
			nil},
	}
	for _, test := range table {
		u, err := NewUnitCell(Group{Sym: test.sym}, 1, r3.Vec{}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		for i, e := range u.Edges.Vecs() {
			if !vecEq(e, test.edges[i], 1e-3) {
				Te.Errorf("%s: edge %d is %v instead of %v", test.sym, i, e, test.edges[i])
			}
		}
		for i, p := range test.planes {
			if got := u.Normals()[i]; !vecEq(got, p, 1e-3) {
				Te.Errorf("%s: plane %d is %v instead of %v", test.sym, i, got, p)
			}
		}
	}
	//The corners of every polyhedral cell lie on its boundary.
	for _, s := range polyhedral {
		u, err := NewUnitCell(Group{Sym: s}, 3, r3.Vec{}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		for _, n := range u.Normals() {
			if math.Abs(r3.Norm(n)-1) > 1e-12 {
				Te.Errorf("%s: non unit normal %v", s, n)
			}
		}
		for i, d := range u.Directions() {
			if !u.Contains(d, 1e-9) {
				Te.Errorf("%s: corner %d is outside the cell", s, i)
			}
			if math.Abs(r3.Norm(u.Edges.Vec(i))-3) > 1e-9 {
				Te.Errorf("%s: edge %d not scaled to the radius", s, i)
			}
		}
	}
}

//Every direction must be taken inside the cell by exactly one element of the group.
func TestUnitCellCoverage(Te *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, g := range testGroups() {
		u, err := NewUnitCell(g, 1, r3.Vec{}, nil)
		if err != nil {
			Te.Fatal(err)
		}
		list := mustMatrices(Te, g)
		for i := 0; i < 300; i++ {
			d := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
			count := 0
			for _, m := range list {
				if u.Contains(m.Rotate(d), -1e-9) {
					count++
				}
			}
			if count != 1 {
				Te.Fatalf("%s: %d copies of %v inside the cell", g, count, d)
			}
		}
	}
}

func TestUnitCellErrors(Te *testing.T) {
	for _, r := range []float64{0, -1, math.NaN()} {
		if _, err := NewUnitCell(Group{Cyclic, 3}, r, r3.Vec{}, nil); !IsConfigError(err) {
			Te.Errorf("radius %g should be a configuration error, got %v", r, err)
		}
	}
	if _, err := NewUnitCell(Group{DihedralX, 0}, 1, r3.Vec{}, nil); !IsConfigError(err) {
		Te.Errorf("D0 should be a configuration error, got %v", err)
	}
	//n is ignored for the polyhedral groups.
	if _, err := NewUnitCell(Group{Octahedral, -5}, 1, r3.Vec{}, nil); err != nil {
		Te.Errorf("O with an irrelevant order: %v", err)
	}
}
