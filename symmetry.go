/*
 * symmetry.go, part of emsym.
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
	"strconv"
	"strings"
)

//Symmetry identifies a point group family together with the convention
//used to place its axes in the coordinate frame.
type Symmetry int

const (
	Cyclic          Symmetry = iota //n-fold axis along z
	DihedralX                       //n-fold along z, 2-fold along x
	DihedralY                       //n-fold along z, 2-fold along y
	Tetrahedral222                  //2-folds along x, y and z
	TetrahedralZ3                   //3-fold along z, 3-fold in the yz plane along -y
	TetrahedralZ3R                  //3-fold along z, 3-fold in the yz plane along +y
	Octahedral                      //4-folds along x, y and z
	Icosahedral222                  //2-folds along x, y and z, 5-fold in the yz plane
	Icosahedral222R                 //222 rotated 90 degrees about z
	IcosahedralN25                  //2-fold along y, 5-fold along z
	IcosahedralN25R                 //n25 rotated 180 degrees about x
	Icosahedral2N3                  //2-fold along x, 3-fold along z
	Icosahedral2N3R                 //2n3 rotated 180 degrees about y
	Icosahedral2N5                  //2-fold along x, 5-fold along z
	Icosahedral2N5R                 //2n5 rotated 180 degrees about y
	nSymmetries
)

var symNames = [nSymmetries]string{
	Cyclic:          "c",
	DihedralX:       "dx",
	DihedralY:       "dy",
	Tetrahedral222:  "t222",
	TetrahedralZ3:   "tz3",
	TetrahedralZ3R:  "tz3r",
	Octahedral:      "o",
	Icosahedral222:  "i222",
	Icosahedral222R: "i222r",
	IcosahedralN25:  "in25",
	IcosahedralN25R: "in25r",
	Icosahedral2N3:  "i2n3",
	Icosahedral2N3R: "i2n3r",
	Icosahedral2N5:  "i2n5",
	Icosahedral2N5R: "i2n5r",
}

//String returns the short name of the symmetry.
func (s Symmetry) String() string {
	if !s.valid() {
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
	return symNames[s]
}

func (s Symmetry) valid() bool {
	return s >= 0 && s < nSymmetries
}

//Family is the abstract point group a Symmetry belongs to, regardless of convention.
type Family int

const (
	FamilyCyclic Family = iota
	FamilyDihedral
	FamilyTetrahedral
	FamilyOctahedral
	FamilyIcosahedral
)

func (f Family) String() string {
	switch f {
	case FamilyCyclic:
		return "cyclic"
	case FamilyDihedral:
		return "dihedral"
	case FamilyTetrahedral:
		return "tetrahedral"
	case FamilyOctahedral:
		return "octahedral"
	case FamilyIcosahedral:
		return "icosahedral"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

//Family returns the abstract family of s. It panics on an invalid Symmetry, use
//Group.Validate for input that comes from the user.
func (s Symmetry) Family() Family {
	switch s {
	case Cyclic:
		return FamilyCyclic
	case DihedralX, DihedralY:
		return FamilyDihedral
	case Tetrahedral222, TetrahedralZ3, TetrahedralZ3R:
		return FamilyTetrahedral
	case Octahedral:
		return FamilyOctahedral
	case Icosahedral222, Icosahedral222R, IcosahedralN25, IcosahedralN25R,
		Icosahedral2N3, Icosahedral2N3R, Icosahedral2N5, Icosahedral2N5R:
		return FamilyIcosahedral
	}
	panic(ErrInvalidSymmetry)
}

//Convention returns the convention part of the name ("x", "z3r", "2n5"...), or an empty string
//for the families that have only one, and for invalid symmetries.
func (s Symmetry) Convention() string {
	if !s.valid() {
		return ""
	}
	switch s.Family() {
	case FamilyDihedral:
		return strings.TrimPrefix(s.String(), "d")
	case FamilyTetrahedral:
		return strings.TrimPrefix(s.String(), "t")
	case FamilyIcosahedral:
		return strings.TrimPrefix(s.String(), "i")
	}
	return ""
}

//Group is a point group: a symmetry and, for cyclic and dihedral symmetries, the order
//of the main axis. N is ignored for the other families.
type Group struct {
	Sym Symmetry
	N   int
}

//NeedsN returns true if the order N is meaningful for the group.
func (g Group) NeedsN() bool {
	return g.Sym == Cyclic || g.Sym == DihedralX || g.Sym == DihedralY
}

//Validate returns a critical Error if the group can't be built.
func (g Group) Validate() error {
	if !g.Sym.valid() {
		return Error{fmt.Sprintf("%s: %d", ErrInvalidSymmetry, int(g.Sym)), []string{"Validate"}, true}
	}
	if g.NeedsN() && g.N < 1 {
		return Error{fmt.Sprintf("%s: %s needs an order n>=1, got %d", ErrInvalidOrder, g.Sym, g.N), []string{"Validate"}, true}
	}
	return nil
}

//Order returns the number of elements of the group, or 0 if the group is not valid.
func (g Group) Order() int {
	if g.Validate() != nil {
		return 0
	}
	switch g.Sym.Family() {
	case FamilyCyclic:
		return g.N
	case FamilyDihedral:
		return 2 * g.N
	case FamilyTetrahedral:
		return 12
	case FamilyOctahedral:
		return 24
	}
	return 60
}

//String returns the name of the group, e.g. "c7", "d3x", "i222r".
func (g Group) String() string {
	if !g.Sym.valid() {
		return g.Sym.String()
	}
	switch g.Sym {
	case Cyclic:
		return fmt.Sprintf("c%d", g.N)
	case DihedralX, DihedralY:
		return fmt.Sprintf("d%d%s", g.N, g.Sym.Convention())
	}
	return g.Sym.String()
}

//ParseGroup reads a group name as produced by Group.String. It is case insensitive.
//For convenience "dN" means "dNx", "t" means "t222" and "i" means "i222".
func ParseGroup(name string) (Group, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "t":
		return Group{Sym: Tetrahedral222}, nil
	case "i":
		return Group{Sym: Icosahedral222}, nil
	}
	if len(s) > 1 && (s[0] == 'c' || s[0] == 'd') {
		sym := Cyclic
		digits := s[1:]
		if s[0] == 'd' {
			sym = DihedralX
			switch {
			case strings.HasSuffix(digits, "x"):
				digits = strings.TrimSuffix(digits, "x")
			case strings.HasSuffix(digits, "y"):
				sym = DihedralY
				digits = strings.TrimSuffix(digits, "y")
			}
		}
		//Atoi would also take a sign.
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return Group{}, Error{fmt.Sprintf("%s: %q", ErrInvalidSymmetry, name), []string{"ParseGroup"}, true}
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Group{}, Error{fmt.Sprintf("%s: %q", ErrInvalidSymmetry, name), []string{"ParseGroup"}, true}
		}
		g := Group{Sym: sym, N: n}
		if err := g.Validate(); err != nil {
			return Group{}, errDecorate(err, "ParseGroup")
		}
		return g, nil
	}
	for i, v := range symNames {
		if v == s && Symmetry(i) != Cyclic && Symmetry(i) != DihedralX && Symmetry(i) != DihedralY {
			return Group{Sym: Symmetry(i)}, nil
		}
	}
	return Group{}, Error{fmt.Sprintf("%s: %q", ErrInvalidSymmetry, name), []string{"ParseGroup"}, true}
}
