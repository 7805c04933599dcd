/*
 * doc.go, part of emsym.
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

/*
Package emsym implements point group symmetry for 3D reconstruction in
cryo-electron microscopy.

	**emsym Capabilities**

    Generates the ordered list of rotations of a point group: cyclic (Cn),
	dihedral (Dn, 2-fold along x or y), tetrahedral (222, z3 and z3r settings),
	octahedral, and icosahedral (222, 222r, n25, n25r, 2n3, 2n3r, 2n5 and
	2n5r settings).

    Finds the symmetry axes of a group and their folds.

    Builds the asymmetric unit (unit cell) of a group as a set of plane
	normals and edge vectors on a sphere of a given radius and center.

    Computes the rotation between two settings of the same group.

    Folds particle orientations into the unit cell, concurrently.

Groups are given as a Group value, or parsed from their usual names ("c7", "d3x",
"tz3r", "i222r") with ParseGroup. Rotations and rigid transforms are v3.Transform
values, 4x4 row-major matrices that can be used directly with gonum.

All the errors returned are of the type Error, and are critical: they mean that the
requested group, radius or conversion doesn't make sense. Orientations that fall on a
unit cell boundary where no operator works within the tolerance are not errors; they
are logged and left as they are.
*/
package emsym
