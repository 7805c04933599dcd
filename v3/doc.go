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
Package v3 implements the two numeric types used through emsym.

Matrix is a row-major Nx3 matrix, a set of vectors in 3D space, one per row. It is
based on gonum's (gonum.org/v1/gonum/mat) Dense type, with the additional restriction
of the fixed number of columns. emsym uses it for the plane normals and edge vectors of
unit cells.

Transform is a fixed-size 4x4 homogeneous rigid transform (3x3 rotation block, 3x1
translation column and a [0 0 0 1] last row), stored row-major. It implements
gonum's mat.Matrix interface, so gonum functions (mat.Det, mat.EqualApprox,
mat.Formatted, Dense.Mul) accept it directly.
*/
package v3
