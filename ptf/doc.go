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
Package ptf reads and writes particle transform files, ordered lists of particle
orientations with an identifier each.

A ptf file is line-oriented text. It starts with a header of key=value lines (for
instance symmetry=i222r), followed by a line containing only "**". Each following line
is a particle: its identifier, which can't contain spaces, and the first 12 values of its
4x4 row-major transform (the last row is always 0 0 0 1). Lines with all 16 values are
also accepted when reading, if the last row is 0 0 0 1. Empty lines and lines starting
with # are ignored.

	symmetry=c7
	**
	p001 1 0 0 0 0 1 0 0 0 0 1 0
	p002 0 -1 0 1.5 1 0 0 0 0 0 1 -2

The file is zstd compressed if its name ends in .zst, gzip compressed if it ends in .gz,
and plain text otherwise.
*/
package ptf
