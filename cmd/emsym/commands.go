/*
 * commands.go, part of emsym.
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

package main

import (
	"fmt"

	"github.com/rmera/emsym"
	"github.com/spf13/cobra"
)

func newMatricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrices <group>",
		Short: "Print the rotations of a group",
		Long: `Prints the rotations of the group, in their fixed order, as 3x4 blocks
(rotation and translation) preceded by their index. The first one is always
the identity. With --center, the rotations act about that point.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := emsym.ParseGroup(args[0])
			if err != nil {
				return err
			}
			list, err := emsym.Matrices(g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("center") {
				center, err := vecFlag(cmd, "center")
				if err != nil {
					return err
				}
				list = emsym.Recenter(list, center)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s, %d rotations\n", g, len(list))
			for i, m := range list {
				fmt.Fprintf(out, "%d\n", i)
				printTransform(out, m)
			}
			return nil
		},
	}
	cmd.Flags().Float64Slice("center", []float64{0, 0, 0}, "center of the rotations, x,y,z")
	return cmd
}

func newUnitCellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unitcell <group>",
		Short: "Print the unit cell of a group",
		Long: `Prints the inward plane normals of the unit cell of the group, and its corners
on the sphere of the given radius and center, displaced by offset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := emsym.ParseGroup(args[0])
			if err != nil {
				return err
			}
			radius, err := cmd.Flags().GetFloat64("radius")
			if err != nil {
				return err
			}
			center, err := vecFlag(cmd, "center")
			if err != nil {
				return err
			}
			offset, err := vecFlag(cmd, "offset")
			if err != nil {
				return err
			}
			cell, err := emsym.NewUnitCell(g, radius, center, &offset)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", g)
			printVecs(out, "planes", cell.Normals())
			edges := cell.Directions()
			if cell.Edges != nil {
				edges = cell.Edges.Vecs()
			}
			printVecs(out, "edges", edges)
			return nil
		},
	}
	cmd.Flags().Float64("radius", 1, "circumscribed radius of the cell")
	cmd.Flags().Float64Slice("center", []float64{0, 0, 0}, "center of the sphere, x,y,z")
	cmd.Flags().Float64Slice("offset", []float64{0, 0, 0}, "offset added to the center for the corners, x,y,z")
	return cmd
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from> <to>",
		Short: "Print the rotation between two settings of a group",
		Long: `Prints the rotation R taking the frame of the first group to that of the second,
so that R·S·R^T belongs to the second group for every rotation S of the first one.
Both must be settings of the same group, e.g. "convert i222 i2n5".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := emsym.ParseGroup(args[0])
			if err != nil {
				return err
			}
			to, err := emsym.ParseGroup(args[1])
			if err != nil {
				return err
			}
			r, err := emsym.CoordinateSystemTransform(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s -> %s\n", from, to)
			printTransform(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
