/*
 * root.go, part of emsym.
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
	"io"
	"log/slog"
	"math"

	"github.com/rmera/emsym/internal/logging"
	v3 "github.com/rmera/emsym/v3"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "emsym",
		Short: "Point group symmetry for cryo-EM reconstructions",
		Long: `emsym computes the rotations of cyclic, dihedral, tetrahedral, octahedral and
icosahedral point groups in their usual settings, their unit cells, the rotation
between two settings of a group, and folds particle orientations into the unit cell.

Groups are given by name: c7, d3x, d3y, t222, tz3, tz3r, o, i222, i222r, in25,
in25r, i2n3, i2n3r, i2n5, i2n5r.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	root.AddCommand(newMatricesCmd(), newUnitCellCmd(), newConvertCmd(), newFoldCmd())
	return root
}

//newLogger returns a logger on the command's stderr with the level of the --log-level
//flag, if given, or level otherwise.
func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), l), nil
}

//vecFlag reads a 3-vector from a float64 slice flag.
func vecFlag(cmd *cobra.Command, name string) (r3.Vec, error) {
	vals, err := cmd.Flags().GetFloat64Slice(name)
	if err != nil {
		return r3.Vec{}, err
	}
	if len(vals) != 3 {
		return r3.Vec{}, fmt.Errorf("--%s needs 3 comma-separated values, got %d", name, len(vals))
	}
	return r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

//clean avoids printing -0.000000 for values that round to zero.
func clean(v float64) float64 {
	if math.Abs(v) < 5e-7 {
		return 0
	}
	return v
}

//printTransform writes the first 3 rows of t.
func printTransform(w io.Writer, t v3.Transform) {
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "%10.6f %10.6f %10.6f %10.6f\n", clean(t[4*i]), clean(t[4*i+1]), clean(t[4*i+2]), clean(t[4*i+3]))
	}
}

func printVecs(w io.Writer, name string, vecs []r3.Vec) {
	fmt.Fprintf(w, "%s %d\n", name, len(vecs))
	for _, v := range vecs {
		fmt.Fprintf(w, "%10.6f %10.6f %10.6f\n", clean(v.X), clean(v.Y), clean(v.Z))
	}
}
