/*
 * fold.go, part of emsym.
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
	"maps"
	"strconv"

	"github.com/rmera/emsym"
	"github.com/rmera/emsym/ptf"
	"github.com/rmera/emsym/symplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

func newFoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold <in.ptf> <out.ptf>",
		Short: "Fold particle orientations into the unit cell of a group",
		Long: `Reads the particles in the input ptf file, replaces each transform T with S·T,
where S is the first rotation of the group that takes the viewing direction into
the unit cell, and writes them, in the same order, to the output file.

The group is taken from --sym, the config file, or the "symmetry" entry of the
input header, in that order of preference.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			conf, err := loadConfig(path)
			if err != nil {
				return err
			}
			if err := overrideConfig(cmd, &conf); err != nil {
				return err
			}
			logger, err := newLogger(cmd, conf.LogLevel)
			if err != nil {
				return err
			}
			particles, header, err := ptf.ReadFile(args[0])
			if err != nil {
				return err
			}
			if conf.Symmetry == "" {
				conf.Symmetry = header["symmetry"]
			}
			if conf.Symmetry == "" {
				return fmt.Errorf("no symmetry given, use --sym")
			}
			g, err := emsym.ParseGroup(conf.Symmetry)
			if err != nil {
				return err
			}
			o := emsym.DefaultOptions()
			o.Cpus(conf.Cpus)
			o.Tolerance(conf.Tolerance)
			o.Logger(logger)
			var col *symplot.Collector
			if conf.Plot != "" {
				col = symplot.NewCollector()
				o.Hook(col.Hook())
			}
			folded, err := emsym.MoveInsideUnitCell(particles, g, o)
			if err != nil {
				return err
			}
			out := maps.Clone(header)
			if out == nil {
				out = make(map[string]string)
			}
			out["symmetry"] = g.String()
			out["folded"] = "true"
			if err := ptf.WriteFile(args[1], out, folded); err != nil {
				return err
			}
			logger.Info("particles folded", "symmetry", g.String(), "particles", len(folded), "output", args[1])
			if col != nil {
				cell, err := emsym.NewUnitCell(g, 1, r3.Vec{}, nil)
				if err != nil {
					return err
				}
				if err := col.Plot(cell, g.String()+" folding", conf.Plot); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("config", "", "YAML configuration file")
	cmd.Flags().String("sym", "", "symmetry group, e.g. i222r")
	cmd.Flags().Int("cpus", 0, "number of gorutines, all logical CPUs if not given")
	cmd.Flags().Float64("tol", 1e-3, "tolerance of the unit cell membership test")
	cmd.Flags().String("plot", "", "write a (rot, tilt) plot of the directions to this file")
	return cmd
}

//overrideConfig replaces the values in conf with those of the flags the user gave.
func overrideConfig(cmd *cobra.Command, conf *Config) error {
	flags := cmd.Flags()
	for _, name := range []string{"sym", "cpus", "tol", "plot"} {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		v := f.Value.String()
		switch name {
		case "sym":
			conf.Symmetry = v
		case "plot":
			conf.Plot = v
		case "cpus":
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			conf.Cpus = n
		case "tol":
			t, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			if t < 0 {
				return fmt.Errorf("negative tolerance %g", t)
			}
			conf.Tolerance = t
		}
	}
	return nil
}
