/*
 * fold_options.go, part of emsym.
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
	"log/slog"
	"runtime"

	"github.com/rmera/emsym/internal/logging"
	v3 "github.com/rmera/emsym/v3"
)

//FoldHook is called once per particle by MoveInsideUnitCell with the index of the
//particle, the particle as given, its folded transform and the index of the symmetry
//operator used. It is called from several goroutines, so it must be safe for
//concurrent use.
type FoldHook func(i int, p Particle, folded v3.Transform, op int)

//Options contains the options for MoveInsideUnitCell.
type Options struct {
	cpus      int
	tolerance float64
	logger    *slog.Logger
	hook      FoldHook
}

//DefaultOptions returns options using all logical CPUs, a tolerance of 1e-3,
//no logging and no hook.
func DefaultOptions() *Options {
	O := new(Options)
	O.cpus = runtime.NumCPU()
	O.tolerance = 1e-3
	O.logger = logging.NewNop()
	return O
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if a positive one is given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Returns the tolerance of the unit cell membership test: a direction is
//inside if its dot product with every plane normal is at least -tolerance.
//Sets it to a new value, if a non-negative one is given.
func (O *Options) Tolerance(tol ...float64) float64 {
	if len(tol) > 0 && tol[0] >= 0 {
		O.tolerance = tol[0]
	}
	return O.tolerance
}

//Returns the logger, and sets it to a new one, if a non-nil one is given.
func (O *Options) Logger(l ...*slog.Logger) *slog.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

//Returns the hook called for each folded particle, and sets it, if given.
//A nil hook disables it.
func (O *Options) Hook(h ...FoldHook) FoldHook {
	if len(h) > 0 {
		O.hook = h[0]
	}
	return O.hook
}
