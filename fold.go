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

package emsym

import (
	"github.com/rmera/emsym/internal/logging"
	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Particle is a particle orientation with an identifier that is carried along untouched.
type Particle struct {
	ID        string
	Transform v3.Transform
}

//Folder folds transforms into the unit cell of a group. The matrices and the unit cell
//are computed once, so a Folder can be reused for any number of particles, and by
//several goroutines at the same time.
type Folder struct {
	group  Group
	list   []v3.Transform
	planes []r3.Vec
	tol    float64
}

//NewFolder returns a Folder for g with the given membership tolerance.
func NewFolder(g Group, tol float64) (*Folder, error) {
	list, err := Matrices(g)
	if err != nil {
		return nil, errDecorate(err, "NewFolder")
	}
	planes, _, err := cellGeometry(g, list)
	if err != nil {
		return nil, errDecorate(err, "NewFolder")
	}
	return &Folder{group: g, list: list, planes: planes, tol: tol}, nil
}

//Fold returns S·t for the first symmetry operator S, in the order of Matrices, that
//puts the viewing direction of t (the z axis of its rotation block) inside the unit
//cell, together with the index of S. If no operator does, t is returned unchanged,
//with index 0 and ok set to false.
func (f *Folder) Fold(t v3.Transform) (folded v3.Transform, op int, ok bool) {
	for k, s := range f.list {
		m := s.Mul(t)
		if inside(f.planes, m.Column(2), f.tol) {
			return m, k, true
		}
	}
	return t, 0, false
}

//MoveInsideUnitCell returns a copy of particles where each transform T has been
//replaced by S·T, with S the first symmetry operator of g that brings the viewing
//direction into the unit cell. The order and identifiers of the particles are kept.
//Particles with no such operator keep their transform, and a warning is logged.
//The only errors are configuration errors for g.
func MoveInsideUnitCell(particles []Particle, g Group, options ...*Options) ([]Particle, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	f, err := NewFolder(g, o.tolerance)
	if err != nil {
		return nil, errDecorate(err, "MoveInsideUnitCell")
	}
	logger := o.logger
	if logger == nil {
		logger = logging.NewNop()
	}
	ret := make([]Particle, len(particles))
	workers := o.cpus
	if workers > len(particles) {
		workers = len(particles)
	}
	if workers < 1 {
		workers = 1
	}
	//each gorutine takes every workers-th particle and sends back the number
	//of particles it could not fold.
	ended := make(chan int, workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			missed := 0
			for i := w; i < len(particles); i += workers {
				p := particles[i]
				folded, op, ok := f.Fold(p.Transform)
				if !ok {
					missed++
					logger.Warn("no symmetry operator brings the particle inside the unit cell, keeping it as is",
						"index", i, "id", p.ID, "symmetry", g.String())
				}
				ret[i] = Particle{ID: p.ID, Transform: folded}
				if o.hook != nil {
					o.hook(i, p, folded, op)
				}
			}
			ended <- missed
		}(w)
	}
	missed := 0
	for w := 0; w < workers; w++ {
		missed += <-ended
	}
	logger.Debug("particles folded", "symmetry", g.String(), "particles", len(particles), "outside", missed)
	return ret, nil
}
