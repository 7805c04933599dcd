/*
 * symplot_test.go, part of emsym.
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

package symplot

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/emsym"
	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotTilt(Te *testing.T) {
	table := []struct {
		d         r3.Vec
		rot, tilt float64
	}{
		{r3.Vec{Z: 1}, 0, 0},
		{r3.Vec{Z: -2}, 0, 180},
		{r3.Vec{X: 1}, 0, 90},
		{r3.Vec{Y: 1}, 90, 90},
		{r3.Vec{X: -1, Z: 1}, 180, 45},
	}
	for _, test := range table {
		rot, tilt := RotTilt(test.d)
		if math.Abs(rot-test.rot) > 1e-9 || math.Abs(tilt-test.tilt) > 1e-9 {
			Te.Errorf("%v: rot %f tilt %f, want %f %f", test.d, rot, tilt, test.rot, test.tilt)
		}
	}
}

func TestBoundary(Te *testing.T) {
	cell, err := emsym.NewUnitCell(emsym.Group{Sym: emsym.Cyclic, N: 4}, 1, r3.Vec{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	lines := Boundary(cell)
	if len(lines) == 0 {
		Te.Fatalf("no boundary for C4")
	}
	for _, l := range lines {
		for _, p := range l {
			if math.Abs(math.Abs(p.X)-45) > 1e-6 && p.Y > 1e-6 && p.Y < 180-1e-6 {
				Te.Fatalf("point %v is not on the C4 border", p)
			}
		}
	}
	c1, _ := emsym.NewUnitCell(emsym.Group{Sym: emsym.Cyclic, N: 1}, 1, r3.Vec{}, nil)
	if len(Boundary(c1)) != 0 {
		Te.Errorf("C1 has no border")
	}
}

func TestPlot(Te *testing.T) {
	g := emsym.Group{Sym: emsym.Icosahedral222R}
	rng := rand.New(rand.NewSource(2))
	particles := make([]emsym.Particle, 200)
	for i := range particles {
		axis := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		particles[i] = emsym.Particle{ID: "p", Transform: v3.RotationAbout(axis, math.Pi*rng.Float64())}
	}
	col := NewCollector()
	o := emsym.DefaultOptions()
	o.Hook(col.Hook())
	if _, err := emsym.MoveInsideUnitCell(particles, g, o); err != nil {
		Te.Fatal(err)
	}
	if col.Len() != len(particles) {
		Te.Errorf("%d particles collected instead of %d", col.Len(), len(particles))
	}
	cell, err := emsym.NewUnitCell(g, 1, r3.Vec{}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "i222r.png")
	if err := col.Plot(cell, "i222r folding", name); err != nil {
		Te.Fatal(err)
	}
	if info, err := os.Stat(name); err != nil || info.Size() == 0 {
		Te.Errorf("no plot written: %v", err)
	}
}
