/*
 * symplot.go, part of emsym.
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

//Package symplot draws projection directions and unit cells as (rot, tilt) maps. It
//provides a Collector whose Hook can be given to emsym.MoveInsideUnitCell to see
//where each particle was, and where it ended up.
package symplot

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/rmera/emsym"
	v3 "github.com/rmera/emsym/v3"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//samples per plane when drawing the boundary of a cell.
const boundarySamples = 720

//Collector keeps the viewing directions of particles before and after folding.
//It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	before []r3.Vec
	after  []r3.Vec
}

//NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return new(Collector)
}

//Hook returns a FoldHook that records the viewing direction of each particle.
func (C *Collector) Hook() emsym.FoldHook {
	return func(i int, p emsym.Particle, folded v3.Transform, op int) {
		C.Add(p.Transform, folded)
	}
}

//Add records the viewing directions of a transform before and after folding.
func (C *Collector) Add(before, after v3.Transform) {
	C.mu.Lock()
	C.before = append(C.before, before.Column(2))
	C.after = append(C.after, after.Column(2))
	C.mu.Unlock()
}

//Len returns the number of particles recorded.
func (C *Collector) Len() int {
	C.mu.Lock()
	defer C.mu.Unlock()
	return len(C.before)
}

//RotTilt returns the rot (azimuth, in (-180, 180]) and tilt (angle from z, in [0, 180])
//of the direction d, in degrees.
func RotTilt(d r3.Vec) (rot, tilt float64) {
	n := r3.Norm(d)
	if n == 0 {
		return 0, 0
	}
	rot = math.Atan2(d.Y, d.X) * 180 / math.Pi
	tilt = math.Acos(math.Max(-1, math.Min(1, d.Z/n))) * 180 / math.Pi
	return rot, tilt
}

func toXYs(dirs []r3.Vec) plotter.XYs {
	ret := make(plotter.XYs, len(dirs))
	for i, d := range dirs {
		ret[i].X, ret[i].Y = RotTilt(d)
	}
	return ret
}

//Boundary returns the border of the unit cell as polylines in (rot, tilt) space. Each
//plane is sampled along its great circle, keeping the points inside the cell, and the
//lines are split where rot wraps around.
func Boundary(cell *emsym.UnitCell) []plotter.XYs {
	var ret []plotter.XYs
	for _, n := range cell.Normals() {
		u := r3.Cross(n, r3.Vec{Z: 1})
		if r3.Norm(u) < 1e-6 {
			u = r3.Cross(n, r3.Vec{X: 1})
		}
		u = r3.Unit(u)
		v := r3.Cross(n, u)
		var run plotter.XYs
		flush := func() {
			if len(run) > 1 {
				ret = append(ret, run)
			}
			run = nil
		}
		for i := 0; i <= boundarySamples; i++ {
			t := 2 * math.Pi * float64(i) / boundarySamples
			d := r3.Add(r3.Scale(math.Cos(t), u), r3.Scale(math.Sin(t), v))
			if !cell.Contains(d, 1e-9) {
				flush()
				continue
			}
			var p plotter.XY
			p.X, p.Y = RotTilt(d)
			if len(run) > 0 && math.Abs(p.X-run[len(run)-1].X) > 180 {
				flush()
			}
			run = append(run, p)
		}
		flush()
	}
	return ret
}

//Plot draws the recorded directions before (gray) and after (red) folding, and the
//border of cell, if not nil, to filename. The format is taken from the extension
//of filename (png, svg, pdf...).
func (C *Collector) Plot(cell *emsym.UnitCell, title, filename string) error {
	C.mu.Lock()
	before := toXYs(C.before)
	after := toXYs(C.after)
	C.mu.Unlock()
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "rot"
	p.Y.Label.Text = "tilt"
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = 0
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	for _, set := range []struct {
		name  string
		data  plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"before", before, color.Gray{Y: 160}, draw.CircleGlyph{}},
		{"after", after, color.RGBA{R: 220, A: 255}, draw.CrossGlyph{}},
	} {
		if len(set.data) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.data)
		if err != nil {
			return fmt.Errorf("symplot: %s: %w", set.name, err)
		}
		s.GlyphStyle.Color = set.color
		s.GlyphStyle.Shape = set.shape
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(set.name, s)
	}
	if cell != nil {
		for i, b := range Boundary(cell) {
			l, err := plotter.NewLine(b)
			if err != nil {
				return fmt.Errorf("symplot: unit cell border: %w", err)
			}
			l.LineStyle.Width = vg.Points(1)
			p.Add(l)
			if i == 0 {
				p.Legend.Add(cell.Group.String()+" unit cell", l)
			}
		}
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("symplot: saving %s: %w", filename, err)
	}
	return nil
}
