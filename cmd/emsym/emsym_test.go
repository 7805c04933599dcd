/*
 * emsym_test.go, part of emsym.
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
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/emsym"
	"github.com/rmera/emsym/ptf"
	v3 "github.com/rmera/emsym/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errb.String(), err
}

func TestMatrices(t *testing.T) {
	out, _, err := run(t, "matrices", "c4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "# c4, 4 rotations", lines[0])
	assert.Len(t, lines, 1+4*4)
	assert.Equal(t, "  1.000000   0.000000   0.000000   0.000000", lines[2])

	out, _, err = run(t, "matrices", "o", "--center", "1,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "# o, 24 rotations")

	_, _, err = run(t, "matrices", "q7")
	assert.Error(t, err)
}

func TestUnitCell(t *testing.T) {
	out, _, err := run(t, "unitcell", "c7")
	require.NoError(t, err)
	assert.Contains(t, out, "planes 2\n")
	assert.Contains(t, out, "edges 2\n  0.900969   0.433884   0.000000\n  0.900969  -0.433884   0.000000\n")

	out, _, err = run(t, "unitcell", "i222", "--radius", "2", "--center", "0,0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "planes 3\n")
	assert.Contains(t, out, "edges 3\n  0.000000   1.051462   2.701302\n")

	_, _, err = run(t, "unitcell", "c7", "--radius", "0")
	assert.Error(t, err)
	_, _, err = run(t, "unitcell", "c7", "--center", "1,2")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "i2n5", "i2n5")
	require.NoError(t, err)
	assert.Contains(t, out, "  1.000000   0.000000   0.000000   0.000000\n  0.000000   1.000000   0.000000   0.000000\n")

	out, _, err = run(t, "convert", "i222", "i2n5r")
	require.NoError(t, err)
	assert.Contains(t, out, "# i222 -> i2n5r")

	_, _, err = run(t, "convert", "c3", "d3x")
	assert.Error(t, err)
}

func writeParticles(t *testing.T, path string, header map[string]string, n int) []emsym.Particle {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	particles := make([]emsym.Particle, n)
	for i := range particles {
		axis := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		rot := v3.RotationAbout(axis, 3*rng.Float64())
		particles[i] = emsym.Particle{ID: fmt.Sprintf("mic%02d", i), Transform: rot.WithTranslation(r3.Vec{X: float64(i)})}
	}
	require.NoError(t, ptf.WriteFile(path, header, particles))
	return particles
}

func TestFold(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ptf")
	outName := filepath.Join(dir, "out.ptf.zst")
	plotName := filepath.Join(dir, "fold.png")
	particles := writeParticles(t, in, map[string]string{"symmetry": "i222r", "source": "test"}, 50)

	_, logs, err := run(t, "fold", in, outName, "--cpus", "2", "--plot", plotName, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "particles folded")

	got, header, err := ptf.ReadFile(outName)
	require.NoError(t, err)
	require.Len(t, got, len(particles))
	assert.Equal(t, "i222r", header["symmetry"])
	assert.Equal(t, "true", header["folded"])
	assert.Equal(t, "test", header["source"])
	cell, err := emsym.NewUnitCell(emsym.Group{Sym: emsym.Icosahedral222R}, 1, r3.Vec{}, nil)
	require.NoError(t, err)
	for i, p := range got {
		assert.Equal(t, particles[i].ID, p.ID)
		assert.True(t, cell.Contains(p.Transform.Column(2), 1e-3), "particle %d outside the cell", i)
	}
	info, err := os.Stat(plotName)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	//folding again changes nothing
	again := filepath.Join(dir, "again.ptf")
	_, _, err = run(t, "fold", outName, again)
	require.NoError(t, err)
	got2, _, err := ptf.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, got, got2)
}

func TestFoldConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ptf")
	writeParticles(t, in, nil, 10)
	conf := filepath.Join(dir, "fold.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("symmetry: d5y\ntolerance: 0.01\ncpus: 1\nlog_level: warn\n"), 0o644))

	out := filepath.Join(dir, "out.ptf")
	_, _, err := run(t, "fold", in, out, "--config", conf)
	require.NoError(t, err)
	_, header, err := ptf.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "d5y", header["symmetry"])

	//flags win over the config file
	_, _, err = run(t, "fold", in, out, "--config", conf, "--sym", "c3")
	require.NoError(t, err)
	_, header, err = ptf.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "c3", header["symmetry"])

	_, _, err = run(t, "fold", in, out)
	assert.Error(t, err, "no symmetry anywhere")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("symetry: c3\n"), 0o644))
	_, _, err = run(t, "fold", in, out, "--config", bad)
	assert.Error(t, err, "unknown keys are rejected")

	_, _, err = run(t, "fold", in, out, "--sym", "c3", "--tol", "-1")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), c)
	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	c, err = loadConfig(empty)
	require.NoError(t, err)
	assert.Equal(t, 1e-3, c.Tolerance)
}
