/*
 * ptf_test.go, part of emsym.
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

package ptf

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/emsym"
	v3 "github.com/rmera/emsym/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func sampleParticles() []emsym.Particle {
	r := v3.RotationAbout(r3.Vec{X: 1, Y: 2, Z: -0.3}, 1.234567890123)
	return []emsym.Particle{
		{ID: "p001", Transform: v3.Identity()},
		{ID: "p002", Transform: r.WithTranslation(r3.Vec{X: 1.5, Y: -2, Z: math.Pi})},
		{ID: "mic12@000034", Transform: v3.AxisFlip(1)},
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	header := map[string]string{"symmetry": "i222r", "source": "test"}
	for _, name := range []string{"plain.ptf", "small.ptf.gz", "small.ptf.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, header, sampleParticles()))
			got, h, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, header, h)
			assert.Equal(t, sampleParticles(), got)
		})
	}
}

func TestWriterReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "particles.ptf.zst")
	w, err := NewWriter(path, nil, 19)
	require.NoError(t, err)
	for _, p := range sampleParticles() {
		require.NoError(t, w.WNext(p))
	}
	assert.Equal(t, 3, w.Len())
	require.NoError(t, w.Close())
	assert.Error(t, w.WNext(sampleParticles()[0]), "a closed writer can't write")

	r, h, err := New(path)
	require.NoError(t, err)
	assert.Empty(t, h)
	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 3, n)
	assert.False(t, r.Readable())
	_, err = r.Next()
	assert.Error(t, err)
}

func TestPlainFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.ptf")
	content := "symmetry=c7\n# a comment\n**\n\np1 1 0 0 0 0 1 0 0 0 0 1 0\np2 0 -1 0 1.5 1 0 0 0 0 0 1 -2 0 0 0 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	got, h, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "c7", h["symmetry"])
	require.Len(t, got, 2)
	assert.Equal(t, v3.Identity(), got[0].Transform)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, r3.Vec{X: 1.5, Z: -2}, got[1].Transform.Translation())
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewWriter(filepath.Join(dir, "bad.ptf"), map[string]string{"a=b": "c"})
	assert.Error(t, err)

	w, err := NewWriter(filepath.Join(dir, "id.ptf"), nil)
	require.NoError(t, err)
	assert.Error(t, w.WNext(emsym.Particle{ID: "two words", Transform: v3.Identity()}))
	assert.Error(t, w.WNext(emsym.Particle{Transform: v3.Identity()}))
	require.NoError(t, w.Close())

	bad := map[string]string{
		"noseparator.ptf": "symmetry=c1\np1 1 0 0 0 0 1 0 0 0 0 1 0\n",
		"fields.ptf":      "**\np1 1 0 0 0 0 1 0 0 0 0 1\n",
		"number.ptf":      "**\np1 1 0 0 0 0 1 0 0 0 0 1 zero\n",
		"lastrow.ptf":     "**\np1 1 0 0 0 0 1 0 0 0 0 1 0 0 0.5 0 1\n",
		"scaled.ptf":      "**\np1 1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 2\n",
	}
	for name, content := range bad {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, _, err := ReadFile(path)
		var perr Error
		if assert.ErrorAs(t, err, &perr, name) {
			assert.Equal(t, path, perr.FileName())
			assert.True(t, perr.Critical())
		}
	}
	_, _, err = ReadFile(filepath.Join(dir, "missing.ptf"))
	assert.Error(t, err)
}
