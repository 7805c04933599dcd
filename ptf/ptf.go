/*
 * ptf.go, part of emsym.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/emsym"
	v3 "github.com/rmera/emsym/v3"
)

//separator between the header and the particles.
const separator = "**"

//Writer writes particles to a ptf file.
type Writer struct {
	f         *os.File
	c         io.WriteCloser
	b         *bufio.Writer
	filename  string
	writeable bool
	n         int
	line      []byte
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

//compressor returns the writer for the compression that corresponds to the extension of name.
func compressor(name string, w io.Writer, level int) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		l := zstd.SpeedDefault
		if level > 0 {
			l = zstd.EncoderLevelFromZstd(level)
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(l))
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		if level <= 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)
	}
	return nopWriteCloser{w}, nil
}

//NewWriter creates the file name and writes the header to it. The file is zstd-compressed
//if name ends in ".zst", gzip-compressed if it ends in ".gz", and plain text otherwise.
//The optional compressionLevel is passed to the compressor. Header keys can't contain
//'=' or line breaks, and values can't contain line breaks.
func NewWriter(name string, header map[string]string, compressionLevel ...int) (*Writer, error) {
	level := 0
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	keys := make([]string, 0, len(header))
	for k, v := range header {
		if k == "" || strings.ContainsAny(k, "=\n") || strings.Contains(v, "\n") || strings.HasPrefix(k, separator) {
			return nil, Error{fmt.Sprintf("%s: %q=%q", InvalidHeader, k, v), name, []string{"NewWriter"}, true}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	S := &Writer{filename: name}
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	S.c, err = compressor(name, S.f, level)
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.b = bufio.NewWriter(S.c)
	for _, k := range keys {
		fmt.Fprintf(S.b, "%s=%s\n", k, header[k])
	}
	if _, err := S.b.WriteString(separator + "\n"); err != nil {
		S.f.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	S.writeable = true
	return S, nil
}

//WNext writes one particle. The transform is written as its first 12 row-major
//values, in the shortest representation that reads back to the same numbers.
func (S *Writer) WNext(p emsym.Particle) error {
	if !S.writeable {
		return Error{UnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if p.ID == "" || strings.IndexFunc(p.ID, unicode.IsSpace) >= 0 {
		return Error{fmt.Sprintf("%s: %q", InvalidID, p.ID), S.filename, []string{"WNext"}, true}
	}
	S.line = append(S.line[:0], p.ID...)
	for _, v := range p.Transform[:12] {
		S.line = append(S.line, ' ')
		S.line = strconv.AppendFloat(S.line, v, 'g', -1, 64)
	}
	S.line = append(S.line, '\n')
	if _, err := S.b.Write(S.line); err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	S.n++
	return nil
}

//Len returns the number of particles written so far.
func (S *Writer) Len() int {
	return S.n
}

//Close flushes the buffered particles and closes the file. The Writer can't be used after this.
func (S *Writer) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.b.Flush()
	if err2 := S.c.Close(); err == nil {
		err = err2
	}
	if err2 := S.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{err.Error(), S.filename, []string{"Close"}, true}
	}
	return nil
}

//Reader reads particles from a ptf file.
type Reader struct {
	f        *os.File
	c        io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
	line     int
}

//zstd's Decoder Close doesn't return an error, so it is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return gzip.NewReader(r)
	}
	return io.NopCloser(r), nil
}

//New opens a ptf file for reading, and returns the handle and the header.
//The header map is empty, not nil, if the file has no metadata.
func New(name string) (*Reader, map[string]string, error) {
	S := &Reader{filename: name}
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{err.Error(), name, []string{"New"}, true}
	}
	S.c, err = decompressor(name, bufio.NewReader(S.f))
	if err != nil {
		S.f.Close()
		return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.c)
	S.readable = true
	m := make(map[string]string)
	for {
		str, err := S.readLine()
		if err != nil {
			S.Close()
			if err == io.EOF {
				err = fmt.Errorf("%s", MissingSeparator)
			}
			return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		if str == separator {
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok || k == "" {
			S.Close()
			return nil, nil, Error{fmt.Sprintf("%s in line %d: %q", InvalidHeader, S.line, str), name, []string{"New"}, true}
		}
		m[k] = v
	}
	return S, m, nil
}

//readLine returns the next line that is not empty or a comment, without the line break.
func (S *Reader) readLine() (string, error) {
	for {
		str, err := S.h.ReadString('\n')
		if err != nil && (err != io.EOF || str == "") {
			return "", err
		}
		S.line++
		str = strings.TrimSpace(str)
		if str != "" && !strings.HasPrefix(str, "#") {
			return str, nil
		}
		if err == io.EOF {
			return "", err
		}
	}
}

//Readable returns true if Next can be called on the handle.
func (S *Reader) Readable() bool {
	return S.readable
}

//Next returns the next particle in the file. At the end of the file, it returns
//io.EOF, and closes the Reader.
func (S *Reader) Next() (emsym.Particle, error) {
	var p emsym.Particle
	if !S.readable {
		return p, Error{UnIniRead, S.filename, []string{"Next"}, true}
	}
	str, err := S.readLine()
	if err == io.EOF {
		S.Close()
		return p, io.EOF
	}
	if err != nil {
		return p, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(str)
	if len(fields) != 13 && len(fields) != 17 {
		return p, Error{fmt.Sprintf("%s in line %d: %d fields", WrongFormat, S.line, len(fields)), S.filename, []string{"Next"}, true}
	}
	vals := make([]float64, len(fields)-1)
	for i, f := range fields[1:] {
		vals[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return p, Error{fmt.Sprintf("%s in line %d: %s", WrongFormat, S.line, err.Error()), S.filename, []string{"Next"}, true}
		}
	}
	p.ID = fields[0]
	p.Transform, err = v3.NewTransform(vals)
	if err != nil {
		return p, Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	return p, nil
}

//Close closes the file and marks the Reader as unreadable.
func (S *Reader) Close() {
	if !S.readable {
		return
	}
	S.c.Close()
	S.f.Close()
	S.readable = false
}

//ReadFile returns all the particles in the file name, and its header.
func ReadFile(name string) ([]emsym.Particle, map[string]string, error) {
	r, header, err := New(name)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadFile")
	}
	defer r.Close()
	var ret []emsym.Particle
	for {
		p, err := r.Next()
		if err == io.EOF {
			return ret, header, nil
		}
		if err != nil {
			return nil, nil, errDecorate(err, "ReadFile")
		}
		ret = append(ret, p)
	}
}

//WriteFile writes particles to the file name, with the given header.
func WriteFile(name string, header map[string]string, particles []emsym.Particle) error {
	w, err := NewWriter(name, header)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	for _, p := range particles {
		if err := w.WNext(p); err != nil {
			w.Close()
			return errDecorate(err, "WriteFile")
		}
	}
	if err := w.Close(); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}
