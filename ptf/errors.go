/*
 * errors.go, part of emsym.
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
	"errors"
	"fmt"
)

//Error is the error type for ptf files.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ptf file %s error: %s", err.filename, err.message)
}

//Decorate adds dec to the list of functions the error went through, and returns the list.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	deco := make([]string, len(err.deco), len(err.deco)+1)
	copy(deco, err.deco)
	return append(deco, dec)
}

//FileName returns the file to which the failing handle was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	var e Error
	if !errors.As(err, &e) {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

const (
	UnIniRead        = "Reader uninitialized or already closed"
	UnIniWrite       = "Writer uninitialized or already closed"
	InvalidHeader    = "Invalid header entry"
	InvalidID        = "Particle identifiers can't be empty or contain spaces"
	MissingSeparator = "No separator line between the header and the particles"
	WrongFormat      = "Wrong format in particle line"
)
