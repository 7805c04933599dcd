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

package emsym

import (
	"errors"
	"strings"
)

//ErrorInt is the interface for errors that the packages in this library implement. Decorate allows to add and retrieve
//the list of functions an error went through, without changing its type or wrapping it.
type ErrorInt interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//Error is the error type of emsym. All the errors returned by the symmetry functions
//are configuration errors: they are critical and should stop the current operation.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the message, followed by the functions the error went through, if any.
func (err Error) Error() string {
	if len(err.deco) == 0 {
		return "emsym: " + err.message
	}
	return "emsym: " + err.message + " (in " + strings.Join(err.deco, " <- ") + ")"
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. If dec is empty, it just returns the current slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	deco := make([]string, len(err.deco), len(err.deco)+1)
	copy(deco, err.deco)
	return append(deco, dec)
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Message returns the error message without the decoration.
func (err Error) Message() string { return err.message }

//errDecorate returns err decorated with the caller's name, if err
//is an emsym Error. Otherwise, err is returned as is.
func errDecorate(err error, caller string) error {
	var e Error
	if !errors.As(err, &e) {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

//IsConfigError returns true if err is a (critical) emsym configuration error,
//such as an unknown symmetry, an invalid order, or mismatched families.
func IsConfigError(err error) bool {
	var e Error
	return errors.As(err, &e) && e.critical
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrInvalidSymmetry = PanicMsg("unknown symmetry")
	ErrInvalidOrder    = PanicMsg("invalid symmetry order")
	ErrFamilyMismatch  = PanicMsg("symmetries belong to different families")
	ErrInvalidRadius   = PanicMsg("circumscribed radius must be positive")
	ErrDegenerateAxes  = PanicMsg("could not find the symmetry axes of the group")
)
