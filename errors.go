// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "github.com/pkg/errors"

// Errors returned by this package. They are usually wrapped with additional
// context and should be tested with errors.Is.
//
var (
	// ErrMalformedWiring is returned by Build when the module list does not
	// describe a valid network.
	ErrMalformedWiring = errors.New("malformed wiring")
	// ErrSyntax is returned by Parse on badly formatted input.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownInput is returned when a conjunction receives a pulse from a
	// module that is not one of its inputs.
	ErrUnknownInput = errors.New("pulse from unknown input")
	// ErrNotSettled is returned when a button press produces more pulses than
	// the configured cap.
	ErrNotSettled = errors.New("simulation did not settle")
	// ErrNotFound is returned by PressUntil when the press budget is exhausted.
	ErrNotFound = errors.New("condition not met within budget")
)
