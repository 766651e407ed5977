// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analyze

import "github.com/pkg/errors"

// Errors returned by this package. Test with errors.Is.
var (
	// ErrShape is returned when a network does not have the shape the
	// analyzer relies on: independent branches from the entry module joining
	// in a single conjunction that feeds the sink.
	ErrShape = errors.New("unsupported network shape")
	// ErrNoPeriod is returned when a branch probe exhausts its budget.
	ErrNoPeriod = errors.New("no period detected")
	// ErrNoCycle is returned by Verify when the branch state does not repeat
	// within budget.
	ErrNoCycle = errors.New("no state cycle detected")
	// ErrAperiodic is returned by Verify when tap hits do not occur exactly at
	// multiples of the branch period.
	ErrAperiodic = errors.New("branch is not periodic from the first press")
	// ErrOverflow is returned when the combined press count does not fit in
	// an uint64.
	ErrOverflow = errors.New("press count overflow")
)
