// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analyze

import (
	"math/bits"

	"github.com/pkg/errors"
)

// GCD returns the greatest common divisor of a and b.
//
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
//
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "lcm(%d, %d)", a, b)
	}
	return lo, nil
}

// LCMAll folds LCM over vs, left to right. It returns 0 for an empty list.
//
func LCMAll(vs ...uint64) (uint64, error) {
	if len(vs) == 0 {
		return 0, nil
	}
	r := vs[0]
	for _, v := range vs[1:] {
		var err error
		if r, err = LCM(r, v); err != nil {
			return 0, err
		}
	}
	return r, nil
}
