// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a module list, one module per line:
//
//	broadcaster -> a, b
//	%a -> con
//	&con -> output
//
// A % prefix declares a flip-flop, a & prefix a conjunction. Modules without a
// prefix are broadcasters. Blank lines are ignored. Destinations need not be
// declared; see Build.
//
func Parse(r io.Reader) ([]Def, error) {
	var defs []Def
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		d, err := parseLine(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		defs = append(defs, d)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read module list")
	}
	return defs, nil
}

// ParseString is like Parse but reads from a string.
//
func ParseString(s string) ([]Def, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(l string) (Def, error) {
	var d Def
	i := strings.Index(l, "->")
	if i < 0 {
		return d, parseError(l, 0, "missing ->")
	}
	name := strings.TrimSpace(l[:i])
	switch {
	case strings.HasPrefix(name, "%"):
		d.Kind = FlipFlop
		name = name[1:]
	case strings.HasPrefix(name, "&"):
		d.Kind = Conjunction
		name = name[1:]
	default:
		d.Kind = Broadcaster
	}
	if !validName(name) {
		return d, parseError(l, 0, "invalid module name")
	}
	d.Name = name

	rest := strings.TrimSpace(l[i+2:])
	if rest == "" {
		// a module with no destinations is valid, if useless.
		return d, nil
	}
	for _, dn := range strings.Split(rest, ",") {
		dn = strings.TrimSpace(dn)
		if !validName(dn) {
			return d, parseError(l, i+2, "invalid destination name "+strconv.Quote(dn))
		}
		d.Dests = append(d.Dests, dn)
	}
	return d, nil
}

func validName(n string) bool {
	if n == "" {
		return false
	}
	for _, r := range n {
		if r == '_' || '0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' {
			continue
		}
		return false
	}
	return true
}

func parseError(in string, pos int, msg string) error {
	return errors.Wrapf(ErrSyntax, "in %q at pos %d: %s", in, pos+1, msg)
}
