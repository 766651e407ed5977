// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analyze

import (
	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Branch is the part of a network reachable from one destination of the
// entry module, up to (excluding) the hub.
//
type Branch struct {
	// Root is the destination of the entry module the branch starts from.
	Root pulsenet.ID
	// Tap is the only branch member that sends pulses to the hub.
	Tap pulsenet.ID
	// Members lists all modules in the branch, Root first.
	Members []pulsenet.ID
}

// Layout describes how the branches of a network join at the sink.
//
type Layout struct {
	Sink     pulsenet.ID
	Hub      pulsenet.ID
	Branches []Branch
}

// Branches splits n into independent branches.
//
// The sink must have a single predecessor, the hub, which must be a
// conjunction. Each destination of the entry module starts a branch, made of
// the modules reachable from it without going through the hub. Branches that
// do not reach the hub are ignored. Branches must be disjoint, must each have
// exactly one module sending to the hub, and together they must cover all of
// the hub's inputs. An error wrapping ErrShape is returned otherwise.
//
func Branches(n *pulsenet.Network, sink pulsenet.ID) (Layout, error) {
	l := Layout{Sink: sink}
	preds := n.Predecessors(sink)
	if len(preds) != 1 {
		return l, errors.Wrapf(ErrShape, "sink %s has %d inputs, want 1", n.Name(sink), len(preds))
	}
	hub := preds[0]
	if n.Kind(hub) != pulsenet.Conjunction {
		return l, errors.Wrapf(ErrShape, "sink %s is fed by %s %s, want a conjunction", n.Name(sink), n.Kind(hub), n.Name(hub))
	}
	l.Hub = hub

	owner := make(map[pulsenet.ID]pulsenet.ID)
	isHub := func(id pulsenet.ID) bool { return id == hub }
	for _, root := range n.Destinations(n.Entry()) {
		if root == hub {
			return l, errors.Wrapf(ErrShape, "entry feeds hub %s directly", n.Name(hub))
		}
		b := Branch{Root: root, Tap: -1}
		for _, id := range n.Reachable(root, isHub) {
			if id == hub {
				continue
			}
			if o, ok := owner[id]; ok {
				return l, errors.Wrapf(ErrShape, "module %s shared by branches %s and %s", n.Name(id), n.Name(o), n.Name(root))
			}
			if id == n.Entry() {
				return l, errors.Wrapf(ErrShape, "branch %s loops back to the entry module", n.Name(root))
			}
			owner[id] = root
			b.Members = append(b.Members, id)
			if n.Feeds(id, hub) {
				if b.Tap >= 0 {
					return l, errors.Wrapf(ErrShape, "branch %s feeds hub %s from both %s and %s", n.Name(root), n.Name(hub), n.Name(b.Tap), n.Name(id))
				}
				b.Tap = id
			}
		}
		if b.Tap < 0 {
			logrus.Debugf("analyze: branch %s does not reach hub %s, ignored", n.Name(root), n.Name(hub))
			continue
		}
		logrus.WithFields(logrus.Fields{
			"root":    n.Name(root),
			"tap":     n.Name(b.Tap),
			"members": len(b.Members),
		}).Debug("analyze: branch")
		l.Branches = append(l.Branches, b)
	}

	for _, p := range n.Predecessors(hub) {
		if _, ok := owner[p]; !ok {
			return l, errors.Wrapf(ErrShape, "hub input %s does not belong to any branch", n.Name(p))
		}
	}
	if len(l.Branches) == 0 {
		return l, errors.Wrapf(ErrShape, "no branch reaches hub %s", n.Name(hub))
	}
	return l, nil
}
