// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// Reachable returns the IDs of all modules reachable from module from,
// including from itself, in breadth first order. Modules for which stop
// returns true are included but not expanded. stop may be nil.
//
func (n *Network) Reachable(from ID, stop func(ID) bool) []ID {
	seen := make([]bool, len(n.mods))
	seen[from] = true
	out := []ID{from}
	for i := 0; i < len(out); i++ {
		id := out[i]
		if stop != nil && stop(id) {
			continue
		}
		for _, d := range n.mods[id].dests {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

// Feeds reports whether module from has module to as one of its destinations.
//
func (n *Network) Feeds(from, to ID) bool {
	for _, d := range n.mods[from].dests {
		if d == to {
			return true
		}
	}
	return false
}
