/*
Package pulsenet simulates networks of small stateful modules that exchange
low and high pulses, and provides the building blocks used by the analyze
package to extrapolate their behavior over very large numbers of button
presses.

A network is built from a list of module definitions (see Def and Parse):

	broadcaster -> a, b, c
	%a -> b
	%b -> c
	%c -> inv
	&inv -> a

Pressing the button sends a single low pulse to the entry module. Pulses are
then processed in the order they were sent, across the whole network, until no
pulses remain. Flip-flops (%) toggle on low pulses and ignore high ones.
Conjunctions (&) remember the last pulse received from each of their inputs
and send a low pulse only when all of them are high.

*/
package pulsenet
