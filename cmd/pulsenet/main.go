// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsenet runs pulse network simulations.
package main

import "github.com/db47h/pulsenet/internal/cli"

func main() {
	cli.Execute()
}
