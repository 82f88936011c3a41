package turing

import _ "embed"

// Version is the released version of the simulator.
//
//go:embed VERSION
var Version string
