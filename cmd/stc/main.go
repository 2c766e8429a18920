package main

import (
	"github.com/blockfall/stc/internal/cli"
)

func main() {
	// The window command lives here so that only the binary links the
	// graphics stack
	cli.Execute(newWindowCmd())
}
