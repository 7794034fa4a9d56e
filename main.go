package main

import (
	"github.com/vesselhq/vessel/pkg/cli"
)

func main() {
	cli.Main()
}
