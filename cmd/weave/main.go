package main

import (
	"os"

	"github.com/funvibe/weave/pkg/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
