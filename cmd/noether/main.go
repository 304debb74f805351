package main

import (
	"os"

	"github.com/roach88/noether/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
