package main

import (
	"os"

	"github.com/kbukum/utl/cmd/utl/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
