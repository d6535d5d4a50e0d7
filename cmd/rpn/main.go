package main

import (
	"os"

	"github.com/pengelbrecht/rpn/cmd/rpn/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
