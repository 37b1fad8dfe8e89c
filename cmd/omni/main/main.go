package main

import (
	"os"

	"github.com/arthur-debert/omni/cmd/omni"
)

func main() {
	os.Exit(omni.Execute(&omni.App{}, os.Args[1:]))
}
