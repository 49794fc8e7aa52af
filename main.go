package main

import (
	"github.com/OneTapDeploy/ListView-Hover-Creator/cmd"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
