package main

import (
	"os"

	"github.com/Mig-uel/event-emitter-demo/cmd/emitterdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
