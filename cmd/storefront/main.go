package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/cli"
)

const version = "0.1.0"

// SIGKILL cannot be caught, so only catchable stop signals go here.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	root := cli.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(stopSignals...),
	); err != nil {
		os.Exit(1)
	}
}
