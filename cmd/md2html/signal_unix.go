//go:build !windows

package main

import (
	"os"
	"syscall"
)

// Ctrl-C from a terminal and SIGTERM from a process manager both stop a batch.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
