package main

import (
	"os"
	"syscall"
	"testing"
)

func TestStopSignalsAreCatchable(t *testing.T) {
	var term bool
	for _, s := range stopSignals {
		if s == os.Kill {
			t.Fatal("SIGKILL cannot be caught")
		}
		if s == syscall.SIGTERM {
			term = true
		}
	}
	if !term {
		t.Error("SIGTERM must cancel the command context")
	}
}
