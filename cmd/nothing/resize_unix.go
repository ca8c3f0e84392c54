// Released under an MIT license. See LICENSE.

//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// watchResize calls f whenever the terminal is resized.
func watchResize(f func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)

	go func() {
		for range ch {
			f()
		}
	}()
}
