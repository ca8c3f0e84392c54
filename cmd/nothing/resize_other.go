// Released under an MIT license. See LICENSE.

//go:build !unix

package main

// watchResize is a no-op where SIGWINCH is unavailable.
func watchResize(func()) {}
