//go:build !(linux || darwin || freebsd)

package component

import "os/exec"

// killGroup is a no-op where process groups are unavailable; WaitDelay
// still bounds the wait.
func killGroup(*exec.Cmd) {}
