// Package sys provides system-level abstractions and wrappers,
// such as execution commands and standard I/O, to facilitate testing and mocking.
package sys

import (
	"os/exec"
	"runtime"
)

// ExecCommand is a variable that holds exec.Command to allow mocking in tests.
var ExecCommand = exec.Command

// LookPath is a variable that holds exec.LookPath to allow mocking in tests.
var LookPath = exec.LookPath

// GOOS is the operating system used to pick platform specific commands.
var GOOS = runtime.GOOS
