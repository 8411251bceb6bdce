// Package main is the entry point for the git-pr application.
package main

import (
	"gitpr/internal/app"
)

var (
	// Version is injected at build time
	Version = "0.1.0"
	// CommitHash is injected at build time
	CommitHash string
)

func main() {
	app.Main(app.BuildInfo{Version: Version, CommitHash: CommitHash})
}
