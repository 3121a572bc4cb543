// Package main provides the entry point for the mirrorsync CLI tool.
package main

import "github.com/agentstation/mirrorsync/cmd/mirrorsync/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
