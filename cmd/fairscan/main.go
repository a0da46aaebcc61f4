// Package main provides the entry point for the fairscan CLI tool.
package main

import "github.com/fairscan/fairscan/cmd/fairscan/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
