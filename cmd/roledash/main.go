// Package main is the entry point for the roledash server.
//
// @title        Roledash API
// @version      1.0
// @description  Role-based authentication, sessions and dashboards.
// @BasePath     /
package main

import (
	"fmt"
	"os"
)

// Set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
