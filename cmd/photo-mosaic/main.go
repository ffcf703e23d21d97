package main

import (
	"fmt"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Progress and skip notices go to stderr; stdout stays clean.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
