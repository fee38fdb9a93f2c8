package main

import (
	"log"
	"os"

	"github.com/ironsheep/image-mosaic/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cli.Version = Version
	cli.BuildTime = BuildTime
	cli.GitCommit = GitCommit

	// Logging goes to stderr; stdout carries results and, for serve, MCP
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	cli.Execute(cli.NewRootCommand())
}
