package main

import (
	"os"

	"github.com/codeninja55/rudicom/cmd/rudicom/internal/cli"
)

// Build-time metadata, set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(1)
	}
}
