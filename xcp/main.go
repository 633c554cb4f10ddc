// File: xcp/main.go
// Author: Hadi Cahyadi <cumulus13@gmail.com>
// Date: 2026-10-15
// Description: File clipboard CLI: cut, copy and paste files and directories across working directories
// License: MIT

// Command xcp is a clipboard for files and directories.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/cumulus13/xcp-go/internal/cli"
	"github.com/cumulus13/xcp-go/internal/version"
)

func main() {
	if err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithVersion(version.GetFullVersion()),
	); err != nil {
		os.Exit(1)
	}
}
