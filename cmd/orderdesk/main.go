// Package main is the entry point for the orderdesk CLI.
package main

import (
	"os"

	"github.com/orderdesk-labs/orderdesk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
