// Package main provides the CLI entry point for sqlfront.
package main

import (
	"os"

	"github.com/nilbridge/sqlfront/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
