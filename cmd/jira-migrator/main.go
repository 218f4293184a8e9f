// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

// Package main is the entry point for the jira-migrator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/similigh/jira-migrator/cmd/jira-migrator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
