package main

import (
	"os"

	"github.com/wonny/gridiron/cmd/gridiron/commands"
)

// main is the entry point for the gridiron CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/gridiron [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
