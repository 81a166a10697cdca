// Package main provides the entry point for the placeholders CLI, which writes
// placeholder images for the company site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	state := &cliState{}
	err := newRootCmd(state).Execute()
	state.syncLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
