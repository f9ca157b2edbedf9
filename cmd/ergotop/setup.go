package main

import (
	"fmt"
	"os"

	"github.com/Can-Ozan/ergotop/internal/config"
)

// RunSetup writes a default config file to the standard location and
// prints where it landed, so users have something concrete to edit.
//
// Exit codes:
//   - 0: file written
//   - 1: error, including an already existing config file
func RunSetup() {
	path := config.DefaultPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}

	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
	fmt.Println("Set ERGOTOP_OPENAI_API_KEY in your environment to enable the assistant.")
	os.Exit(0)
}
