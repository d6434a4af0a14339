package main

import (
	"fmt"
	"os"

	"call-summary/cmd/callsum/cmd"
	"call-summary/internal/config"
)

func main() {
	// A missing .env is fine; keys may come from the environment
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
