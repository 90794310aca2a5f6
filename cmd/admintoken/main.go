// Command admintoken mints and checks operator tokens for the habit-agent admin API
// and prints the reconciliation journal.
package main

import (
	"fmt"
	"os"

	"habit-agent/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HABIT_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := newCLIApp(cfg).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
