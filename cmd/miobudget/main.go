package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/miobudget/miobudget/internal/commands"
)

func main() {
	// Pick up MIOBUDGET_HOME and friends from a local .env, if present.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
