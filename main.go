package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/robalobadob/guess/internal/cli"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
