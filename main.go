package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arcanaland/highlow/cmd"
)

func main() {
	// A .env in the working directory may set HIGHLOW_* overrides.
	_ = godotenv.Load()

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
