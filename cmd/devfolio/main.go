// Package main provides the entry point for the Devfolio API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Devfolio portfolio backend",
	Long:  "Devfolio serves a personal-portfolio site: public marketing endpoints, a Google Sign-In admin API for projects, skills, profile and settings, and view/click analytics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
