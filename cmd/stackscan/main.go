// Package main provides the stackscan CLI for technology detection and
// outreach composition.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stackscan",
	Short: "Website technology scanner and outreach composer",
	Long:  "stackscan fingerprints websites for HubSpot and a registry of marketing, commerce, and infrastructure technologies, harvests contact emails, scores the detected stack, and composes persona outreach emails.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
