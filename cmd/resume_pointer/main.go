// Package main provides the entry point for the Resume Pointer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_pointer",
	Short: "Resume Pointer scoring engine",
	Long:  "Resume Pointer scores resumes (PDF/DOCX) against a 100-point rubric and produces per-category breakdowns and prioritized recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
