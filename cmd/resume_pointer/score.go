package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/egeaydn/Resume-Pointer/internal/config"
	"github.com/egeaydn/Resume-Pointer/internal/extraction"
	"github.com/egeaydn/Resume-Pointer/internal/observability"
	"github.com/egeaydn/Resume-Pointer/internal/scoring"
)

var (
	scoreConfigPath string
	scoreOutput     string
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a resume file",
	Long:  `Score a local PDF, DOCX, or plain text resume against the 100-point rubric and print the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", `Output mode: "json" or "pretty"`)
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if scoreOutput != "" {
		cfg.Output = scoreOutput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	effective := cfg.WithDefaults()

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := extraction.ValidateFile(path, info.Size(), ""); err != nil {
		return err
	}
	fileType, err := extraction.DetectFileType(path, "")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := extraction.ParseDocument(data, fileType)
	if err != nil {
		return err
	}

	result, err := scoring.Calculate(doc)
	if err != nil {
		return err
	}

	if effective.Output == "pretty" {
		observability.NewPrinter(os.Stdout).PrintScoreResult(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
