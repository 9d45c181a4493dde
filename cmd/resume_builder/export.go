package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportTemplate string
	exportOut      string
	exportFont     string
	exportAccent   string
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.json>",
	Short: "Export a resume JSON file to PDF",
	Long:  `Read a resume data file, validate it, and write a vector PDF without starting the server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "classic", "Template ID")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path (defaults to the resume's name)")
	exportCmd.Flags().StringVar(&exportFont, "font", "", "Font family override")
	exportCmd.Flags().StringVar(&exportAccent, "accent", "", "Accent color override, e.g. #2563eb")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeData(raw); err != nil {
		return fmt.Errorf("invalid resume data: %w", err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse resume data: %w", err)
	}

	var style *types.StyleSettings
	if exportFont != "" || exportAccent != "" {
		settings := types.StyleSettings{FontFamily: exportFont, AccentColor: exportAccent}.WithDefaults()
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("invalid style settings: %w", err)
		}
		style = &settings
	}

	out, err := pdf.Generate(&data, exportTemplate, style)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	path := exportOut
	if path == "" {
		path = pdf.Filename(data.FullName)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", path, len(out))
	return nil
}
