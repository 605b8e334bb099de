package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docxnorm/internal/config"
	"docxnorm/normalize"
)

var (
	normalizeDir    string
	normalizeMarker string
	normalizeStrict bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [dir]",
	Short: "Rewrite single-brace tags in every DOCX package of a directory",
	Long: `Normalize scans a directory for DOCX packages, rewrites their
single-brace section tags into double-brace form, and writes each result to a
sibling archive with the marker segment inserted before the extension.
Packages whose name already contains the marker are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	dir := normalizeDir
	if len(args) > 0 {
		dir = args[0]
	}
	cfg := config.Config{TemplateDir: dir, Marker: normalizeMarker, Strict: normalizeStrict}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.TemplateDir); os.IsNotExist(err) {
		fmt.Printf("No %s/ directory found, nothing to do\n", cfg.TemplateDir)
		return nil
	}

	candidates, err := normalize.FindCandidates(cfg.TemplateDir, cfg.Marker)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No DOCX files to normalize")
		return nil
	}
	fmt.Printf("Found %d template(s) to normalize\n", len(candidates))

	normalizer := normalize.New(cfg.Marker, slog.Default())
	failed := 0
	skipped := 0
	for _, candidate := range candidates {
		fmt.Printf("\nProcessing: %s\n", filepath.Base(candidate))

		result, err := normalizer.ProcessPackage(candidate)
		if err != nil {
			slog.Error("processing failed", "package", filepath.Base(candidate), "error", err)
			failed++
			continue
		}
		skipped += len(result.Skipped)

		if result.Replacements > 0 {
			fmt.Printf("   Fixed %d tag(s) -> %s\n", result.Replacements, filepath.Base(result.OutputPath))
		} else {
			fmt.Printf("   No changes needed -> %s\n", filepath.Base(result.OutputPath))
		}
	}

	if cfg.Strict && (failed > 0 || skipped > 0) {
		return fmt.Errorf("strict mode: %d package(s) failed, %d member(s) skipped", failed, skipped)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	cfg := config.Load()
	normalizeCmd.Flags().StringVarP(&normalizeDir, "dir", "d", cfg.TemplateDir, "directory to scan for DOCX packages")
	normalizeCmd.Flags().StringVarP(&normalizeMarker, "marker", "m", cfg.Marker, "segment inserted into output filenames")
	normalizeCmd.Flags().BoolVar(&normalizeStrict, "strict", cfg.Strict, "exit non-zero when any package fails or any member is skipped")
}
