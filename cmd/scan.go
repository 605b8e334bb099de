package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docxnorm/internal/config"
	"docxnorm/normalize"
)

var (
	scanDir    string
	scanMarker string
	scanText   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Report single-brace tags without rewriting anything",
	Long: `Scan lists, per package and per XML member, the single-brace section
tags that normalize would rewrite. No output archive is produced and the
packages are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir := scanDir
	if len(args) > 0 {
		dir = args[0]
	}
	cfg := config.Config{TemplateDir: dir, Marker: scanMarker}
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
		fmt.Println("No DOCX files to scan")
		return nil
	}

	normalizer := normalize.New(cfg.Marker, slog.Default())
	for _, candidate := range candidates {
		fmt.Printf("%s:\n", filepath.Base(candidate))

		reports, err := normalizer.ScanPackage(candidate, scanText)
		if err != nil {
			slog.Error("scan failed", "package", filepath.Base(candidate), "error", err)
			continue
		}

		total := 0
		for _, report := range reports {
			total += len(report.Tags)
			fmt.Printf("   %s: %d tag(s)%s\n", report.Name, len(report.Tags), tagList(report.Tags))
			if scanText && strings.TrimSpace(report.Text) != "" {
				fmt.Printf("      text: %s\n", excerpt(report.Text))
			}
		}
		fmt.Printf("   total: %d tag(s) to normalize\n\n", total)
	}
	return nil
}

func tagList(tags []normalize.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = "{" + tag.Operator + tag.Name + "}"
	}
	return " " + strings.Join(names, " ")
}

// excerpt keeps console lines readable for large document parts.
func excerpt(text string) string {
	const limit = 120
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func init() {
	rootCmd.AddCommand(scanCmd)

	cfg := config.Load()
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", cfg.TemplateDir, "directory to scan for DOCX packages")
	scanCmd.Flags().StringVarP(&scanMarker, "marker", "m", cfg.Marker, "marker segment used to skip already-processed packages")
	scanCmd.Flags().BoolVar(&scanText, "text", false, "show each member's plaintext alongside its tags")
}
