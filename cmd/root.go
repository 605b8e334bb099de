package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docxnorm",
	Short: "Normalize template tag syntax in DOCX packages",
	Long: `Docxnorm rewrites single-brace section tags ({#tag}, {/tag}, {^tag})
into the double-brace form ({{#tag}}, {{/tag}}, {{^tag}}) across every XML
part of a DOCX package. The result is written to a new archive next to the
original; the original is never touched.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
