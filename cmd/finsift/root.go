package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "finsift [pdf-or-html-path-or-url]",
	Short: "Extract financial metrics from earnings documents",
	Long: `finsift pulls structured financial metrics (revenue, earnings, operating
margin, growth rates, guidance) out of unstructured earnings documents.

It accepts a PDF file, an HTML file or a URL, chunks the document text, runs
each chunk through an LLM extraction call and prints one merged JSON record
to stdout. Diagnostics go to stderr.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Usage()
			return fmt.Errorf("expected a .pdf file, an .html file or a URL as the single argument")
		}
		return runExtract(cmd.Context(), args[0])
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [pdf-or-html-path-or-url]",
	Short: "Extract metrics from one document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.Context(), args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the finsift version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("finsift " + version)
	},
}

const version = "1.0.0"

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-chunk raw model responses")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
