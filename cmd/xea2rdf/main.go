// Package main provides the xea2rdf binary entry point.
// xea2rdf converts a Sparx Enterprise Architect repository stored as SQLite
// into an RDF graph in Turtle syntax.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "xea2rdf"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName + " -i <input.qea> -o <output.ttl>",
		Short: "Convert an Enterprise Architect repository to RDF",
		Long: `xea2rdf reads a Sparx Enterprise Architect repository stored as a
SQLite database and writes an equivalent RDF graph in Turtle syntax.

Packages, objects, attributes, connectors, tagged values, object
properties and cross-references become subjects in the ea: vocabulary.

Settings may also come from ~/.config/xea2rdf/config.yaml, an xea2rdf.yaml
in the working directory or one of its parents, or --config. Flags win.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input file: <input.qea>")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file: <output.ttl>, - for standard output")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write prometheus metrics to this textfile after the run")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(initConfigCmd(stderr))

	return cmd
}
