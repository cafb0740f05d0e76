// Package commands implements CLI command handlers for numlit.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andlon/numeric-literals/internal/config"
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/rewrite"
)

// NewExpandCommand creates the expand command, which rewrites numeric
// literals in annotated items and writes the expanded source.
func NewExpandCommand() *cobra.Command {
	var (
		configPath string
		inPlace    bool
		suffix     string
		output     string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "expand [files...]",
		Short: "Rewrite numeric literals in annotated functions, traits and impls",
		Long: `Expand parses each input file, rewrites integer and float literals in
items annotated with #[replace_numeric_literals(...)],
#[replace_float_literals(...)] or #[replace_int_literals(...)], strips
those attributes and writes the expanded source.

By default the result is written alongside the input with the configured
suffix (lib.rs -> lib.expanded.rs). Use --in-place to overwrite the
input, or -o to direct a single file's output explicitly ("-" prints to
stdout).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("in-place") {
				cfg.Output.InPlace = inPlace
			}
			if cmd.Flags().Changed("suffix") {
				cfg.Output.Suffix = suffix
			}

			if output != "" && len(args) != 1 {
				return fmt.Errorf("-o requires exactly one input file, got %d", len(args))
			}

			formatter := diag.NewFormatter(cmd.ErrOrStderr())
			applyColorMode(formatter, cfg.Color, noColor)

			failed := 0
			for _, path := range args {
				if err := expandFile(path, cfg, output, formatter, cmd); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("expansion failed for %d file(s)", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default .numlit.yaml in CWD or $HOME)")
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "overwrite input files with their expansion")
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix for expanded output files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path for a single input file (\"-\" for stdout)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")

	return cmd
}

func expandFile(path string, cfg *config.Config, output string, formatter *diag.Formatter, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)
	formatter.AddSource(path, src)

	expanded, diags := rewrite.ExpandSource(src, path)

	errs := 0
	for _, d := range diags {
		formatter.Format(d)
		if d.Severity == diag.SeverityError {
			errs++
		}
	}
	if errs > 0 {
		return fmt.Errorf("%d error(s)", errs)
	}

	switch {
	case output == "-":
		_, err = fmt.Fprint(cmd.OutOrStdout(), expanded)
		return err
	case output != "":
		return os.WriteFile(output, []byte(expanded), 0o644)
	case cfg.Output.InPlace:
		return os.WriteFile(path, []byte(expanded), 0o644)
	default:
		return os.WriteFile(outputPath(path, cfg.Output.Suffix), []byte(expanded), 0o644)
	}
}

// outputPath derives the sibling output filename: lib.rs with suffix
// ".expanded.rs" becomes lib.expanded.rs.
func outputPath(path, suffix string) string {
	if stem, ok := strings.CutSuffix(path, ".rs"); ok {
		return stem + suffix
	}
	return path + suffix
}

// applyColorMode resolves the configured color mode against the --no-color
// flag. In auto mode the terminal detection of the color library decides.
func applyColorMode(formatter *diag.Formatter, mode string, noColor bool) {
	switch {
	case noColor || mode == "never":
		formatter.SetColor(false)
	case mode == "always":
		formatter.SetColor(true)
	}
}
