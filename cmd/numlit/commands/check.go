package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andlon/numeric-literals/internal/config"
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/rewrite"
)

// NewCheckCommand creates the check command, which runs the expansion
// pipeline for its diagnostics without writing any output.
func NewCheckCommand() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:           "check [files...]",
		Short:         "Verify that annotated files parse and expand cleanly",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			formatter := diag.NewFormatter(cmd.ErrOrStderr())
			applyColorMode(formatter, cfg.Color, noColor)

			failed := 0
			for _, path := range args {
				errs, err := checkFile(path, formatter)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}
				if errs > 0 {
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("check failed for %d file(s)", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default .numlit.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")

	return cmd
}

func checkFile(path string, formatter *diag.Formatter) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	src := string(data)
	formatter.AddSource(path, src)

	_, diags := rewrite.ExpandSource(src, path)

	errs := 0
	for _, d := range diags {
		formatter.Format(d)
		if d.Severity == diag.SeverityError {
			errs++
		}
	}
	return errs, nil
}
