package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/accrue/internal/calculation"
	"github.com/rgehrsitz/accrue/internal/config"
	"github.com/rgehrsitz/accrue/internal/domain"
	"github.com/rgehrsitz/accrue/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errValidation marks a calculation that ended in a user-input error; the
// result itself has already been printed.
var errValidation = errors.New("validation failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "accrue",
		Short: "Elapsed time and simple interest calculator",
		Long: "Reports how long ago a date was in years, months and days, and the flat\n" +
			"monthly interest accrued on a loan principal over that span.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exampleCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "accrue %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// addConfigFlags registers the flags shared by commands that build a calculator
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a YAML configuration file")
	cmd.Flags().String("env-file", "", "Path to a .env file with ACCRUE_* overrides")
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.FormatterNames(), ", ")+")")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
}

// loadCalculator builds a calculator from --config, --env-file and the environment
func loadCalculator(cmd *cobra.Command) (*calculation.Calculator, error) {
	parser := config.NewInputParser()

	cfg := config.DefaultConfiguration()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	if err := parser.ApplyEnvironment(cfg, envFile); err != nil {
		return nil, err
	}

	calc, err := calculation.NewCalculatorFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		calc.SetLogger(simpleCLILogger{})
	}
	return calc, nil
}

// writeResults renders results with the formatter selected by --format
func writeResults(cmd *cobra.Command, results []domain.Result) error {
	name, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(name)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", name)
	}

	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate elapsed time and interest for one date",
		Example: "  accrue calculate --date 2022-03-05 --amount 100000 --rate 1.5\n" +
			"  accrue calculate --date 2022-03-05",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := loadCalculator(cmd)
			if err != nil {
				return err
			}

			selected, _ := cmd.Flags().GetString("date")
			amount, _ := cmd.Flags().GetString("amount")
			rate, _ := cmd.Flags().GetString("rate")

			// Without any loan input there is nothing to accrue.
			if !cmd.Flags().Changed("amount") && !cmd.Flags().Changed("rate") {
				calc.Variant = domain.VariantDateOnly
			}
			if dateOnly, _ := cmd.Flags().GetBool("date-only"); dateOnly {
				calc.Variant = domain.VariantDateOnly
			}

			result := calc.Compute(selected, amount, rate)
			if err := writeResults(cmd, []domain.Result{result}); err != nil {
				return err
			}
			if result.IsError() {
				return fmt.Errorf("%w: %s", errValidation, result.Err.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringP("date", "d", "", "Selected past date (YYYY-MM-DD)")
	cmd.Flags().StringP("amount", "a", "", "Loan principal")
	cmd.Flags().StringP("rate", "r", "", "Interest percentage per month")
	cmd.Flags().Bool("date-only", false, "Ignore amount and rate and report only the elapsed time")
	addConfigFlags(cmd)
	return cmd
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [requests-file]",
		Short: "Calculate every request in a YAML batch file against the same date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := loadCalculator(cmd)
			if err != nil {
				return err
			}

			set, err := config.NewInputParser().LoadRequests(args[0])
			if err != nil {
				return err
			}
			if set.Variant != "" {
				calc.Variant = set.Variant
			}

			calc.Logger.Infof("running %d requests", len(set.Requests))
			results := calc.ComputeRequests(set.Requests)

			dir, _ := cmd.Flags().GetString("output-dir")
			if dir == "" {
				return writeResults(cmd, results)
			}

			name, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(name)
			if f == nil {
				return fmt.Errorf("unsupported format: %s", name)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path, err := output.WriteFormatted(f, results, dir, reportExtension(name))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("output-dir", "", "Write the report to a timestamped file in this directory")
	addConfigFlags(cmd)
	return cmd
}

// reportExtension maps a format name to its file extension
func reportExtension(format string) string {
	if format == "console" {
		return "txt"
	}
	return format
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Generate an example configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration saved to %s\n", args[0])
			return nil
		},
	}
}
