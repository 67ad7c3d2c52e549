package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tmerrors "github.com/abatilo/taskmgr/internal/errors"
	"github.com/abatilo/taskmgr/internal/output"
	"github.com/abatilo/taskmgr/internal/report"
	"github.com/abatilo/taskmgr/internal/task"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	format    string
	inputPath string
	formatter output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskmgr",
		Short: "Sort and group line-delimited tasks",
		Long: "taskmgr - Reads category,name,description[,deadline|priority[,priority]] lines\n" +
			"and prints them grouped by category and sorted by priority or time left.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			f, err := output.New(format)
			if err != nil {
				formatter = output.NewHumanFormatter()
				printError(err)
			}
			formatter = f
		},
	}

	rootCmd.PersistentFlags().StringVar(&format, "format", output.FormatHuman, "Output format (human, json, yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "f", "-", "Read tasks from file ('-' for stdin)")

	rootCmd.AddCommand(
		runCmd(),
		printCmd(),
		checkCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput returns the task source selected by --input.
func openInput() (io.ReadCloser, error) {
	if inputPath == "" || inputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inputPath)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// runCmd implements 'taskmgr run'.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Read tasks and print them in all four display modes",
		Run: func(_ *cobra.Command, _ []string) {
			in, err := openInput()
			if err != nil {
				printError(err)
			}
			defer in.Close()

			if err = runDemo(in, os.Stdout, formatter, task.SystemClock); err != nil {
				printError(err)
			}
		},
	}
}

// printCmd implements 'taskmgr print'.
func printCmd() *cobra.Command {
	var opts report.Options
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Read tasks and print them in one display mode",
		Run: func(_ *cobra.Command, _ []string) {
			in, err := openInput()
			if err != nil {
				printError(err)
			}
			defer in.Close()

			p := newPipeline(os.Stdout, formatter, task.SystemClock)
			err = p.load(in, func(e tmerrors.LineError) {
				fmt.Fprint(os.Stderr, formatter.FormatError(e))
			})
			if err != nil {
				printError(err)
			}
			if err = p.render(opts); err != nil {
				printError(err)
			}
		},
	}
	cmd.Flags().BoolVarP(&opts.ByPriority, "priority", "p", false, "Sort by priority before time left")
	cmd.Flags().BoolVarP(&opts.ByCategory, "category", "c", false, "Group tasks under their category")
	return cmd
}

// checkCmd implements 'taskmgr check'.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate task lines without printing them",
		Run: func(_ *cobra.Command, _ []string) {
			in, err := openInput()
			if err != nil {
				printError(err)
			}
			defer in.Close()

			summary, err := check(in, task.SystemClock)
			if err != nil {
				printError(err)
			}
			for _, e := range summary.Rejected {
				printOutput(formatter.FormatError(e))
			}
			printOutput(formatter.FormatMessage(summary.String()))
			if len(summary.Rejected) > 0 {
				os.Exit(1)
			}
		},
	}
}
