package cli

import (
	"flag"
	"fmt"
	"io"

	"quizzer/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to .quizzer.yml (default: search upward)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one questions file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		_, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if resolvedConfig != "" {
			fmt.Fprintf(stdout, "Config OK: %s\n", resolvedConfig)
		}

		set, err := question.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		multi, images := 0, 0
		for _, q := range set {
			if q.IsMultiAnswer() {
				multi++
			}
			if q.HasImage() {
				images++
			}
		}
		fmt.Fprintf(stdout, "Questions OK: %d questions (%d multi-answer, %d with images)\n", len(set), multi, images)
		return ExitOK
	}
}
