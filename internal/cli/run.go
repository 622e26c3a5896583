package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizzer/internal/config"
	"quizzer/internal/question"
	"quizzer/internal/quiz"
	"quizzer/internal/report"
	"quizzer/internal/ui/form"
)

var runForm = form.Run

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to .quizzer.yml (default: search upward)")
		uiMode := flags.String("ui", "", "UI mode: auto|form|plain (default from config)")
		shuffleMode := flags.String("shuffle", "", "Shuffle policy: ask|always|never (default from config)")
		seed := flags.Int64("seed", 0, "Shuffle seed (default from config; 0 picks a time-based seed)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Enable debug logging")
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
		questionsPath := flags.Arg(0)

		cfg, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		logger, err := newLogger(stderr, cfg.LogLevel, *verbose)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to configure logging: %v\n", err)
			return ExitError
		}

		mode := cfg.UI
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}
		policy := cfg.Shuffle
		if *shuffleMode != "" {
			policy = strings.ToLower(strings.TrimSpace(*shuffleMode))
		}
		if !validShufflePolicy(policy) {
			fmt.Fprintf(stderr, "Invalid options: invalid shuffle policy %q (expected ask|always|never)\n", policy)
			return ExitUsage
		}
		seedValue := cfg.Seed
		if *seed != 0 {
			seedValue = *seed
		}
		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}

		set, err := question.Load(questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}
		logger.Debug("questions loaded", "path", questionsPath, "count", len(set), "config", resolvedConfig)

		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		reader := bufio.NewReader(stdinInput)
		shuffled, err := decideShuffle(policy, reader, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		rng := rand.New(rand.NewSource(seedValue))
		sessionOpts := []quiz.Option{quiz.WithLogger(logger)}
		if shuffled {
			sessionOpts = append(sessionOpts, quiz.WithShuffle(rng))
		}
		if decision.useForm {
			sessionOpts = append(sessionOpts, quiz.WithMode(quiz.Navigable))
		}
		session, err := quiz.New(set, sessionOpts...)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		logger.Debug("quiz starting", "session_id", session.ID().String(), "seed", seedValue, "shuffled", shuffled, "form", decision.useForm)

		imageDir := resolveImageDir(cfg, resolvedConfig, questionsPath)
		colorless := resolveNoColor(cfg.NoColor || *noColor, stdout)

		var summary report.Summary
		exitCode := ExitOK
		if decision.useForm {
			var input io.Reader
			if stdinInput != os.Stdin {
				input = stdinInput
			}
			result, err := runForm(session, input, stdout, form.Options{
				NoColor:  colorless,
				Shuffled: shuffled,
				Rand:     rng,
				ImageDir: imageDir,
				Logger:   logger,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
				return ExitError
			}
			if !result.Finished {
				fmt.Fprintln(stdout, "Quiz ended early.")
			}
			summary = result.Summary
		} else {
			summary, err = runPlain(session, reader, stdout, plainOptions{
				noColor:  colorless,
				imageDir: imageDir,
				logger:   logger,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Quiz interrupted: %v\n", err)
				exitCode = ExitError
			}
		}

		fmt.Fprintln(stdout)
		if err := report.RenderText(stdout, summary); err != nil {
			fmt.Fprintf(stderr, "Failed to write summary: %v\n", err)
			return ExitError
		}
		if err := report.RenderBreakdown(stdout, session.Breakdown()); err != nil {
			fmt.Fprintf(stderr, "Failed to write summary: %v\n", err)
			return ExitError
		}
		return exitCode
	}
}

func validShufflePolicy(policy string) bool {
	switch policy {
	case config.ShuffleAsk, config.ShuffleAlways, config.ShuffleNever:
		return true
	default:
		return false
	}
}

// decideShuffle applies the shuffle policy, prompting when it is "ask".
func decideShuffle(policy string, reader *bufio.Reader, out io.Writer) (bool, error) {
	switch policy {
	case config.ShuffleAlways:
		return true, nil
	case config.ShuffleNever:
		return false, nil
	default:
		answer, err := promptYesNo(reader, out, "Shuffle questions and choices?", false)
		if err != nil {
			return false, fmt.Errorf("shuffle prompt: %w", err)
		}
		return answer, nil
	}
}

// resolveImageDir picks the base directory for relative image paths: the
// configured image_dir (relative to the config file) or the question file's directory.
func resolveImageDir(cfg config.Config, configPath, questionsPath string) string {
	if cfg.ImageDir != "" {
		if filepath.IsAbs(cfg.ImageDir) || configPath == "" {
			return cfg.ImageDir
		}
		return filepath.Join(filepath.Dir(configPath), cfg.ImageDir)
	}
	abs, err := filepath.Abs(questionsPath)
	if err != nil {
		return filepath.Dir(questionsPath)
	}
	return filepath.Dir(abs)
}
