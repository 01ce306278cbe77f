package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/sgrep/internal/config"
	"github.com/harrison/sgrep/internal/display"
	"github.com/harrison/sgrep/internal/filelock"
	"github.com/harrison/sgrep/internal/fileutil"
	"github.com/harrison/sgrep/internal/logger"
	"github.com/harrison/sgrep/internal/matcher"
	"github.com/harrison/sgrep/internal/scan"
	"github.com/harrison/sgrep/internal/search"
)

// runSearch implements the search command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return usageError(cmd, err.Error())
	}

	pattern, selector, err := patternAndSelector(cmd, args)
	if err != nil {
		return usageError(cmd, err.Error())
	}

	dc, err := displayConfig(cmd, cfg)
	if err != nil {
		return usageError(cmd, err.Error())
	}

	m, err := matcher.New(pattern, matcher.Options{
		CaseInsensitive: dc.CaseInsensitive,
		WholeWord:       dc.WholeWord,
	})
	if err != nil {
		if errors.Is(err, matcher.ErrInvalidPattern) {
			return usageError(cmd, "The provided search pattern is invalid")
		}
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Color)
	log.LogDebug(fmt.Sprintf("compiled pattern %q", m.Expr()))

	resolved, err := fileutil.ResolveAll(fileutil.SplitSelectors(selector), fileutil.ResolveOptions{
		Recursive:   cfg.Recursive,
		ExcludeDirs: cfg.ExcludeDirs,
		SkipHidden:  cfg.SkipHiddenDirs,
	})
	if err != nil {
		if errors.Is(err, fileutil.ErrNoSuchDirectory) {
			return usageError(cmd, "No such directory or file found")
		}
		return usageError(cmd, err.Error())
	}

	for _, dir := range resolved.Directories {
		log.LogWarn(fmt.Sprintf("%s is a directory", dir))
	}
	if len(resolved.Errors) > 0 {
		for _, rerr := range resolved.Errors {
			log.LogError(rerr.Error())
		}
		log.LogError("Error has occurred while trying to load the files; nothing was searched")
		return nil
	}
	log.LogInfo(fmt.Sprintf("searching %d file(s)", len(resolved.Files)))

	outputPath, _ := cmd.Flags().GetString("output")
	var out io.Writer = cmd.OutOrStdout()
	var outFile *filelock.OutputFile
	if outputPath != "" {
		outFile = filelock.NewOutputFile(outputPath)
		out = outFile
	}

	runner := &search.Runner{
		Config:  dc,
		Matcher: m,
		Out:     out,
		Logger:  log,
	}
	summary, err := runner.Run(resolved.Files)
	if err != nil {
		return err
	}

	if outFile != nil {
		if err := outFile.Commit(); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile.Path(), err)
		}
		log.LogInfo(fmt.Sprintf("results written to %s", outFile.Path()))
	}

	if len(summary.Failed) > 0 {
		warnUnreadable(cmd.ErrOrStderr(), summary.Failed, log.Colored())
	}
	log.LogSummary(summary.Files, summary.Matches, len(summary.Failed))

	return nil
}

func warnUnreadable(w io.Writer, files []string, colored bool) {
	display.UnreadableFiles(files).Display(w, colored)
}

// loadConfig reads the config file and applies changed flags on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	var overrides config.FlagOverrides
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		overrides.Color = &v
	}
	overrides.LineNumbers = changedBool(cmd, "line-number")
	overrides.NoFilename = changedBool(cmd, "no-filename")
	overrides.Recursive = changedBool(cmd, "recursive")
	overrides.IgnoreCase = changedBool(cmd, "ignore-case")

	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// patternAndSelector takes -sP and -fP, falling back to positional
// arguments for whichever is missing.
func patternAndSelector(cmd *cobra.Command, args []string) (string, string, error) {
	pattern, _ := cmd.Flags().GetString(flagSearchPattern)
	selector, _ := cmd.Flags().GetString(flagFilePattern)
	havePattern := cmd.Flags().Changed(flagSearchPattern)
	haveSelector := cmd.Flags().Changed(flagFilePattern)

	rest := args
	if !havePattern && len(rest) > 0 {
		pattern, rest, havePattern = rest[0], rest[1:], true
	}
	if !haveSelector && len(rest) > 0 {
		selector, rest, haveSelector = rest[0], rest[1:], true
	}

	switch {
	case len(rest) > 0:
		return "", "", fmt.Errorf("unexpected argument %q", rest[0])
	case !havePattern:
		return "", "", fmt.Errorf("missing required option: %s", flagSearchPattern)
	case !haveSelector || selector == "":
		return "", "", fmt.Errorf("missing required option: %s", flagFilePattern)
	}
	return pattern, selector, nil
}

// displayConfig resolves the per-run display settings from flags and config.
func displayConfig(cmd *cobra.Command, cfg *config.Config) (scan.DisplayConfig, error) {
	flags := cmd.Flags()
	namesOnly, _ := flags.GetBool("files-with-matches")
	wholeWord, _ := flags.GetBool("word-regexp")
	countOnly, _ := flags.GetBool("count")
	invert, _ := flags.GetBool("invert-match")
	after, _ := flags.GetInt("after-context")
	before, _ := flags.GetInt("before-context")

	dc := scan.DisplayConfig{
		CaseInsensitive: cfg.IgnoreCase,
		WholeWord:       wholeWord,
		ShowFilenames:   !cfg.NoFilename,
		ShowLineNumbers: cfg.LineNumbers,
		CountOnly:       countOnly,
		InvertMatch:     invert,
		NamesOnly:       namesOnly,
		ContextBefore:   before,
		ContextAfter:    after,
	}
	if err := dc.Validate(); err != nil {
		return scan.DisplayConfig{}, err
	}
	return dc, nil
}
