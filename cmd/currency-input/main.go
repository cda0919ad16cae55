package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	currencyinput "github.com/goliatone/go-currencyinput"
)

type cliConfig struct {
	locale       string
	defaultValue float64
	hideSymbol   bool
	rules        string
	logPath      string
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "currency-input: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig

	flag.StringVar(&cfg.locale, "locale", "", "locale for separators and symbol (defaults to LC_ALL, LC_MONETARY or LANG)")
	flag.Float64Var(&cfg.defaultValue, "default", 0, "initial amount")
	flag.BoolVar(&cfg.hideSymbol, "no-symbol", false, "hide the currency symbol")
	flag.StringVar(&cfg.rules, "rules", "", "comma separated JSON or YAML files with locale rules overrides")
	flag.StringVar(&cfg.logPath, "log", "", "write a debug log of every edit to this file")

	flag.Parse()

	if flag.NArg() > 0 {
		return cliConfig{}, errors.New("unexpected arguments: " + strings.Join(flag.Args(), " "))
	}

	if cfg.locale == "" {
		cfg.locale = hostLocale()
	}

	return cfg, nil
}

// hostLocale reads the POSIX locale environment, e.g. "de_DE.UTF-8" -> "de_DE".
func hostLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if idx := strings.IndexAny(value, ".@"); idx >= 0 {
			value = value[:idx]
		}
		return value
	}
	return ""
}

func run(cfg cliConfig, out io.Writer) error {
	opts := []currencyinput.Option{
		currencyinput.WithLocale(cfg.locale),
		currencyinput.WithDefaultValue(cfg.defaultValue),
		currencyinput.WithShowSymbol(!cfg.hideSymbol),
	}

	if cfg.rules != "" {
		var paths []string
		for _, part := range strings.Split(cfg.rules, ",") {
			if part = strings.TrimSpace(part); part != "" {
				paths = append(paths, part)
			}
		}
		opts = append(opts, currencyinput.WithRulesFiles(paths...))
	}

	if cfg.logPath != "" {
		logFile, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer logFile.Close()
		logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, currencyinput.WithLogger(logger))
	}

	field, err := currencyinput.NewField(opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(field))
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Fprintln(out, field.Text())
	return nil
}
