package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goCycleKeys/config"
	"github.com/goCycleKeys/keymaps"
	"github.com/goCycleKeys/logging"
	"github.com/goCycleKeys/wordlist"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:           "gocyclekeys",
		Short:         "Cycle through word lists with key combos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath+")")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "log every keystroke")

	root.AddCommand(newRunCommand(), newEncodeCommand(), newSimulateCommand(), newListsCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// setupLogging logs to stderr and, when configured, to the log file as well.
// The returned closer is never nil.
func setupLogging(cfg config.Config) (logging.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if cfg.LogFile != "" {
		logFile, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to setup logging: %w", err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
		closer = logFile
	}

	logger := logging.NewLogger(logging.Config{Level: level, Format: format, Output: out, AddTime: true})
	if level <= slog.LevelDebug {
		logger.Debug("Debugging enabled")
	}
	return logger, closer, nil
}

// loadTable picks the cycle lists: an imported chord file, a lists file, or
// the built-in table. Chords also come back when imported.
func loadTable(cfg config.Config) (wordlist.Table, []wordlist.Chord, error) {
	switch {
	case cfg.Chords != "":
		data, err := os.ReadFile(cfg.Chords)
		if err != nil {
			return nil, nil, fmt.Errorf("read chords: %w", err)
		}
		lists, chords, err := wordlist.ImportChords(data)
		if err != nil {
			return nil, nil, err
		}
		return lists, chords, nil
	case cfg.Lists != "":
		lists, err := wordlist.LoadFile(cfg.Lists)
		if err != nil {
			return nil, nil, err
		}
		return lists, nil, nil
	default:
		return wordlist.Default(), nil, nil
	}
}

// mappingFor returns the bindings used for a keyboard type. Configured or
// imported bindings apply to every keyboard.
func mappingFor(cfg config.Config, table wordlist.Table, chords []wordlist.Chord, provider *keymaps.KeyMappingProvider, keyboardType int) (keymaps.KeyMapping, error) {
	m, ok, err := cfg.KeyMapping()
	if err != nil {
		return m, err
	}
	if !ok {
		if len(chords) > 0 {
			m = keymaps.FromChords(chords, table)
		} else {
			m = provider.GetMapping(keyboardType)
		}
	}
	if err := m.Validate(table); err != nil {
		return m, fmt.Errorf("%s keyboard: %w", keymaps.KeyboardTypeName(keyboardType), err)
	}
	return m, nil
}
