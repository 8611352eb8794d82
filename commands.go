package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/goCycleKeys/cycle"
	"github.com/goCycleKeys/device"
	"github.com/goCycleKeys/emitter"
	"github.com/goCycleKeys/encoder"
	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/keymaps"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Grab the configured keyboards and run the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, logFile, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer logFile.Close()

			table, chords, err := loadTable(cfg)
			if err != nil {
				return err
			}

			keyboard, err := device.CreateVirtualKeyboard("goCycleKeys")
			if err != nil {
				return err
			}
			defer keyboard.Close()
			output := device.NewOutput(keyboard)

			devices, err := device.FindInputDevices(cfg.Devices)
			if err != nil {
				return fmt.Errorf("error finding input devices: %w", err)
			}
			defer func() {
				for _, dev := range devices {
					dev.Close()
				}
			}()
			logger.Info("found input devices", "count", len(devices))

			// One detector per device; binding ids are unique across all of them.
			provider := keymaps.CreateDefaultKeyMappingProvider()
			var detectors []*device.ComboDetector
			var grabbed []*device.InputDevice
			bindings := 0
			for _, dev := range devices {
				mapping, err := mappingFor(cfg, table, chords, provider, dev.KeyboardType())
				if err != nil {
					return err
				}
				if err := dev.Grab(); err != nil {
					logger.Warn("failed to grab device", "device", dev.Name(), "err", err)
					continue
				}
				logger.Info("monitoring device", "device", dev.Name(), "path", dev.Path(),
					"type", keymaps.KeyboardTypeName(dev.KeyboardType()), "bindings", len(mapping.Bindings))
				for _, b := range mapping.Bindings {
					logger.Debug("binding", "device", dev.Name(), "binding", b.String())
				}
				detectors = append(detectors, device.NewComboDetector(mapping, bindings, cfg.ComboTimeout))
				grabbed = append(grabbed, dev)
				bindings += len(mapping.Bindings)
			}
			if len(grabbed) == 0 {
				return errors.New("no device could be grabbed")
			}

			clock := emitter.MonotonicClock()
			engine := cycle.NewEngine(cycle.Options{
				Bindings: bindings,
				Table:    table,
				Output:   output,
				Logger:   logger,
				Clock:    clock,
				TapDelay: cfg.TapDelay,
				Timeout:  cfg.CycleTimeout,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			keys := make(chan device.RawKey, 64)
			for i, dev := range grabbed {
				go dev.Read(ctx, i, keys, logger)
			}

			logger.Info("goCycleKeys active, press Ctrl+C to exit")
			err = device.NewLoop(engine, detectors, output, clock, logger.With("component", "loop")).Run(ctx, keys)
			if errors.Is(err, context.Canceled) {
				logger.Info("shutting down")
				return nil
			}
			return err
		},
	}
}

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT",
		Short: "Show the keystrokes that type TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			instructions, skipped := encoder.EncodeString(args[0])
			for _, in := range instructions {
				fmt.Fprintln(out, in)
			}
			for _, u := range skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", u)
			}
			return nil
		},
	}
}

func newSimulateCommand() *cobra.Command {
	var (
		presses int
		then    string
		keys    bool
	)
	cmd := &cobra.Command{
		Use:   "simulate LIST",
		Short: "Press a binding for LIST and print what would be typed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid list index %q: %w", args[0], err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, _, err := loadTable(cfg)
			if err != nil {
				return err
			}
			if _, ok := table.Lookup(list); !ok {
				return fmt.Errorf("list %d does not exist (%d lists)", list, table.Len())
			}

			rec := &keybus.Recorder{}
			engine := cycle.NewEngine(cycle.Options{Bindings: 1, Table: table, Output: rec})
			out := cmd.OutOrStdout()

			report := func(label string) {
				r := encoder.NewRenderer()
				var strokes []string
				for _, ev := range rec.Events() {
					r.Apply(ev.Usage, ev.Pressed)
					if ev.Pressed {
						strokes = append(strokes, ev.Usage.String())
					}
				}
				fmt.Fprintf(out, "%-8s %q\n", label, r.String())
				if keys {
					fmt.Fprintf(out, "         %s\n", strings.Join(strokes, " "))
				}
			}

			for i := 1; i <= presses; i++ {
				ev := cycle.BindingEvent{Binding: 0, List: list}
				engine.Press(ev)
				engine.Release(ev)
				report(fmt.Sprintf("press %d", i))
			}
			if then != "" {
				u, err := hid.Parse(then)
				if err != nil {
					return err
				}
				if _, err := engine.Key(keybus.Event{Usage: u, Pressed: true}); err != nil {
					return err
				}
				if _, err := engine.Key(keybus.Event{Usage: u}); err != nil {
					return err
				}
				report(u.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1, "number of presses")
	cmd.Flags().StringVar(&then, "then", "", "key to type after the last press, e.g. DOT")
	cmd.Flags().BoolVarP(&keys, "keys", "k", false, "also print the key-downs sent")
	return cmd
}

func newListsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lists [INDEX]",
		Short: "Print the cycle lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, _, err := loadTable(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				i, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid list index %q: %w", args[0], err)
				}
				list, ok := table.Lookup(i)
				if !ok {
					return fmt.Errorf("list %d does not exist (%d lists)", i, table.Len())
				}
				fmt.Fprintln(out, strings.Join(list, "\n"))
				return nil
			}
			for i := 0; i < table.Len(); i++ {
				list, _ := table.Lookup(i)
				fmt.Fprintf(out, "%4d  %s\n", i, strings.Join(list, " | "))
			}
			return nil
		},
	}
}
